package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/domain/entity"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
	"github.com/gestionpro/backend/test/integration/mock"
)

func newEmployeeRepoForTest(t *testing.T) *employeeRepository {
	t.Helper()
	conn := mock.NewDB()
	if err := mock.ClearDB(conn); err != nil {
		t.Fatalf("failed to clear database: %v", err)
	}
	return &employeeRepository{db: conn}
}

func TestEmployeeRepository_CreateAndFindByID(t *testing.T) {
	repo := newEmployeeRepoForTest(t)
	ctx := context.Background()

	worker := entity.NewEmployee("Carlos", decimal.NewFromInt(2300000), "oficial", "cuadrilla A")
	if err := repo.Create(ctx, worker); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, worker.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Name != "Carlos" || found.Position != "oficial" || found.Group != "cuadrilla A" {
		t.Errorf("unexpected employee fields: %+v", found)
	}
	if !found.IsActive {
		t.Error("expected employee to be active")
	}
	if !found.HourlyRate.Equal(worker.HourlyRate) {
		t.Errorf("expected hourly rate %s, got %s", worker.HourlyRate, found.HourlyRate)
	}
}

func TestEmployeeRepository_Create_PersistsInactiveState(t *testing.T) {
	repo := newEmployeeRepoForTest(t)
	ctx := context.Background()

	former := entity.NewEmployee("Ana", decimal.NewFromInt(2000000), "maestra", "cuadrilla A")
	former.IsActive = false
	if err := repo.Create(ctx, former); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, former.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.IsActive {
		t.Error("expected the inactive state to survive the insert")
	}
}

func TestEmployeeRepository_FindByID_NotFound(t *testing.T) {
	repo := newEmployeeRepoForTest(t)

	_, err := repo.FindByID(context.Background(), uuid.New())
	if !errors.Is(err, domainerror.ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestEmployeeRepository_FindAll_ActiveFirst(t *testing.T) {
	repo := newEmployeeRepoForTest(t)
	ctx := context.Background()

	retired := entity.NewEmployee("Ana", decimal.NewFromInt(2000000), "maestra", "cuadrilla A")
	retired.IsActive = false
	active := entity.NewEmployee("Zoe", decimal.NewFromInt(1900000), "ayudante", "cuadrilla B")

	for _, e := range []*entity.Employee{retired, active} {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 employees, got %d", len(all))
	}
	if all[0].ID != active.ID {
		t.Errorf("expected the active employee first, got %s", all[0].Name)
	}
}

func TestEmployeeRepository_Update(t *testing.T) {
	repo := newEmployeeRepoForTest(t)
	ctx := context.Background()

	worker := entity.NewEmployee("Carlos", decimal.NewFromInt(2300000), "oficial", "cuadrilla A")
	if err := repo.Create(ctx, worker); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	worker.UpdateSalary(decimal.NewFromInt(2530000))
	worker.IsActive = false
	if err := repo.Update(ctx, worker); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	found, err := repo.FindByID(ctx, worker.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found.Salary.Equal(decimal.NewFromInt(2530000)) {
		t.Errorf("expected salary 2530000, got %s", found.Salary)
	}
	if !found.HourlyRate.Equal(worker.HourlyRate) {
		t.Errorf("expected re-derived hourly rate %s, got %s", worker.HourlyRate, found.HourlyRate)
	}
	if found.IsActive {
		t.Error("expected employee to be inactive")
	}
}

func TestEmployeeRepository_Delete(t *testing.T) {
	repo := newEmployeeRepoForTest(t)
	ctx := context.Background()

	worker := entity.NewEmployee("Carlos", decimal.NewFromInt(2300000), "oficial", "cuadrilla A")
	if err := repo.Create(ctx, worker); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.Delete(ctx, worker.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := repo.FindByID(ctx, worker.ID); !errors.Is(err, domainerror.ErrEmployeeNotFound) {
		t.Errorf("expected ErrEmployeeNotFound after delete, got %v", err)
	}
}
