package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/domain/entity"
	"github.com/gestionpro/backend/test/integration/mock"
)

func newProjectStoreForTest(t *testing.T) *projectStore {
	t.Helper()
	conn := mock.NewDB()
	if err := mock.ClearDB(conn); err != nil {
		t.Fatalf("failed to clear database: %v", err)
	}
	return &projectStore{db: conn}
}

func storedProject(name string) *entity.Project {
	initial := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	return entity.NewProject(
		name,
		"P-100",
		entity.ProjectStatusOnHold,
		&initial,
		nil,
		decimal.NewFromInt(1200000),
		[]entity.Category{
			{Name: "Materiales", Items: []entity.Item{
				{Name: "Arena", Unit: "m3", Quantity: decimal.NewFromInt(4), Cost: decimal.NewFromInt(90000)},
			}},
		},
		"",
	)
}

func TestProjectStore_InsertAndList(t *testing.T) {
	store := newProjectStoreForTest(t)
	ctx := context.Background()

	first := storedProject("first")
	second := storedProject("second")
	second.CreatedAt = first.CreatedAt.Add(time.Minute)

	for _, p := range []*entity.Project{second, first} {
		if err := store.Insert(ctx, p); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	listed, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(listed))
	}
	if listed[0].ID != first.ID {
		t.Errorf("expected oldest project first, got %s", listed[0].Name)
	}
	if len(listed[0].Categories) != 1 || len(listed[0].Categories[0].Items) != 1 {
		t.Errorf("expected embedded categories to survive storage, got %+v", listed[0].Categories)
	}
}

func TestProjectStore_UpsertIsIdempotentOnID(t *testing.T) {
	store := newProjectStoreForTest(t)
	ctx := context.Background()

	p := storedProject("quoted")
	if err := store.Upsert(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p.Name = "quoted and renamed"
	p.Status = entity.ProjectStatusInProcess
	if err := store.Upsert(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listed, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected a single record, got %d", len(listed))
	}
	if listed[0].Name != "quoted and renamed" || listed[0].Status != entity.ProjectStatusInProcess {
		t.Errorf("expected the replaced record, got %+v", listed[0])
	}
}

func TestProjectStore_Delete(t *testing.T) {
	store := newProjectStoreForTest(t)
	ctx := context.Background()

	p := storedProject("doomed")
	if err := store.Insert(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Delete(ctx, p.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	listed, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listed) != 0 {
		t.Errorf("expected no records, got %d", len(listed))
	}

	t.Run("deleting a missing record is not an error", func(t *testing.T) {
		if err := store.Delete(ctx, uuid.New()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}
