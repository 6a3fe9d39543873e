package cache

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/domain/entity"
	"github.com/gestionpro/backend/test/integration/mock"
)

func newCacheForTest(t *testing.T) *projectCache {
	t.Helper()
	client := mock.NewRedis()
	if err := mock.ClearRedis(client); err != nil {
		t.Fatalf("failed to clear redis: %v", err)
	}
	return &projectCache{client: client}
}

func cachedProject(name string) *entity.Project {
	initial := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return entity.NewProject(
		name,
		"P-007",
		entity.ProjectStatusInProcess,
		&initial,
		nil,
		decimal.NewFromInt(800000),
		[]entity.Category{{Name: entity.PersonnelCategoryName}},
		"",
	)
}

func TestProjectCache_SaveAndLoad(t *testing.T) {
	cache := newCacheForTest(t)
	ctx := context.Background()
	p := cachedProject("Remodelación")

	cache.Save(ctx, []*entity.Project{p})

	loaded := cache.Load(ctx)
	if len(loaded) != 1 {
		t.Fatalf("expected 1 project, got %d", len(loaded))
	}
	if loaded[0].ID != p.ID || loaded[0].Name != p.Name {
		t.Errorf("expected project %s, got %+v", p.ID, loaded[0])
	}
	if loaded[0].InitialDate == nil || !loaded[0].InitialDate.Equal(*p.InitialDate) {
		t.Errorf("expected initial date %v, got %v", p.InitialDate, loaded[0].InitialDate)
	}
	if loaded[0].Categories[0].Kind != entity.CategoryKindPersonnel {
		t.Errorf("expected normalized category kinds, got %s", loaded[0].Categories[0].Kind)
	}
}

func TestProjectCache_Load(t *testing.T) {
	t.Run("missing key resolves to an empty collection", func(t *testing.T) {
		cache := newCacheForTest(t)

		loaded := cache.Load(context.Background())
		if loaded == nil || len(loaded) != 0 {
			t.Errorf("expected empty collection, got %v", loaded)
		}
	})

	t.Run("corrupt payload resolves to an empty collection", func(t *testing.T) {
		cache := newCacheForTest(t)
		ctx := context.Background()

		if err := cache.client.Set(ctx, projectCacheKey, "{corrupt", 0).Err(); err != nil {
			t.Fatalf("failed to seed corrupt payload: %v", err)
		}

		loaded := cache.Load(ctx)
		if loaded == nil || len(loaded) != 0 {
			t.Errorf("expected empty collection, got %v", loaded)
		}
	})
}

func TestProjectCache_SaveReplacesPreviousCollection(t *testing.T) {
	cache := newCacheForTest(t)
	ctx := context.Background()

	cache.Save(ctx, []*entity.Project{cachedProject("first"), cachedProject("second")})
	replacement := cachedProject("third")
	cache.Save(ctx, []*entity.Project{replacement})

	loaded := cache.Load(ctx)
	if len(loaded) != 1 || loaded[0].ID != replacement.ID {
		t.Errorf("expected only the replacement project, got %v", loaded)
	}
}
