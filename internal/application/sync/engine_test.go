package sync

import (
	"context"
	"errors"
	stdsync "sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestionpro/backend/internal/application/adapter"
	"github.com/gestionpro/backend/internal/domain/entity"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
	"github.com/gestionpro/backend/internal/integration/persistence/model"
)

type fakeStore struct {
	mu        stdsync.Mutex
	remote    []*entity.Project
	listErr   error
	deleteErr error
	listCalls int
	inserted  []uuid.UUID
	upserted  []uuid.UUID
	deleted   []uuid.UUID
}

func (s *fakeStore) List(ctx context.Context) ([]*entity.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	if s.listErr != nil {
		return nil, s.listErr
	}
	return append([]*entity.Project(nil), s.remote...), nil
}

func (s *fakeStore) Insert(ctx context.Context, project *entity.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inserted = append(s.inserted, project.ID)
	return nil
}

func (s *fakeStore) Upsert(ctx context.Context, project *entity.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserted = append(s.upserted, project.ID)
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeStore) upsertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.upserted)
}

func (s *fakeStore) insertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.inserted)
}

type fakeCache struct {
	mu     stdsync.Mutex
	stored []*entity.Project
	saves  int
}

func (c *fakeCache) Save(ctx context.Context, projects []*entity.Project) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stored = append([]*entity.Project(nil), projects...)
	c.saves++
}

func (c *fakeCache) Load(ctx context.Context) []*entity.Project {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*entity.Project(nil), c.stored...)
}

func (c *fakeCache) saveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves
}

type fakeNotifier struct {
	mu    stdsync.Mutex
	kinds []adapter.NotificationKind
}

func (n *fakeNotifier) Notify(ctx context.Context, project *entity.Project, kind adapter.NotificationKind, createdBy string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.kinds = append(n.kinds, kind)
	return nil
}

func (n *fakeNotifier) received() []adapter.NotificationKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]adapter.NotificationKind(nil), n.kinds...)
}

type fakeClock struct {
	mu stdsync.Mutex
	t  time.Time
}

func (c *fakeClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func testIdentity() *adapter.Identity {
	return &adapter.Identity{ID: uuid.New(), Role: "admin"}
}

func testConfig() Config {
	return Config{
		DebounceQuiet:  time.Millisecond,
		ThrottleDelay:  time.Millisecond,
		StatusPassGate: time.Millisecond,
		Snapshot:       model.StringifyProjects,
	}
}

func testProject(name string) *entity.Project {
	return entity.NewProject(
		name,
		"P-001",
		entity.ProjectStatusOnHold,
		nil,
		nil,
		decimal.NewFromInt(1000),
		nil,
		"",
	)
}

func projectCode(t *testing.T, err error) domainerror.ProjectErrorCode {
	t.Helper()
	var projErr *domainerror.ProjectError
	if !errors.As(err, &projErr) {
		t.Fatalf("expected a project error, got %v", err)
	}
	return projErr.Code
}

func TestNewEngine_RequiresSnapshot(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a missing snapshot function")
		}
	}()
	NewEngine(&fakeStore{}, &fakeCache{}, nil, Config{})
}

func TestEngine_Start(t *testing.T) {
	t.Run("nil identity resets to empty and ready without remote calls", func(t *testing.T) {
		store := &fakeStore{remote: []*entity.Project{testProject("remote")}}
		engine := NewEngine(store, &fakeCache{}, nil, testConfig())
		defer engine.Close()

		engine.Start(context.Background(), nil)

		if engine.State() != StateReady {
			t.Fatalf("expected ready state, got %d", engine.State())
		}
		if got := engine.Projects(); len(got) != 0 {
			t.Errorf("expected empty collection, got %d projects", len(got))
		}
		if store.listCalls != 0 {
			t.Errorf("expected no remote list, got %d calls", store.listCalls)
		}
	})

	t.Run("adopts the remote collection and refreshes the cache", func(t *testing.T) {
		p := testProject("remote")
		store := &fakeStore{remote: []*entity.Project{p}}
		cache := &fakeCache{}
		engine := NewEngine(store, cache, nil, testConfig())
		defer engine.Close()

		engine.Start(context.Background(), testIdentity())

		got := engine.Projects()
		if len(got) != 1 || got[0].ID != p.ID {
			t.Fatalf("expected the remote project, got %v", got)
		}
		if cache.saveCount() != 1 {
			t.Errorf("expected 1 cache save, got %d", cache.saveCount())
		}
	})

	t.Run("falls back to the cache when the remote list fails", func(t *testing.T) {
		p := testProject("cached")
		store := &fakeStore{listErr: errors.New("connection refused")}
		cache := &fakeCache{stored: []*entity.Project{p}}
		engine := NewEngine(store, cache, nil, testConfig())
		defer engine.Close()

		engine.Start(context.Background(), testIdentity())

		if engine.State() != StateReady {
			t.Fatalf("expected ready state, got %d", engine.State())
		}
		got := engine.Projects()
		if len(got) != 1 || got[0].ID != p.ID {
			t.Errorf("expected the cached project, got %v", got)
		}
	})

	t.Run("migrates cached projects into an empty remote", func(t *testing.T) {
		p := testProject("cached")
		store := &fakeStore{}
		cache := &fakeCache{stored: []*entity.Project{p}}
		engine := NewEngine(store, cache, nil, testConfig())
		defer engine.Close()

		engine.Start(context.Background(), testIdentity())

		waitFor(t, func() bool { return store.insertCount() == 1 })
		got := engine.Projects()
		if len(got) != 1 || got[0].ID != p.ID {
			t.Errorf("expected the cached project, got %v", got)
		}
	})
}

func TestEngine_MutationsBeforeLoad(t *testing.T) {
	engine := NewEngine(&fakeStore{}, &fakeCache{}, nil, testConfig())
	defer engine.Close()

	ctx := context.Background()
	p := testProject("early")

	if code := projectCode(t, engine.Create(ctx, p, "ana")); code != domainerror.ErrCodeProjectsNotLoaded {
		t.Errorf("expected not-loaded code on create, got %s", code)
	}
	if code := projectCode(t, engine.Update(ctx, p, "ana")); code != domainerror.ErrCodeProjectsNotLoaded {
		t.Errorf("expected not-loaded code on update, got %s", code)
	}
	if code := projectCode(t, engine.Delete(ctx, p.ID)); code != domainerror.ErrCodeProjectsNotLoaded {
		t.Errorf("expected not-loaded code on delete, got %s", code)
	}
}

func TestEngine_Create(t *testing.T) {
	store := &fakeStore{}
	cache := &fakeCache{}
	notifier := &fakeNotifier{}
	engine := NewEngine(store, cache, notifier, testConfig())
	defer engine.Close()

	engine.Start(context.Background(), testIdentity())

	p := testProject("new build")
	if err := engine.Create(context.Background(), p, "ana"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := engine.Projects()
	if len(got) != 1 || got[0].ID != p.ID {
		t.Fatalf("expected the created project, got %v", got)
	}

	engine.Flush()
	waitFor(t, func() bool { return store.upsertCount() == 1 })
	waitFor(t, func() bool { return len(notifier.received()) == 1 })

	if kinds := notifier.received(); kinds[0] != adapter.NotificationCreated {
		t.Errorf("expected a created notification, got %s", kinds[0])
	}
}

func TestEngine_Update(t *testing.T) {
	t.Run("unknown project is rejected", func(t *testing.T) {
		engine := NewEngine(&fakeStore{}, &fakeCache{}, nil, testConfig())
		defer engine.Close()
		engine.Start(context.Background(), nil)

		if code := projectCode(t, engine.Update(context.Background(), testProject("ghost"), "ana")); code != domainerror.ErrCodeProjectNotFound {
			t.Errorf("expected not-found code, got %s", code)
		}
	})

	t.Run("transition to completed fires the notification", func(t *testing.T) {
		p := testProject("almost done")
		p.Status = entity.ProjectStatusInProcess
		store := &fakeStore{remote: []*entity.Project{p}}
		notifier := &fakeNotifier{}
		engine := NewEngine(store, &fakeCache{}, notifier, testConfig())
		defer engine.Close()
		engine.Start(context.Background(), testIdentity())

		updated := p.Clone()
		updated.Status = entity.ProjectStatusCompleted
		if err := engine.Update(context.Background(), updated, "ana"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		waitFor(t, func() bool { return len(notifier.received()) == 1 })
		if kinds := notifier.received(); kinds[0] != adapter.NotificationCompleted {
			t.Errorf("expected a completed notification, got %s", kinds[0])
		}
	})

	t.Run("update of an already completed project stays silent", func(t *testing.T) {
		p := testProject("done")
		p.Status = entity.ProjectStatusCompleted
		store := &fakeStore{remote: []*entity.Project{p}}
		notifier := &fakeNotifier{}
		engine := NewEngine(store, &fakeCache{}, notifier, testConfig())
		defer engine.Close()
		engine.Start(context.Background(), testIdentity())

		updated := p.Clone()
		updated.Observations = "closing notes"
		if err := engine.Update(context.Background(), updated, "ana"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		time.Sleep(20 * time.Millisecond)
		if kinds := notifier.received(); len(kinds) != 0 {
			t.Errorf("expected no notifications, got %v", kinds)
		}
	})
}

func TestEngine_SaveProjects_SkipsUnchangedCollections(t *testing.T) {
	p := testProject("steady")
	store := &fakeStore{remote: []*entity.Project{p}}
	cache := &fakeCache{}
	engine := NewEngine(store, cache, nil, testConfig())
	defer engine.Close()
	engine.Start(context.Background(), testIdentity())

	savesAfterLoad := cache.saveCount()

	if err := engine.SaveProjects(context.Background(), engine.Projects()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	engine.Flush()

	time.Sleep(20 * time.Millisecond)
	if cache.saveCount() != savesAfterLoad {
		t.Errorf("expected no further cache saves, got %d", cache.saveCount()-savesAfterLoad)
	}
	if store.upsertCount() != 0 {
		t.Errorf("expected no remote upserts, got %d", store.upsertCount())
	}
}

func TestEngine_Delete(t *testing.T) {
	t.Run("removes locally and remotely", func(t *testing.T) {
		p := testProject("old build")
		store := &fakeStore{remote: []*entity.Project{p}}
		engine := NewEngine(store, &fakeCache{}, nil, testConfig())
		defer engine.Close()
		engine.Start(context.Background(), testIdentity())

		if err := engine.Delete(context.Background(), p.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := engine.Projects(); len(got) != 0 {
			t.Errorf("expected empty collection, got %v", got)
		}
		if len(store.deleted) != 1 || store.deleted[0] != p.ID {
			t.Errorf("expected a remote delete for %s, got %v", p.ID, store.deleted)
		}
	})

	t.Run("remote failure is surfaced but the local removal stands", func(t *testing.T) {
		p := testProject("stubborn")
		store := &fakeStore{remote: []*entity.Project{p}, deleteErr: errors.New("timeout")}
		engine := NewEngine(store, &fakeCache{}, nil, testConfig())
		defer engine.Close()
		engine.Start(context.Background(), testIdentity())

		err := engine.Delete(context.Background(), p.ID)
		if code := projectCode(t, err); code != domainerror.ErrCodeRemoteDeleteFailed {
			t.Fatalf("expected remote-delete-failed code, got %s", code)
		}
		if got := engine.Projects(); len(got) != 0 {
			t.Errorf("expected the project removed locally, got %v", got)
		}
	})

	t.Run("local-only mode never calls the remote store", func(t *testing.T) {
		store := &fakeStore{}
		engine := NewEngine(store, &fakeCache{}, nil, testConfig())
		defer engine.Close()
		engine.Start(context.Background(), nil)

		p := testProject("local")
		if err := engine.Create(context.Background(), p, "ana"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := engine.Delete(context.Background(), p.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(store.deleted) != 0 {
			t.Errorf("expected no remote deletes, got %v", store.deleted)
		}
	})

	t.Run("unknown project is rejected", func(t *testing.T) {
		engine := NewEngine(&fakeStore{}, &fakeCache{}, nil, testConfig())
		defer engine.Close()
		engine.Start(context.Background(), nil)

		if code := projectCode(t, engine.Delete(context.Background(), uuid.New())); code != domainerror.ErrCodeProjectNotFound {
			t.Errorf("expected not-found code, got %s", code)
		}
	})
}

func TestEngine_StatusPass(t *testing.T) {
	day := func(s string) *time.Time {
		d, err := time.Parse("2006-01-02", s)
		if err != nil {
			t.Fatalf("bad date literal %q: %v", s, err)
		}
		return &d
	}
	// The pass is gated for a window after load, so the clock advances a
	// couple of seconds past readyAt before any assertions run.
	newEngineAt := func(projects []*entity.Project, gate time.Duration) (*Engine, *fakeStore) {
		clock := &fakeClock{t: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
		cfg := testConfig()
		cfg.StatusPassGate = gate
		cfg.Now = clock.now
		store := &fakeStore{remote: projects}
		engine := NewEngine(store, &fakeCache{}, nil, cfg)
		engine.Start(context.Background(), testIdentity())
		clock.advance(2 * time.Second)
		return engine, store
	}

	t.Run("gated right after load", func(t *testing.T) {
		p := testProject("fresh")
		p.InitialDate = day("2026-03-01")
		engine, _ := newEngineAt([]*entity.Project{p}, time.Hour)
		defer engine.Close()

		engine.StatusPass(context.Background())

		if got := engine.Projects()[0].Status; got != entity.ProjectStatusOnHold {
			t.Errorf("expected status untouched inside the gate window, got %s", got)
		}
	})

	t.Run("promotes by arrived dates at day granularity", func(t *testing.T) {
		started := testProject("started")
		started.InitialDate = day("2026-03-10")

		finished := testProject("finished")
		finished.InitialDate = day("2026-02-01")
		finished.FinalDate = day("2026-03-09")

		future := testProject("future")
		future.InitialDate = day("2026-03-11")

		paused := testProject("paused")
		paused.Status = entity.ProjectStatusPaused
		paused.InitialDate = day("2026-01-01")
		paused.FinalDate = day("2026-02-01")

		engine, _ := newEngineAt([]*entity.Project{started, finished, future, paused}, 0)
		defer engine.Close()

		engine.StatusPass(context.Background())

		byID := map[uuid.UUID]entity.ProjectStatus{}
		for _, p := range engine.Projects() {
			byID[p.ID] = p.Status
		}
		if byID[started.ID] != entity.ProjectStatusInProcess {
			t.Errorf("expected started project in-process, got %s", byID[started.ID])
		}
		if byID[finished.ID] != entity.ProjectStatusCompleted {
			t.Errorf("expected finished project completed, got %s", byID[finished.ID])
		}
		if byID[future.ID] != entity.ProjectStatusOnHold {
			t.Errorf("expected future project on-hold, got %s", byID[future.ID])
		}
		if byID[paused.ID] != entity.ProjectStatusPaused {
			t.Errorf("expected paused project untouched, got %s", byID[paused.ID])
		}
	})

	t.Run("loop ticks in the background and stops on cancel", func(t *testing.T) {
		p := testProject("started")
		p.InitialDate = day("2026-03-01")
		engine, _ := newEngineAt([]*entity.Project{p}, 0)
		defer engine.Close()

		// Launched the way main wires it; the launcher must stay free to
		// continue with server startup.
		ctx, cancel := context.WithCancel(context.Background())
		loopDone := make(chan struct{})
		go func() {
			engine.StartStatusLoop(ctx, 5*time.Millisecond)
			close(loopDone)
		}()

		waitFor(t, func() bool {
			return engine.Projects()[0].Status == entity.ProjectStatusInProcess
		})

		cancel()
		select {
		case <-loopDone:
		case <-time.After(2 * time.Second):
			t.Fatal("status loop did not stop on context cancellation")
		}
	})

	t.Run("second pass is a no-op", func(t *testing.T) {
		p := testProject("started")
		p.InitialDate = day("2026-03-01")
		engine, store := newEngineAt([]*entity.Project{p}, 0)
		defer engine.Close()

		engine.StatusPass(context.Background())
		engine.Flush()
		waitFor(t, func() bool { return store.upsertCount() == 1 })

		engine.StatusPass(context.Background())
		engine.Flush()

		time.Sleep(20 * time.Millisecond)
		if store.upsertCount() != 1 {
			t.Errorf("expected a single remote upsert, got %d", store.upsertCount())
		}
	})
}
