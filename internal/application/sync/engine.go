package sync

import (
	"context"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/application/adapter"
	"github.com/gestionpro/backend/internal/domain/entity"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
)

// State is the lifecycle state of the loaded collection.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
)

// Defaults for the engine's timing parameters.
const (
	DefaultDebounceQuiet  = 300 * time.Millisecond
	DefaultThrottleDelay  = 300 * time.Millisecond
	DefaultStatusPassGate = 1 * time.Second
)

// Config holds the engine's tunable parameters. Snapshot produces the
// canonical serialization used for change detection; it must serialize
// identically to what the cache stores so string equality means "no-op save".
type Config struct {
	DebounceQuiet  time.Duration
	ThrottleDelay  time.Duration
	StatusPassGate time.Duration
	Snapshot       func([]*entity.Project) string
	Now            func() time.Time
}

func (c *Config) applyDefaults() {
	if c.DebounceQuiet <= 0 {
		c.DebounceQuiet = DefaultDebounceQuiet
	}
	if c.ThrottleDelay <= 0 {
		c.ThrottleDelay = DefaultThrottleDelay
	}
	if c.StatusPassGate <= 0 {
		c.StatusPassGate = DefaultStatusPassGate
	}
	if c.Now == nil {
		c.Now = func() time.Time { return time.Now().UTC() }
	}
}

// Engine keeps the project collection reconciled between the authoritative
// remote store and the local cache. All public operations swallow remote
// failures into degraded local-only behavior; a panic out of this package is
// a programming bug, not a modeled condition.
type Engine struct {
	store     adapter.ProjectStore
	cache     adapter.ProjectCache
	notifier  adapter.ProjectNotifier
	throttle  *Throttle
	scheduler *WriteScheduler

	snapshot   func([]*entity.Project) string
	now        func() time.Time
	statusGate time.Duration

	mu           stdsync.Mutex
	state        State
	identity     *adapter.Identity
	projects     []*entity.Project
	lastSnapshot string
	lastSaved    map[uuid.UUID]string   // per-entity serialization at last commit
	pending      map[uuid.UUID]struct{} // entity ids with a remote write in flight
	readyAt      time.Time
}

// NewEngine creates a sync engine. The store, cache and notifier are
// injected; there are no ambient singletons.
func NewEngine(
	store adapter.ProjectStore,
	cache adapter.ProjectCache,
	notifier adapter.ProjectNotifier,
	cfg Config,
) *Engine {
	if cfg.Snapshot == nil {
		panic("sync: Config.Snapshot is required")
	}
	cfg.applyDefaults()

	e := &Engine{
		store:      store,
		cache:      cache,
		notifier:   notifier,
		throttle:   NewThrottle(cfg.ThrottleDelay),
		snapshot:   cfg.Snapshot,
		now:        cfg.Now,
		statusGate: cfg.StatusPassGate,
		state:      StateUninitialized,
		lastSaved:  make(map[uuid.UUID]string),
		pending:    make(map[uuid.UUID]struct{}),
	}
	e.scheduler = NewWriteScheduler(cfg.DebounceQuiet, e.commit)
	return e
}

// Start loads the collection for the given session identity. With no
// identity the collection resets to empty and becomes ready immediately,
// without any remote call. Otherwise the remote store is authoritative; on
// error or an empty result the local cache takes over, and cached data that
// the remote has never seen is migrated into it item by item.
func (e *Engine) Start(ctx context.Context, identity *adapter.Identity) {
	e.mu.Lock()
	e.identity = identity
	if identity == nil {
		e.projects = []*entity.Project{}
		e.lastSnapshot = e.snapshot(e.projects)
		e.lastSaved = make(map[uuid.UUID]string)
		e.state = StateReady
		e.readyAt = e.now()
		e.mu.Unlock()
		slog.Info("No session identity, collection ready in local-only mode")
		return
	}
	e.state = StateLoading
	e.mu.Unlock()

	var adopted []*entity.Project

	remote, err := e.store.List(ctx)
	switch {
	case err != nil:
		slog.Warn("Remote list failed, falling back to local cache", "error", err)
		adopted = e.cache.Load(ctx)
	case len(remote) == 0:
		adopted = e.cache.Load(ctx)
		if len(adopted) > 0 {
			slog.Info("Remote store empty, migrating cached projects", "count", len(adopted))
			e.migrate(ctx, adopted)
		}
	default:
		adopted = remote
		e.cache.Save(ctx, adopted)
	}

	e.mu.Lock()
	e.projects = adopted
	e.lastSnapshot = e.snapshot(adopted)
	e.lastSaved = e.perEntitySnapshots(adopted)
	e.state = StateReady
	e.readyAt = e.now()
	e.mu.Unlock()

	slog.Info("Project collection loaded", "count", len(adopted))
}

// migrate pushes cached projects into the remote store through the throttle.
// Individual insert failures are logged and do not abort the batch.
func (e *Engine) migrate(ctx context.Context, projects []*entity.Project) {
	for _, project := range projects {
		project := project
		done := e.throttle.Enqueue(ctx, func(ctx context.Context) error {
			return e.store.Insert(ctx, project)
		})
		go func() {
			if err := <-done; err != nil {
				slog.Warn("Cache migration insert failed",
					"project_id", project.ID,
					"error", err,
				)
			}
		}()
	}
}

// State returns the collection lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Projects returns the current collection. Callers must treat the returned
// projects as read-only; mutations go through Update with a fresh copy.
func (e *Engine) Projects() []*entity.Project {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*entity.Project(nil), e.projects...)
}

// Get returns the project with the given ID.
func (e *Engine) Get(id uuid.UUID) (*entity.Project, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, p := range e.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domainerror.NewProjectError(
		domainerror.ErrCodeProjectNotFound,
		"project not found",
		domainerror.ErrProjectNotFound,
	)
}

// SaveProjects adopts the new collection and schedules a debounced persist.
// If the canonical serialization matches the last-saved snapshot the call is
// a logged no-op.
func (e *Engine) SaveProjects(ctx context.Context, projects []*entity.Project) error {
	e.mu.Lock()
	if e.state != StateReady {
		e.mu.Unlock()
		return domainerror.NewProjectError(
			domainerror.ErrCodeProjectsNotLoaded,
			"project collection is still loading",
			domainerror.ErrProjectsNotLoaded,
		)
	}
	e.projects = projects
	snap := e.snapshot(projects)
	unchanged := snap == e.lastSnapshot
	e.mu.Unlock()

	if unchanged {
		slog.Debug("No changes detected, skipping save")
		return nil
	}

	e.scheduler.Schedule(projects)
	return nil
}

// commit is the scheduler callback: it records the new snapshot, persists to
// the local cache synchronously, and pushes each changed entity to the
// remote store through the throttle, deduplicated per entity id.
func (e *Engine) commit(projects []*entity.Project) {
	ctx := context.Background()

	e.mu.Lock()
	e.projects = projects

	newSaved := make(map[uuid.UUID]string, len(projects))
	var changed []*entity.Project
	for _, project := range projects {
		s := e.snapshot([]*entity.Project{project})
		newSaved[project.ID] = s
		if prev, ok := e.lastSaved[project.ID]; !ok || prev != s {
			changed = append(changed, project)
		}
	}
	e.lastSaved = newSaved
	e.lastSnapshot = e.snapshot(projects)
	identity := e.identity
	e.mu.Unlock()

	e.cache.Save(ctx, projects)

	if identity == nil {
		return
	}
	for _, project := range changed {
		e.pushProject(ctx, project)
	}
}

// pushProject upserts one entity remotely unless a write for its id is
// already in flight. A skipped push is carried forward by a later debounce
// cycle; this is an accepted eventual-consistency gap.
func (e *Engine) pushProject(ctx context.Context, project *entity.Project) {
	e.mu.Lock()
	if _, inFlight := e.pending[project.ID]; inFlight {
		e.mu.Unlock()
		slog.Debug("Save already in flight, skipping", "project_id", project.ID)
		return
	}
	e.pending[project.ID] = struct{}{}
	e.mu.Unlock()

	done := e.throttle.Enqueue(ctx, func(ctx context.Context) error {
		return e.store.Upsert(ctx, project)
	})
	go func() {
		err := <-done
		e.mu.Lock()
		delete(e.pending, project.ID)
		e.mu.Unlock()
		if err != nil {
			slog.Error("Remote save failed, project kept locally",
				"project_id", project.ID,
				"error", err,
			)
		}
	}()
}

// Create appends a new project and schedules a save. The "created"
// notification is fire-and-forget; its failure never rolls back the create.
func (e *Engine) Create(ctx context.Context, project *entity.Project, createdBy string) error {
	e.mu.Lock()
	if e.state != StateReady {
		e.mu.Unlock()
		return domainerror.NewProjectError(
			domainerror.ErrCodeProjectsNotLoaded,
			"project collection is still loading",
			domainerror.ErrProjectsNotLoaded,
		)
	}
	project.Categories = entity.AssignCategoryKinds(project.Categories)
	next := make([]*entity.Project, 0, len(e.projects)+1)
	next = append(next, e.projects...)
	next = append(next, project)
	e.mu.Unlock()

	if err := e.SaveProjects(ctx, next); err != nil {
		return err
	}

	e.notify(project, adapter.NotificationCreated, createdBy)
	return nil
}

// Update replaces the matching project. When this specific call moves the
// status from non-completed to completed, the "completed" notification fires
// on that pre/post comparison, before the save observably completes.
func (e *Engine) Update(ctx context.Context, updated *entity.Project, updatedBy string) error {
	e.mu.Lock()
	if e.state != StateReady {
		e.mu.Unlock()
		return domainerror.NewProjectError(
			domainerror.ErrCodeProjectsNotLoaded,
			"project collection is still loading",
			domainerror.ErrProjectsNotLoaded,
		)
	}

	updated.Categories = entity.AssignCategoryKinds(updated.Categories)

	idx := -1
	var previous *entity.Project
	for i, p := range e.projects {
		if p.ID == updated.ID {
			idx = i
			previous = p
			break
		}
	}
	if idx < 0 {
		e.mu.Unlock()
		return domainerror.NewProjectError(
			domainerror.ErrCodeProjectNotFound,
			"project not found",
			domainerror.ErrProjectNotFound,
		)
	}

	completedNow := previous.Status != entity.ProjectStatusCompleted &&
		updated.Status == entity.ProjectStatusCompleted

	next := make([]*entity.Project, len(e.projects))
	copy(next, e.projects)
	next[idx] = updated
	e.mu.Unlock()

	if completedNow {
		e.notify(updated, adapter.NotificationCompleted, updatedBy)
	}

	return e.SaveProjects(ctx, next)
}

// Delete removes the project locally and from the cache unconditionally,
// then issues an immediate, non-debounced remote delete. A remote failure is
// surfaced to the caller but the local removal stands.
func (e *Engine) Delete(ctx context.Context, id uuid.UUID) error {
	e.mu.Lock()
	if e.state != StateReady {
		e.mu.Unlock()
		return domainerror.NewProjectError(
			domainerror.ErrCodeProjectsNotLoaded,
			"project collection is still loading",
			domainerror.ErrProjectsNotLoaded,
		)
	}

	next := make([]*entity.Project, 0, len(e.projects))
	for _, p := range e.projects {
		if p.ID != id {
			next = append(next, p)
		}
	}
	if len(next) == len(e.projects) {
		e.mu.Unlock()
		return domainerror.NewProjectError(
			domainerror.ErrCodeProjectNotFound,
			"project not found",
			domainerror.ErrProjectNotFound,
		)
	}

	e.projects = next
	e.lastSnapshot = e.snapshot(next)
	delete(e.lastSaved, id)
	identity := e.identity
	e.mu.Unlock()

	e.cache.Save(ctx, next)

	if identity != nil {
		if err := e.store.Delete(ctx, id); err != nil {
			slog.Error("Remote delete failed, project removed locally",
				"project_id", id,
				"error", err,
			)
			return domainerror.NewProjectError(
				domainerror.ErrCodeRemoteDeleteFailed,
				"remote delete failed",
				err,
			)
		}
	}
	return nil
}

// StatusPass promotes on-hold projects whose initial date has arrived to
// in-process, and in-process projects whose final date has arrived to
// completed, at day granularity. The pass is gated for a short window after
// load and only triggers a save when the canonical serialization actually
// changed, so it can never feed back into itself.
func (e *Engine) StatusPass(ctx context.Context) {
	e.mu.Lock()
	if e.state != StateReady || e.now().Sub(e.readyAt) < e.statusGate {
		e.mu.Unlock()
		return
	}

	now := e.now()
	changed := false
	next := make([]*entity.Project, len(e.projects))
	for i, p := range e.projects {
		status := nextStatus(p, now)
		if status == p.Status {
			next[i] = p
			continue
		}
		cp := p.Clone()
		cp.Status = status
		next[i] = cp
		changed = true
		slog.Info("Project status transition",
			"project_id", p.ID,
			"from", p.Status,
			"to", status,
		)
	}
	e.mu.Unlock()

	if !changed {
		return
	}
	_ = e.SaveProjects(ctx, next)
}

// StartStatusLoop runs the status pass on a ticker until the context is
// cancelled.
func (e *Engine) StartStatusLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("Status loop shutting down")
			return
		case <-ticker.C:
			e.StatusPass(ctx)
		}
	}
}

// Flush commits any pending debounced write immediately.
func (e *Engine) Flush() {
	e.scheduler.Flush()
}

// Close flushes the pending write and drains the throttle queue.
func (e *Engine) Close() {
	e.scheduler.Flush()
	e.scheduler.Stop()
	e.throttle.Close()
}

func (e *Engine) notify(project *entity.Project, kind adapter.NotificationKind, by string) {
	if e.notifier == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.notifier.Notify(ctx, project, kind, by); err != nil {
			slog.Warn("Project notification failed",
				"project_id", project.ID,
				"kind", kind,
				"error", err,
			)
		}
	}()
}

func (e *Engine) perEntitySnapshots(projects []*entity.Project) map[uuid.UUID]string {
	m := make(map[uuid.UUID]string, len(projects))
	for _, p := range projects {
		m[p.ID] = e.snapshot([]*entity.Project{p})
	}
	return m
}

// nextStatus applies the automatic transition rules in sequence. Paused
// projects are only ever moved by explicit user action.
func nextStatus(p *entity.Project, now time.Time) entity.ProjectStatus {
	status := p.Status
	if status == entity.ProjectStatusOnHold && dateArrived(p.InitialDate, now) {
		status = entity.ProjectStatusInProcess
	}
	if status == entity.ProjectStatusInProcess && dateArrived(p.FinalDate, now) {
		status = entity.ProjectStatusCompleted
	}
	return status
}

// dateArrived compares at day granularity with the time of day zeroed.
func dateArrived(d *time.Time, now time.Time) bool {
	if d == nil {
		return false
	}
	return !dayOf(*d).After(dayOf(now))
}

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
