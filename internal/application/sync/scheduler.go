package sync

import (
	stdsync "sync"
	"time"

	"github.com/gestionpro/backend/internal/domain/entity"
)

// WriteScheduler owns the single-slot pending write. Scheduling a new
// collection cancels and replaces the slot, so rapid-fire edits across many
// entities converge to one committed write after a quiet period. Flush
// commits the slot immediately, which is how tests (and shutdown) avoid
// waiting on real timers.
type WriteScheduler struct {
	mu      stdsync.Mutex
	quiet   time.Duration
	timer   *time.Timer
	pending []*entity.Project
	commit  func([]*entity.Project)
	stopped bool
}

// NewWriteScheduler creates a scheduler committing through the given callback
// after the quiet period.
func NewWriteScheduler(quiet time.Duration, commit func([]*entity.Project)) *WriteScheduler {
	return &WriteScheduler{
		quiet:  quiet,
		commit: commit,
	}
}

// Schedule replaces the pending collection and restarts the quiet-period timer.
func (s *WriteScheduler) Schedule(projects []*entity.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	s.pending = projects
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.quiet, s.fire)
}

// Flush commits the pending collection immediately, if any.
func (s *WriteScheduler) Flush() {
	s.fire()
}

// Stop cancels any pending write without committing it.
func (s *WriteScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = nil
}

func (s *WriteScheduler) fire() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	if pending != nil {
		s.commit(pending)
	}
}
