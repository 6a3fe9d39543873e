package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/application/adapter"
	"github.com/gestionpro/backend/internal/domain/entity"
)

// maxNotices bounds the in-app feed; older notices fall off.
const maxNotices = 100

// Notice is an in-app transient message shown to back-office users.
type Notice struct {
	ID          uuid.UUID                `json:"id"`
	ProjectID   uuid.UUID                `json:"projectId"`
	ProjectName string                   `json:"projectName"`
	Kind        adapter.NotificationKind `json:"kind"`
	Message     string                   `json:"message"`
	CreatedBy   string                   `json:"createdBy"`
	CreatedAt   time.Time                `json:"createdAt"`
}

// Service implements adapter.ProjectNotifier. Notify always records the
// in-app notice; the email dispatch is best-effort and its total failure is
// logged without affecting the notice or the caller.
type Service struct {
	sender  adapter.EmailSender
	adminTo string

	mu      sync.Mutex
	notices []Notice
}

// NewService creates a new notification service. The sender may be nil, in
// which case only the in-app feed is kept.
func NewService(sender adapter.EmailSender, adminTo string) *Service {
	return &Service{
		sender:  sender,
		adminTo: adminTo,
	}
}

// Notify records the transition and dispatches the external notification.
func (s *Service) Notify(ctx context.Context, project *entity.Project, kind adapter.NotificationKind, createdBy string) error {
	notice := Notice{
		ID:          uuid.New(),
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Kind:        kind,
		Message:     messageFor(project.Name, kind),
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.notices = append(s.notices, notice)
	if len(s.notices) > maxNotices {
		s.notices = s.notices[len(s.notices)-maxNotices:]
	}
	s.mu.Unlock()

	if s.sender == nil || s.adminTo == "" {
		return nil
	}

	payload := adapter.ProjectNotification{
		ProjectName:      project.Name,
		ProjectID:        project.ID.String(),
		NotificationType: string(kind),
		CreatedBy:        createdBy,
	}

	_, err := s.sender.Send(ctx, adapter.SendEmailInput{
		To:      s.adminTo,
		Subject: notice.Message,
		Text: fmt.Sprintf("Proyecto: %s\nID: %s\nEvento: %s\nRegistrado por: %s\n",
			payload.ProjectName, payload.ProjectID, payload.NotificationType, payload.CreatedBy),
	})
	if err != nil {
		slog.Warn("Notification dispatch failed",
			"project_id", project.ID,
			"kind", kind,
			"error", err,
		)
	}
	// Dispatch failure never propagates; the in-app notice already landed.
	return nil
}

// Notices returns the current in-app feed, newest last.
func (s *Service) Notices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Notice(nil), s.notices...)
}

func messageFor(projectName string, kind adapter.NotificationKind) string {
	switch kind {
	case adapter.NotificationCompleted:
		return fmt.Sprintf("Proyecto %q completado", projectName)
	default:
		return fmt.Sprintf("Proyecto %q creado", projectName)
	}
}

// Ensure Service implements the adapter interface.
var _ adapter.ProjectNotifier = (*Service)(nil)
