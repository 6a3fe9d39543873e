package adapter

import (
	"context"

	"github.com/gestionpro/backend/internal/domain/entity"
)

// NotificationKind identifies the project transition being announced.
type NotificationKind string

const (
	NotificationCreated   NotificationKind = "created"
	NotificationCompleted NotificationKind = "completed"
)

// ProjectNotification carries the payload dispatched on a project transition.
type ProjectNotification struct {
	ProjectName      string `json:"projectName"`
	ProjectID        string `json:"projectId"`
	NotificationType string `json:"notificationType"`
	CreatedBy        string `json:"createdBy"`
}

// ProjectNotifier announces project transitions. Implementations show an
// in-app notice and best-effort dispatch an external notification; total
// failure of the dispatch is logged and must never affect the caller's
// state change.
type ProjectNotifier interface {
	Notify(ctx context.Context, project *entity.Project, kind NotificationKind, createdBy string) error
}
