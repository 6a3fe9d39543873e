package project

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/application/adapter"
	"github.com/gestionpro/backend/internal/application/sync"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
)

// DeleteProjectInput represents the input for project deletion.
type DeleteProjectInput struct {
	ID uuid.UUID
}

// DeleteProjectOutput represents the output of project deletion. Degraded
// is true when the project was removed locally but the remote delete failed.
type DeleteProjectOutput struct {
	Degraded bool
}

// DeleteProjectUseCase handles project deletion logic, including cleanup of
// quote attachments stored in the blob store.
type DeleteProjectUseCase struct {
	engine    *sync.Engine
	blobStore adapter.BlobStore
}

// NewDeleteProjectUseCase creates a new DeleteProjectUseCase instance.
func NewDeleteProjectUseCase(engine *sync.Engine, blobStore adapter.BlobStore) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		engine:    engine,
		blobStore: blobStore,
	}
}

// Execute performs the project deletion. Attachment removal is best-effort:
// an orphaned blob is preferable to a delete that fails halfway.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) (*DeleteProjectOutput, error) {
	project, err := uc.engine.Get(input.ID)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(project.Quotes))
	for _, quote := range project.Quotes {
		paths = append(paths, quote.Path)
	}

	if err := uc.engine.Delete(ctx, input.ID); err != nil {
		var projectErr *domainerror.ProjectError
		if errors.As(err, &projectErr) && projectErr.Code == domainerror.ErrCodeRemoteDeleteFailed {
			uc.removeBlobs(ctx, paths)
			return &DeleteProjectOutput{Degraded: true}, nil
		}
		return nil, err
	}

	uc.removeBlobs(ctx, paths)
	return &DeleteProjectOutput{}, nil
}

func (uc *DeleteProjectUseCase) removeBlobs(ctx context.Context, paths []string) {
	if len(paths) == 0 {
		return
	}
	_ = uc.blobStore.Remove(ctx, paths)
}
