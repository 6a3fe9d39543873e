package project

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/application/adapter"
	"github.com/gestionpro/backend/internal/application/sync"
	"github.com/gestionpro/backend/internal/domain/entity"
	domainerror "github.com/gestionpro/backend/internal/domain/error"
)

// SignedURLTTL is how long a quote download link stays valid.
const SignedURLTTL = 15 * time.Minute

// AttachQuoteInput represents the input for attaching a quote file.
type AttachQuoteInput struct {
	ProjectID   uuid.UUID
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
	UpdatedBy   string
}

// AttachQuoteOutput represents the output of attaching a quote file.
type AttachQuoteOutput struct {
	Quote entity.QuoteFile
}

// AttachQuoteUseCase uploads a quote binary and records its metadata on the
// project document.
type AttachQuoteUseCase struct {
	engine     *sync.Engine
	blobStore  adapter.BlobStore
	objectPath func(ownerScope, filename string, now time.Time) string
}

// NewAttachQuoteUseCase creates a new AttachQuoteUseCase instance.
func NewAttachQuoteUseCase(
	engine *sync.Engine,
	blobStore adapter.BlobStore,
	objectPath func(ownerScope, filename string, now time.Time) string,
) *AttachQuoteUseCase {
	return &AttachQuoteUseCase{
		engine:     engine,
		blobStore:  blobStore,
		objectPath: objectPath,
	}
}

// Execute uploads the file and appends its metadata to the project. The
// blob upload happens first; a failed document save leaves an orphaned blob
// rather than a dangling reference.
func (uc *AttachQuoteUseCase) Execute(ctx context.Context, input AttachQuoteInput) (*AttachQuoteOutput, error) {
	if input.Filename == "" || input.Body == nil {
		return nil, domainerror.NewAttachmentError(
			domainerror.ErrCodeInvalidAttachment,
			"attachment requires a filename and a body",
			domainerror.ErrInvalidAttachment,
		)
	}

	project, err := uc.engine.Get(input.ProjectID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	path := uc.objectPath(project.ID.String(), input.Filename, now)

	if err := uc.blobStore.Upload(ctx, path, input.ContentType, input.Body); err != nil {
		return nil, domainerror.NewAttachmentError(
			domainerror.ErrCodeAttachmentUploadFailed,
			fmt.Sprintf("failed to upload %q", input.Filename),
			err,
		)
	}

	quote := entity.QuoteFile{
		Name:       input.Filename,
		Path:       path,
		Size:       input.Size,
		UploadedAt: now,
	}

	updated := project.Clone()
	updated.Quotes = append(updated.Quotes, quote)
	updated.UpdatedAt = now

	if err := uc.engine.Update(ctx, updated, input.UpdatedBy); err != nil {
		return nil, err
	}

	return &AttachQuoteOutput{Quote: quote}, nil
}

// SignQuoteURLInput represents the input for creating a quote download link.
type SignQuoteURLInput struct {
	ProjectID uuid.UUID
	Path      string
}

// SignQuoteURLOutput represents the output of creating a quote download link.
type SignQuoteURLOutput struct {
	URL       string
	ExpiresAt time.Time
}

// SignQuoteURLUseCase produces time-limited download URLs for quote files.
type SignQuoteURLUseCase struct {
	engine    *sync.Engine
	blobStore adapter.BlobStore
}

// NewSignQuoteURLUseCase creates a new SignQuoteURLUseCase instance.
func NewSignQuoteURLUseCase(engine *sync.Engine, blobStore adapter.BlobStore) *SignQuoteURLUseCase {
	return &SignQuoteURLUseCase{
		engine:    engine,
		blobStore: blobStore,
	}
}

// Execute signs a download URL for the given attachment path. The path must
// be recorded on the project; arbitrary paths are rejected.
func (uc *SignQuoteURLUseCase) Execute(ctx context.Context, input SignQuoteURLInput) (*SignQuoteURLOutput, error) {
	project, err := uc.engine.Get(input.ProjectID)
	if err != nil {
		return nil, err
	}

	if !hasQuotePath(project, input.Path) {
		return nil, domainerror.NewAttachmentError(
			domainerror.ErrCodeAttachmentNotFound,
			"attachment is not recorded on this project",
			domainerror.ErrAttachmentNotFound,
		)
	}

	now := time.Now().UTC()
	url, err := uc.blobStore.CreateSignedURL(ctx, input.Path, SignedURLTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign attachment url: %w", err)
	}

	return &SignQuoteURLOutput{
		URL:       url,
		ExpiresAt: now.Add(SignedURLTTL),
	}, nil
}

// RemoveQuoteInput represents the input for removing a quote file.
type RemoveQuoteInput struct {
	ProjectID uuid.UUID
	Path      string
	UpdatedBy string
}

// RemoveQuoteUseCase removes a quote file from a project and the blob store.
type RemoveQuoteUseCase struct {
	engine    *sync.Engine
	blobStore adapter.BlobStore
}

// NewRemoveQuoteUseCase creates a new RemoveQuoteUseCase instance.
func NewRemoveQuoteUseCase(engine *sync.Engine, blobStore adapter.BlobStore) *RemoveQuoteUseCase {
	return &RemoveQuoteUseCase{
		engine:    engine,
		blobStore: blobStore,
	}
}

// Execute removes the attachment reference from the project, then deletes
// the blob best-effort.
func (uc *RemoveQuoteUseCase) Execute(ctx context.Context, input RemoveQuoteInput) error {
	project, err := uc.engine.Get(input.ProjectID)
	if err != nil {
		return err
	}

	if !hasQuotePath(project, input.Path) {
		return domainerror.NewAttachmentError(
			domainerror.ErrCodeAttachmentNotFound,
			"attachment is not recorded on this project",
			domainerror.ErrAttachmentNotFound,
		)
	}

	updated := project.Clone()
	kept := updated.Quotes[:0]
	for _, quote := range updated.Quotes {
		if quote.Path != input.Path {
			kept = append(kept, quote)
		}
	}
	updated.Quotes = kept
	updated.UpdatedAt = time.Now().UTC()

	if err := uc.engine.Update(ctx, updated, input.UpdatedBy); err != nil {
		return err
	}

	_ = uc.blobStore.Remove(ctx, []string{input.Path})
	return nil
}

func hasQuotePath(project *entity.Project, path string) bool {
	for _, quote := range project.Quotes {
		if quote.Path == path {
			return true
		}
	}
	return false
}
