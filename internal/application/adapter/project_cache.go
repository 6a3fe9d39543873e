package adapter

import (
	"context"

	"github.com/gestionpro/backend/internal/domain/entity"
)

// ProjectCache is the durable local cache holding the whole serialized
// collection under one fixed key. The cache is an optimization, not a
// correctness requirement, so neither operation surfaces errors: Save is
// best-effort and logs failures, Load resolves missing or corrupt data to an
// empty collection.
type ProjectCache interface {
	// Save writes the canonical serialization of the collection.
	Save(ctx context.Context, projects []*entity.Project)

	// Load reads the cached collection. Every loaded record has passed
	// codec normalization (categories as arrays with kinds assigned, dates
	// as time values).
	Load(ctx context.Context) []*entity.Project
}
