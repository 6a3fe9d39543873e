// Package cache implements the local fallback cache for the project collection.
package cache

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/gestionpro/backend/internal/application/adapter"
	"github.com/gestionpro/backend/internal/domain/entity"
	"github.com/gestionpro/backend/internal/integration/persistence/model"
)

// projectCacheKey is the single fixed key holding the whole serialized
// collection as one JSON blob.
const projectCacheKey = "gestionpro:projects"

// projectCache implements adapter.ProjectCache over redis. The cache is an
// optimization: writes are best-effort and reads degrade to an empty
// collection, so callers never see an error from it.
type projectCache struct {
	client *redis.Client
}

// NewProjectCache creates a new project cache instance.
func NewProjectCache(client *redis.Client) adapter.ProjectCache {
	return &projectCache{
		client: client,
	}
}

// Save writes the canonical serialization of the collection. Failures are
// logged and swallowed.
func (c *projectCache) Save(ctx context.Context, projects []*entity.Project) {
	payload := model.StringifyProjects(projects)
	if err := c.client.Set(ctx, projectCacheKey, payload, 0).Err(); err != nil {
		slog.Warn("Project cache write failed", "error", err)
	}
}

// Load reads the cached collection. Missing or corrupt data resolves to an
// empty collection; loaded records are already normalized by the codec.
func (c *projectCache) Load(ctx context.Context) []*entity.Project {
	payload, err := c.client.Get(ctx, projectCacheKey).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("Project cache read failed", "error", err)
		}
		return []*entity.Project{}
	}

	projects, err := model.ParseProjects(payload)
	if err != nil {
		slog.Warn("Corrupt project cache payload, defaulting to empty", "error", err)
		return []*entity.Project{}
	}
	return projects
}
