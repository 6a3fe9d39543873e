package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/gestionpro/backend/internal/application/sync"
	"github.com/gestionpro/backend/internal/application/usecase/analytics"
	"github.com/gestionpro/backend/internal/application/usecase/project"
	"github.com/gestionpro/backend/internal/domain/entity"
	"github.com/gestionpro/backend/internal/integration/entrypoint/controller"
	"github.com/gestionpro/backend/internal/integration/entrypoint/middleware"
	"github.com/gestionpro/backend/internal/integration/notification"
	"github.com/gestionpro/backend/internal/integration/persistence/model"
	"github.com/gestionpro/backend/internal/integration/session"
	"github.com/gestionpro/backend/internal/integration/storage"
)

const routerTestSecret = "router-test-secret"

// newServerForTest wires the degraded no-database boot path end to end:
// local-only engine, no blob store, health and project routes live.
func newServerForTest(t *testing.T) *httptest.Server {
	t.Helper()

	engine := sync.NewEngine(nil, noopCache{}, nil, sync.Config{
		Snapshot: model.StringifyProjects,
	})
	t.Cleanup(engine.Close)
	engine.Start(context.Background(), nil)

	notifier := notification.NewService(nil, "")

	projectController := controller.NewProjectController(
		project.NewListProjectsUseCase(engine),
		project.NewGetProjectUseCase(engine),
		project.NewCreateProjectUseCase(engine),
		project.NewUpdateProjectUseCase(engine),
		project.NewDeleteProjectUseCase(engine, nil),
		project.NewAttachQuoteUseCase(engine, nil, storage.ObjectPath),
		project.NewSignQuoteURLUseCase(engine, nil),
		project.NewRemoveQuoteUseCase(engine, nil),
	)

	r := NewRouter(
		controller.NewHealthController(func() bool { return true }, func() bool { return true }),
		projectController,
		nil,
		nil,
		nil,
		controller.NewAnalyticsController(analytics.NewProfitabilitySummaryUseCase(engine)),
		controller.NewNotificationController(notifier),
		middleware.NewRateLimiter(),
		middleware.NewAuthMiddleware(session.NewJWTSessionService(routerTestSecret)),
	)

	server := httptest.NewServer(r.Setup("test"))
	t.Cleanup(server.Close)
	return server
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, session.CustomClaims{
		UserID: uuid.NewString(),
		Role:   "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(routerTestSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

type noopCache struct{}

func (noopCache) Save(ctx context.Context, projects []*entity.Project) {}

func (noopCache) Load(ctx context.Context) []*entity.Project {
	return []*entity.Project{}
}

func TestRouter_Setup(t *testing.T) {
	server := newServerForTest(t)
	client := server.Client()

	t.Run("health is open", func(t *testing.T) {
		resp, err := client.Get(server.URL + "/health")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
	})

	t.Run("api routes require a token", func(t *testing.T) {
		resp, err := client.Get(server.URL + "/api/v1/projects")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})

	t.Run("authenticated request reaches the handlers", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/projects", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+bearerToken(t))

		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("expected 200, got %d", resp.StatusCode)
		}
	})

	t.Run("unwired feature groups are absent", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/employees", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+bearerToken(t))

		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got %d", resp.StatusCode)
		}
	})
}
