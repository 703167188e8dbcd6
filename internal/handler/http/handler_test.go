package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/mock"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUserID int64 = 7

type testDeps struct {
	router  http.Handler
	auth    *mock.MockAuthService
	domains *mock.MockDomainService
	appInfo *mock.MockAppInfoService
}

// newTestRouter собирает роутер на моках сервисов. Токен "good" принадлежит
// пользователю testUserID.
func newTestRouter(t *testing.T, maxPayloadBytes int64) testDeps {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := testDeps{
		auth:    mock.NewMockAuthService(ctrl),
		domains: mock.NewMockDomainService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}
	deps.auth.EXPECT().ParseToken(gomock.Any(), "good").Return(models.Token{UserID: testUserID}, nil).AnyTimes()

	h := NewHandler(&service.Services{
		AuthService:    deps.auth,
		DomainService:  deps.domains,
		AppInfoService: deps.appInfo,
	}, config.ServerHTTP{MaxPayloadBytes: maxPayloadBytes}, logger.Nop())
	deps.router = h.Init()

	return deps
}

func doRequest(router http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, config.ServerHTTP{MaxPayloadBytes: 512}, logger.Nop())

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Equal(t, int64(512), h.maxPayloadBytes)
}

// ── Init: route registration ─────────────────────────────────────────────────

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	deps := newTestRouter(t, 0)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/auth/refresh"},
		{http.MethodPut, "/api/users/7/domains/theme"},
		{http.MethodGet, "/api/users/7/domains/theme"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rr := doRequest(deps.router, route.method, route.path, "", "")
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestInit_UnknownRoutes(t *testing.T) {
	deps := newTestRouter(t, 0)

	assert.Equal(t, http.StatusNotFound, doRequest(deps.router, http.MethodGet, "/api/unknown", "", "").Code)
	assert.Equal(t, http.StatusNotFound, doRequest(deps.router, http.MethodGet, "/api/users/7/domains", "good", "").Code)
	assert.Equal(t, http.StatusMethodNotAllowed, doRequest(deps.router, http.MethodDelete, "/api/users/7/domains/theme", "good", "").Code)
}

func TestInit_TraceIDOnEveryResponse(t *testing.T) {
	deps := newTestRouter(t, 0)

	rr := doRequest(deps.router, http.MethodGet, "/api/unknown", "", "")
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestInit_Metrics(t *testing.T) {
	deps := newTestRouter(t, 0)

	rr := doRequest(deps.router, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "# TYPE")
}

func TestGetServerVersion(t *testing.T) {
	deps := newTestRouter(t, 0)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.4.0")

	rr := doRequest(deps.router, http.MethodGet, "/api/version/", "", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "1.4.0", rr.Body.String())
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/plain")
}
