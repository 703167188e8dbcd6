package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-study-sync/internal/config"
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/internal/service"
	"github.com/MKhiriev/go-study-sync/internal/utils"
	"github.com/MKhiriev/go-study-sync/models"
)

// ── getTokenFromAuthHeader ───────────────────────────────────────────────────

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"lowercase scheme", "bearer abc", "abc", nil},
		{"extra spaces", "  Bearer   abc  ", "abc", nil},
		{"empty header", "", "", ErrEmptyAuthorizationHeader},
		{"no scheme", "abc", "", ErrInvalidAuthorizationHeader},
		{"basic scheme", "Basic dXNlcjpwYXNz", "", ErrInvalidAuthorizationHeader},
		{"no token", "Bearer    ", "", ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestAuth_InvalidToken(t *testing.T) {
	deps := newTestRouter(t, 0)
	deps.auth.EXPECT().ParseToken(gomock.Any(), "forged").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	rr := doRequest(deps.router, http.MethodGet, "/api/users/7/domains/theme", "forged", "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "token is expired or invalid", strings.TrimSpace(rr.Body.String()))
}

func TestAuth_PutsUserIDIntoContext(t *testing.T) {
	deps := newTestRouter(t, 0)
	h := NewHandler(&service.Services{AuthService: deps.auth}, config.ServerHTTP{}, logger.Nop())

	var gotUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = utils.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, testUserID, gotUserID)
}

// ── withTraceID ──────────────────────────────────────────────────────────────

func TestWithTraceID(t *testing.T) {
	h := NewHandler(&service.Services{}, config.ServerHTTP{}, logger.Nop())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// логгер запроса доступен дальше по цепочке
		assert.NotNil(t, logger.FromRequest(r))
	})

	t.Run("reuses client uuid", func(t *testing.T) {
		traceID := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, traceID)
		rr := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rr, req)

		assert.Equal(t, traceID, rr.Header().Get(traceIDHeader))
	})

	t.Run("replaces garbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "<script>")
		rr := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rr, req)

		got := rr.Header().Get(traceIDHeader)
		assert.NotEqual(t, "<script>", got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	})
}

// ── withLogging ──────────────────────────────────────────────────────────────

func TestWithLogging_RecordsRoutePattern(t *testing.T) {
	deps := newTestRouter(t, 0)
	deps.domains.EXPECT().Get(gomock.Any(), testUserID, "settings").Return(models.DomainRecord{DomainID: "settings"}, nil)

	require.Equal(t, http.StatusOK, doRequest(deps.router, http.MethodGet, "/api/users/7/domains/settings", "good", "").Code)

	scrape := doRequest(deps.router, http.MethodGet, "/metrics", "", "").Body.String()
	assert.Contains(t, scrape, `route="/api/users/{userID}/domains/{domainID}"`)
	assert.NotContains(t, scrape, `route="/api/users/7/domains/settings"`)
}

// ── withGZip ─────────────────────────────────────────────────────────────────

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestWithGZip_DecompressesRequest(t *testing.T) {
	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = string(body)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
	})

	req := httptest.NewRequest(http.MethodPut, "/", bytes.NewReader(gzipBytes(t, `{"payload":1}`)))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"payload":1}`, got)
}

func TestWithGZip_BrokenRequestBody(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next must not be called")
	})

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestWithGZip_CompressesResponse(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"domain_id":"theme"}`))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	require.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
	gz, err := gzip.NewReader(rr.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(gz)
	require.NoError(t, err)
	assert.Equal(t, `{"domain_id":"theme"}`, string(body))
}

func TestWithGZip_NoContentStaysPlain(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPut, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestWithGZip_ClientWithoutGzip(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain"))
	})

	rr := httptest.NewRecorder()
	withGZip(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", rr.Body.String())
}
