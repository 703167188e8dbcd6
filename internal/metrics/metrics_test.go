package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSyncPass(t *testing.T) {
	before := testutil.ToFloat64(SyncPassesTotal.WithLabelValues(DirectionPush, ResultSuccess))

	ObserveSyncPass(DirectionPush, ResultSuccess, 150*time.Millisecond)

	after := testutil.ToFloat64(SyncPassesTotal.WithLabelValues(DirectionPush, ResultSuccess))
	assert.Equal(t, before+1, after)
}

func TestIncDomainSkipped(t *testing.T) {
	before := testutil.ToFloat64(DomainSkippedTotal.WithLabelValues(DirectionPull, "exam"))

	IncDomainSkipped(DirectionPull, "exam")
	IncDomainSkipped(DirectionPull, "exam")

	after := testutil.ToFloat64(DomainSkippedTotal.WithLabelValues(DirectionPull, "exam"))
	assert.Equal(t, before+2, after)
}

func TestHandler_ExposesCollectors(t *testing.T) {
	ObserveHTTPRequest(http.MethodGet, "/api/version/", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "studysync_http_requests_total")
}
