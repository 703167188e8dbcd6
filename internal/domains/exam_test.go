package domains

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	clocktesting "k8s.io/utils/clock/testing"
)

var examNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestExam(s *memStore) *examDomain {
	return newExamDomain(s, clocktesting.NewFakePassiveClock(examNow), logger.Nop())
}

func decodeCountdown(t *testing.T, p models.Payload) map[string]any {
	t.Helper()
	require.NotNil(t, p)
	var m map[string]any
	require.NoError(t, json.Unmarshal(p, &m))
	return m
}

// ── legacy field derivation ───────────────────────────────────────────────────

// Legacy payload with only "target_days" must end up as an absolute date
// locally and be re-emitted in the new shape.
func TestExamDomain_ApplyLegacyDays(t *testing.T) {
	s := newMemStore()
	s.set(KeyExamTargetDays, `3`)
	d := newTestExam(s)

	require.NoError(t, d.Apply(context.Background(), models.Payload(`{"target_days":7}`)))

	raw, ok := s.get(KeyExamTargetDate)
	require.True(t, ok)
	var stored time.Time
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.WithinDuration(t, examNow.Add(7*24*time.Hour), stored, time.Second)

	_, ok = s.get(KeyExamTargetDays)
	assert.False(t, ok, "legacy key must be removed")

	m := decodeCountdown(t, d.Encode(context.Background()))
	assert.NotContains(t, m, "target_days")
	require.Contains(t, m, "target_date")
	encoded, err := time.Parse(time.RFC3339Nano, m["target_date"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, examNow.Add(7*24*time.Hour), encoded, time.Second)
}

func TestExamDomain_ApplyPrefersTargetDate(t *testing.T) {
	s := newMemStore()
	d := newTestExam(s)

	require.NoError(t, d.Apply(context.Background(), models.Payload(`{"target_date":"2026-06-01T09:00:00Z","target_days":2,"title":"IELTS"}`)))

	m := decodeCountdown(t, d.Encode(context.Background()))
	assert.Equal(t, "2026-06-01T09:00:00Z", m["target_date"])
	assert.Equal(t, "IELTS", m["title"])
	assert.NotContains(t, m, "target_days")
}

func TestExamDomain_ApplyShapeMismatch(t *testing.T) {
	s := newMemStore()
	s.set(KeyExamTargetDate, `"2026-05-05T00:00:00Z"`)
	d := newTestExam(s)

	for _, bad := range []string{`{}`, `{"target_date":"soon"}`, `{"target_days":"seven"}`, `[7]`} {
		assert.ErrorIs(t, d.Apply(context.Background(), models.Payload(bad)), ErrShapeMismatch, bad)
	}

	got, _ := s.get(KeyExamTargetDate)
	assert.Equal(t, `"2026-05-05T00:00:00Z"`, got)
}

// ── local migration ───────────────────────────────────────────────────────────

func TestExamDomain_EncodeMigratesLocalDays(t *testing.T) {
	s := newMemStore()
	s.set(KeyExamTargetDays, `10`)
	s.set(KeyExamTitle, `"TOEFL"`)
	d := newTestExam(s)

	m := decodeCountdown(t, d.Encode(context.Background()))

	encoded, err := time.Parse(time.RFC3339Nano, m["target_date"].(string))
	require.NoError(t, err)
	assert.True(t, encoded.Equal(examNow.Add(10*24*time.Hour)))
	assert.Equal(t, "TOEFL", m["title"])

	_, ok := s.get(KeyExamTargetDays)
	assert.False(t, ok)
	_, ok = s.get(KeyExamTargetDate)
	assert.True(t, ok)
}

func TestExamDomain_EncodeNothingStored(t *testing.T) {
	assert.Nil(t, newTestExam(newMemStore()).Encode(context.Background()))
}

func TestExamDomain_EncodeUnreadableDays(t *testing.T) {
	s := newMemStore()
	s.set(KeyExamTargetDays, `"lots"`)

	assert.Nil(t, newTestExam(s).Encode(context.Background()))
}
