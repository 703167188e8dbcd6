package domains

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDomain_EncodeAggregatesKeys(t *testing.T) {
	s := newMemStore()
	s.set(KeySettingsSound, `true`)
	s.set(KeySettingsHaptics, `false`)
	s.set(KeySettingsDailyGoal, `25`)

	payload := newSettingsDomain(s, logger.Nop()).Encode(context.Background())

	require.NotNil(t, payload)
	assert.JSONEq(t, `{"sound":true,"haptics":false,"daily_goal":25}`, payload.String())
}

func TestSettingsDomain_EncodePartial(t *testing.T) {
	s := newMemStore()
	s.set(KeySettingsDailyGoal, `10`)
	s.set(KeySettingsSound, `"loud"`) // wrong type, ignored

	payload := newSettingsDomain(s, logger.Nop()).Encode(context.Background())

	require.NotNil(t, payload)
	assert.JSONEq(t, `{"daily_goal":10}`, payload.String())
}

func TestSettingsDomain_EncodeNothingStored(t *testing.T) {
	assert.Nil(t, newSettingsDomain(newMemStore(), logger.Nop()).Encode(context.Background()))
}

func TestSettingsDomain_ApplySplitsKeys(t *testing.T) {
	s := newMemStore()
	s.set(KeySettingsHaptics, `true`)
	d := newSettingsDomain(s, logger.Nop())

	require.NoError(t, d.Apply(context.Background(), models.Payload(`{"sound":false,"daily_goal":40}`)))

	sound, _ := s.get(KeySettingsSound)
	goal, _ := s.get(KeySettingsDailyGoal)
	haptics, _ := s.get(KeySettingsHaptics)
	assert.Equal(t, "false", sound)
	assert.Equal(t, "40", goal)
	// not in payload, kept
	assert.Equal(t, "true", haptics)
}

func TestSettingsDomain_ApplyShapeMismatch(t *testing.T) {
	d := newSettingsDomain(newMemStore(), logger.Nop())

	for _, bad := range []string{`[true]`, `{"sound":"yes"}`, `{"daily_goal":"ten"}`, `nope`} {
		assert.ErrorIs(t, d.Apply(context.Background(), models.Payload(bad)), ErrShapeMismatch, bad)
	}
}
