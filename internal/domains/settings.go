package domains

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
	"github.com/tidwall/gjson"
)

// settingsDomain composes several independent local keys into one payload.
type settingsDomain struct {
	base
}

func newSettingsDomain(store LocalStore, log *logger.Logger) *settingsDomain {
	return &settingsDomain{base: base{id: DomainSettings, store: store, logger: log}}
}

func (d *settingsDomain) Encode(ctx context.Context) models.Payload {
	var settings models.Settings

	if v, ok := d.readScalar(ctx, KeySettingsSound); ok && v.IsBool() {
		b := v.Bool()
		settings.Sound = &b
	}
	if v, ok := d.readScalar(ctx, KeySettingsHaptics); ok && v.IsBool() {
		b := v.Bool()
		settings.Haptics = &b
	}
	if v, ok := d.readScalar(ctx, KeySettingsDailyGoal); ok && v.Type == gjson.Number {
		n := int(v.Int())
		settings.DailyGoal = &n
	}

	if settings.Sound == nil && settings.Haptics == nil && settings.DailyGoal == nil {
		return nil
	}

	payload, err := models.NewPayload(settings)
	if err != nil {
		return nil
	}
	return payload
}

func (d *settingsDomain) Apply(ctx context.Context, payload models.Payload) error {
	if !gjson.ValidBytes(payload) || !gjson.ParseBytes(payload).IsObject() {
		return shapeMismatch(d.id, errors.New("expected a json object"))
	}

	var settings models.Settings
	if err := payload.Decode(&settings); err != nil {
		return shapeMismatch(d.id, err)
	}

	// keys missing from the payload keep their local value
	writes := make(map[string]string, 3)
	if settings.Sound != nil {
		writes[KeySettingsSound] = strconv.FormatBool(*settings.Sound)
	}
	if settings.Haptics != nil {
		writes[KeySettingsHaptics] = strconv.FormatBool(*settings.Haptics)
	}
	if settings.DailyGoal != nil {
		writes[KeySettingsDailyGoal] = strconv.Itoa(*settings.DailyGoal)
	}

	for _, key := range []string{KeySettingsSound, KeySettingsHaptics, KeySettingsDailyGoal} {
		value, ok := writes[key]
		if !ok {
			continue
		}
		if err := d.store.WriteBlob(ctx, key, []byte(value)); err != nil {
			return fmt.Errorf("write %s: %w", key, err)
		}
	}

	return nil
}

func (d *settingsDomain) readScalar(ctx context.Context, key string) (gjson.Result, bool) {
	data, ok := d.read(ctx, key)
	if !ok || !gjson.ValidBytes(data) {
		return gjson.Result{}, false
	}
	return gjson.ParseBytes(data), true
}
