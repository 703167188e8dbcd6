package domains

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
)

type themeDomain struct {
	base
}

func newThemeDomain(store LocalStore, log *logger.Logger) *themeDomain {
	return &themeDomain{base: base{id: DomainTheme, store: store, logger: log}}
}

func (d *themeDomain) Encode(ctx context.Context) models.Payload {
	data, ok := d.read(ctx, KeyTheme)
	if !ok {
		return nil
	}

	theme, err := decodeTheme(data)
	if err != nil {
		d.logger.Warn().Str("func", "themeDomain.Encode").Err(err).Msg("local theme skipped")
		return nil
	}

	payload, err := models.NewPayload(theme)
	if err != nil {
		return nil
	}
	return payload
}

func (d *themeDomain) Apply(ctx context.Context, payload models.Payload) error {
	theme, err := decodeTheme(payload)
	if err != nil {
		return shapeMismatch(d.id, err)
	}

	data, err := models.NewPayload(theme)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}

	return d.store.WriteBlob(ctx, KeyTheme, data)
}

func decodeTheme(data []byte) (models.Theme, error) {
	var theme models.Theme
	if err := models.Payload(data).Decode(&theme); err != nil {
		return models.Theme{}, err
	}
	if theme.Name == "" {
		return models.Theme{}, errors.New("theme name is empty")
	}
	return theme, nil
}
