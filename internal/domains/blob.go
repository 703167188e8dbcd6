package domains

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
	"github.com/tidwall/gjson"
)

// blobKind is the top-level JSON type a blob domain stores.
type blobKind int

const (
	kindObject blobKind = iota
	kindArray
)

func (k blobKind) String() string {
	if k == kindArray {
		return "array"
	}
	return "object"
}

func (k blobKind) matches(r gjson.Result) bool {
	switch k {
	case kindArray:
		return r.IsArray()
	default:
		return r.IsObject()
	}
}

// blobDomain keeps one local key whose JSON document is synchronized as is.
// It only checks the top-level type, the content belongs to whoever
// produces it (statistics, progress, word lists).
type blobDomain struct {
	base
	key  string
	kind blobKind
}

func newBlobDomain(id, key string, kind blobKind, legacy []string, store LocalStore, log *logger.Logger) *blobDomain {
	return &blobDomain{
		base: base{id: id, legacy: legacy, store: store, logger: log},
		key:  key,
		kind: kind,
	}
}

func (d *blobDomain) Encode(ctx context.Context) models.Payload {
	data, ok := d.read(ctx, d.key)
	if !ok {
		return nil
	}

	if err := d.check(data); err != nil {
		d.logger.Warn().
			Str("func", "blobDomain.Encode").
			Str("domain", d.id).
			Err(err).
			Msg("local value skipped")
		return nil
	}

	return models.Payload(data)
}

func (d *blobDomain) Apply(ctx context.Context, payload models.Payload) error {
	if err := d.check(payload); err != nil {
		return shapeMismatch(d.id, err)
	}

	if err := d.store.WriteBlob(ctx, d.key, payload); err != nil {
		return fmt.Errorf("write %s: %w", d.key, err)
	}

	return nil
}

func (d *blobDomain) check(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("invalid json")
	}
	if !d.kind.matches(gjson.ParseBytes(data)) {
		return fmt.Errorf("expected a json %s", d.kind)
	}
	return nil
}
