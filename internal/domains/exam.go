package domains

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-study-sync/internal/logger"
	"github.com/MKhiriev/go-study-sync/models"
	"k8s.io/utils/clock"
)

// examDomain syncs the exam countdown. Older clients stored and sent the
// countdown as "days remaining"; this client stores an absolute target date
// and converts the relative form the first time it sees it, locally or
// remotely.
type examDomain struct {
	base
	clock clock.PassiveClock
}

func newExamDomain(store LocalStore, clk clock.PassiveClock, log *logger.Logger) *examDomain {
	return &examDomain{
		base:  base{id: DomainExam, store: store, logger: log},
		clock: clk,
	}
}

func (d *examDomain) Encode(ctx context.Context) models.Payload {
	target, ok := d.localTargetDate(ctx)
	if !ok {
		return nil
	}

	countdown := models.ExamCountdown{TargetDate: &target}
	if data, ok := d.read(ctx, KeyExamTitle); ok {
		_ = json.Unmarshal(data, &countdown.Title)
	}

	payload, err := models.NewPayload(countdown)
	if err != nil {
		return nil
	}
	return payload
}

func (d *examDomain) Apply(ctx context.Context, payload models.Payload) error {
	var countdown models.ExamCountdown
	if err := payload.Decode(&countdown); err != nil {
		return shapeMismatch(d.id, err)
	}

	var target time.Time
	switch {
	case countdown.TargetDate != nil:
		target = countdown.TargetDate.UTC()
	case countdown.TargetDays != nil:
		target = d.fromDays(*countdown.TargetDays)
	default:
		return shapeMismatch(d.id, errors.New("neither target_date nor target_days present"))
	}

	if err := d.storeTargetDate(ctx, target); err != nil {
		return err
	}

	if countdown.Title != "" {
		title, _ := json.Marshal(countdown.Title)
		if err := d.store.WriteBlob(ctx, KeyExamTitle, title); err != nil {
			return fmt.Errorf("write %s: %w", KeyExamTitle, err)
		}
	}

	return nil
}

// localTargetDate prefers the stored target date. When only the legacy
// day count is stored, the date is derived from it and persisted so the
// legacy key is gone for good.
func (d *examDomain) localTargetDate(ctx context.Context) (time.Time, bool) {
	if data, ok := d.read(ctx, KeyExamTargetDate); ok {
		var target time.Time
		if err := json.Unmarshal(data, &target); err == nil {
			return target, true
		}
		d.logger.Warn().Str("func", "examDomain.localTargetDate").Msg("unreadable local target date")
	}

	data, ok := d.read(ctx, KeyExamTargetDays)
	if !ok {
		return time.Time{}, false
	}

	var days int
	if err := json.Unmarshal(data, &days); err != nil {
		d.logger.Warn().Str("func", "examDomain.localTargetDate").Msg("unreadable local target days")
		return time.Time{}, false
	}

	target := d.fromDays(days)
	if err := d.storeTargetDate(ctx, target); err != nil {
		d.logger.Err(err).Str("func", "examDomain.localTargetDate").Msg("error migrating target days")
	}

	return target, true
}

func (d *examDomain) storeTargetDate(ctx context.Context, target time.Time) error {
	data, err := json.Marshal(target.UTC())
	if err != nil {
		return fmt.Errorf("encode target date: %w", err)
	}

	if err = d.store.WriteBlob(ctx, KeyExamTargetDate, data); err != nil {
		return fmt.Errorf("write %s: %w", KeyExamTargetDate, err)
	}

	if err = d.store.DeleteBlob(ctx, KeyExamTargetDays); err != nil {
		return fmt.Errorf("delete %s: %w", KeyExamTargetDays, err)
	}

	return nil
}

func (d *examDomain) fromDays(days int) time.Time {
	return d.clock.Now().UTC().Add(time.Duration(days) * 24 * time.Hour)
}
