package report

import (
	"time"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
)

// GetDate extracts the instant an item belongs to. ok must be false when
// the item carries no parseable date; such items are silently dropped.
type GetDate[T any] func(item T) (t time.Time, ok bool)

// FilterByPeriod keeps the items whose extracted instant falls inside the
// period, inclusive on both ends. The filter is stable: output order
// matches input order. Callers wanting day-inclusive semantics must pass
// an already normalized period (see model.Period.Normalize); no
// time-of-day normalization happens here.
func FilterByPeriod[T any](items []T, getDate GetDate[T], period model.Period) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		t, ok := getDate(it)
		if !ok {
			continue
		}
		if t.Before(period.Start) || t.After(period.End) {
			continue
		}
		out = append(out, it)
	}
	return out
}
