package report

import (
	"math"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
)

// KPIOptions parameterize ComputeBasicKPIs over the item shape. Price
// resolves the monetary value of an item (typically via a join against
// the patient directory, defaulting to 0 on a missing match); Status
// yields the raw lifecycle status, classified case-insensitively.
type KPIOptions[T any] struct {
	Price  func(item T) float64
	Status func(item T) string

	// Statuses included in the session tally, the revenue total and the
	// cancellation tally, respectively. Counted and revenue default to
	// confirmed-only; canceled defaults to empty.
	CountStatuses    []string
	RevenueStatuses  []string
	CanceledStatuses []string
}

// ComputeBasicKPIs tallies session counts, cancellations, revenue and
// the average ticket over items in a single pass. It never fails: items
// with unrecognized statuses contribute nothing, and a price resolving
// to NaN skips only the monetary increment while the status tallies for
// that item still apply.
func ComputeBasicKPIs[T any](items []T, opts KPIOptions[T]) model.BasicKPIs {
	countStatuses := opts.CountStatuses
	if countStatuses == nil {
		countStatuses = []string{string(model.AppointmentStatusConfirmed)}
	}
	revenueStatuses := opts.RevenueStatuses
	if revenueStatuses == nil {
		revenueStatuses = []string{string(model.AppointmentStatusConfirmed)}
	}

	setCount := newStatusSet(countStatuses)
	setRevenue := newStatusSet(revenueStatuses)
	setCanceled := newStatusSet(opts.CanceledStatuses)

	var kpis model.BasicKPIs
	revenueSamples := 0

	for _, it := range items {
		status := opts.Status(it)

		if setCanceled.contains(status) {
			kpis.CanceledCount++
		}
		if setCount.contains(status) {
			kpis.SessionCount++
		}
		if setRevenue.contains(status) {
			price := opts.Price(it)
			if !math.IsNaN(price) {
				kpis.TotalRevenue += price
				revenueSamples++
			}
		}
	}

	if revenueSamples > 0 {
		kpis.AvgTicket = kpis.TotalRevenue / float64(revenueSamples)
	}
	return kpis
}
