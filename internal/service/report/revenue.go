package report

import (
	"math"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
)

// RevenueOptions parameterize ComputeRevenueByPriceType. IsSocial is the
// category predicate, typically a join against the patient directory; a
// missing join target must resolve to false (full price).
type RevenueOptions[T any] struct {
	Price    func(item T) float64
	Status   func(item T) string
	IsSocial func(item T) bool

	CountStatuses   []string
	RevenueStatuses []string
}

// ComputeRevenueByPriceType splits revenue between the social and
// full-price tiers in a single pass. TotalPatients counts appointments
// matching the counted set, not unique patients. SocialRevenue and
// FullRevenue always sum to TotalRevenue.
func ComputeRevenueByPriceType[T any](items []T, opts RevenueOptions[T]) model.RevenueByPriceType {
	countStatuses := opts.CountStatuses
	if countStatuses == nil {
		countStatuses = []string{"completed"}
	}
	revenueStatuses := opts.RevenueStatuses
	if revenueStatuses == nil {
		revenueStatuses = []string{"completed"}
	}

	setCount := newStatusSet(countStatuses)
	setRevenue := newStatusSet(revenueStatuses)

	var result model.RevenueByPriceType

	for _, it := range items {
		status := opts.Status(it)

		if setCount.contains(status) {
			result.TotalPatients++
		}

		if setRevenue.contains(status) {
			price := opts.Price(it)
			if math.IsNaN(price) {
				continue
			}
			result.TotalRevenue += price
			if opts.IsSocial(it) {
				result.SocialCount++
				result.SocialRevenue += price
			} else {
				result.FullCount++
				result.FullRevenue += price
			}
		}
	}

	if result.SocialCount > 0 {
		result.SocialAvgTicket = result.SocialRevenue / float64(result.SocialCount)
	}
	if result.FullCount > 0 {
		result.FullAvgTicket = result.FullRevenue / float64(result.FullCount)
	}
	return result
}
