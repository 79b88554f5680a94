package model

import (
	"time"

	"github.com/google/uuid"
)

// Period is an inclusive date range used to scope report generation.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Normalize floors Start to the beginning of its calendar day and ceils
// End to the last representable instant of its calendar day, so that
// filtering by calendar date is inclusive regardless of the time-of-day
// values the caller passed in.
func (p Period) Normalize() Period {
	start := time.Date(p.Start.Year(), p.Start.Month(), p.Start.Day(), 0, 0, 0, 0, p.Start.Location())
	end := time.Date(p.End.Year(), p.End.Month(), p.End.Day(), 23, 59, 59, int(999*time.Millisecond), p.End.Location())
	return Period{Start: start, End: end}
}

// BasicKPIs are the period totals: session and cancellation counts,
// revenue and average ticket.
type BasicKPIs struct {
	SessionCount  int     `json:"session_count"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgTicket     float64 `json:"avg_ticket"`
	CanceledCount int     `json:"canceled_count"`
}

// RevenueByPriceType breaks revenue down into the social (subsidized)
// and full-price tiers. TotalPatients counts matching appointments, not
// unique patients; the name is kept for output compatibility.
type RevenueByPriceType struct {
	TotalPatients int     `json:"total_patients"`
	TotalRevenue  float64 `json:"total_revenue"`

	SocialCount     int     `json:"social_count"`
	SocialRevenue   float64 `json:"social_revenue"`
	SocialAvgTicket float64 `json:"social_avg_ticket"`

	FullCount     int     `json:"full_count"`
	FullRevenue   float64 `json:"full_revenue"`
	FullAvgTicket float64 `json:"full_avg_ticket"`
}

// PatientAggregate is one row of the per-patient breakdown, priced at
// the patient's current session value.
type PatientAggregate struct {
	PatientID     uuid.UUID `json:"patient_id"`
	Name          string    `json:"name"`
	IsSocial      bool      `json:"is_social"`
	TotalSessions int       `json:"total_sessions"`
	TotalAmount   float64   `json:"total_amount"`
}

// ReportOptions mirror the toggles on the report screen.
type ReportOptions struct {
	IncludeTotals       bool `json:"include_totals"`
	IncludeSocialVsFull bool `json:"include_social_vs_full"`
}

// Report is the ephemeral result of one generation request; it is never
// persisted or cached.
type Report struct {
	Period   Period              `json:"period"`
	Totals   *BasicKPIs          `json:"totals,omitempty"`
	Social   *RevenueByPriceType `json:"social,omitempty"`
	Patients []PatientAggregate  `json:"patients"`
	Text     string              `json:"text"`
}
