package report

import (
	"sort"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
)

// noNameFallback is the display name used when an appointment references
// a patient that no longer exists in the directory.
const noNameFallback = "(Sem nome)"

// ComputeByPatient groups appointments by patient and prices every
// session at the patient's CURRENT session value, ignoring any price
// snapshot on the appointment itself. No status filtering happens here:
// canceled and no-show sessions count too, so callers wanting a narrower
// view must pre-filter. Appointments without a patient id are skipped
// entirely. Output is sorted ascending by display name using pt-BR
// collation.
func ComputeByPatient(appointments []*model.Appointment, patients []*model.Patient) []model.PatientAggregate {
	index := make(map[uuid.UUID]*model.Patient, len(patients))
	for _, p := range patients {
		index[p.ID] = p
	}

	byPatient := make(map[uuid.UUID]*model.PatientAggregate)
	for _, a := range appointments {
		if a.PatientID == uuid.Nil {
			continue
		}
		patient := index[a.PatientID]

		agg, ok := byPatient[a.PatientID]
		if !ok {
			agg = &model.PatientAggregate{
				PatientID: a.PatientID,
				Name:      noNameFallback,
			}
			if patient != nil {
				agg.Name = patient.DisplayName()
				agg.IsSocial = patient.IsSocial
			}
			byPatient[a.PatientID] = agg
		}

		agg.TotalSessions++
		if patient != nil {
			agg.TotalAmount += patient.SessionValue
		}
	}

	out := make([]model.PatientAggregate, 0, len(byPatient))
	for _, agg := range byPatient {
		out = append(out, *agg)
	}

	collator := collate.New(language.BrazilianPortuguese)
	sort.SliceStable(out, func(i, j int) bool {
		return collator.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
