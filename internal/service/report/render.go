package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
)

// RenderText assembles the shareable plain-text report. All monetary
// values are rendered with two decimals in pt-BR convention (comma
// decimal separator, dot grouping) and an "R$" prefix.
func RenderText(totals *model.BasicKPIs, social *model.RevenueByPriceType, patients []model.PatientAggregate, period model.Period) string {
	p := message.NewPrinter(language.BrazilianPortuguese)
	money := func(v float64) string {
		return p.Sprintf("R$ %.2f", v)
	}

	var b strings.Builder
	b.WriteString("RELATÓRIO DE AGENDAMENTOS\n\n")
	fmt.Fprintf(&b, "Período: %s a %s\n\n",
		period.Start.Format("02/01/2006"),
		period.End.Format("02/01/2006"),
	)

	if totals != nil {
		b.WriteString("=== TOTAIS ===\n")
		fmt.Fprintf(&b, "Consultas: %d\n", totals.SessionCount)
		fmt.Fprintf(&b, "Consultas canceladas: %d\n", totals.CanceledCount)
		fmt.Fprintf(&b, "Faturamento total: %s\n\n", money(totals.TotalRevenue))
	}

	if social != nil {
		b.WriteString("=== SOCIAL vs INTEGRAL ===\n")
		fmt.Fprintf(&b, "Valor social - Pacientes: %d | Valor %s\n", social.SocialCount, money(social.SocialRevenue))
		fmt.Fprintf(&b, "Valor Integral - Pacientes: %d | Valor %s\n\n", social.FullCount, money(social.FullRevenue))
	}

	if len(patients) > 0 {
		b.WriteString("=== AGENDAMENTOS DETALHADOS ===\n")
		for i, agg := range patients {
			tier := "Integral"
			if agg.IsSocial {
				tier = "Social"
			}
			fmt.Fprintf(&b, "%d. Paciente: %s\n", i+1, agg.Name)
			fmt.Fprintf(&b, "   Tipo: %s\n", tier)
			fmt.Fprintf(&b, "   Sessões: %d\n", agg.TotalSessions)
			fmt.Fprintf(&b, "   Total: %s\n\n", money(agg.TotalAmount))
		}
	} else {
		b.WriteString("Nenhum agendamento encontrado neste período.\n")
	}

	b.WriteString("\n---\nRelatório gerado pelo PsicoApp 𝚿")
	return b.String()
}
