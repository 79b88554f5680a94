package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Valeria-CPaz/app-agendamento/internal/model"
)

func testPeriod() model.Period {
	return model.Period{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local),
		End:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.Local),
	}.Normalize()
}

func TestRenderTextFullReport(t *testing.T) {
	totals := &model.BasicKPIs{
		SessionCount:  10,
		CanceledCount: 2,
		TotalRevenue:  1234.5,
		AvgTicket:     123.45,
	}
	social := &model.RevenueByPriceType{
		SocialCount:   3,
		SocialRevenue: 150,
		FullCount:     7,
		FullRevenue:   1084.5,
	}
	patients := []model.PatientAggregate{
		{Name: "Ana Silva", IsSocial: true, TotalSessions: 3, TotalAmount: 150},
		{Name: "Bruno Costa", IsSocial: false, TotalSessions: 7, TotalAmount: 1084.5},
	}

	text := RenderText(totals, social, patients, testPeriod())

	assert.True(t, strings.HasPrefix(text, "RELATÓRIO DE AGENDAMENTOS\n"))
	assert.Contains(t, text, "Período: 01/06/2024 a 30/06/2024")
	assert.Contains(t, text, "=== TOTAIS ===")
	assert.Contains(t, text, "Consultas: 10")
	assert.Contains(t, text, "Consultas canceladas: 2")
	assert.Contains(t, text, "Faturamento total: R$ 1.234,50")
	assert.Contains(t, text, "=== SOCIAL vs INTEGRAL ===")
	assert.Contains(t, text, "Valor social - Pacientes: 3 | Valor R$ 150,00")
	assert.Contains(t, text, "Valor Integral - Pacientes: 7 | Valor R$ 1.084,50")
	assert.Contains(t, text, "=== AGENDAMENTOS DETALHADOS ===")
	assert.Contains(t, text, "1. Paciente: Ana Silva")
	assert.Contains(t, text, "   Tipo: Social")
	assert.Contains(t, text, "2. Paciente: Bruno Costa")
	assert.Contains(t, text, "   Tipo: Integral")
	assert.Contains(t, text, "   Sessões: 7")
	assert.True(t, strings.HasSuffix(text, "---\nRelatório gerado pelo PsicoApp 𝚿"))
}

func TestRenderTextOmitsDisabledSections(t *testing.T) {
	patients := []model.PatientAggregate{
		{Name: "Ana Silva", TotalSessions: 1, TotalAmount: 100},
	}

	text := RenderText(nil, nil, patients, testPeriod())

	assert.NotContains(t, text, "=== TOTAIS ===")
	assert.NotContains(t, text, "=== SOCIAL vs INTEGRAL ===")
	assert.Contains(t, text, "=== AGENDAMENTOS DETALHADOS ===")
}

func TestRenderTextEmptyPeriod(t *testing.T) {
	text := RenderText(nil, nil, nil, testPeriod())

	assert.Contains(t, text, "Nenhum agendamento encontrado neste período.")
	assert.NotContains(t, text, "=== AGENDAMENTOS DETALHADOS ===")
}

func TestRenderTextBrazilianMoneyFormat(t *testing.T) {
	totals := &model.BasicKPIs{TotalRevenue: 1000000.99}

	text := RenderText(totals, nil, nil, testPeriod())

	assert.Contains(t, text, "R$ 1.000.000,99")
}
