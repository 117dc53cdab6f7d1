package domain

import (
	"fmt"
	"time"
)

// Layouts ISO-8601 esperados pelas APIs upstream. A Trading API espera
// milissegundos literais zerados; a Finance API usa microssegundos reais.
const (
	TradingTimeLayout = "2006-01-02T15:04:05.000Z"
	FinanceTimeLayout = "2006-01-02T15:04:05.000000Z"
)

// ReportingPeriod representa o mês de apuração escolhido pelo operador.
// Imutável: construído uma única vez por execução.
type ReportingPeriod struct {
	Year  int
	Month int
}

// NewReportingPeriod valida o mês informado. A validação de ano (janela
// permitida) fica na superfície de entrada, que conhece o ano corrente.
func NewReportingPeriod(year, month int) (ReportingPeriod, error) {
	if month < 1 || month > 12 {
		return ReportingPeriod{}, fmt.Errorf("mês inválido: %d", month)
	}
	return ReportingPeriod{Year: year, Month: month}, nil
}

func (p ReportingPeriod) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}

// Interval é o intervalo absoluto em UTC coberto pelo período de apuração.
// End é inclusivo: último segundo do mês no fuso do vendedor.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Resolve converte o período em um intervalo UTC ancorado no fuso civil do
// vendedor. O início é o primeiro instante do mês; o fim é o primeiro
// instante do mês seguinte menos um segundo. time.Date normaliza mês 13,
// então dezembro rola para janeiro do ano seguinte.
func (p ReportingPeriod) Resolve(loc *time.Location) Interval {
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, loc)
	end := time.Date(p.Year, time.Month(p.Month)+1, 1, 0, 0, 0, 0, loc).Add(-time.Second)

	return Interval{
		Start: start.UTC(),
		End:   end.UTC(),
	}
}

// TradingRange formata o intervalo para a Trading API (milissegundos zerados)
func (i Interval) TradingRange() (string, string) {
	return i.Start.UTC().Format(TradingTimeLayout), i.End.UTC().Format(TradingTimeLayout)
}

// FinanceRange formata o intervalo para a Finance API (microssegundos reais)
func (i Interval) FinanceRange() (string, string) {
	return i.Start.UTC().Format(FinanceTimeLayout), i.End.UTC().Format(FinanceTimeLayout)
}
