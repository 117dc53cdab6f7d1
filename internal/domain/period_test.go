package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewReportingPeriod(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    int
		hasError bool
	}{
		{
			name:  "Mês válido deve criar o período",
			year:  2024,
			month: 1,
		},
		{
			name:  "Dezembro é válido",
			year:  2023,
			month: 12,
		},
		{
			name:     "Mês zero deve retornar erro",
			year:     2024,
			month:    0,
			hasError: true,
		},
		{
			name:     "Mês treze deve retornar erro",
			year:     2024,
			month:    13,
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := NewReportingPeriod(tt.year, tt.month)

			if tt.hasError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.year, period.Year)
			assert.Equal(t, tt.month, period.Month)
		})
	}
}

func TestReportingPeriod_String(t *testing.T) {
	period := ReportingPeriod{Year: 2024, Month: 3}
	assert.Equal(t, "2024-03", period.String())
}

func TestReportingPeriod_Resolve(t *testing.T) {
	pacific, err := time.LoadLocation("America/Los_Angeles")
	assert.NoError(t, err)

	tests := []struct {
		name          string
		period        ReportingPeriod
		location      *time.Location
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:     "Janeiro no fuso do Pacífico (PST, UTC-8)",
			period:   ReportingPeriod{Year: 2024, Month: 1},
			location: pacific,
			// Meia-noite civil de 1º de janeiro em PST cai às 08:00 UTC
			expectedStart: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 2, 1, 7, 59, 59, 0, time.UTC),
		},
		{
			name:          "Dezembro rola para janeiro do ano seguinte",
			period:        ReportingPeriod{Year: 2023, Month: 12},
			location:      pacific,
			expectedStart: time.Date(2023, 12, 1, 8, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 1, 1, 7, 59, 59, 0, time.UTC),
		},
		{
			name:          "Julho no fuso do Pacífico (PDT, UTC-7)",
			period:        ReportingPeriod{Year: 2024, Month: 7},
			location:      pacific,
			expectedStart: time.Date(2024, 7, 1, 7, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 8, 1, 6, 59, 59, 0, time.UTC),
		},
		{
			name:          "UTC puro não desloca o intervalo",
			period:        ReportingPeriod{Year: 2024, Month: 2},
			location:      time.UTC,
			expectedStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval := tt.period.Resolve(tt.location)

			assert.True(t, interval.Start.Equal(tt.expectedStart),
				"início esperado %s, obtido %s", tt.expectedStart, interval.Start)
			assert.True(t, interval.End.Equal(tt.expectedEnd),
				"fim esperado %s, obtido %s", tt.expectedEnd, interval.End)
			assert.True(t, interval.Start.Before(interval.End))
		})
	}
}

func TestInterval_Formats(t *testing.T) {
	interval := Interval{
		Start: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 1, 7, 59, 59, 0, time.UTC),
	}

	from, to := interval.TradingRange()
	assert.Equal(t, "2024-01-01T08:00:00.000Z", from)
	assert.Equal(t, "2024-02-01T07:59:59.000Z", to)

	from, to = interval.FinanceRange()
	assert.Equal(t, "2024-01-01T08:00:00.000000Z", from)
	assert.Equal(t, "2024-02-01T07:59:59.000000Z", to)
}
