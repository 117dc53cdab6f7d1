package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Valores monetários usam decimal de ponto fixo com duas casas — nunca
// float64. Arredondamento: metade para longe de zero, em cada ponto de
// quantização, nunca arredondamento bancário.

// Quantize arredonda um valor monetário para duas casas decimais
func Quantize(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ParseAmount converte a representação textual de um valor monetário,
// quantizada para duas casas. String vazia conta como ausência (zero).
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = "0"
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrMalformedAmount, raw)
	}

	return Quantize(d), nil
}
