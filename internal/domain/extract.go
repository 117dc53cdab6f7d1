package domain

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// LookupPath percorre um registro aninhado seguindo a lista ordenada de
// chaves. Chave ausente em qualquer nível resulta em (nil, false) — nunca
// em pânico. O chamador decide o valor padrão apenas no passo final.
func LookupPath(record map[string]any, path ...string) (any, bool) {
	var node any = record

	for _, key := range path {
		m, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}

		node, ok = m[key]
		if !ok {
			return nil, false
		}
	}

	return node, true
}

// ExtractAmount lê um valor monetário de um sub-registro aninhado no caminho
// informado, esperando a chave final "value" no formato das APIs do eBay.
// Caminho ausente em qualquer profundidade cai no padrão "0"; um valor
// presente porém não parseável é o único caso que falha, com ErrMalformedAmount.
func ExtractAmount(record map[string]any, path ...string) (decimal.Decimal, error) {
	node, found := LookupPath(record, path...)
	if !found {
		return ParseAmount("0")
	}

	m, ok := node.(map[string]any)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: campo %v não é um registro", ErrMalformedAmount, path)
	}

	raw, found := m["value"]
	if !found {
		return ParseAmount("0")
	}

	switch v := raw.(type) {
	case string:
		return ParseAmount(v)
	case float64:
		return Quantize(decimal.NewFromFloat(v)), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %v", ErrMalformedAmount, raw)
	}
}

// ExtractString lê um texto do caminho informado, com padrão para ausência
func ExtractString(record map[string]any, def string, path ...string) string {
	node, found := LookupPath(record, path...)
	if !found {
		return def
	}

	if s, ok := node.(string); ok {
		return s
	}

	return def
}

// ExtractQuantity lê a quantidade comprada. Ausência ou valor não numérico
// resulta em 1, garantindo divisão segura na alocação por unidade.
func ExtractQuantity(record map[string]any, path ...string) int {
	node, found := LookupPath(record, path...)
	if !found {
		return 1
	}

	switch v := node.(type) {
	case float64:
		if int(v) >= 1 {
			return int(v)
		}
	case string:
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			return n
		}
	}

	return 1
}
