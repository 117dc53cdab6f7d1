package domain

import "errors"

// Taxonomia de erros da reconciliação. As falhas de ingestão abortam a
// execução por completo: não existe caminho de exportação parcial.
var (
	// ErrUpstreamUnavailable indica falha de transporte/conexão com a API upstream
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUpstreamError indica resposta não-2xx ou payload inesperado da API upstream
	ErrUpstreamError = errors.New("unexpected upstream error")

	// ErrMalformedAmount indica um valor monetário presente porém não parseável
	ErrMalformedAmount = errors.New("malformed monetary amount")
)
