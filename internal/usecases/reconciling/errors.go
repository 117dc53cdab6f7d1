package reconciling

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de reconciliação
var (
	// Erros de validação
	ErrInvalidAllocationMode = errors.New("unknown allocation mode")
	ErrInvalidFeeMode        = errors.New("unknown fee mode")
	ErrInvalidTimezone       = errors.New("invalid seller timezone")
)

// ReconcileError é um erro com contexto adicional para a reconciliação
type ReconcileError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ReconcileError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ReconcileError) Unwrap() error {
	return e.Err
}

// NewReconcileError cria um novo ReconcileError
func NewReconcileError(err error, code string, details string) *ReconcileError {
	return &ReconcileError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
