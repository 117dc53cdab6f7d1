package reconciling

import (
	"github.com/vfg2006/ebay-reconciler/internal/domain"
)

// AllocationMode define como os custos de uma transação multi-unidade são
// rateados: uma linha por pedido ou uma linha por unidade vendida.
type AllocationMode string

const (
	AllocationPerOrder AllocationMode = "order"
	AllocationPerUnit  AllocationMode = "unit"
)

// FeeMode define a origem da tarifa de anúncio: estimada analiticamente
// (2% do preço de venda) ou casada com o feed financeiro pelo OrderID.
type FeeMode string

const (
	FeeModeEstimated FeeMode = "estimated"
	FeeModeMatched   FeeMode = "matched"
)

func ParseAllocationMode(s string) (AllocationMode, error) {
	switch AllocationMode(s) {
	case AllocationPerOrder, AllocationPerUnit:
		return AllocationMode(s), nil
	}
	return "", NewReconcileError(ErrInvalidAllocationMode, "INVALID_ALLOCATION_MODE", s)
}

func ParseFeeMode(s string) (FeeMode, error) {
	switch FeeMode(s) {
	case FeeModeEstimated, FeeModeMatched:
		return FeeMode(s), nil
	}
	return "", NewReconcileError(ErrInvalidFeeMode, "INVALID_FEE_MODE", s)
}

// Options seleciona a variante do motor para uma execução. As duas
// dimensões são independentes e fixas durante a execução inteira.
type Options struct {
	Allocation AllocationMode
	FeeMode    FeeMode
}

// Report é o resultado de uma reconciliação. IncludeOrderID indica se a
// exportação deve manter o identificador do pedido (modo casado).
type Report struct {
	Period         domain.ReportingPeriod
	Rows           []domain.ReconciledRow
	IncludeOrderID bool
}

// Reconciler é o motor de reconciliação de vendas contra tarifas
type Reconciler interface {
	Reconcile(period domain.ReportingPeriod, opts Options) (*Report, error)
	ListRefunds(period domain.ReportingPeriod) ([]domain.RefundRow, error)
}
