package reconciling

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ebay-reconciler/infrastructure/integrator/finance"
	financedomain "github.com/vfg2006/ebay-reconciler/infrastructure/integrator/finance/domain"
	"github.com/vfg2006/ebay-reconciler/infrastructure/integrator/trading"
	tradingdomain "github.com/vfg2006/ebay-reconciler/infrastructure/integrator/trading/domain"
	"github.com/vfg2006/ebay-reconciler/internal/config"
	"github.com/vfg2006/ebay-reconciler/internal/domain"
	"github.com/vfg2006/ebay-reconciler/pkg/log"
)

// Service implementa o motor de reconciliação parametrizado por modo de
// alocação e modo de tarifa, no lugar de variantes copiadas do mesmo fluxo.
type Service struct {
	cfg            *config.Config
	tradingService trading.TradingIntegrator
	financeService finance.FinanceIntegrator
	location       *time.Location
}

func NewService(
	cfg *config.Config,
	tradingService trading.TradingIntegrator,
	financeService finance.FinanceIntegrator,
) (Reconciler, error) {
	location, err := time.LoadLocation(cfg.Reconciliation.SellerTimezone)
	if err != nil {
		return nil, NewReconcileError(ErrInvalidTimezone, "INVALID_TIMEZONE", cfg.Reconciliation.SellerTimezone)
	}

	return &Service{
		cfg:            cfg,
		tradingService: tradingService,
		financeService: financeService,
		location:       location,
	}, nil
}

// Reconcile executa a apuração do período. No modo estimado o feed
// financeiro nem é consultado; no modo casado os dois feeds são ingeridos
// em paralelo e o cruzamento só começa com ambos materializados.
func (s *Service) Reconcile(period domain.ReportingPeriod, opts Options) (*Report, error) {
	if _, err := ParseAllocationMode(string(opts.Allocation)); err != nil {
		return nil, err
	}
	if _, err := ParseFeeMode(string(opts.FeeMode)); err != nil {
		return nil, err
	}

	interval := period.Resolve(s.location)

	logger := log.L.WithFields(log.Fields{
		"period":     period.String(),
		"allocation": string(opts.Allocation),
		"fee_mode":   string(opts.FeeMode),
	})
	logger.Info("Iniciando reconciliação do período")

	var (
		rows []domain.ReconciledRow
		err  error
	)

	if opts.FeeMode == FeeModeMatched {
		rows, err = s.reconcileMatched(interval, opts.Allocation)
	} else {
		rows, err = s.reconcileEstimated(interval, opts.Allocation)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		// Período sem vendas não é erro: a saída é vazia, apenas informativa
		logger.Info("Nenhum pedido concluído no período")
	} else {
		logger.WithField("rows", len(rows)).Info("Reconciliação concluída")
	}

	return &Report{
		Period:         period,
		Rows:           rows,
		IncludeOrderID: opts.FeeMode == FeeModeMatched,
	}, nil
}

// reconcileEstimated computa a tarifa de anúncio analiticamente (2% do
// preço de venda): NetSale = NetSaleWithoutAdFee − tarifa estimada.
func (s *Service) reconcileEstimated(interval domain.Interval, allocation AllocationMode) ([]domain.ReconciledRow, error) {
	orders, err := s.tradingService.FetchCompletedOrders(interval)
	if err != nil {
		return nil, err
	}

	allocated, err := s.allocate(orders, allocation)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.ReconciledRow, 0, len(allocated))
	for _, line := range allocated {
		rows = append(rows, domain.ReconciledRow{
			OrderID:   line.OrderID,
			Title:     line.Title,
			SalePrice: line.SalePrice,
			NetSale:   domain.Quantize(line.NetSaleWithoutAdFee.Sub(line.EstimatedAdFee)),
		})
	}

	return rows, nil
}

// reconcileMatched cruza as vendas com as tarifas de anúncio reais do feed
// financeiro: NetSale = preço de venda − soma das tarifas casadas do pedido.
// Esta visão simplificada não volta a subtrair imposto/comissão/frete.
func (s *Service) reconcileMatched(interval domain.Interval, allocation AllocationMode) ([]domain.ReconciledRow, error) {
	var (
		orders    []tradingdomain.Order
		fees      []financedomain.Transaction
		ordersErr error
		feesErr   error
	)

	// Ingestões independentes, cada uma dona do próprio acumulador
	wg := sync.WaitGroup{}
	wg.Add(2)

	go func() {
		defer wg.Done()
		orders, ordersErr = s.tradingService.FetchCompletedOrders(interval)
	}()

	go func() {
		defer wg.Done()
		fees, feesErr = s.financeService.FetchFeeTransactions(
			interval,
			financedomain.TransactionTypeNonSaleCharge,
			financedomain.FeeTypeAd,
		)
	}()

	wg.Wait()

	if ordersErr != nil {
		return nil, ordersErr
	}
	if feesErr != nil {
		return nil, feesErr
	}

	allocated, err := s.allocate(orders, allocation)
	if err != nil {
		return nil, err
	}

	orderIDs := make(map[string]struct{}, len(allocated))
	for _, line := range allocated {
		orderIDs[line.OrderID] = struct{}{}
	}

	matched := matchFees(orderIDs, fees)

	feeTotals := make(map[string]decimal.Decimal, len(matched))
	for orderID, orderFees := range matched {
		total, err := sumFeeAmounts(orderFees)
		if err != nil {
			return nil, err
		}
		feeTotals[orderID] = total
	}

	rows := make([]domain.ReconciledRow, 0, len(allocated))
	for _, line := range allocated {
		// Pedido sem tarifa casada subtrai zero, não é erro
		rows = append(rows, domain.ReconciledRow{
			OrderID:   line.OrderID,
			Title:     line.Title,
			SalePrice: line.SalePrice,
			NetSale:   domain.Quantize(line.SalePrice.Sub(feeTotals[line.OrderID])),
		})
	}

	return rows, nil
}

func (s *Service) allocate(orders []tradingdomain.Order, allocation AllocationMode) ([]domain.AllocatedLine, error) {
	lines, err := buildOrderLines(orders)
	if err != nil {
		return nil, err
	}

	return allocateLines(lines, allocation), nil
}

// ListRefunds lista os estornos do período a partir do feed financeiro,
// agrupados por pedido. Estorno sem pedido associado aparece como "None".
func (s *Service) ListRefunds(period domain.ReportingPeriod) ([]domain.RefundRow, error) {
	interval := period.Resolve(s.location)

	refunds, err := s.financeService.FetchFeeTransactions(interval, financedomain.TransactionTypeRefund, "")
	if err != nil {
		return nil, err
	}

	rows := make([]domain.RefundRow, 0, len(refunds))
	for _, refund := range refunds {
		amount, err := domain.ParseAmount(refund.Amount.Value)
		if err != nil {
			return nil, err
		}

		row := domain.RefundRow{
			OrderID:       refund.OrderID,
			Amount:        amount,
			Date:          refund.TransactionDate,
			Type:          refund.TransactionType,
			TotalFeeBasis: "None",
			TotalFee:      "None",
		}
		if row.OrderID == "" {
			row.OrderID = "None"
		}
		if refund.TotalFeeBasisAmount != nil {
			row.TotalFeeBasis = refund.TotalFeeBasisAmount.Value
		}
		if refund.TotalFeeAmount != nil {
			row.TotalFee = refund.TotalFeeAmount.Value
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].OrderID < rows[j].OrderID
	})

	if len(rows) == 0 {
		log.L.WithField("period", period.String()).Info("Nenhum estorno encontrado no período")
	}

	return rows, nil
}
