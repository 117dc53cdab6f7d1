package finance

import (
	"github.com/pkg/errors"
	financedomain "github.com/vfg2006/ebay-reconciler/infrastructure/integrator/finance/domain"
	"github.com/vfg2006/ebay-reconciler/infrastructure/integrator/finance/financeclient"
	"github.com/vfg2006/ebay-reconciler/internal/config"
	"github.com/vfg2006/ebay-reconciler/internal/domain"
	"github.com/vfg2006/ebay-reconciler/pkg/log"
)

type FinanceIntegrator interface {
	FetchFeeTransactions(interval domain.Interval, transactionType, feeType string) ([]financedomain.Transaction, error)
}

type FinanceService struct {
	cfg    *config.Config
	Client financeclient.Client
}

func New(cfg *config.Config, client financeclient.Client) FinanceIntegrator {
	return &FinanceService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchFeeTransactions acumula todas as páginas de transações do intervalo.
// A continuação segue o link explícito quando presente (sem reenviar
// parâmetros, que o link já carrega) ou incrementa o offset quando o total
// indica mais páginas. Sem sinal de continuação, a primeira página encerra
// o laço mesmo cheia.
func (s *FinanceService) FetchFeeTransactions(interval domain.Interval, transactionType, feeType string) ([]financedomain.Transaction, error) {
	from, to := interval.FinanceRange()

	params := financeclient.TransactionParams{
		DateRangeFrom:   from,
		DateRangeTo:     to,
		TransactionType: transactionType,
		FeeType:         feeType,
		Limit:           s.cfg.Finance.PageLimit,
	}

	var transactions []financedomain.Transaction

	page, err := s.Client.GetTransactions(params)
	for pages := 1; ; pages++ {
		if err != nil {
			return nil, err
		}

		if pages > s.cfg.Finance.MaxPages {
			return nil, errors.Wrapf(domain.ErrUpstreamError,
				"paginação de tarifas excedeu o limite de %d páginas", s.cfg.Finance.MaxPages)
		}

		transactions = append(transactions, page.Transactions...)

		switch {
		case page.Next != "":
			page, err = s.Client.GetTransactionsByURL(page.Next)
		case page.HasOffsetContinuation():
			params.Offset = page.Offset + page.Limit
			page, err = s.Client.GetTransactions(params)
		default:
			log.L.WithFields(log.Fields{
				"transactions":     len(transactions),
				"transaction_type": transactionType,
				"fee_type":         feeType,
				"pages":            pages,
			}).Info("Transações ingeridas do feed financeiro")

			return transactions, nil
		}
	}
}
