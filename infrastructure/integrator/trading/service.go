package trading

import (
	"github.com/pkg/errors"
	tradingdomain "github.com/vfg2006/ebay-reconciler/infrastructure/integrator/trading/domain"
	"github.com/vfg2006/ebay-reconciler/infrastructure/integrator/trading/tradingclient"
	"github.com/vfg2006/ebay-reconciler/internal/config"
	"github.com/vfg2006/ebay-reconciler/internal/domain"
	"github.com/vfg2006/ebay-reconciler/pkg/log"
)

// Status fixo do filtro de ingestão: apenas vendas concluídas entram na apuração
const completedOrderStatus = "Completed"

type TradingIntegrator interface {
	FetchCompletedOrders(interval domain.Interval) ([]tradingdomain.Order, error)
}

type TradingService struct {
	cfg    *config.Config
	Client tradingclient.Client
}

func New(cfg *config.Config, client tradingclient.Client) TradingIntegrator {
	return &TradingService{
		cfg:    cfg,
		Client: client,
	}
}

// FetchCompletedOrders busca todos os pedidos concluídos do intervalo,
// acumulando as páginas na ordem de chegada até HasMoreOrders ficar falso.
func (s *TradingService) FetchCompletedOrders(interval domain.Interval) ([]tradingdomain.Order, error) {
	from, to := interval.TradingRange()

	var orders []tradingdomain.Order

	for page := 1; ; page++ {
		if page > s.cfg.Trading.MaxPages {
			return nil, errors.Wrapf(domain.ErrUpstreamError,
				"paginação de pedidos excedeu o limite de %d páginas", s.cfg.Trading.MaxPages)
		}

		resp, err := s.Client.GetOrders(tradingclient.GetOrdersParams{
			CreateTimeFrom: from,
			CreateTimeTo:   to,
			OrderStatus:    completedOrderStatus,
			PageNumber:     page,
			EntriesPerPage: s.cfg.Trading.EntriesPerPage,
		})
		if err != nil {
			return nil, err
		}

		orders = append(orders, resp.OrderArray.Order...)

		if !resp.HasMoreOrders {
			break
		}
	}

	log.L.WithFields(log.Fields{
		"orders": len(orders),
		"from":   from,
		"to":     to,
	}).Info("Pedidos concluídos ingeridos do feed de vendas")

	return orders, nil
}
