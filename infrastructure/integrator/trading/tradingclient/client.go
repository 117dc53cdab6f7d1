package tradingclient

import (
	"net/http"
	"time"

	tradingdomain "github.com/vfg2006/ebay-reconciler/infrastructure/integrator/trading/domain"
	"github.com/vfg2006/ebay-reconciler/internal/config"
)

// GetOrdersParams parametriza uma página da chamada GetOrders
type GetOrdersParams struct {
	CreateTimeFrom string
	CreateTimeTo   string
	OrderStatus    string
	PageNumber     int
	EntriesPerPage int
}

type Client interface {
	GetOrders(params GetOrdersParams) (*tradingdomain.OrdersResponse, error)
}

type TradingClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &TradingClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
