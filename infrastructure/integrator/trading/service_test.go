package trading

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	tradingdomain "github.com/vfg2006/ebay-reconciler/infrastructure/integrator/trading/domain"
	"github.com/vfg2006/ebay-reconciler/infrastructure/integrator/trading/tradingclient"
	"github.com/vfg2006/ebay-reconciler/infrastructure/integrator/trading/tradingclient/mocks"
	"github.com/vfg2006/ebay-reconciler/internal/config"
	"github.com/vfg2006/ebay-reconciler/internal/domain"
	"go.uber.org/mock/gomock"
)

func testInterval() domain.Interval {
	return domain.Interval{
		Start: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 2, 1, 7, 59, 59, 0, time.UTC),
	}
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Trading.EntriesPerPage = 100
	cfg.Trading.MaxPages = 10
	return cfg
}

func TestFetchCompletedOrders_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	from := "2024-01-01T08:00:00.000Z"
	to := "2024-02-01T07:59:59.000Z"

	// Primeira página cheia sinaliza continuação
	mockClient.EXPECT().
		GetOrders(tradingclient.GetOrdersParams{
			CreateTimeFrom: from,
			CreateTimeTo:   to,
			OrderStatus:    "Completed",
			PageNumber:     1,
			EntriesPerPage: 100,
		}).
		Return(&tradingdomain.OrdersResponse{
			Ack:           "Success",
			HasMoreOrders: true,
			OrderArray: tradingdomain.OrderArray{
				Order: []tradingdomain.Order{{OrderID: "ORD-001"}, {OrderID: "ORD-002"}},
			},
		}, nil)

	mockClient.EXPECT().
		GetOrders(tradingclient.GetOrdersParams{
			CreateTimeFrom: from,
			CreateTimeTo:   to,
			OrderStatus:    "Completed",
			PageNumber:     2,
			EntriesPerPage: 100,
		}).
		Return(&tradingdomain.OrdersResponse{
			Ack: "Success",
			OrderArray: tradingdomain.OrderArray{
				Order: []tradingdomain.Order{{OrderID: "ORD-003"}},
			},
		}, nil)

	orders, err := service.FetchCompletedOrders(testInterval())

	assert.NoError(t, err)
	assert.Len(t, orders, 3)
	assert.Equal(t, "ORD-001", orders[0].OrderID)
	assert.Equal(t, "ORD-003", orders[2].OrderID)
}

func TestFetchCompletedOrders_MaxPagesExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	cfg := testConfig()
	cfg.Trading.MaxPages = 1
	service := New(cfg, mockClient)

	mockClient.EXPECT().
		GetOrders(gomock.Any()).
		Return(&tradingdomain.OrdersResponse{
			Ack:           "Success",
			HasMoreOrders: true,
			OrderArray: tradingdomain.OrderArray{
				Order: []tradingdomain.Order{{OrderID: "ORD-001"}},
			},
		}, nil)

	_, err := service.FetchCompletedOrders(testInterval())
	assert.ErrorIs(t, err, domain.ErrUpstreamError)
}

func TestFetchCompletedOrders_ClientErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	mockClient.EXPECT().
		GetOrders(gomock.Any()).
		Return(nil, domain.ErrUpstreamUnavailable)

	_, err := service.FetchCompletedOrders(testInterval())
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
