package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	financedomain "github.com/vfg2006/ebay-reconciler/infrastructure/integrator/finance/domain"
	"github.com/vfg2006/ebay-reconciler/infrastructure/integrator/finance/financeclient"
	"github.com/vfg2006/ebay-reconciler/infrastructure/integrator/finance/financeclient/mocks"
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
	cfg.Finance.PageLimit = 2
	cfg.Finance.MaxPages = 10
	return cfg
}

func baseParams() financeclient.TransactionParams {
	return financeclient.TransactionParams{
		DateRangeFrom:   "2024-01-01T08:00:00.000000Z",
		DateRangeTo:     "2024-02-01T07:59:59.000000Z",
		TransactionType: financedomain.TransactionTypeNonSaleCharge,
		FeeType:         financedomain.FeeTypeAd,
		Limit:           2,
	}
}

func feeTransaction(id string) financedomain.Transaction {
	return financedomain.Transaction{
		TransactionID:   id,
		TransactionType: financedomain.TransactionTypeNonSaleCharge,
		FeeType:         financedomain.FeeTypeAd,
	}
}

func TestFetchFeeTransactions_SinglePageWithoutContinuation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	// Página cheia porém sem link nem offset indicando mais resultados:
	// a ingestão termina após uma única página
	mockClient.EXPECT().
		GetTransactions(baseParams()).
		Return(&financedomain.TransactionPage{
			Limit:  2,
			Offset: 0,
			Total:  2,
			Transactions: []financedomain.Transaction{
				feeTransaction("TX-1"),
				feeTransaction("TX-2"),
			},
		}, nil)

	transactions, err := service.FetchFeeTransactions(testInterval(),
		financedomain.TransactionTypeNonSaleCharge, financedomain.FeeTypeAd)

	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
}

func TestFetchFeeTransactions_FollowsNextLink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	nextURL := "https://apiz.ebay.com/sell/finances/v1/transaction?limit=2&offset=2"

	mockClient.EXPECT().
		GetTransactions(baseParams()).
		Return(&financedomain.TransactionPage{
			Next:  nextURL,
			Limit: 2,
			Total: 3,
			Transactions: []financedomain.Transaction{
				feeTransaction("TX-1"),
				feeTransaction("TX-2"),
			},
		}, nil)

	// O link de continuação é seguido como está, sem reenviar parâmetros
	mockClient.EXPECT().
		GetTransactionsByURL(nextURL).
		Return(&financedomain.TransactionPage{
			Limit:  2,
			Offset: 2,
			Total:  3,
			Transactions: []financedomain.Transaction{
				feeTransaction("TX-3"),
			},
		}, nil)

	transactions, err := service.FetchFeeTransactions(testInterval(),
		financedomain.TransactionTypeNonSaleCharge, financedomain.FeeTypeAd)

	assert.NoError(t, err)
	assert.Len(t, transactions, 3)
	assert.Equal(t, "TX-3", transactions[2].TransactionID)
}

func TestFetchFeeTransactions_OffsetContinuation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	mockClient.EXPECT().
		GetTransactions(baseParams()).
		Return(&financedomain.TransactionPage{
			Limit:  2,
			Offset: 0,
			Total:  3,
			Transactions: []financedomain.Transaction{
				feeTransaction("TX-1"),
				feeTransaction("TX-2"),
			},
		}, nil)

	// Sem link explícito o offset é incrementado pelo tamanho da página
	offsetParams := baseParams()
	offsetParams.Offset = 2

	mockClient.EXPECT().
		GetTransactions(offsetParams).
		Return(&financedomain.TransactionPage{
			Limit:  2,
			Offset: 2,
			Total:  3,
			Transactions: []financedomain.Transaction{
				feeTransaction("TX-3"),
			},
		}, nil)

	transactions, err := service.FetchFeeTransactions(testInterval(),
		financedomain.TransactionTypeNonSaleCharge, financedomain.FeeTypeAd)

	assert.NoError(t, err)
	assert.Len(t, transactions, 3)
}

func TestFetchFeeTransactions_MaxPagesExceeded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)

	cfg := testConfig()
	cfg.Finance.MaxPages = 1
	service := New(cfg, mockClient)

	mockClient.EXPECT().
		GetTransactions(gomock.Any()).
		Return(&financedomain.TransactionPage{
			Next:  "https://apiz.ebay.com/sell/finances/v1/transaction?offset=2",
			Limit: 2,
			Total: 100,
			Transactions: []financedomain.Transaction{
				feeTransaction("TX-1"),
			},
		}, nil)

	mockClient.EXPECT().
		GetTransactionsByURL(gomock.Any()).
		Return(&financedomain.TransactionPage{
			Next: "https://apiz.ebay.com/sell/finances/v1/transaction?offset=4",
			Transactions: []financedomain.Transaction{
				feeTransaction("TX-2"),
			},
		}, nil)

	_, err := service.FetchFeeTransactions(testInterval(),
		financedomain.TransactionTypeNonSaleCharge, financedomain.FeeTypeAd)

	assert.ErrorIs(t, err, domain.ErrUpstreamError)
}

func TestFetchFeeTransactions_ClientErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := New(testConfig(), mockClient)

	mockClient.EXPECT().
		GetTransactions(gomock.Any()).
		Return(nil, domain.ErrUpstreamUnavailable)

	_, err := service.FetchFeeTransactions(testInterval(),
		financedomain.TransactionTypeNonSaleCharge, financedomain.FeeTypeAd)

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestTransactionPage_HasOffsetContinuation(t *testing.T) {
	tests := []struct {
		name     string
		page     financedomain.TransactionPage
		expected bool
	}{
		{
			name:     "Offset mais limit abaixo do total indica continuação",
			page:     financedomain.TransactionPage{Limit: 2, Offset: 0, Total: 3},
			expected: true,
		},
		{
			name:     "Offset mais limit igual ao total encerra",
			page:     financedomain.TransactionPage{Limit: 2, Offset: 2, Total: 4},
			expected: false,
		},
		{
			name:     "Página sem metadados de paginação encerra",
			page:     financedomain.TransactionPage{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.page.HasOffsetContinuation())
		})
	}
}
