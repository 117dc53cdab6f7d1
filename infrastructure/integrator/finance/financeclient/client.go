package financeclient

import (
	"net/http"
	"time"

	financedomain "github.com/vfg2006/ebay-reconciler/infrastructure/integrator/finance/domain"
	"github.com/vfg2006/ebay-reconciler/internal/config"
)

// TransactionParams parametriza a consulta de transações financeiras
type TransactionParams struct {
	DateRangeFrom   string
	DateRangeTo     string
	TransactionType string
	FeeType         string
	Limit           int
	Offset          int
}

type Client interface {
	GetTransactions(params TransactionParams) (*financedomain.TransactionPage, error)

	// GetTransactionsByURL segue um link de continuação retornado pela API.
	// O link já carrega os parâmetros da consulta, então nenhum é reenviado.
	GetTransactionsByURL(pageURL string) (*financedomain.TransactionPage, error)
}

type FinanceClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &FinanceClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
