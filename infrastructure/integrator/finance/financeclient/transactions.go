package financeclient

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	financedomain "github.com/vfg2006/ebay-reconciler/infrastructure/integrator/finance/domain"
	"github.com/vfg2006/ebay-reconciler/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func (c *FinanceClient) GetTransactions(params TransactionParams) (*financedomain.TransactionPage, error) {
	endpoint, err := url.Parse(c.config.Finance.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/transaction")

	query := endpoint.Query()
	query.Set("limit", strconv.Itoa(params.Limit))
	query.Set("transactionDateRangeFrom", params.DateRangeFrom)
	query.Set("transactionDateRangeTo", params.DateRangeTo)
	if params.TransactionType != "" {
		query.Set("transactionType", params.TransactionType)
	}
	if params.FeeType != "" {
		query.Set("feeType", params.FeeType)
	}
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}
	endpoint.RawQuery = query.Encode()

	return c.fetchPage(endpoint.String())
}

func (c *FinanceClient) GetTransactionsByURL(pageURL string) (*financedomain.TransactionPage, error) {
	return c.fetchPage(pageURL)
}

func (c *FinanceClient) fetchPage(pageURL string) (*financedomain.TransactionPage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Finance.OAuthToken)
	req.Header.Set("X-EBAY-C-MARKETPLACE-ID", c.config.Finance.MarketplaceID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(domain.ErrUpstreamUnavailable, "erro ao executar a requisição: %v", err)
	}
	defer resp.Body.Close()

	// Qualquer página não-200 é fatal para a busca inteira: o conjunto de
	// tarifas precisa estar completo para não sub/sobrecontar contra os pedidos
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(domain.ErrUpstreamError, "requisição falhou com status: %s", resp.Status)
	}

	var page financedomain.TransactionPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, errors.Wrapf(domain.ErrUpstreamError, "erro ao decodificar a resposta: %v", err)
	}

	return &page, nil
}
