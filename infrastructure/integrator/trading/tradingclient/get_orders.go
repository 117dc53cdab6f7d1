package tradingclient

import (
	"bytes"
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	tradingdomain "github.com/vfg2006/ebay-reconciler/infrastructure/integrator/trading/domain"
	"github.com/vfg2006/ebay-reconciler/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const getOrdersCallName = "GetOrders"

// getOrdersRequest é o corpo da chamada GetOrders. O nível de detalhe
// ReturnAll garante itens, tarifas e impostos em uma única chamada por página.
type getOrdersRequest struct {
	DetailLevel          string     `json:"DetailLevel"`
	CreateTimeFrom       string     `json:"CreateTimeFrom"`
	CreateTimeTo         string     `json:"CreateTimeTo"`
	OrderStatus          string     `json:"OrderStatus"`
	IncludeFinalValueFee bool       `json:"IncludeFinalValueFee"`
	Pagination           pagination `json:"Pagination"`
}

type pagination struct {
	EntriesPerPage int `json:"EntriesPerPage"`
	PageNumber     int `json:"PageNumber"`
}

func (c *TradingClient) GetOrders(params GetOrdersParams) (*tradingdomain.OrdersResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	payload := getOrdersRequest{
		DetailLevel:          "ReturnAll",
		CreateTimeFrom:       params.CreateTimeFrom,
		CreateTimeTo:         params.CreateTimeTo,
		OrderStatus:          params.OrderStatus,
		IncludeFinalValueFee: true,
		Pagination: pagination{
			EntriesPerPage: params.EntriesPerPage,
			PageNumber:     params.PageNumber,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar o corpo da requisição")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.Trading.URL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição")
	}

	req.Header.Set("X-EBAY-API-CALL-NAME", getOrdersCallName)
	req.Header.Set("X-EBAY-API-DEV-NAME", c.config.Trading.DevID)
	req.Header.Set("X-EBAY-API-APP-NAME", c.config.Trading.AppID)
	req.Header.Set("X-EBAY-API-CERT-NAME", c.config.Trading.CertID)
	req.Header.Set("X-EBAY-API-IAF-TOKEN", c.config.Trading.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Falha de transporte: recuperável pelo chamador abortando a execução
		return nil, errors.Wrapf(domain.ErrUpstreamUnavailable, "erro ao executar a requisição: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(domain.ErrUpstreamError, "requisição falhou com status: %s", resp.Status)
	}

	var response tradingdomain.OrdersResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, errors.Wrapf(domain.ErrUpstreamError, "erro ao decodificar a resposta: %v", err)
	}

	if response.Ack == "Failure" {
		return nil, errors.Wrapf(domain.ErrUpstreamError, "chamada GetOrders rejeitada: %+v", response.Errors)
	}

	return &response, nil
}
