package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ebay-reconciler/internal/config"
	"github.com/vfg2006/ebay-reconciler/internal/domain"
	"github.com/vfg2006/ebay-reconciler/internal/usecases/reconciling"
	"github.com/vfg2006/ebay-reconciler/internal/usecases/reconciling/mocks"
	"go.uber.org/mock/gomock"
)

func handlerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Reconciliation.MinYear = 2020
	return cfg
}

func TestReconcileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReconciler(ctrl)
	handler := ReconcileHandler(mockService, handlerConfig())

	tests := []struct {
		name           string
		body           string
		setup          func()
		expectedStatus int
		validate       func(t *testing.T, body string)
	}{
		{
			name: "Reconciliação bem sucedida no modo estimado",
			body: `{"year":2024,"month":1,"allocation":"unit","feeMode":"estimated"}`,
			setup: func() {
				mockService.EXPECT().
					Reconcile(domain.ReportingPeriod{Year: 2024, Month: 1}, reconciling.Options{
						Allocation: reconciling.AllocationPerUnit,
						FeeMode:    reconciling.FeeModeEstimated,
					}).
					Return(&reconciling.Report{
						Period: domain.ReportingPeriod{Year: 2024, Month: 1},
						Rows: []domain.ReconciledRow{
							{
								OrderID:   "ORD-001",
								Title:     "Carburetor Rebuild Kit",
								SalePrice: decimal.RequireFromString("27.00"),
								NetSale:   decimal.RequireFromString("17.56"),
							},
						},
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body string) {
				assert.Contains(t, body, `"period":"2024-01"`)
				assert.Contains(t, body, `"count":1`)
				assert.Contains(t, body, `"netSale":"17.56"`)
				// Sem retenção de OrderID no modo estimado
				assert.NotContains(t, body, "ORD-001")
			},
		},
		{
			name: "Modo casado retém o OrderID na resposta",
			body: `{"year":2024,"month":1,"allocation":"order","feeMode":"matched"}`,
			setup: func() {
				mockService.EXPECT().
					Reconcile(gomock.Any(), gomock.Any()).
					Return(&reconciling.Report{
						Period: domain.ReportingPeriod{Year: 2024, Month: 1},
						Rows: []domain.ReconciledRow{
							{
								OrderID:   "ORD-001",
								Title:     "Carburetor Rebuild Kit",
								SalePrice: decimal.RequireFromString("27.00"),
								NetSale:   decimal.RequireFromString("25.00"),
							},
						},
						IncludeOrderID: true,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, body string) {
				assert.Contains(t, body, `"orderId":"ORD-001"`)
			},
		},
		{
			name:           "Corpo inválido retorna 400",
			body:           `{invalid`,
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Mês inválido retorna 400",
			body:           `{"year":2024,"month":13,"allocation":"unit","feeMode":"estimated"}`,
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Ano fora da janela retorna 400",
			body:           `{"year":2019,"month":1,"allocation":"unit","feeMode":"estimated"}`,
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Modo de alocação desconhecido retorna 400",
			body:           `{"year":2024,"month":1,"allocation":"wholesale","feeMode":"estimated"}`,
			setup:          func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Feed indisponível retorna 502",
			body: `{"year":2024,"month":1,"allocation":"unit","feeMode":"estimated"}`,
			setup: func() {
				mockService.EXPECT().
					Reconcile(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrUpstreamUnavailable)
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name: "Valor malformado no feed retorna 502",
			body: `{"year":2024,"month":1,"allocation":"unit","feeMode":"estimated"}`,
			setup: func() {
				mockService.EXPECT().
					Reconcile(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrMalformedAmount)
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			req := httptest.NewRequest(http.MethodPost, "/v1/reconciliations", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.validate != nil {
				tt.validate(t, rec.Body.String())
			}
		})
	}
}

func TestRefundsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockReconciler(ctrl)
	handler := RefundsHandler(mockService, handlerConfig())

	mockService.EXPECT().
		ListRefunds(domain.ReportingPeriod{Year: 2024, Month: 1}).
		Return([]domain.RefundRow{
			{
				OrderID:       "ORD-002",
				Amount:        decimal.RequireFromString("15.00"),
				Date:          "2024-01-20T10:00:00.000Z",
				Type:          "REFUND",
				TotalFeeBasis: "15.00",
				TotalFee:      "2.10",
			},
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/refunds/report", strings.NewReader(`{"year":2024,"month":1}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"orderId":"ORD-002"`)
	assert.Contains(t, rec.Body.String(), `"refundAmount":"15.00"`)
}
