package handler

import (
	"errors"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ebay-reconciler/internal/config"
	"github.com/vfg2006/ebay-reconciler/internal/domain"
	"github.com/vfg2006/ebay-reconciler/internal/usecases/reconciling"
	"github.com/vfg2006/ebay-reconciler/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type reconcileRequest struct {
	Year       int    `json:"year"`
	Month      int    `json:"month"`
	Allocation string `json:"allocation"`
	FeeMode    string `json:"feeMode"`
}

type reconciledRowResponse struct {
	OrderID   string `json:"orderId,omitempty"`
	Title     string `json:"title"`
	SalePrice string `json:"salePrice"`
	NetSale   string `json:"netSale"`
	COGS      string `json:"cogs"`
}

type reconcileResponse struct {
	Period string                  `json:"period"`
	Count  int                     `json:"count"`
	Rows   []reconciledRowResponse `json:"rows"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ReconcileHandler executa a reconciliação do período solicitado e devolve
// as linhas na projeção de exportação
func ReconcileHandler(service reconciling.Reconciler, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request reconcileRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			respondError(w, http.StatusBadRequest, "corpo da requisição inválido")
			return
		}

		period, err := parsePeriod(request.Year, request.Month, cfg)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		allocation, err := reconciling.ParseAllocationMode(request.Allocation)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		feeMode, err := reconciling.ParseFeeMode(request.FeeMode)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		report, err := service.Reconcile(period, reconciling.Options{
			Allocation: allocation,
			FeeMode:    feeMode,
		})
		if err != nil {
			respondReconcileError(w, r, err)
			return
		}

		response := reconcileResponse{
			Period: period.String(),
			Count:  len(report.Rows),
			Rows:   make([]reconciledRowResponse, 0, len(report.Rows)),
		}

		for _, row := range report.Rows {
			item := reconciledRowResponse{
				Title:     row.Title,
				SalePrice: row.SalePrice.StringFixed(2),
				NetSale:   row.NetSale.StringFixed(2),
				COGS:      row.COGS,
			}
			if report.IncludeOrderID {
				item.OrderID = row.OrderID
			}
			response.Rows = append(response.Rows, item)
		}

		respondJSON(w, http.StatusOK, response)
	})
}

type refundsRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type refundRowResponse struct {
	OrderID       string `json:"orderId"`
	RefundAmount  string `json:"refundAmount"`
	RefundDate    string `json:"refundDate"`
	RefundType    string `json:"refundType"`
	TotalFeeBasis string `json:"totalFeeBasis"`
	TotalFee      string `json:"totalFee"`
}

// RefundsHandler lista os estornos do período solicitado
func RefundsHandler(service reconciling.Reconciler, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request refundsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			respondError(w, http.StatusBadRequest, "corpo da requisição inválido")
			return
		}

		period, err := parsePeriod(request.Year, request.Month, cfg)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		refunds, err := service.ListRefunds(period)
		if err != nil {
			respondReconcileError(w, r, err)
			return
		}

		rows := make([]refundRowResponse, 0, len(refunds))
		for _, refund := range refunds {
			rows = append(rows, refundRowResponse{
				OrderID:       refund.OrderID,
				RefundAmount:  refund.Amount.StringFixed(2),
				RefundDate:    refund.Date,
				RefundType:    refund.Type,
				TotalFeeBasis: refund.TotalFeeBasis,
				TotalFee:      refund.TotalFee,
			})
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"period": period.String(),
			"count":  len(rows),
			"rows":   rows,
		})
	})
}

func parsePeriod(year, month int, cfg *config.Config) (domain.ReportingPeriod, error) {
	currentYear := time.Now().Year()
	if year < cfg.Reconciliation.MinYear || year > currentYear {
		return domain.ReportingPeriod{}, errors.New("ano fora da janela permitida")
	}

	return domain.NewReportingPeriod(year, month)
}

func respondReconcileError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Error("Erro na execução da reconciliação")

	switch {
	case errors.Is(err, domain.ErrUpstreamUnavailable), errors.Is(err, domain.ErrUpstreamError):
		respondError(w, http.StatusBadGateway, "falha na ingestão dos feeds upstream")
	case errors.Is(err, domain.ErrMalformedAmount):
		respondError(w, http.StatusBadGateway, "valor monetário malformado no feed upstream")
	default:
		respondError(w, http.StatusInternalServerError, "erro interno na reconciliação")
	}
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Warn("Erro ao serializar a resposta")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: message})
}
