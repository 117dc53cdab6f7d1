package financedomain

// Tipos de transação e tarifa relevantes para a reconciliação
const (
	TransactionTypeNonSaleCharge = "NON_SALE_CHARGE"
	TransactionTypeRefund        = "REFUND"
	FeeTypeAd                    = "AD_FEE"
	ReferenceTypeOrderID         = "ORDER_ID"
)

type Amount struct {
	Value    string `json:"value,omitempty"`
	Currency string `json:"currency,omitempty"`
}

type Reference struct {
	ReferenceType string `json:"referenceType,omitempty"`
	ReferenceID   string `json:"referenceId,omitempty"`
}

// Transaction é um registro do feed financeiro. Tarifas de anúncio chegam
// desvinculadas da venda e apontam de volta para o pedido via references.
type Transaction struct {
	TransactionID       string      `json:"transactionId,omitempty"`
	TransactionType     string      `json:"transactionType,omitempty"`
	FeeType             string      `json:"feeType,omitempty"`
	TransactionDate     string      `json:"transactionDate,omitempty"`
	OrderID             string      `json:"orderId,omitempty"`
	Amount              Amount      `json:"amount,omitempty"`
	TotalFeeBasisAmount *Amount     `json:"totalFeeBasisAmount,omitempty"`
	TotalFeeAmount      *Amount     `json:"totalFeeAmount,omitempty"`
	References          []Reference `json:"references,omitempty"`
}

// OrderReference varre a lista de referências em busca de uma entrada
// ORDER_ID. Tarifa sem referência de pedido é válida: fica fora do cruzamento.
func (t Transaction) OrderReference() (string, bool) {
	for _, ref := range t.References {
		if ref.ReferenceType == ReferenceTypeOrderID && ref.ReferenceID != "" {
			return ref.ReferenceID, true
		}
	}
	return "", false
}

// TransactionPage é uma página de resposta. A continuação é sinalizada ou
// pelo link explícito Next ou pelo esquema offset/limit/total.
type TransactionPage struct {
	Href         string        `json:"href,omitempty"`
	Next         string        `json:"next,omitempty"`
	Limit        int           `json:"limit,omitempty"`
	Offset       int           `json:"offset,omitempty"`
	Total        int           `json:"total,omitempty"`
	Transactions []Transaction `json:"transactions,omitempty"`
}

// HasOffsetContinuation indica se o esquema offset aponta para mais páginas
func (p TransactionPage) HasOffsetContinuation() bool {
	if p.Limit <= 0 || p.Total <= 0 {
		return false
	}
	return p.Offset+p.Limit < p.Total
}
