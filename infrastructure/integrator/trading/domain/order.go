package tradingdomain

// Transaction é o registro semiestruturado de uma transação de venda,
// mantido como mapa aninhado: os valores monetários são extraídos por
// caminho de chaves, com padrão silencioso para campos ausentes.
type Transaction map[string]any

type TransactionArray struct {
	Transaction []Transaction `json:"Transaction,omitempty"`
}

type Order struct {
	OrderID          string           `json:"OrderID,omitempty"`
	OrderStatus      string           `json:"OrderStatus,omitempty"`
	CreatedTime      string           `json:"CreatedTime,omitempty"`
	TransactionArray TransactionArray `json:"TransactionArray,omitempty"`
}

type OrderArray struct {
	Order []Order `json:"Order,omitempty"`
}

// OrdersResponse é a página de resposta da chamada GetOrders. A paginação
// é dirigida por HasMoreOrders: enquanto verdadeiro, há página seguinte.
type OrdersResponse struct {
	Ack                      string     `json:"Ack,omitempty"`
	PageNumber               int        `json:"PageNumber,omitempty"`
	HasMoreOrders            bool       `json:"HasMoreOrders,omitempty"`
	ReturnedOrderCountActual int        `json:"ReturnedOrderCountActual,omitempty"`
	OrderArray               OrderArray `json:"OrderArray,omitempty"`
	Errors                   []APIError `json:"Errors,omitempty"`
}

type APIError struct {
	ErrorCode    string `json:"ErrorCode,omitempty"`
	SeverityCode string `json:"SeverityCode,omitempty"`
	LongMessage  string `json:"LongMessage,omitempty"`
}
