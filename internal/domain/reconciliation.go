package domain

import "github.com/shopspring/decimal"

// OrderLine é uma linha de venda extraída da lista de transações de um
// pedido. Os valores são totais da transação, ainda não divididos pela
// quantidade.
type OrderLine struct {
	OrderID       string
	Title         string
	Quantity      int
	ItemPrice     decimal.Decimal
	ShippingCost  decimal.Decimal
	SalesTax      decimal.Decimal
	FinalValueFee decimal.Decimal
	HandlingCost  decimal.Decimal
}

// AllocatedLine é uma OrderLine após a alocação por quantidade: uma linha
// por pedido (modo por pedido) ou `quantidade` linhas idênticas (modo por
// unidade), cada uma com os componentes já rateados.
type AllocatedLine struct {
	OrderID             string
	Title               string
	SalePrice           decimal.Decimal
	SalesTax            decimal.Decimal
	FinalValueFee       decimal.Decimal
	ShippingCost        decimal.Decimal
	HandlingCost        decimal.Decimal
	InsertionFee        decimal.Decimal
	EstimatedAdFee      decimal.Decimal
	NetSaleWithoutAdFee decimal.Decimal
}

// ReconciledRow é a unidade final de saída. COGS fica em branco para
// preenchimento manual a jusante. OrderID circula internamente para o
// cruzamento com tarifas e só aparece na exportação do modo casado.
type ReconciledRow struct {
	OrderID   string
	Title     string
	SalePrice decimal.Decimal
	NetSale   decimal.Decimal
	COGS      string
}

// RefundRow descreve um estorno encontrado no feed financeiro
type RefundRow struct {
	OrderID       string
	Amount        decimal.Decimal
	Date          string
	Type          string
	TotalFeeBasis string
	TotalFee      string
}
