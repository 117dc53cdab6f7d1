package reconciling

import (
	"github.com/shopspring/decimal"
	tradingdomain "github.com/vfg2006/ebay-reconciler/infrastructure/integrator/trading/domain"
	"github.com/vfg2006/ebay-reconciler/internal/domain"
	"github.com/vfg2006/ebay-reconciler/pkg/log"
)

// Tarifas analíticas do marketplace: anúncio estimado em 2% do preço de
// venda e tarifa de listagem escalonada pelo limiar de 10.00 (inclusivo
// na faixa menor).
var (
	adFeeRate            = decimal.RequireFromString("0.02")
	insertionFeeLowTier  = decimal.RequireFromString("0.30")
	insertionFeeHighTier = decimal.RequireFromString("0.40")
	insertionFeeCutoff   = decimal.RequireFromString("10.00")
)

// buildOrderLines extrai uma OrderLine de cada transação de cada pedido,
// preservando a ordem de chegada. Valor malformado aborta a execução:
// não existe exportação parcial.
func buildOrderLines(orders []tradingdomain.Order) ([]domain.OrderLine, error) {
	var lines []domain.OrderLine

	for _, order := range orders {
		for _, tx := range order.TransactionArray.Transaction {
			line, err := buildOrderLine(order.OrderID, tx)
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}
	}

	return lines, nil
}

func buildOrderLine(orderID string, tx tradingdomain.Transaction) (domain.OrderLine, error) {
	var (
		line = domain.OrderLine{
			OrderID:  orderID,
			Title:    domain.ExtractString(tx, "", "Item", "Title"),
			Quantity: domain.ExtractQuantity(tx, "QuantityPurchased"),
		}
		err error
	)

	if line.ItemPrice, err = domain.ExtractAmount(tx, "TransactionPrice"); err != nil {
		return domain.OrderLine{}, err
	}
	if line.ShippingCost, err = domain.ExtractAmount(tx, "ActualShippingCost"); err != nil {
		return domain.OrderLine{}, err
	}
	if line.SalesTax, err = domain.ExtractAmount(tx, "Taxes", "TotalTaxAmount"); err != nil {
		return domain.OrderLine{}, err
	}
	if line.FinalValueFee, err = domain.ExtractAmount(tx, "FinalValueFee"); err != nil {
		return domain.OrderLine{}, err
	}
	if line.HandlingCost, err = domain.ExtractAmount(tx, "ActualHandlingCost"); err != nil {
		return domain.OrderLine{}, err
	}

	return line, nil
}

// allocateLines aplica o modo de alocação a todas as linhas, achatando o
// resultado em uma única sequência.
func allocateLines(lines []domain.OrderLine, mode AllocationMode) []domain.AllocatedLine {
	var allocated []domain.AllocatedLine

	for _, line := range lines {
		allocated = append(allocated, allocateLine(line, mode)...)
	}

	return allocated
}

func allocateLine(line domain.OrderLine, mode AllocationMode) []domain.AllocatedLine {
	if mode == AllocationPerUnit {
		return allocatePerUnit(line)
	}
	return []domain.AllocatedLine{allocatePerOrder(line)}
}

// allocatePerOrder computa os componentes sobre os totais da transação,
// sem divisão por quantidade.
func allocatePerOrder(line domain.OrderLine) domain.AllocatedLine {
	salePrice := line.ItemPrice.
		Add(line.ShippingCost).
		Add(line.SalesTax).
		Add(line.HandlingCost)

	allocated := domain.AllocatedLine{
		OrderID:        line.OrderID,
		Title:          line.Title,
		SalePrice:      salePrice,
		SalesTax:       line.SalesTax,
		FinalValueFee:  line.FinalValueFee,
		ShippingCost:   line.ShippingCost,
		HandlingCost:   line.HandlingCost,
		InsertionFee:   insertionFee(salePrice),
		EstimatedAdFee: domain.Quantize(salePrice.Mul(adFeeRate)),
	}
	allocated.NetSaleWithoutAdFee = netSaleWithoutAdFee(allocated)

	logAllocation(allocated)

	return allocated
}

// allocatePerUnit divide cada componente de custo pela quantidade e
// quantiza ANTES de combinar. O arredondamento é por unidade, então a soma
// das unidades pode divergir do total original em até um centavo — desvio
// aceito, não corrigido. Emite `quantidade` linhas idênticas.
func allocatePerUnit(line domain.OrderLine) []domain.AllocatedLine {
	quantity := line.Quantity
	if quantity < 1 {
		// Quantidade ausente ou zerada conta como 1 para divisão segura
		quantity = 1
	}

	divisor := decimal.NewFromInt(int64(quantity))

	perShipping := domain.Quantize(line.ShippingCost.Div(divisor))
	perTax := domain.Quantize(line.SalesTax.Div(divisor))
	perFinalValueFee := domain.Quantize(line.FinalValueFee.Div(divisor))
	perHandling := domain.Quantize(line.HandlingCost.Div(divisor))

	salePrice := domain.Quantize(line.ItemPrice.
		Add(perShipping).
		Add(perTax).
		Add(perHandling))

	allocated := domain.AllocatedLine{
		OrderID:        line.OrderID,
		Title:          line.Title,
		SalePrice:      salePrice,
		SalesTax:       perTax,
		FinalValueFee:  perFinalValueFee,
		ShippingCost:   perShipping,
		HandlingCost:   perHandling,
		InsertionFee:   insertionFee(salePrice),
		EstimatedAdFee: domain.Quantize(salePrice.Mul(adFeeRate)),
	}
	allocated.NetSaleWithoutAdFee = netSaleWithoutAdFee(allocated)

	logAllocation(allocated)

	rows := make([]domain.AllocatedLine, quantity)
	for i := range rows {
		rows[i] = allocated
	}

	return rows
}

// insertionFee avalia a faixa contra o preço de venda do modo corrente:
// o limiar de 10.00 é inclusivo na faixa menor.
func insertionFee(salePrice decimal.Decimal) decimal.Decimal {
	if salePrice.LessThanOrEqual(insertionFeeCutoff) {
		return insertionFeeLowTier
	}
	return insertionFeeHighTier
}

// netSaleWithoutAdFee quantiza apenas após a cadeia completa de subtrações
func netSaleWithoutAdFee(a domain.AllocatedLine) decimal.Decimal {
	return domain.Quantize(a.SalePrice.
		Sub(a.SalesTax).
		Sub(a.FinalValueFee).
		Sub(a.InsertionFee).
		Sub(a.ShippingCost))
}

func logAllocation(a domain.AllocatedLine) {
	log.L.WithFields(log.Fields{
		"order_id":        a.OrderID,
		"title":           a.Title,
		"sale_price":      a.SalePrice.String(),
		"sales_tax":       a.SalesTax.String(),
		"final_value_fee": a.FinalValueFee.String(),
		"shipping_cost":   a.ShippingCost.String(),
		"handling_cost":   a.HandlingCost.String(),
		"insertion_fee":   a.InsertionFee.String(),
		"ad_fee":          a.EstimatedAdFee.String(),
		"net_sale":        a.NetSaleWithoutAdFee.String(),
	}).Debug("Linha de venda alocada")
}
