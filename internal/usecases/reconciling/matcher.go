package reconciling

import (
	"fmt"

	"github.com/shopspring/decimal"
	financedomain "github.com/vfg2006/ebay-reconciler/infrastructure/integrator/finance/domain"
	"github.com/vfg2006/ebay-reconciler/internal/domain"
	"github.com/vfg2006/ebay-reconciler/pkg/log"
)

// matchFees associa cada transação de tarifa ao pedido referenciado por uma
// entrada ORDER_ID. Tarifa sem referência, ou referenciando pedido fora do
// conjunto ingerido, é excluída silenciosamente: tarifas de anúncio podem
// apontar para pedidos fora da janela solicitada ou chegar desgarradas.
func matchFees(orderIDs map[string]struct{}, fees []financedomain.Transaction) map[string][]financedomain.Transaction {
	matched := make(map[string][]financedomain.Transaction)
	skipped := 0

	for _, fee := range fees {
		orderID, ok := fee.OrderReference()
		if !ok {
			skipped++
			continue
		}

		if _, known := orderIDs[orderID]; !known {
			skipped++
			continue
		}

		matched[orderID] = append(matched[orderID], fee)
	}

	if skipped > 0 {
		log.L.WithFields(log.Fields{
			"skipped": skipped,
			"matched": len(matched),
		}).Debug("Tarifas sem pedido correspondente excluídas do cruzamento")
	}

	return matched
}

// sumFeeAmounts soma os valores casados como decimal puro, sem requantizar
// tarifa a tarifa. Pedido sem tarifa casada tem total zero, não erro.
func sumFeeAmounts(fees []financedomain.Transaction) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, fee := range fees {
		amount, err := decimal.NewFromString(fee.Amount.Value)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrMalformedAmount, fee.Amount.Value)
		}
		total = total.Add(amount)
	}

	return total, nil
}
