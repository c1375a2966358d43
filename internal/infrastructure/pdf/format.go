package pdf

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "Jan 02, 2006"

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatAmount(symbol string, amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + symbol + amount.Abs().StringFixed(2)
	}
	return symbol + amount.StringFixed(2)
}

func formatPaymentTerms(days int) string {
	if days <= 0 {
		return "Due on receipt"
	}
	return fmt.Sprintf("Net %d days", days)
}
