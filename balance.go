package finapigo

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ComputeBalance folds a statement history into a signed total: deposits
// add, withdrawals subtract. The sum is commutative, so callers may pass
// the statements in any order. A kind outside the closed set is a corrupt
// record and surfaces as an error rather than being skipped.
func ComputeBalance(sts []Statement) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, st := range sts {
		switch st.Kind {
		case OpDeposit:
			total = total.Add(st.Amount)
		case OpWithdraw:
			total = total.Sub(st.Amount)
		default:
			return decimal.Zero, fmt.Errorf("statement %s: unknown operation type %q", st.ID, st.Kind)
		}
	}
	return total, nil
}
