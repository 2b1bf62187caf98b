package util

import (
	"fmt"
	"math/big"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// AmountString renders a base-unit amount as a whole-token figure. Display
// only; the core never leaves integer arithmetic.
func AmountString(amount *big.Int, decimals int, symbol string) string {
	return fmt.Sprintf("%v %v", decimal.NewFromBigInt(amount, -int32(decimals)).String(), symbol)
}

// BaseUnitString renders a base-unit amount with comma grouping.
func BaseUnitString(amount *big.Int) string {
	return humanize.BigComma(new(big.Int).Set(amount))
}
