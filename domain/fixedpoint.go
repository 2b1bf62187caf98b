package domain

import "math/big"

// All invariant-bearing arithmetic is truncating integer math. Divisions
// truncate toward zero; rounding loss stays with the treasury.

// DefaultBackingRatio is the reserve-asset value backing one managed-token
// base unit, fixed-point at 1e-18 scale. 1e12 corresponds to a ratio of
// 0.000001 reserve units per managed unit.
var DefaultBackingRatio = PowerOfTen(12)

var oneHundred = big.NewInt(100)

func PowerOfTen(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// UnitScale is the base-unit scale of a token with the given decimals.
func UnitScale(decimals int) *big.Int {
	return PowerOfTen(decimals)
}

// MulDiv computes x*y/denominator, truncating toward zero.
func MulDiv(x *big.Int, y *big.Int, denominator *big.Int) *big.Int {
	product := new(big.Int).Mul(x, y)
	return product.Quo(product, denominator)
}

// ApplyPercent computes amount*percent/100, truncating toward zero.
func ApplyPercent(amount *big.Int, percent int64) *big.Int {
	return MulDiv(amount, big.NewInt(percent), oneHundred)
}
