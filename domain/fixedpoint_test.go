package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitScale(t *testing.T) {
	assert.Equal(t, "1", UnitScale(0).String())
	assert.Equal(t, "1000000", UnitScale(6).String())
	assert.Equal(t, "1000000000000000000", UnitScale(18).String())
}

func TestMulDivTruncatesTowardZero(t *testing.T) {
	result := MulDiv(big.NewInt(7), big.NewInt(3), big.NewInt(2))
	assert.Equal(t, "10", result.String())

	result = MulDiv(big.NewInt(-7), big.NewInt(3), big.NewInt(2))
	assert.Equal(t, "-10", result.String())

	result = MulDiv(big.NewInt(1), big.NewInt(1), big.NewInt(3))
	assert.Equal(t, "0", result.String())
}

func TestMulDivDoesNotOverflow(t *testing.T) {
	// 1e18 * 1e18 exceeds 64 bits by far.
	scale := UnitScale(18)
	result := MulDiv(scale, scale, big.NewInt(1))
	assert.Equal(t, UnitScale(36).String(), result.String())
}

func TestApplyPercent(t *testing.T) {
	assert.Equal(t, "62", ApplyPercent(big.NewInt(125), 50).String())
	assert.Equal(t, "0", ApplyPercent(big.NewInt(125), 0).String())
	assert.Equal(t, "123", ApplyPercent(big.NewInt(125), 99).String())
}

func TestDefaultBackingRatio(t *testing.T) {
	assert.Equal(t, "1000000000000", DefaultBackingRatio.String())
}
