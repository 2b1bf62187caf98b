package domain

import (
	"math/big"
	"time"
)

// ReserveSnapshot is one periodic observation of the accounting state,
// recorded by the scheduled snapshot task.
type ReserveSnapshot struct {
	Id             string    `json:"id"`
	ReserveBalance *big.Int  `json:"reserve_balance"`
	TotalSupply    *big.Int  `json:"total_supply"`
	Excess         *big.Int  `json:"excess"`
	CreateTime     time.Time `json:"create_time"`
}
