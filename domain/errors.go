package domain

import "fmt"

var (
	ErrorUnauthorized        = fmt.Errorf("caller lacks the required role")
	ErrorInvalidPercentage   = fmt.Errorf("payout percent must be less than 100")
	ErrorInsufficientBacking = fmt.Errorf("mint amount exceeds excess reserves")
	ErrorRedemptionInactive  = fmt.Errorf("redemption is not active")
	ErrorDivideByZero        = fmt.Errorf("total supply is zero")
	ErrorReentrantCall       = fmt.Errorf("reentrant call into treasury")
	ErrorUncoveredAsset      = fmt.Errorf("asset is not covered by the ledger journal")

	ErrorInsufficientBalance      = fmt.Errorf("insufficient asset balance")
	ErrorInsufficientTokenBalance = fmt.Errorf("insufficient token balance or allowance")

	ErrorNegativeAmount = fmt.Errorf("amount must not be negative")
)
