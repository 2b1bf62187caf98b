/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"treasury/domain/util"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Prints the accounting state of the treasury",
	Run: func(cmd *cobra.Command, args []string) {
		defaultDependencyInject()

		balance := treasuryState.ReserveAsset.BalanceOf(treasuryState.Address)
		supply := managedToken.TotalSupply()
		excess := treasuryInteractor.ExcessReserves()

		fmt.Printf("treasury:        %v\n", treasuryState.Address)
		fmt.Printf("owner:           %v\n", treasuryState.Owner)
		fmt.Printf("reserve asset:   %v\n", treasuryState.ReserveAsset.Address())
		fmt.Printf("reserve balance: %v\n",
			util.AmountString(balance, treasuryState.ReserveAsset.Decimals(), treasuryState.ReserveAsset.Address()))
		fmt.Printf("total supply:    %v\n",
			util.AmountString(supply, managedToken.Decimals(), managedToken.Address()))
		fmt.Printf("excess reserves: %v\n",
			util.AmountString(excess, managedToken.Decimals(), managedToken.Address()))

		if !treasuryState.RedemptionActive {
			fmt.Printf("redemption:      inactive\n")
			return
		}
		fmt.Printf("redemption:      active at %v%%\n", treasuryState.PayoutPercent)
		for i, asset := range treasuryState.Basket {
			fmt.Printf("  basket #%02d:    %v\n", i+1, asset.Address())
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
