/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"treasury/domain/config"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "treasury",
	Short: "Reserve-backed treasury engine",
	Long: `Runs the reserve-backed treasury engine: it tracks the reserve asset
balance, derives the mint ceiling for the managed token, and pays out
proportional redemptions across the basket of held assets.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
}

func initConfig() {
	config.ReadConfig(cfgFile)
}
