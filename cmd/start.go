/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"treasury/domain"
	"treasury/domain/config"
	"treasury/domain/util"
	"treasury/interface/exporter"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var quit = make(chan bool)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Starts the treasury engine",
	Long:  `Starts the treasury engine's tasks. To stop it, run 'stop' command.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("start called.")

		defaultDependencyInject()

		go serveMetrics()
		snapshotTicker := schedule(snapshot, config.GetSnapshotInterval(), quit)

		signal.Ignore()
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		s := <-stop
		log.Printf("Got signal '%v', stopping", s)

		snapshotTicker.Stop()
	},
}

func schedule(task func(), interval time.Duration, done chan bool) *time.Ticker {
	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {

			case <-ticker.C:
				ticker.Stop()
				task()
				ticker.Reset(interval)

			case <-done:
				return
			}
		}
	}()
	return ticker
}

func snapshot() {
	excess := treasuryInteractor.ExcessReserves()
	exporter.SetExcessReserves(excess)

	balance := treasuryState.ReserveAsset.BalanceOf(treasuryState.Address)
	supply := managedToken.TotalSupply()
	log.Printf("excess reserves: %v (reserve %v, supply %v)\n",
		util.AmountString(excess, managedToken.Decimals(), managedToken.Address()),
		util.BaseUnitString(balance),
		util.BaseUnitString(supply))

	if snapshotRepository == nil {
		return
	}

	err := snapshotRepository.Insert(&domain.ReserveSnapshot{
		Id:             uuid.NewString(),
		ReserveBalance: balance,
		TotalSupply:    supply,
		Excess:         excess,
		CreateTime:     time.Now(),
	})
	if err != nil {
		log.Printf("🔴 storing snapshot - %v\n", err.Error())
	}
}

func serveMetrics() {
	http.Handle("/metrics", promhttp.Handler())
	err := http.ListenAndServe(config.GetMetricsAddress(), nil)
	if err != nil {
		log.Printf("🔴 serving metrics - %v\n", err.Error())
	}
}

func init() {
	rootCmd.AddCommand(startCmd)

	// Here you will define your flags and configuration settings.

	// Cobra supports Persistent Flags which will work for this command
	// and all subcommands, e.g.:
	// startCmd.PersistentFlags().String("foo", "", "A help for foo")

	// Cobra supports local flags which will only run when this command
	// is called directly, e.g.:
	// startCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
}
