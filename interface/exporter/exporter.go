package exporter

import (
	"math/big"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	METRIC_MINT_COUNT     = "mint_count"
	METRIC_REDEEM_COUNT   = "redeem_count"
	METRIC_TRANSFER_COUNT = "transfer_count"
	METRIC_ERROR_COUNT    = "error_count"

	METRIC_EXCESS_RESERVES = "excess_reserves"
)

var (
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
)

func Init() {

	// --- Static Metrics: the metrics which are not depended on running configuration

	// Create metric spaces
	counters = make(map[string]prometheus.Counter)
	gauges = make(map[string]prometheus.Gauge)

	// Register metrics
	counterHelps := map[string]string{
		METRIC_MINT_COUNT:     "Counts the number of successful mints",
		METRIC_REDEEM_COUNT:   "Counts the number of successful redemptions",
		METRIC_TRANSFER_COUNT: "Counts the number of privileged treasury transfers",
		METRIC_ERROR_COUNT:    "Counts the number of failed treasury calls",
	}
	for name, help := range counterHelps {
		counter := prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "treasury",
			Subsystem: "engine",
			Name:      name,
			Help:      help,
		})
		prometheus.MustRegister(counter)
		counters[name] = counter
	}

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "treasury",
		Subsystem: "engine",
		Name:      METRIC_EXCESS_RESERVES,
		Help:      "Current mintable headroom in managed-token base units",
	})
	prometheus.MustRegister(gauge)
	gauges[METRIC_EXCESS_RESERVES] = gauge
}

func GetCounter(name string) prometheus.Counter {
	return counters[name]
}

func IncMintCount() {
	inc(METRIC_MINT_COUNT)
}

func IncRedeemCount() {
	inc(METRIC_REDEEM_COUNT)
}

func IncTransferCount() {
	inc(METRIC_TRANSFER_COUNT)
}

func IncErrorCount() {
	inc(METRIC_ERROR_COUNT)
}

func SetExcessReserves(excess *big.Int) {
	if gauges == nil {
		return
	}
	value, _ := new(big.Float).SetInt(excess).Float64()
	gauges[METRIC_EXCESS_RESERVES].Set(value)
}

// inc tolerates an uninitialized exporter so that library use without
// Init() stays metric-free instead of panicking.
func inc(name string) {
	if counters == nil {
		return
	}
	counters[name].Inc()
}
