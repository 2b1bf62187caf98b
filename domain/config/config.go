package config

import (
	"fmt"
	"log"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	ErrorNoTreasuryAddress       = fmt.Errorf("no treasury address is defined")
	ErrorNoOwnerAddress          = fmt.Errorf("no owner address is defined")
	ErrorInvalidBackingRatio     = fmt.Errorf("backing ratio must be a positive integer")
	ErrorInvalidGenesisBalance   = fmt.Errorf("invalid genesis reserve balance")
	ErrorInvalidSnapshotInterval = fmt.Errorf("invalid time interval for snapshot process")
)

var (
	TrailingSlashRE = regexp.MustCompile("/+$")
)

var (
	dbUri string

	treasuryAddress string
	ownerAddress    string

	managedTokenAddress  string
	managedTokenDecimals int
	reserveAssetAddress  string
	reserveAssetDecimals int

	backingRatio          *big.Int
	genesisReserveBalance *big.Int

	snapshotInterval time.Duration
	metricsAddress   string
	maxRetry         int
)

func ReadConfig(filePath string) {
	viper.SetConfigFile(filePath)

	viper.SetDefault("managed_token_address", "hTRY")
	viper.SetDefault("managed_token_decimals", 18)
	viper.SetDefault("reserve_asset_address", "RSV")
	viper.SetDefault("reserve_asset_decimals", 18)
	viper.SetDefault("backing_ratio", "1000000000000")
	viper.SetDefault("genesis_reserve_balance", "0")
	viper.SetDefault("snapshot_interval", "1m")
	viper.SetDefault("metrics_address", ":9090")
	viper.SetDefault("max_retry", 5)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("⚠️ Failed reading config file: %v\n", err.Error())
	}

	err := initializeVariables()
	if err != nil {
		log.Fatalf("Configuration error - %v\n", err.Error())
	}
}

// This method processes the configuration parameters and keeps the processed
// values in some variables for later accesses rapidly.
func initializeVariables() error {
	var err error

	// Database stuff
	dbUri = TrailingSlashRE.ReplaceAllString(viper.GetString("service_db_uri"), "")

	// Treasury stuff
	treasuryAddress = strings.TrimSpace(viper.GetString("treasury_address"))
	if treasuryAddress == "" {
		return ErrorNoTreasuryAddress
	}

	ownerAddress = strings.TrimSpace(viper.GetString("owner_address"))
	if ownerAddress == "" {
		return ErrorNoOwnerAddress
	}

	// Token stuff
	managedTokenAddress = strings.TrimSpace(viper.GetString("managed_token_address"))
	managedTokenDecimals = viper.GetInt("managed_token_decimals")
	reserveAssetAddress = strings.TrimSpace(viper.GetString("reserve_asset_address"))
	reserveAssetDecimals = viper.GetInt("reserve_asset_decimals")

	backingRatio, err = parsePositiveInteger(viper.GetString("backing_ratio"))
	if err != nil {
		return ErrorInvalidBackingRatio
	}

	genesisReserveBalance = new(big.Int)
	_, ok := genesisReserveBalance.SetString(strings.TrimSpace(viper.GetString("genesis_reserve_balance")), 10)
	if !ok || genesisReserveBalance.Sign() < 0 {
		return ErrorInvalidGenesisBalance
	}

	//---------------------------------------------------------------
	// snapshot interval
	strValue := viper.GetString("snapshot_interval")
	snapshotInterval, err = time.ParseDuration(strValue)
	if err != nil {
		return ErrorInvalidSnapshotInterval
	}

	metricsAddress = strings.TrimSpace(viper.GetString("metrics_address"))
	maxRetry = viper.GetInt("max_retry")

	return nil
}

func parsePositiveInteger(strValue string) (*big.Int, error) {
	value := new(big.Int)
	_, ok := value.SetString(strings.TrimSpace(strValue), 10)
	if !ok || value.Sign() <= 0 {
		return nil, fmt.Errorf("not a positive integer: %v", strValue)
	}
	return value, nil
}

//-------------------------------------------------------------------
// Normal configuration values

func GetDbUri() string {
	return dbUri
}

func GetTreasuryAddress() string {
	return treasuryAddress
}

func GetOwnerAddress() string {
	return ownerAddress
}

func GetManagedTokenAddress() string {
	return managedTokenAddress
}

func GetManagedTokenDecimals() int {
	return managedTokenDecimals
}

func GetReserveAssetAddress() string {
	return reserveAssetAddress
}

func GetReserveAssetDecimals() int {
	return reserveAssetDecimals
}

func GetBackingRatio() *big.Int {
	return new(big.Int).Set(backingRatio)
}

func GetGenesisReserveBalance() *big.Int {
	return new(big.Int).Set(genesisReserveBalance)
}

func GetSnapshotInterval() time.Duration {
	return snapshotInterval
}

func GetMetricsAddress() string {
	return metricsAddress
}

func GetMaxRetry() int {
	return maxRetry
}
