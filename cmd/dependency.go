package cmd

import (
	"database/sql"
	"log"
	"time"

	"treasury/domain"
	"treasury/domain/config"
	"treasury/infrastructure/dbhandler"
	"treasury/infrastructure/ledger"
	"treasury/interface/exporter"
	"treasury/interface/repository"
	"treasury/usecase"
)

func defaultDependencyInject() {
	exporter.Init()

	var eventRepository *repository.EventRepository

	dbURI := config.GetDbUri()
	if dbURI != "" {
		var err error
		dbPool, err = sql.Open("postgres", dbURI)
		if err != nil {
			log.Fatal(err)
		}
		dbPool.SetMaxOpenConns(20)
		dbPool.SetMaxIdleConns(5)
		dbPool.SetConnMaxIdleTime(1 * time.Minute)
		dbPool.SetConnMaxLifetime(4 * time.Hour)

		dbHandler := dbhandler.DBHandler{DB: dbPool, MaxRetry: config.GetMaxRetry()}
		eventRepository = repository.NewEventRepository(dbHandler)
		snapshotRepository = repository.NewSnapshotRepository(dbHandler)
	} else {
		log.Printf("🔵 no database configured, events and snapshots are not persisted\n")
	}

	registry = ledger.NewRegistry()

	reserveAsset := ledger.NewToken(config.GetReserveAssetAddress(), config.GetReserveAssetDecimals())
	managedToken = ledger.NewManagedToken(config.GetManagedTokenAddress(),
		config.GetManagedTokenDecimals(), reserveAsset.Address())
	registry.Add(reserveAsset)
	registry.Add(managedToken)

	genesis := config.GetGenesisReserveBalance()
	if genesis.Sign() > 0 {
		reserveAsset.Mint(config.GetTreasuryAddress(), genesis)
	}

	treasuryState = domain.NewTreasuryState(config.GetTreasuryAddress(), config.GetOwnerAddress())
	treasuryState.ReserveAsset = reserveAsset

	accountingInteractor = usecase.NewAccountingInteractor(managedToken, treasuryState, config.GetBackingRatio())
	mintInteractor := usecase.NewMintInteractor(managedToken, accountingInteractor, treasuryState)
	redeemInteractor := usecase.NewRedeemInteractor(managedToken, treasuryState, registry)

	// A nil *EventRepository in an EventRecorder interface would not compare
	// equal to nil inside the interactor, so pass the interface only when a
	// repository exists.
	var recorder usecase.EventRecorder
	if eventRepository != nil {
		recorder = eventRepository
	}

	treasuryInteractor = usecase.NewTreasuryInteractor(managedToken, treasuryState,
		accountingInteractor, mintInteractor, redeemInteractor, recorder)
}

var dbPool *sql.DB
var registry *ledger.Registry
var managedToken *ledger.Token
var treasuryState *domain.TreasuryState
var accountingInteractor *usecase.AccountingInteractor
var treasuryInteractor *usecase.TreasuryInteractor
var snapshotRepository *repository.SnapshotRepository
