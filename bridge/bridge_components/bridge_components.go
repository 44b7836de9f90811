package bridgecomponents

import (
	"context"
	"errors"
	"fmt"

	loggerInfra "github.com/Ethernal-Tech/cardano-infrastructure/logger"
	"github.com/hashicorp/go-hclog"

	"github.com/Ethernal-Tech/stellar-evm-bridge/api"
	apiCore "github.com/Ethernal-Tech/stellar-evm-bridge/api/core"
	"github.com/Ethernal-Tech/stellar-evm-bridge/api/controllers"
	"github.com/Ethernal-Tech/stellar-evm-bridge/bridge"
	bridgemanager "github.com/Ethernal-Tech/stellar-evm-bridge/bridge/bridge_manager"
	"github.com/Ethernal-Tech/stellar-evm-bridge/bridge/core"
	databaseaccess "github.com/Ethernal-Tech/stellar-evm-bridge/bridge/database_access"
	"github.com/Ethernal-Tech/stellar-evm-bridge/common"
	ethrpchelper "github.com/Ethernal-Tech/stellar-evm-bridge/eth/rpchelper"
	ratefetcher "github.com/Ethernal-Tech/stellar-evm-bridge/exchange_rate_service"
	"github.com/Ethernal-Tech/stellar-evm-bridge/oracle_stellar/chain"
	"github.com/Ethernal-Tech/stellar-evm-bridge/oracle_stellar/processor"
	"github.com/Ethernal-Tech/stellar-evm-bridge/telemetry"
)

// BridgeComponents owns every long-running part of the service: the polling
// bridge manager, the http api and the telemetry endpoints.
type BridgeComponents struct {
	appConfig *core.AppConfig
	db        core.Database
	telemetry *telemetry.Telemetry
	manager   core.BridgeManager
	api       apiCore.API
	logger    hclog.Logger

	ctx       context.Context
	cancelCtx context.CancelFunc
}

func NewBridgeComponents(appConfig *core.AppConfig) (*BridgeComponents, error) {
	appConfig.FillOut()

	logger, err := loggerInfra.NewLogger(appConfig.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := databaseaccess.NewDatabase(appConfig.Bridge.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open bridge database: %w", err)
	}

	seed, err := common.DecodeHex(appConfig.Bridge.Seed)
	if err != nil || len(seed) == 0 {
		return nil, errors.Join(errors.New("bridge seed is not valid hex"), err)
	}

	signer, err := bridge.NewLocalSigner(seed)
	if err != nil {
		return nil, err
	}

	httpFetcher := common.NewHTTPFetcher(nil)
	aggregator := ethrpchelper.NewRPCAggregator(logger.Named("rpc_aggregator"))

	orchestrator := bridge.NewOrchestrator(
		&appConfig.Bridge,
		signer,
		ethrpchelper.NewNonceService(aggregator, logger.Named("nonce_service")),
		ethrpchelper.NewSubmitter(aggregator, logger.Named("submitter")),
		ratefetcher.NewRateFetcher(&appConfig.ExchangeRate, httpFetcher, logger.Named("rate_fetcher")),
		logger.Named("orchestrator"),
	)

	manager := bridgemanager.NewBridgeManager(
		appConfig,
		chain.NewEventsFetcher(&appConfig.Stellar, httpFetcher, logger.Named("events_fetcher")),
		processor.NewIntentsProcessor(logger.Named("intents_processor")),
		orchestrator,
		db,
		logger.Named("bridge_manager"),
	)

	ctx, cancelCtx := context.WithCancel(context.Background())

	apiObj, err := api.NewAPI(ctx, appConfig.APIConfig, []apiCore.APIController{
		controllers.NewBridgeController(appConfig, orchestrator, db, logger.Named("bridge_controller")),
	}, logger.Named("api"))
	if err != nil {
		cancelCtx()

		return nil, fmt.Errorf("failed to create api: %w", err)
	}

	return &BridgeComponents{
		appConfig: appConfig,
		db:        db,
		telemetry: telemetry.NewTelemetry(appConfig.Telemetry, logger.Named("telemetry")),
		manager:   manager,
		api:       apiObj,
		logger:    logger,
		ctx:       ctx,
		cancelCtx: cancelCtx,
	}, nil
}

func (bc *BridgeComponents) Start() error {
	bc.logger.Debug("Starting bridge components")

	if err := bc.telemetry.Start(); err != nil {
		return fmt.Errorf("failed to start telemetry: %w", err)
	}

	go bc.manager.Start(bc.ctx)
	go bc.api.Start()

	bc.logger.Debug("Started bridge components")

	return nil
}

func (bc *BridgeComponents) Stop() error {
	bc.logger.Info("Stopping bridge components")

	bc.cancelCtx()

	errs := []error{
		bc.api.Dispose(),
		bc.telemetry.Close(context.Background()),
		bc.db.Close(),
	}

	bc.logger.Info("Stopped bridge components")

	return errors.Join(errs...)
}
