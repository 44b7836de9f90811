package bridgemanager

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/Ethernal-Tech/stellar-evm-bridge/bridge/core"
	oracleCore "github.com/Ethernal-Tech/stellar-evm-bridge/oracle_stellar/core"
	"github.com/Ethernal-Tech/stellar-evm-bridge/telemetry"
)

// BridgeManagerImpl polls the source chain for new contract events and feeds
// the extracted intents through the orchestrator. Each cycle advances the
// ledger cursor only after its events were persisted, so a crash replays the
// window instead of skipping it.
type BridgeManagerImpl struct {
	appConfig     *core.AppConfig
	eventsFetcher oracleCore.EventsFetcher
	extractor     oracleCore.IntentExtractor
	orchestrator  core.Orchestrator
	db            core.Database
	logger        hclog.Logger
}

var _ core.BridgeManager = (*BridgeManagerImpl)(nil)

func NewBridgeManager(
	appConfig *core.AppConfig,
	eventsFetcher oracleCore.EventsFetcher,
	extractor oracleCore.IntentExtractor,
	orchestrator core.Orchestrator,
	db core.Database,
	logger hclog.Logger,
) *BridgeManagerImpl {
	return &BridgeManagerImpl{
		appConfig:     appConfig,
		eventsFetcher: eventsFetcher,
		extractor:     extractor,
		orchestrator:  orchestrator,
		db:            db,
		logger:        logger,
	}
}

func (bm *BridgeManagerImpl) Start(ctx context.Context) {
	bm.logger.Debug("Bridge manager started")

	ticker := time.NewTicker(time.Millisecond * time.Duration(bm.appConfig.Stellar.PullTimeMilis))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if err := bm.execute(ctx); err != nil {
			bm.logger.Error("execute failed", "err", err)
		}
	}
}

func (bm *BridgeManagerImpl) execute(ctx context.Context) error {
	destChainKey := bm.appConfig.Bridge.DestinationChainKey

	startLedger, err := bm.db.GetLastProcessedLedger()
	if err != nil {
		return fmt.Errorf("failed to get last processed ledger from db: %w", err)
	}

	if startLedger == 0 {
		startLedger = bm.appConfig.Stellar.StartLedger
	}

	rawBatch, err := bm.eventsFetcher.FetchEvents(ctx, startLedger, destChainKey)
	if err != nil {
		return fmt.Errorf("failed to fetch events: %w", err)
	}

	intents, events := bm.extractor.ExtractIntents(rawBatch, destChainKey)

	telemetry.UpdateOracleEventsFetchedCounter(destChainKey, len(events))
	telemetry.UpdateOracleIntentsExtractedCounter(destChainKey, len(intents))

	if len(events) > 0 {
		if err := bm.db.SaveEvents(events); err != nil {
			return fmt.Errorf("failed to save events into db: %w", err)
		}

		bm.logger.Info("Events persisted", "count", len(events), "ledger", startLedger)
	}

	if len(intents) > 0 {
		results := bm.orchestrator.ProcessBatch(ctx, intents)

		for _, result := range results {
			if result.Err != nil {
				bm.logger.Error("intent failed",
					"recipient", result.Intent.RecipientAddress, "err", result.Err)
			}
		}
	}

	nextLedger := startLedger + bm.appConfig.Stellar.LedgerWindow + 1
	if err := bm.db.AddLastProcessedLedger(nextLedger); err != nil {
		return fmt.Errorf("failed to insert last processed ledger into db: %w", err)
	}

	telemetry.UpdateOracleLastProcessedLedger(destChainKey, nextLedger)

	return nil
}
