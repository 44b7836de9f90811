package core

import "context"

type EventsFetcher interface {
	FetchEvents(ctx context.Context, startLedger uint32, destChainKey string) ([]byte, error)
}

// IntentExtractor parses an untrusted event batch into typed transfer
// intents. It never fails the batch: malformed events are dropped.
type IntentExtractor interface {
	ExtractIntents(rawBatch []byte, destChainKey string) ([]TransferIntent, []ContractEvent)
}
