package core

import (
	"context"
	"math/big"

	oracleCore "github.com/Ethernal-Tech/stellar-evm-bridge/oracle_stellar/core"
)

// Signer is the key-holding capability. Implementations never expose the
// private key: they sign a 32-byte digest and report the public key for a
// caller-scoped derivation path.
type Signer interface {
	SignDigest(
		ctx context.Context, digest [32]byte, keyID string, derivationPath [][]byte,
	) (r [32]byte, s [32]byte, err error)
	PublicKey(ctx context.Context, keyID string, derivationPath [][]byte) ([]byte, error)
}

type Database interface {
	SaveEvents(events []oracleCore.ContractEvent) error
	GetEvent(id string) (*oracleCore.ContractEvent, error)
	GetAllEvents() ([]oracleCore.ContractEvent, error)
	AddLastProcessedLedger(ledger uint32) error
	GetLastProcessedLedger() (uint32, error)
	Close() error
}

// Orchestrator runs the full intent pipeline: amount conversion, nonce
// fetch, transaction assembly, signing and submission.
type Orchestrator interface {
	ProcessIntent(ctx context.Context, intent oracleCore.TransferIntent) IntentResult
	ProcessBatch(ctx context.Context, intents []oracleCore.TransferIntent) []IntentResult
	DeriveSignerAddress(ctx context.Context, derivationPath [][]byte) (string, error)
	LatestTxHash() string
}

type BridgeManager interface {
	Start(ctx context.Context)
}

// RateConverter prices a stroop amount in destination-chain wei. The degraded
// flag reports that a fallback rate was used instead of a live quote.
type RateConverter interface {
	XLMToWei(ctx context.Context, stroops uint64) (*big.Int, bool)
}
