package core

import (
	oracleCore "github.com/Ethernal-Tech/stellar-evm-bridge/oracle_stellar/core"
)

// IntentResult is the outcome of one intent. A failure in one intent never
// aborts the rest of the batch, so every intent produces exactly one result.
type IntentResult struct {
	Intent   oracleCore.TransferIntent `json:"intent"`
	TxHash   string                    `json:"txHash"`
	Degraded bool                      `json:"degraded"`
	Err      error                     `json:"-"`
}
