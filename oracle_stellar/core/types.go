package core

import "encoding/json"

// StroopsPerXLM is the number of minor units in one whole XLM.
const StroopsPerXLM = 10_000_000

// ContractEvent is one event observed on the source-chain bridge contract.
// Value keeps the provider-controlled payload verbatim; only the processor
// interprets it.
type ContractEvent struct {
	ID         string          `cbor:"id" json:"id"`
	TxHash     string          `cbor:"tx" json:"txHash"`
	ContractID string          `cbor:"c" json:"contractId"`
	Ledger     uint32          `cbor:"l" json:"ledger"`
	Topic      []string        `cbor:"tp" json:"topic"`
	Value      json.RawMessage `cbor:"v" json:"valueJson"`
}

// TransferIntent is a fully extracted transfer request: who receives funds on
// the destination chain and how much was locked on the source chain.
type TransferIntent struct {
	RecipientAddress    string `json:"recipientAddress"`
	AmountStroops       uint64 `json:"amountStroops"`
	DestinationChainKey string `json:"destinationChainKey"`
}
