package request

type BridgeRequest struct {
	RecipientAddress    string `json:"recipientAddress"`
	AmountStroops       uint64 `json:"amountStroops"`
	DestinationChainKey string `json:"destinationChainKey"`
}
