package response

import (
	bridgeCore "github.com/Ethernal-Tech/stellar-evm-bridge/bridge/core"
	oracleCore "github.com/Ethernal-Tech/stellar-evm-bridge/oracle_stellar/core"
)

type ErrorResponse struct {
	Err string `json:"err"`
}

type AddressResponse struct {
	Address string `json:"address"`
}

type TxHashResponse struct {
	TxHash string `json:"txHash"`
}

type EventsResponse struct {
	Events []oracleCore.ContractEvent `json:"events"`
}

type BridgeResultResponse struct {
	RecipientAddress string `json:"recipientAddress"`
	AmountStroops    uint64 `json:"amountStroops"`
	TxHash           string `json:"txHash"`
	Degraded         bool   `json:"degraded"`
	Err              string `json:"err,omitempty"`
}

type BridgeResponse struct {
	Results []BridgeResultResponse `json:"results"`
}

func NewBridgeResponse(results []bridgeCore.IntentResult) BridgeResponse {
	resultResponses := make([]BridgeResultResponse, 0, len(results))

	for _, result := range results {
		resultResponse := BridgeResultResponse{
			RecipientAddress: result.Intent.RecipientAddress,
			AmountStroops:    result.Intent.AmountStroops,
			TxHash:           result.TxHash,
			Degraded:         result.Degraded,
		}
		if result.Err != nil {
			resultResponse.Err = result.Err.Error()
		}

		resultResponses = append(resultResponses, resultResponse)
	}

	return BridgeResponse{Results: resultResponses}
}
