package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Ethernal-Tech/stellar-evm-bridge/common"
	"github.com/Ethernal-Tech/stellar-evm-bridge/oracle_stellar/core"
	"github.com/hashicorp/go-hclog"
)

const (
	getEventsMethod  = "getEvents"
	getEventsID      = 8675309
	maxResponseBytes = 2_000_000
)

type getEventsRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint32          `json:"id"`
	Method  string          `json:"method"`
	Params  getEventsParams `json:"params"`
}

type getEventsParams struct {
	StartLedger uint32            `json:"startLedger"`
	EndLedger   uint32            `json:"endLedger"`
	XDRFormat   string            `json:"xdrFormat"`
	Filters     []eventFilter     `json:"filters"`
	Pagination  paginationOptions `json:"pagination"`
}

type eventFilter struct {
	Type        string   `json:"type"`
	ContractIDs []string `json:"contractIds"`
	Topics      []string `json:"topics"`
}

type paginationOptions struct {
	Limit uint32 `json:"limit"`
}

type EventsFetcherImpl struct {
	config  *core.StellarConfig
	fetcher common.HTTPFetcher
	logger  hclog.Logger
}

var _ core.EventsFetcher = (*EventsFetcherImpl)(nil)

func NewEventsFetcher(
	config *core.StellarConfig, fetcher common.HTTPFetcher, logger hclog.Logger,
) *EventsFetcherImpl {
	return &EventsFetcherImpl{
		config:  config,
		fetcher: fetcher,
		logger:  logger,
	}
}

// FetchEvents queries the bridge contract events in the ledger range
// [startLedger, startLedger+window] and returns the normalized response body.
func (f *EventsFetcherImpl) FetchEvents(
	ctx context.Context, startLedger uint32, destChainKey string,
) ([]byte, error) {
	network := f.config.NetworkFor(destChainKey)

	request := getEventsRequest{
		JSONRPC: "2.0",
		ID:      getEventsID,
		Method:  getEventsMethod,
		Params: getEventsParams{
			StartLedger: startLedger,
			EndLedger:   startLedger + f.config.LedgerWindow,
			XDRFormat:   "json",
			Filters: []eventFilter{{
				Type:        "contract",
				ContractIDs: []string{network.ContractID},
				Topics:      []string{},
			}},
			Pagination: paginationOptions{Limit: f.config.EventLimit},
		},
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize getEvents request: %w", err)
	}

	f.logger.Debug("fetching stellar events",
		"ledger", startLedger, "contract", network.ContractID, "url", network.RPCURL)

	response, err := f.fetcher.Fetch(ctx, common.FetchRequest{
		URL:              network.RPCURL,
		Method:           http.MethodPost,
		Headers:          map[string]string{"Content-Type": "application/json"},
		Body:             body,
		MaxResponseBytes: maxResponseBytes,
		Normalize:        NormalizeEventsResponse,
	})
	if err != nil {
		return nil, fmt.Errorf("getEvents request failed: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("getEvents request returned status %d", response.StatusCode)
	}

	return response.Body, nil
}

// NormalizeEventsResponse strips the volatile fields from a getEvents
// response so that independent executions of the same query agree
// byte-for-byte: the request id, the latest ledger (changes every few
// seconds), the pagination cursor and the provider metadata links.
func NormalizeEventsResponse(body []byte) []byte {
	var value map[string]interface{}
	if err := json.Unmarshal(body, &value); err != nil {
		return body
	}

	delete(value, "id")

	if result, ok := value["result"].(map[string]interface{}); ok {
		delete(result, "latestLedger")
		delete(result, "cursor")
		delete(result, "_links")
		delete(result, "_meta")
	}

	normalized, err := json.Marshal(value)
	if err != nil {
		return body
	}

	return normalized
}
