package ethrpchelper

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/Ethernal-Tech/stellar-evm-bridge/eth"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/hashicorp/go-hclog"
)

var ErrNoProviders = errors.New("chain profile has no rpc providers configured")

// ProviderResult is a single provider's answer to a JSON-RPC call. Result is
// canonicalized so that answers from different providers can be compared
// byte-for-byte.
type ProviderResult struct {
	URL    string
	Result json.RawMessage
	Err    error
}

// IRPCAggregator executes a JSON-RPC method against every provider endpoint
// of a chain profile and reports the per-provider outcomes. It never picks a
// winner itself; consumers decide what consistency means for their method.
type IRPCAggregator interface {
	Call(ctx context.Context, chain eth.ChainProfile, method string, params ...interface{}) ([]ProviderResult, error)
}

type RPCAggregatorImpl struct {
	clients map[string]*rpc.Client
	mutex   sync.Mutex
	logger  hclog.Logger
}

var _ IRPCAggregator = (*RPCAggregatorImpl)(nil)

func NewRPCAggregator(logger hclog.Logger) *RPCAggregatorImpl {
	return &RPCAggregatorImpl{
		clients: map[string]*rpc.Client{},
		logger:  logger,
	}
}

func (a *RPCAggregatorImpl) Call(
	ctx context.Context, chain eth.ChainProfile, method string, params ...interface{},
) ([]ProviderResult, error) {
	if len(chain.RPCURLs) == 0 {
		return nil, ErrNoProviders
	}

	results := make([]ProviderResult, 0, len(chain.RPCURLs))

	for _, url := range chain.RPCURLs {
		client, err := a.getClient(ctx, url)
		if err != nil {
			results = append(results, ProviderResult{URL: url, Err: err})

			continue
		}

		var raw json.RawMessage

		if err := client.CallContext(ctx, &raw, method, params...); err != nil {
			a.logger.Debug("rpc call failed", "url", url, "method", method, "err", err)

			results = append(results, ProviderResult{URL: url, Err: err})

			continue
		}

		results = append(results, ProviderResult{URL: url, Result: normalizeJSON(raw)})
	}

	return results, nil
}

func (a *RPCAggregatorImpl) getClient(ctx context.Context, url string) (*rpc.Client, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if client, exists := a.clients[url]; exists {
		return client, nil
	}

	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, err
	}

	a.clients[url] = client

	return client, nil
}

// normalizeJSON re-marshals a raw message so that key order and whitespace
// never make two equal provider answers compare unequal.
func normalizeJSON(raw json.RawMessage) json.RawMessage {
	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return raw
	}

	normalized, err := json.Marshal(value)
	if err != nil {
		return raw
	}

	return normalized
}
