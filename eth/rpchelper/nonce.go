package ethrpchelper

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Ethernal-Tech/stellar-evm-bridge/eth"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hashicorp/go-hclog"
)

// INonceService fetches the next usable transaction sequence number for an
// address. Every call is a fresh query against the latest block: a stale
// nonce risks rejection or a double spend, and re-querying is cheap relative
// to signing.
type INonceService interface {
	NextNonce(ctx context.Context, addr common.Address, chain eth.ChainProfile) (uint64, error)
}

type NonceServiceImpl struct {
	aggregator IRPCAggregator
	logger     hclog.Logger
}

var _ INonceService = (*NonceServiceImpl)(nil)

func NewNonceService(aggregator IRPCAggregator, logger hclog.Logger) *NonceServiceImpl {
	return &NonceServiceImpl{
		aggregator: aggregator,
		logger:     logger,
	}
}

func (s *NonceServiceImpl) NextNonce(
	ctx context.Context, addr common.Address, chain eth.ChainProfile,
) (uint64, error) {
	results, err := s.aggregator.Call(ctx, chain, "eth_getTransactionCount", addr, "latest")
	if err != nil {
		return 0, &NonceFetchError{Cause: err}
	}

	var (
		errs      []error
		successes []ProviderResult
	)

	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", res.URL, res.Err))
		} else {
			successes = append(successes, res)
		}
	}

	if len(successes) == 0 {
		return 0, &NonceFetchError{Cause: errors.Join(errs...)}
	}

	if len(errs) > 0 {
		return 0, &NonceInconsistentError{Details: describeResults(results)}
	}

	for _, res := range successes[1:] {
		if !bytes.Equal(res.Result, successes[0].Result) {
			return 0, &NonceInconsistentError{Details: describeResults(results)}
		}
	}

	var hexValue string
	if err := json.Unmarshal(successes[0].Result, &hexValue); err != nil {
		return 0, &NonceFetchError{Cause: fmt.Errorf("unexpected transaction count payload: %w", err)}
	}

	nonce, err := hexutil.DecodeUint64(hexValue)
	if err != nil {
		return 0, &NonceFetchError{Cause: fmt.Errorf("unexpected transaction count value %q: %w", hexValue, err)}
	}

	s.logger.Debug("fetched transaction count", "addr", addr, "nonce", nonce)

	return nonce, nil
}

func describeResults(results []ProviderResult) string {
	var buf bytes.Buffer

	for i, res := range results {
		if i > 0 {
			buf.WriteString("; ")
		}

		if res.Err != nil {
			fmt.Fprintf(&buf, "%s: err=%v", res.URL, res.Err)
		} else {
			fmt.Fprintf(&buf, "%s: %s", res.URL, string(res.Result))
		}
	}

	return buf.String()
}
