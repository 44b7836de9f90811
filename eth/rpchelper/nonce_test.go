package ethrpchelper

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Ethernal-Tech/stellar-evm-bridge/eth"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func TestNonceServiceNextNonce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	addr := common.HexToAddress("0x4f159ACaC4105822E3201674FD2323320Bb9dd38")
	chain := eth.ResolveChainProfile(eth.ChainKeyBase)
	testError := errors.New("test err")

	t.Run("consistent value", func(t *testing.T) {
		t.Parallel()

		aggregatorMock := &RPCAggregatorMock{}
		aggregatorMock.On("Call", ctx, chain, "eth_getTransactionCount", addr, "latest").Return([]ProviderResult{
			{URL: "a", Result: json.RawMessage(`"0x5"`)},
			{URL: "b", Result: json.RawMessage(`"0x5"`)},
		}, nil)

		nonce, err := NewNonceService(aggregatorMock, hclog.NewNullLogger()).NextNonce(ctx, addr, chain)
		require.NoError(t, err)
		require.Equal(t, uint64(5), nonce)
	})

	t.Run("all providers report errors", func(t *testing.T) {
		t.Parallel()

		aggregatorMock := &RPCAggregatorMock{}
		aggregatorMock.On("Call", ctx, chain, "eth_getTransactionCount", addr, "latest").Return([]ProviderResult{
			{URL: "a", Err: testError},
		}, nil)

		_, err := NewNonceService(aggregatorMock, hclog.NewNullLogger()).NextNonce(ctx, addr, chain)
		require.Error(t, err)

		var fetchErr *NonceFetchError
		require.ErrorAs(t, err, &fetchErr)
	})

	t.Run("providers disagree on value", func(t *testing.T) {
		t.Parallel()

		aggregatorMock := &RPCAggregatorMock{}
		aggregatorMock.On("Call", ctx, chain, "eth_getTransactionCount", addr, "latest").Return([]ProviderResult{
			{URL: "a", Result: json.RawMessage(`"0x5"`)},
			{URL: "b", Result: json.RawMessage(`"0x6"`)},
		}, nil)

		_, err := NewNonceService(aggregatorMock, hclog.NewNullLogger()).NextNonce(ctx, addr, chain)
		require.Error(t, err)

		var inconsistentErr *NonceInconsistentError
		require.ErrorAs(t, err, &inconsistentErr)
		require.Contains(t, inconsistentErr.Details, "0x5")
		require.Contains(t, inconsistentErr.Details, "0x6")
	})

	t.Run("mixed success and error is inconsistent", func(t *testing.T) {
		t.Parallel()

		aggregatorMock := &RPCAggregatorMock{}
		aggregatorMock.On("Call", ctx, chain, "eth_getTransactionCount", addr, "latest").Return([]ProviderResult{
			{URL: "a", Result: json.RawMessage(`"0x5"`)},
			{URL: "b", Err: testError},
		}, nil)

		_, err := NewNonceService(aggregatorMock, hclog.NewNullLogger()).NextNonce(ctx, addr, chain)
		require.Error(t, err)

		var inconsistentErr *NonceInconsistentError
		require.ErrorAs(t, err, &inconsistentErr)
	})

	t.Run("malformed payload", func(t *testing.T) {
		t.Parallel()

		aggregatorMock := &RPCAggregatorMock{}
		aggregatorMock.On("Call", ctx, chain, "eth_getTransactionCount", addr, "latest").Return([]ProviderResult{
			{URL: "a", Result: json.RawMessage(`"not-hex"`)},
		}, nil)

		_, err := NewNonceService(aggregatorMock, hclog.NewNullLogger()).NextNonce(ctx, addr, chain)
		require.Error(t, err)

		var fetchErr *NonceFetchError
		require.ErrorAs(t, err, &fetchErr)
	})
}
