package ethrpchelper

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Ethernal-Tech/stellar-evm-bridge/eth"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func TestSubmitterOutcomeClassification(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	chain := eth.ResolveChainProfile(eth.ChainKeyBase)

	const rawTx = "0x02f86c..."

	newSubmitter := func(results []ProviderResult) *SubmitterImpl {
		aggregatorMock := &RPCAggregatorMock{}
		aggregatorMock.On("Call", ctx, chain, "eth_sendRawTransaction", rawTx).Return(results, nil)

		return NewSubmitter(aggregatorMock, hclog.NewNullLogger())
	}

	t.Run("accepted with hash", func(t *testing.T) {
		t.Parallel()

		hash, err := newSubmitter([]ProviderResult{
			{URL: "a", Result: json.RawMessage(`"0xabc123"`)},
		}).Submit(ctx, rawTx, chain)
		require.NoError(t, err)
		require.Equal(t, "0xabc123", hash)
	})

	t.Run("accepted without hash", func(t *testing.T) {
		t.Parallel()

		_, err := newSubmitter([]ProviderResult{
			{URL: "a", Result: json.RawMessage(`null`)},
		}).Submit(ctx, rawTx, chain)
		require.ErrorIs(t, err, ErrNoTxHashInResponse)
	})

	t.Run("node rejections map to named kinds", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			nodeErr string
			kind    RejectionKind
		}{
			{"nonce too low", RejectionNonceTooLow},
			{"nonce too high", RejectionNonceTooHigh},
			{"insufficient funds for gas * price + value", RejectionInsufficientFunds},
		}

		for _, c := range cases {
			_, err := newSubmitter([]ProviderResult{
				{URL: "a", Err: errors.New(c.nodeErr)},
			}).Submit(ctx, rawTx, chain)
			require.Error(t, err)

			var rejected *SubmissionRejectedError
			require.ErrorAs(t, err, &rejected)
			require.Equal(t, c.kind, rejected.Kind)
		}
	})

	t.Run("other node error is an rpc error", func(t *testing.T) {
		t.Parallel()

		_, err := newSubmitter([]ProviderResult{
			{URL: "a", Err: errors.New("intrinsic gas too low")},
		}).Submit(ctx, rawTx, chain)
		require.Error(t, err)

		var rpcErr *RPCSubmissionError
		require.ErrorAs(t, err, &rpcErr)
		require.Contains(t, rpcErr.Detail, "intrinsic gas too low")
	})

	t.Run("providers disagree", func(t *testing.T) {
		t.Parallel()

		_, err := newSubmitter([]ProviderResult{
			{URL: "a", Result: json.RawMessage(`"0xabc123"`)},
			{URL: "b", Err: errors.New("nonce too low")},
		}).Submit(ctx, rawTx, chain)
		require.ErrorIs(t, err, ErrInconsistentSubmission)
	})

	t.Run("providers agree on rejection", func(t *testing.T) {
		t.Parallel()

		_, err := newSubmitter([]ProviderResult{
			{URL: "a", Err: errors.New("nonce too low")},
			{URL: "b", Err: errors.New("nonce too low: next nonce 6")},
		}).Submit(ctx, rawTx, chain)
		require.Error(t, err)

		var rejected *SubmissionRejectedError
		require.ErrorAs(t, err, &rejected)
		require.Equal(t, RejectionNonceTooLow, rejected.Kind)
	})
}
