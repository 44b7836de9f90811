package ethrpchelper

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/Ethernal-Tech/stellar-evm-bridge/eth"
	"github.com/hashicorp/go-hclog"
)

// ISubmitter broadcasts a signed raw transaction and classifies the outcome.
// It performs no retries and no fee bumps: after a rejection the transaction
// must be rebuilt and re-signed with fresh nonce and fee values.
type ISubmitter interface {
	Submit(ctx context.Context, signedTxHex string, chain eth.ChainProfile) (string, error)
}

type SubmitterImpl struct {
	aggregator IRPCAggregator
	logger     hclog.Logger
}

var _ ISubmitter = (*SubmitterImpl)(nil)

func NewSubmitter(aggregator IRPCAggregator, logger hclog.Logger) *SubmitterImpl {
	return &SubmitterImpl{
		aggregator: aggregator,
		logger:     logger,
	}
}

type outcomeKind int

const (
	outcomeAccepted outcomeKind = iota
	outcomeAcceptedNoHash
	outcomeNonceTooLow
	outcomeNonceTooHigh
	outcomeInsufficientFunds
	outcomeRPCError
)

type outcome struct {
	kind   outcomeKind
	hash   string
	detail string
}

func (s *SubmitterImpl) Submit(
	ctx context.Context, signedTxHex string, chain eth.ChainProfile,
) (string, error) {
	results, err := s.aggregator.Call(ctx, chain, "eth_sendRawTransaction", signedTxHex)
	if err != nil {
		return "", &RPCSubmissionError{Detail: err.Error()}
	}

	outcomes := make([]outcome, len(results))
	for i, res := range results {
		outcomes[i] = classifyOutcome(res)
	}

	first := outcomes[0]
	for _, o := range outcomes[1:] {
		if o.kind != first.kind || o.hash != first.hash {
			s.logger.Error("providers disagree on submission outcome", "details", describeResults(results))

			return "", ErrInconsistentSubmission
		}
	}

	switch first.kind {
	case outcomeAccepted:
		s.logger.Info("transaction sent successfully", "hash", first.hash)

		return first.hash, nil
	case outcomeAcceptedNoHash:
		return "", ErrNoTxHashInResponse
	case outcomeNonceTooLow:
		return "", &SubmissionRejectedError{Kind: RejectionNonceTooLow, Detail: first.detail}
	case outcomeNonceTooHigh:
		return "", &SubmissionRejectedError{Kind: RejectionNonceTooHigh, Detail: first.detail}
	case outcomeInsufficientFunds:
		return "", &SubmissionRejectedError{Kind: RejectionInsufficientFunds, Detail: first.detail}
	default:
		return "", &RPCSubmissionError{Detail: first.detail}
	}
}

func classifyOutcome(res ProviderResult) outcome {
	if res.Err != nil {
		errStr := strings.ToLower(res.Err.Error())

		switch {
		case strings.Contains(errStr, "nonce too low"):
			return outcome{kind: outcomeNonceTooLow, detail: res.Err.Error()}
		case strings.Contains(errStr, "nonce too high"):
			return outcome{kind: outcomeNonceTooHigh, detail: res.Err.Error()}
		case strings.Contains(errStr, "insufficient funds"):
			return outcome{kind: outcomeInsufficientFunds, detail: res.Err.Error()}
		default:
			return outcome{kind: outcomeRPCError, detail: res.Err.Error()}
		}
	}

	var hash string
	if err := json.Unmarshal(res.Result, &hash); err != nil || hash == "" {
		return outcome{kind: outcomeAcceptedNoHash}
	}

	return outcome{kind: outcomeAccepted, hash: hash}
}
