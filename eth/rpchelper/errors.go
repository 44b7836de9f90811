package ethrpchelper

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTxHashInResponse is returned when a node accepts a transaction but
	// reports no hash; the hash is never guessed.
	ErrNoTxHashInResponse = errors.New("transaction accepted but no hash found in the response")

	ErrInconsistentSubmission = errors.New("inconsistent send raw transaction results across providers")
)

type RejectionKind string

const (
	RejectionNonceTooLow      RejectionKind = "nonce too low"
	RejectionNonceTooHigh     RejectionKind = "nonce too high"
	RejectionInsufficientFunds RejectionKind = "insufficient funds"
)

// SubmissionRejectedError is a node-reported rejection of a submitted
// transaction. A retry requires a fresh build-and-sign cycle; resubmitting
// with the same nonce repeats the failure.
type SubmissionRejectedError struct {
	Kind   RejectionKind
	Detail string
}

func (e *SubmissionRejectedError) Error() string {
	return fmt.Sprintf("transaction rejected: %s (%s)", e.Kind, e.Detail)
}

// RPCSubmissionError is a transport or node level failure that is neither an
// acceptance nor a recognized rejection. The provider detail is preserved
// verbatim for operator diagnosis.
type RPCSubmissionError struct {
	Detail string
}

func (e *RPCSubmissionError) Error() string {
	return fmt.Sprintf("rpc error sending transaction: %s", e.Detail)
}

type NonceFetchError struct {
	Cause error
}

func (e *NonceFetchError) Error() string {
	return fmt.Sprintf("failed to get transaction count: %v", e.Cause)
}

func (e *NonceFetchError) Unwrap() error {
	return e.Cause
}

// NonceInconsistentError is returned when providers disagree on the
// transaction count; a value is never silently picked.
type NonceInconsistentError struct {
	Details string
}

func (e *NonceInconsistentError) Error() string {
	return fmt.Sprintf("inconsistent transaction count results: %s", e.Details)
}
