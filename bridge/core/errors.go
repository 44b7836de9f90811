package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRecipient = errors.New("recipient is not a valid evm address")
	ErrZeroAmount       = errors.New("transfer amount is zero")
)

// SigningError wraps a failure from the signer capability so callers can
// separate signing problems from submission problems.
type SigningError struct {
	Cause error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("signing failed: %v", e.Cause)
}

func (e *SigningError) Unwrap() error {
	return e.Cause
}
