package eth

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
)

var (
	ErrInvalidSignatureEncoding = errors.New("malformed (r, s) signature")
	ErrSignatureRecoveryFailed  = errors.New("failed to recover the parity bit from signature")
)

// RecoverParity finds the y-parity value under which the (r, s) signature over
// digest recovers to expectedPubKey. Raw signatures are symmetric under key
// negation, so both candidates are tried and compared against the known key.
func RecoverParity(digest [32]byte, r, s [32]byte, expectedPubKey []byte) (byte, error) {
	if len(expectedPubKey) != uncompressedPubKeyLen || expectedPubKey[0] != uncompressedPubKeyPrefix {
		return 0, fmt.Errorf("%w: expected %d bytes with 0x04 prefix",
			ErrInvalidPublicKey, uncompressedPubKeyLen)
	}

	if err := validateScalars(r, s); err != nil {
		return 0, err
	}

	sig := make([]byte, crypto.SignatureLength)
	copy(sig[:32], r[:])
	copy(sig[32:64], s[:])

	for parity := byte(0); parity <= 1; parity++ {
		sig[64] = parity

		recovered, err := crypto.Ecrecover(digest[:], sig)
		if err != nil {
			continue
		}

		if bytes.Equal(recovered, expectedPubKey) {
			return parity, nil
		}
	}

	return 0, fmt.Errorf("%w: signature does not match the expected public key",
		ErrSignatureRecoveryFailed)
}

func validateScalars(r, s [32]byte) error {
	curveOrder := crypto.S256().Params().N

	for _, scalar := range [][32]byte{r, s} {
		v := new(big.Int).SetBytes(scalar[:])
		if v.Sign() == 0 || v.Cmp(curveOrder) >= 0 {
			return fmt.Errorf("%w: scalar out of range", ErrInvalidSignatureEncoding)
		}
	}

	return nil
}
