package eth

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	uncompressedPubKeyLen    = 65
	uncompressedPubKeyPrefix = byte(0x04)
)

var ErrInvalidPublicKey = errors.New("invalid uncompressed secp256k1 public key")

// DeriveAddress derives the EVM account address from an uncompressed
// secp256k1 public key: keccak256 over the 64 payload bytes, low 20 bytes.
func DeriveAddress(pubKey []byte) (common.Address, error) {
	if len(pubKey) != uncompressedPubKeyLen || pubKey[0] != uncompressedPubKeyPrefix {
		return common.Address{}, fmt.Errorf("%w: expected %d bytes with 0x04 prefix, got %d bytes",
			ErrInvalidPublicKey, uncompressedPubKeyLen, len(pubKey))
	}

	// point must be on the curve, not just well-formed
	if _, err := crypto.UnmarshalPubkey(pubKey); err != nil {
		return common.Address{}, fmt.Errorf("%w: %s", ErrInvalidPublicKey, err)
	}

	hash := crypto.Keccak256(pubKey[1:])

	return common.BytesToAddress(hash[12:]), nil
}

// ChecksumAddress returns the EIP-55 checksummed textual rendering.
func ChecksumAddress(addr common.Address) string {
	return addr.Hex()
}
