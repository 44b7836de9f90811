package bridge

import (
	"context"
	"crypto/ecdsa"
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip32"

	"github.com/Ethernal-Tech/stellar-evm-bridge/bridge/core"
)

// LocalSigner derives per-caller secp256k1 keys from a master seed. Each
// (keyID, derivationPath) pair maps to its own hd child key, so two callers
// never share a signing key or an address.
type LocalSigner struct {
	masterKey *bip32.Key
}

var _ core.Signer = (*LocalSigner)(nil)

func NewLocalSigner(seed []byte) (*LocalSigner, error) {
	masterKey, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	return &LocalSigner{masterKey: masterKey}, nil
}

func (ls *LocalSigner) SignDigest(
	_ context.Context, digest [32]byte, keyID string, derivationPath [][]byte,
) (r [32]byte, s [32]byte, err error) {
	privateKey, err := ls.deriveKey(keyID, derivationPath)
	if err != nil {
		return r, s, err
	}

	signature, err := crypto.Sign(digest[:], privateKey)
	if err != nil {
		return r, s, fmt.Errorf("failed to sign digest: %w", err)
	}

	copy(r[:], signature[:32])
	copy(s[:], signature[32:64])

	return r, s, nil
}

func (ls *LocalSigner) PublicKey(
	_ context.Context, keyID string, derivationPath [][]byte,
) ([]byte, error) {
	privateKey, err := ls.deriveKey(keyID, derivationPath)
	if err != nil {
		return nil, err
	}

	return crypto.FromECDSAPub(&privateKey.PublicKey), nil
}

func (ls *LocalSigner) deriveKey(keyID string, derivationPath [][]byte) (*ecdsa.PrivateKey, error) {
	childKey := ls.masterKey

	for _, element := range append([][]byte{[]byte(keyID)}, derivationPath...) {
		child, err := childKey.NewChildKey(childIndex(element))
		if err != nil {
			return nil, fmt.Errorf("failed to derive child key: %w", err)
		}

		childKey = child
	}

	privateKey, err := crypto.ToECDSA(childKey.Key)
	if err != nil {
		return nil, fmt.Errorf("derived key is not a valid secp256k1 scalar: %w", err)
	}

	return privateKey, nil
}

// childIndex maps an arbitrary path element onto a hardened bip32 index.
func childIndex(element []byte) uint32 {
	hash := crypto.Keccak256(element)

	return binary.BigEndian.Uint32(hash[:4]) | bip32.FirstHardenedChild
}
