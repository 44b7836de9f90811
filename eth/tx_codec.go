package eth

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

var ErrMissingTxFields = errors.New("unsigned transaction is missing required fields")

// UnsignedTx holds the field tuple of an EIP-1559 native value transfer.
// Data and the access list stay empty for native transfers.
type UnsignedTx struct {
	ChainID              uint64
	Nonce                uint64
	GasLimit             uint64
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	To                   common.Address
	Value                *big.Int
	Data                 []byte
}

// unsignedFields mirrors the EIP-1559 signing payload field order exactly.
// rlp encodes *big.Int as a minimal big-endian byte string (zero encodes
// empty), which the destination chain requires.
type unsignedFields struct {
	ChainID    *big.Int
	Nonce      uint64
	GasTipCap  *big.Int
	GasFeeCap  *big.Int
	Gas        uint64
	To         *common.Address `rlp:"nil"`
	Value      *big.Int
	Data       []byte
	AccessList types.AccessList
}

// EncodeUnsigned serializes tx into its canonical typed-transaction signing
// form: the 0x02 discriminator followed by the rlp field list.
func EncodeUnsigned(tx UnsignedTx) ([]byte, error) {
	if tx.MaxFeePerGas == nil || tx.MaxPriorityFeePerGas == nil || tx.Value == nil {
		return nil, ErrMissingTxFields
	}

	to := tx.To
	payload, err := rlp.EncodeToBytes(&unsignedFields{
		ChainID:    new(big.Int).SetUint64(tx.ChainID),
		Nonce:      tx.Nonce,
		GasTipCap:  tx.MaxPriorityFeePerGas,
		GasFeeCap:  tx.MaxFeePerGas,
		Gas:        tx.GasLimit,
		To:         &to,
		Value:      tx.Value,
		Data:       tx.Data,
		AccessList: types.AccessList{},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to rlp encode transaction: %w", err)
	}

	return append([]byte{types.DynamicFeeTxType}, payload...), nil
}

// Digest hashes the encoded unsigned transaction. This is the exact value
// that must be signed and later fed into RecoverParity.
func Digest(encoded []byte) [32]byte {
	return crypto.Keccak256Hash(encoded)
}

// EncodeSigned re-derives the same field list with (parity, r, s) appended,
// keeping the leading type discriminator. The field values must be identical
// to the ones passed to EncodeUnsigned or the signature will not recover to
// the paying address.
func EncodeSigned(tx UnsignedTx, r, s [32]byte, parity byte) ([]byte, error) {
	if tx.MaxFeePerGas == nil || tx.MaxPriorityFeePerGas == nil || tx.Value == nil {
		return nil, ErrMissingTxFields
	}

	to := tx.To
	signed := types.NewTx(&types.DynamicFeeTx{
		ChainID:    new(big.Int).SetUint64(tx.ChainID),
		Nonce:      tx.Nonce,
		GasTipCap:  tx.MaxPriorityFeePerGas,
		GasFeeCap:  tx.MaxFeePerGas,
		Gas:        tx.GasLimit,
		To:         &to,
		Value:      tx.Value,
		Data:       tx.Data,
		AccessList: types.AccessList{},
		V:          new(big.Int).SetUint64(uint64(parity)),
		R:          new(big.Int).SetBytes(r[:]),
		S:          new(big.Int).SetBytes(s[:]),
	})

	raw, err := signed.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("failed to encode signed transaction: %w", err)
	}

	return raw, nil
}

// DecodeSigned parses raw typed-transaction bytes back into a transaction.
func DecodeSigned(raw []byte) (*types.Transaction, error) {
	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("failed to decode signed transaction: %w", err)
	}

	return tx, nil
}
