package bridge

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Ethernal-Tech/stellar-evm-bridge/bridge/core"
)

type SignerMock struct {
	mock.Mock
}

var _ core.Signer = (*SignerMock)(nil)

func (m *SignerMock) SignDigest(
	ctx context.Context, digest [32]byte, keyID string, derivationPath [][]byte,
) ([32]byte, [32]byte, error) {
	args := m.Called(ctx, digest, keyID, derivationPath)

	return args.Get(0).([32]byte), args.Get(1).([32]byte), args.Error(2) //nolint:forcetypeassert
}

func (m *SignerMock) PublicKey(
	ctx context.Context, keyID string, derivationPath [][]byte,
) ([]byte, error) {
	args := m.Called(ctx, keyID, derivationPath)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1) //nolint:forcetypeassert
}
