package ethrpchelper

import (
	"context"

	"github.com/Ethernal-Tech/stellar-evm-bridge/eth"
	"github.com/stretchr/testify/mock"
)

type RPCAggregatorMock struct {
	mock.Mock
}

var _ IRPCAggregator = (*RPCAggregatorMock)(nil)

func (m *RPCAggregatorMock) Call(
	ctx context.Context, chain eth.ChainProfile, method string, params ...interface{},
) ([]ProviderResult, error) {
	callArgs := make([]interface{}, 0, len(params)+3)
	callArgs = append(callArgs, ctx, chain, method)
	callArgs = append(callArgs, params...)

	args := m.Called(callArgs...)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	results, _ := args.Get(0).([]ProviderResult)

	return results, args.Error(1)
}
