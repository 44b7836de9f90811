package fetchers

import (
	"context"

	"github.com/Ethernal-Tech/stellar-evm-bridge/exchange_rate_service/core"
	"github.com/Ethernal-Tech/stellar-evm-bridge/exchange_rate_service/model"
)

// StaticFetcher always returns the operator-configured rate. It backs the
// degraded path when no live source is reachable.
type StaticFetcher struct {
	config *core.ExchangeRateServiceConfig
}

var _ core.ExchangeRateFetcher = (*StaticFetcher)(nil)

func NewStaticFetcher(config *core.ExchangeRateServiceConfig) *StaticFetcher {
	return &StaticFetcher{config: config}
}

func (s *StaticFetcher) FetchRate(
	_ context.Context, _ model.FetchRateParams,
) (float64, error) {
	return s.config.StaticRate, nil
}
