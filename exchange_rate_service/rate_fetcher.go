package ratefetcher

import (
	"context"
	"fmt"
	"math/big"

	"github.com/Ethernal-Tech/stellar-evm-bridge/common"
	"github.com/Ethernal-Tech/stellar-evm-bridge/exchange_rate_service/core"
	"github.com/Ethernal-Tech/stellar-evm-bridge/exchange_rate_service/fetchers"
	"github.com/Ethernal-Tech/stellar-evm-bridge/exchange_rate_service/model"
	oraclecore "github.com/Ethernal-Tech/stellar-evm-bridge/oracle_stellar/core"
	"github.com/hashicorp/go-hclog"
)

const (
	XLM = "XLM"
	ETH = "ETH"
	USD = "usd"
)

// weiPerETH as a float is exact: 1e18 fits in a float64 mantissa shift.
var weiPerETH = big.NewFloat(1e18)

type RateFetcher struct {
	fetchers map[core.ExchangeProvider]core.ExchangeRateFetcher
	provider core.ExchangeProvider
	config   *core.ExchangeRateServiceConfig
	logger   hclog.Logger
}

func NewRateFetcher(
	config *core.ExchangeRateServiceConfig, httpFetcher common.HTTPFetcher, logger hclog.Logger,
) *RateFetcher {
	return &RateFetcher{
		fetchers: map[core.ExchangeProvider]core.ExchangeRateFetcher{
			core.CoinGecko: fetchers.NewCoinGeckoFetcher(httpFetcher),
			core.Static:    fetchers.NewStaticFetcher(config),
			core.Dummy:     &fetchers.DummyFetcher{},
		},
		provider: core.ProviderFromString(config.Provider),
		config:   config,
		logger:   logger,
	}
}

func (r *RateFetcher) FetchRateByExchange(
	ctx context.Context, exchange core.ExchangeProvider,
) (float64, error) {
	fetcher, exists := r.fetchers[exchange]
	if !exists {
		return 0, fmt.Errorf("unsupported exchange: %d", exchange)
	}

	rate, err := fetcher.FetchRate(ctx, model.FetchRateParams{Base: USD, Currency: XLM})
	if err != nil {
		return 0, fmt.Errorf("error fetching rate from %s: %w", exchange.String(), err)
	}

	return rate, nil
}

// XLMToWei converts a stroop amount into wei at the current XLM/ETH rate from
// the configured provider. When the live source fails the configured static
// rate is used instead and the degraded flag is raised, so callers can surface
// the weaker pricing.
func (r *RateFetcher) XLMToWei(ctx context.Context, stroops uint64) (*big.Int, bool) {
	degraded := false

	rate, err := r.FetchRateByExchange(ctx, r.provider)
	if err != nil {
		r.logger.Warn("live rate unavailable, falling back to static rate", "err", err)

		degraded = true
		rate = r.config.StaticRate
	}

	xlm := new(big.Float).Quo(
		new(big.Float).SetUint64(stroops),
		big.NewFloat(oraclecore.StroopsPerXLM))

	wei := new(big.Float).Mul(xlm, big.NewFloat(rate))
	wei.Mul(wei, weiPerETH)

	result, _ := wei.Int(nil)

	return result, degraded
}
