package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Ethernal-Tech/stellar-evm-bridge/common"
	"github.com/Ethernal-Tech/stellar-evm-bridge/exchange_rate_service/core"
	"github.com/Ethernal-Tech/stellar-evm-bridge/exchange_rate_service/model"
)

const (
	coinGeckoURL       = "https://api.coingecko.com/api/v3/simple/price?ids=%s,%s&vs_currencies=%s"
	coinGeckoMaxBytes  = 10_000
	coinGeckoStellarID = "stellar"
	coinGeckoEthID     = "ethereum"
)

// CoinGeckoFetcher derives a cross rate between two coins from their USD
// quotes, since CoinGecko does not serve the pair directly.
type CoinGeckoFetcher struct {
	fetcher common.HTTPFetcher
}

var _ core.ExchangeRateFetcher = (*CoinGeckoFetcher)(nil)

func NewCoinGeckoFetcher(fetcher common.HTTPFetcher) *CoinGeckoFetcher {
	return &CoinGeckoFetcher{fetcher: fetcher}
}

func (c *CoinGeckoFetcher) FetchRate(
	ctx context.Context, params model.FetchRateParams,
) (float64, error) {
	url := fmt.Sprintf(coinGeckoURL, coinGeckoStellarID, coinGeckoEthID, params.Base)

	response, err := c.fetcher.Fetch(ctx, common.FetchRequest{
		URL:              url,
		Method:           http.MethodGet,
		MaxResponseBytes: coinGeckoMaxBytes,
		Normalize:        normalizePriceResponse,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to fetch price rate from CoinGecko: %w", err)
	}

	if response.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("CoinGecko returned status %d", response.StatusCode)
	}

	var prices model.CoinGeckoResponse
	if err := json.Unmarshal(response.Body, &prices); err != nil {
		return 0, fmt.Errorf("error decoding CoinGecko response: %w", err)
	}

	stellarPrice := prices[coinGeckoStellarID][params.Base]
	ethPrice := prices[coinGeckoEthID][params.Base]

	if stellarPrice == 0 || ethPrice == 0 {
		return 0, fmt.Errorf("CoinGecko response missing %s quotes", params.Base)
	}

	return stellarPrice / ethPrice, nil
}

// normalizePriceResponse re-marshals the body so repeated queries that return
// the same quotes agree byte-for-byte regardless of provider key order.
func normalizePriceResponse(body []byte) []byte {
	var prices model.CoinGeckoResponse
	if err := json.Unmarshal(body, &prices); err != nil {
		return body
	}

	normalized, err := json.Marshal(prices)
	if err != nil {
		return body
	}

	return normalized
}
