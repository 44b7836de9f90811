package model

type FetchRateParams struct {
	Base     string
	Currency string
}

// CoinGeckoResponse is the simple/price payload keyed by coin id, then by
// fiat currency.
type CoinGeckoResponse map[string]map[string]float64
