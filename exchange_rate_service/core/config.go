package core

// DefaultStaticRate is the built-in XLM/ETH rate used when no live source is
// reachable and the operator has not configured an override.
const DefaultStaticRate = 0.000081

type ExchangeRateServiceConfig struct {
	Provider   string  `json:"provider"`
	StaticRate float64 `json:"staticRate"`
}

func (c *ExchangeRateServiceConfig) FillOut() {
	if c.Provider == "" {
		c.Provider = CoinGecko.String()
	}

	if c.StaticRate == 0 {
		c.StaticRate = DefaultStaticRate
	}
}
