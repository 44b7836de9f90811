package core

import "strings"

type ExchangeProvider int

const (
	CoinGecko ExchangeProvider = iota
	Static
	Dummy
)

func (e ExchangeProvider) String() string {
	switch e {
	case CoinGecko:
		return "CoinGecko"
	case Static:
		return "Static"
	case Dummy:
		return "Dummy"
	default:
		return "Unknown"
	}
}

// ProviderFromString maps a configured provider name to its enum value.
// Unrecognized names fall back to CoinGecko so a typo degrades to the default
// live source instead of refusing to start.
func ProviderFromString(name string) ExchangeProvider {
	switch strings.ToLower(name) {
	case "static":
		return Static
	case "dummy":
		return Dummy
	default:
		return CoinGecko
	}
}
