package core

import (
	"github.com/Ethernal-Tech/cardano-infrastructure/logger"

	apiCore "github.com/Ethernal-Tech/stellar-evm-bridge/api/core"
	exchangeRateCore "github.com/Ethernal-Tech/stellar-evm-bridge/exchange_rate_service/core"
	oracleCore "github.com/Ethernal-Tech/stellar-evm-bridge/oracle_stellar/core"
	"github.com/Ethernal-Tech/stellar-evm-bridge/telemetry"
)

type BridgeConfig struct {
	KeyID               string   `json:"keyId"`
	Seed                string   `json:"seed"`
	DerivationPath      []string `json:"derivationPath"`
	DestinationChainKey string   `json:"destinationChainKey"`
	DBPath              string   `json:"dbPath"`
}

type AppConfig struct {
	Bridge       BridgeConfig                               `json:"bridge"`
	Stellar      oracleCore.StellarConfig                   `json:"stellar"`
	ExchangeRate exchangeRateCore.ExchangeRateServiceConfig `json:"exchangeRate"`
	APIConfig    apiCore.APIConfig                          `json:"api"`
	Telemetry    telemetry.TelemetryConfig                  `json:"telemetry"`
	Logger       logger.LoggerConfig                        `json:"logger"`
}

func (appConfig *AppConfig) FillOut() {
	appConfig.Stellar.FillOut()
	appConfig.ExchangeRate.FillOut()
}

// DerivationPathBytes returns the configured derivation path in the form the
// signer capability expects.
func (c *BridgeConfig) DerivationPathBytes() [][]byte {
	path := make([][]byte, 0, len(c.DerivationPath))
	for _, element := range c.DerivationPath {
		path = append(path, []byte(element))
	}

	return path
}
