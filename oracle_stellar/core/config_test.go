package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ethernal-Tech/stellar-evm-bridge/eth"
)

func TestStellarConfigFillOut(t *testing.T) {
	t.Parallel()

	t.Run("zero config gets all defaults", func(t *testing.T) {
		t.Parallel()

		config := &StellarConfig{}
		config.FillOut()

		require.Equal(t, uint32(DefaultLedgerWindow), config.LedgerWindow)
		require.Equal(t, uint32(DefaultEventLimit), config.EventLimit)
		require.Equal(t, uint64(DefaultPullTimeMilis), config.PullTimeMilis)
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		t.Parallel()

		config := &StellarConfig{
			LedgerWindow:  12,
			EventLimit:    40,
			PullTimeMilis: 2500,
		}
		config.FillOut()

		require.Equal(t, uint32(12), config.LedgerWindow)
		require.Equal(t, uint32(40), config.EventLimit)
		require.Equal(t, uint64(2500), config.PullTimeMilis)
	})
}

func TestStellarConfigNetworkFor(t *testing.T) {
	t.Parallel()

	t.Run("explicit network wins", func(t *testing.T) {
		t.Parallel()

		config := &StellarConfig{Networks: map[string]NetworkConfig{
			eth.ChainKeyHolesky: {ContractID: "CCUSTOM", RPCURL: "https://rpc.example.org"},
		}}

		network := config.NetworkFor(eth.ChainKeyHolesky)
		require.Equal(t, "CCUSTOM", network.ContractID)
	})

	t.Run("base maps to mainnet", func(t *testing.T) {
		t.Parallel()

		network := (&StellarConfig{}).NetworkFor(eth.ChainKeyBase)
		require.Equal(t, MainnetContractID, network.ContractID)
		require.Equal(t, MainnetRPCURL, network.RPCURL)
	})

	t.Run("unknown chain falls back to testnet", func(t *testing.T) {
		t.Parallel()

		network := (&StellarConfig{}).NetworkFor("999")
		require.Equal(t, TestnetContractID, network.ContractID)
		require.Equal(t, TestnetRPCURL, network.RPCURL)
	})
}
