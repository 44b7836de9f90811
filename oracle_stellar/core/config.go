package core

import "github.com/Ethernal-Tech/stellar-evm-bridge/eth"

const (
	TestnetContractID = "CDTA5IYGUGRI4PAGXJL7TPBEIC3EZY6V23ILF5EDVXFVLCGGMVOK4CRL"
	MainnetContractID = "CDMHKRFQPMCBZFY225BNLNXA6YRTOCDD2VDC2AXC4YP3XCYMLYZAHWDS"

	TestnetRPCURL = "https://soroban-testnet.stellar.org"
	MainnetRPCURL = "https://soroban-mainnet.stellar.org"

	DefaultLedgerWindow  = 5
	DefaultEventLimit    = 10
	DefaultPullTimeMilis = 1000
)

// NetworkConfig selects the bridge contract and the Soroban RPC endpoint on
// the source chain.
type NetworkConfig struct {
	ContractID string `json:"contractId"`
	RPCURL     string `json:"rpcUrl"`
}

type StellarConfig struct {
	StartLedger   uint32                   `json:"startLedger"`
	LedgerWindow  uint32                   `json:"ledgerWindow"`
	EventLimit    uint32                   `json:"eventLimit"`
	PullTimeMilis uint64                   `json:"pullTime"`
	Networks      map[string]NetworkConfig `json:"networks"`
}

func (c *StellarConfig) FillOut() {
	if c.LedgerWindow == 0 {
		c.LedgerWindow = DefaultLedgerWindow
	}

	if c.EventLimit == 0 {
		c.EventLimit = DefaultEventLimit
	}

	if c.PullTimeMilis == 0 {
		c.PullTimeMilis = DefaultPullTimeMilis
	}
}

// NetworkFor picks the source network paired with a destination chain:
// mainnet transfers settle on Base, everything else runs against testnet.
func (c *StellarConfig) NetworkFor(destChainKey string) NetworkConfig {
	if network, exists := c.Networks[destChainKey]; exists {
		return network
	}

	if destChainKey == eth.ChainKeyBase {
		return NetworkConfig{ContractID: MainnetContractID, RPCURL: MainnetRPCURL}
	}

	return NetworkConfig{ContractID: TestnetContractID, RPCURL: TestnetRPCURL}
}
