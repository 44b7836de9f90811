package eth

import "math/big"

const (
	ChainKeyHolesky = "17000"
	ChainKeyBase    = "8453"
)

// GasPolicy is a static fee tier for native transfers on a destination chain.
type GasPolicy struct {
	GasLimit             uint64
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// ChainProfile describes a destination chain: numeric id, provider endpoints
// and the default gas policy.
type ChainProfile struct {
	Key     string
	ChainID uint64
	RPCURLs []string
	Gas     GasPolicy
}

const transferGasLimit = 21_000

var chainProfiles = map[string]ChainProfile{
	ChainKeyHolesky: {
		Key:     ChainKeyHolesky,
		ChainID: 17000,
		RPCURLs: []string{"https://ethereum-holesky-rpc.publicnode.com"},
		Gas: GasPolicy{
			GasLimit:             transferGasLimit,
			MaxFeePerGas:         big.NewInt(20_000_000_000), // 20 Gwei
			MaxPriorityFeePerGas: big.NewInt(2_000_000_000),  // 2 Gwei
		},
	},
	ChainKeyBase: {
		Key:     ChainKeyBase,
		ChainID: 8453,
		RPCURLs: []string{"https://base.drpc.org"},
		Gas: GasPolicy{
			GasLimit:             transferGasLimit,
			MaxFeePerGas:         big.NewInt(1_000_000_000), // 1 Gwei
			MaxPriorityFeePerGas: big.NewInt(1_000_000_000), // 1 Gwei
		},
	},
}

// ResolveChainProfile maps a destination chain key to its profile. Unknown
// keys resolve to the Holesky profile so existing callers never have to
// branch on an unknown chain.
func ResolveChainProfile(destChainKey string) ChainProfile {
	if profile, exists := chainProfiles[destChainKey]; exists {
		return profile
	}

	return chainProfiles[ChainKeyHolesky]
}

// FeesFor returns the gas policy for a destination chain key, falling back to
// the conservative Holesky tier for unknown keys.
func FeesFor(destChainKey string) GasPolicy {
	return ResolveChainProfile(destChainKey).Gas
}
