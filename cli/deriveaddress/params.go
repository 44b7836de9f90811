package clideriveaddress

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ethernal-Tech/stellar-evm-bridge/bridge"
	"github.com/Ethernal-Tech/stellar-evm-bridge/common"
	"github.com/Ethernal-Tech/stellar-evm-bridge/eth"
)

const (
	seedFlag   = "seed"
	keyIDFlag  = "key-id"
	callerFlag = "caller"

	seedFlagDesc   = "hex encoded master seed"
	keyIDFlagDesc  = "signing key identifier"
	callerFlagDesc = "caller scope for the derivation path"
)

type deriveAddressParams struct {
	seed   string
	keyID  string
	caller string
}

func (ip *deriveAddressParams) validateFlags() error {
	seed, err := common.DecodeHex(ip.seed)
	if err != nil || len(seed) == 0 {
		return fmt.Errorf("invalid or missing seed: --%s", seedFlag)
	}

	if ip.keyID == "" {
		return fmt.Errorf("key id not specified: --%s", keyIDFlag)
	}

	return nil
}

func (ip *deriveAddressParams) setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&ip.seed,
		seedFlag,
		"",
		seedFlagDesc,
	)

	cmd.Flags().StringVar(
		&ip.keyID,
		keyIDFlag,
		"",
		keyIDFlagDesc,
	)

	cmd.Flags().StringVar(
		&ip.caller,
		callerFlag,
		"",
		callerFlagDesc,
	)
}

func (ip *deriveAddressParams) Execute(ctx context.Context) (common.ICommandResult, error) {
	seed, err := common.DecodeHex(ip.seed)
	if err != nil {
		return nil, err
	}

	signer, err := bridge.NewLocalSigner(seed)
	if err != nil {
		return nil, err
	}

	var derivationPath [][]byte
	if ip.caller != "" {
		derivationPath = [][]byte{[]byte(ip.caller)}
	}

	pubKey, err := signer.PublicKey(ctx, ip.keyID, derivationPath)
	if err != nil {
		return nil, err
	}

	addr, err := eth.DeriveAddress(pubKey)
	if err != nil {
		return nil, err
	}

	return &cmdResult{Address: eth.ChecksumAddress(addr)}, nil
}

type cmdResult struct {
	Address string `json:"address"`
}

func (r *cmdResult) GetOutput() string {
	return common.FormatKV([]string{
		fmt.Sprintf("Address|%s", r.Address),
	})
}
