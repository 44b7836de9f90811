package clideriveaddress

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ethernal-Tech/stellar-evm-bridge/common"
)

var deriveAddressParamsData = &deriveAddressParams{}

func GetDeriveAddressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "derive-address",
		Short:   "derives the destination chain address for a signing key",
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	deriveAddressParamsData.setFlags(cmd)

	return cmd
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return deriveAddressParamsData.validateFlags()
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := common.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	defer func() {
		if r := recover(); r != nil {
			outputter.SetError(fmt.Errorf("%v", r))
		}
	}()

	result, err := deriveAddressParamsData.Execute(context.Background())
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(result)
}
