package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	clideriveaddress "github.com/Ethernal-Tech/stellar-evm-bridge/cli/deriveaddress"
	clirunbridge "github.com/Ethernal-Tech/stellar-evm-bridge/cli/runbridge"
	cliversion "github.com/Ethernal-Tech/stellar-evm-bridge/cli/version"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Short: "cli commands for stellar evm bridge",
		},
	}

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		clirunbridge.GetRunBridgeCommand(),
		clideriveaddress.GetDeriveAddressCommand(),
		cliversion.GetVersionCommand(),
	)
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
