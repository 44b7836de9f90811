package clirunbridge

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	bridgecomponents "github.com/Ethernal-Tech/stellar-evm-bridge/bridge/bridge_components"
	"github.com/Ethernal-Tech/stellar-evm-bridge/bridge/core"
	"github.com/Ethernal-Tech/stellar-evm-bridge/common"
)

var initParamsData = &initParams{}

func GetRunBridgeCommand() *cobra.Command {
	runBridgeCmd := &cobra.Command{
		Use:     "run-bridge",
		Short:   "runs bridge components",
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	initParamsData.setFlags(runBridgeCmd)

	return runBridgeCmd
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return initParamsData.validateFlags()
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := common.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	config, err := common.LoadJSON[core.AppConfig](initParamsData.config)
	if err != nil {
		outputter.SetError(fmt.Errorf("failed to load config: %w", err))

		return
	}

	bridgeComponents, err := bridgecomponents.NewBridgeComponents(config)
	if err != nil {
		outputter.SetError(fmt.Errorf("failed to create bridge components: %w", err))

		return
	}

	if err := bridgeComponents.Start(); err != nil {
		outputter.SetError(fmt.Errorf("failed to start bridge components: %w", err))

		return
	}

	defer func() {
		if err := bridgeComponents.Stop(); err != nil {
			outputter.SetError(err)
		}
	}()

	signalChannel := make(chan os.Signal, 1)
	// Notify the signalChannel when the interrupt signal is received (Ctrl+C)
	signal.Notify(signalChannel, os.Interrupt, syscall.SIGTERM)

	<-signalChannel

	outputter.SetCommandResult(&cmdResult{})
}

type cmdResult struct{}

func (r *cmdResult) GetOutput() string {
	return "bridge stopped"
}
