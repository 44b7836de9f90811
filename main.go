package main

import (
	"github.com/Ethernal-Tech/stellar-evm-bridge/cli"
)

func main() {
	cli.NewRootCommand().Execute()
}
