package main

import (
	"os"

	"github.com/chainpay-labs/paybot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
