// Package main is the entry point for the market-trends server.
package main

import (
	"os"

	"github.com/cardledger/market-trends/cmd/market-trends/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
