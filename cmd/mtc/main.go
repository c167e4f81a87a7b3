// Package main is the entry point for the mtc CLI client.
package main

import (
	"github.com/cardledger/market-trends/cmd/mtc/cmd"
)

func main() {
	cmd.Execute()
}
