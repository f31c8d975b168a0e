package main

import "github.com/SscSPs/cashflow_ledger/internal/cli"

func main() {
	cli.Execute()
}
