package main

import (
	"os"

	"turbofanvpf/cmd/vpfcompare/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
