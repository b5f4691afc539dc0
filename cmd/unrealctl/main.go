package main

import (
	"os"

	"unrealctl/cmd/unrealctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
