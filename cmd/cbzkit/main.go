package main

import (
	"os"

	"cbzkit/cmd/cbzkit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
