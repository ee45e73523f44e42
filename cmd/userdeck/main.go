package main

import (
	"os"

	"userdeck/cmd/userdeck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
