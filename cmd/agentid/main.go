package main

import (
	"os"

	"agentid/cmd/agentid/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
