package main

import (
	"os"

	"speedread/cmd/speedread/commands"
	"speedread/internal/launcher"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(launcher.ExitCode(err))
	}
}
