package main

import (
	"os"

	"github.com/PolarWolf314/git-profile/cmd"
)

func main() {
	// Commands print their own failure messages.
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
