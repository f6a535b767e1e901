package main

import (
	"os"

	"github.com/ethiolearn/ethiolearn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
