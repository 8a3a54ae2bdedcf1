package main

import (
	"os"

	"github.com/msto63/ffparse/cmd/ffparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
