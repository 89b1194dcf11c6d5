package main

import (
	"os"

	"github.com/okozlov/screenbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
