package main

import (
	"os"

	"github.com/JHyunJung/atdd-subway-map/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
