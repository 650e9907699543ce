package main

import (
	"os"

	"github.com/coursegrid/coursegrid/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
