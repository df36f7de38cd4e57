package main

import (
	"os"

	"github.com/abhisek/mathpal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
