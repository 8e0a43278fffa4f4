package main

import (
	"os"

	"github.com/abhisek/errormind/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
