package main

import (
	"os"

	"github.com/revisa-app/revisa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
