package main

import (
	"os"

	"github.com/iiot-workflow/wfinit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
