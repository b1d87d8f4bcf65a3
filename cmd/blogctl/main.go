// Command blogctl is an operator CLI for the blog API.
package main

import (
	"os"

	"blogapi/internal/config"
)

func main() {
	cfg := config.LoadConfig()

	root := newRootCmd(cfg, os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		newPrinter(os.Stdout, os.Stderr, colorsEnabled(false)).Error("%s", userMessage(err))
		os.Exit(1)
	}
}
