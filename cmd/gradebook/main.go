package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mmynk/gradebook/internal/config"
	"github.com/mmynk/gradebook/pkg/logging"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	cli := commandLine{cfg: cfg, in: os.Stdin, out: os.Stdout}
	if err := cli.run(os.Args); err != nil {
		if !errors.Is(err, errHelp) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
