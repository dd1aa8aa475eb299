package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chainsafe/evm-transfers/pkg/app"
	"github.com/chainsafe/evm-transfers/pkg/app/demo"
	"github.com/chainsafe/evm-transfers/pkg/config"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	outPath := flag.String("out", "", "Write the YAML report to this file instead of stdout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create report file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	var runner app.Runner = demo.NewRunner(cfg, out)
	if err := runner.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Transfer demo failed: %v\n", err)
		os.Exit(1)
	}
}
