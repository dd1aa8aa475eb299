package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/chainsafe/evm-transfers/pkg/config"
	"github.com/chainsafe/evm-transfers/pkg/ethereum"
)

func main() {
	contractsDir := flag.String("contracts", "contracts", "Directory holding "+ethereum.TestTokenFile)
	includePath := flag.String("include-path", "node_modules", "Extra import root passed to solc")
	out := flag.String("out", filepath.Join("contracts", "eip-3009-token.json"), "Output artifact path")
	solc := flag.String("solc", "solc", "solc binary")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	logger, err := config.NewLogger(config.LoggingConfig{Level: *logLevel, Format: "console", OutputPath: "stderr"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	compiler := &ethereum.Compiler{
		Solc:     *solc,
		BasePath: *contractsDir,
	}
	// solc rejects include paths that do not exist
	if info, err := os.Stat(*includePath); err == nil && info.IsDir() {
		compiler.IncludePaths = []string{*includePath}
	}

	source := filepath.Join(*contractsDir, ethereum.TestTokenFile)
	output, raw, err := compiler.Compile(context.Background(), source)
	if err != nil {
		logger.Fatal("Compilation failed", zap.String("source", source), zap.Error(err))
	}

	if _, err := output.Artifact(ethereum.TestTokenFile, ethereum.TestTokenContract); err != nil {
		logger.Fatal("Compiled output is not deployable", zap.Error(err))
	}

	if err := ethereum.WriteArtifact(*out, raw); err != nil {
		logger.Fatal("Failed to write artifact", zap.Error(err))
	}

	logger.Info("Artifact written", zap.String("source", source), zap.String("out", *out))
}
