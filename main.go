package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/deploymenttheory/go-fscheck/cmd"
	"github.com/deploymenttheory/go-fscheck/internal/config"
	"github.com/deploymenttheory/go-fscheck/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Get app configuration file from environment if specified
	configFile := os.Getenv("FSCHECK_CONFIG")

	// 1. Initialize application configuration
	if err := config.Initialize(configFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing configuration: %v\n", err)
		return cmd.ExitFailure
	}

	// 2. Initialize logging based on application configuration
	if err := initLogging(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		return cmd.ExitFailure
	}
	defer logger.Sync()

	logger.LogDebug("Application started", map[string]interface{}{
		"version":     cmd.Version,
		"config_file": config.ConfigFile,
	})

	// 3. Run the command line, abandoning the check on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cmd.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

// initLogging initializes the logger based on configuration settings
func initLogging() error {
	logConfig := logger.LoggerConfig{
		Debug:     config.Instance.Debug,
		Verbose:   config.Instance.Verbose,
		LogFormat: config.Instance.LogFormat,
		LogFile:   config.Instance.LogFile,
	}

	return logger.InitLogger(logConfig)
}
