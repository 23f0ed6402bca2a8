package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tubegrab/internal/cfg"
	"tubegrab/internal/domain/setup"
	"tubegrab/internal/logging"
)

func main() {
	if err := setup.InitProgFilesDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Startup failed: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Setup(setup.LogFilePath, 0); err != nil {
		fmt.Fprintf(os.Stderr, "Logging setup failed: %v\n", err)
		os.Exit(1)
	}
	defer logging.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cfg.InitCommands(); err != nil {
		logging.E("Failed to initialize commands: %v", err)
		os.Exit(1)
	}

	if err := cfg.Execute(ctx); err != nil {
		logging.E("%v", err)
		os.Exit(1)
	}
}
