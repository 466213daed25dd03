package main

import (
	"context"
	"fmt"
	"kiki-chat/internal"
	"os"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run loads the configuration, wires the client and blocks in the input loop
// until the user quits or stdin is closed.
func run() (int, error) {
	// 1. Configuration, an optional .env file first
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Wiring
	loop, err := internal.NewApp(log, config, os.Stdin, os.Stdout)
	if err != nil {
		return exitConfig, err
	}
	log.Debug("Client ready", "host", config.ServerHost, "timeout", config.HTTPTimeout)

	// 3. Interactive session. Interrupts keep their default behavior and end
	// the process, there is nothing to flush.
	if err = loop.Run(context.Background()); err != nil {
		return exitRuntime, err
	}
	return exitOK, nil
}
