package main

import (
	"fmt"
	"os"
	"time"

	"shipping/cmd"
	"shipping/internal/adapters/in/cli"

	"github.com/joho/godotenv"
)

func main() {
	configs, err := getConfigs()
	if err != nil {
		fail(err)
	}

	root := cmd.NewCompositionRoot(configs)
	if err := cli.Execute(root); err != nil {
		fail(err)
	}
}

func getConfigs() (cmd.Config, error) {
	// A .env file is a convenience for local runs, not a requirement.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		EasyPostAPIKey:  os.Getenv("EASYPOST_API_KEY"),
		EasyPostAPIBase: os.Getenv("EASYPOST_API_BASE"),
		HTTPTimeout:     30 * time.Second,
		LogLevel:        os.Getenv("LOG_LEVEL"),
	}

	if raw := os.Getenv("HTTP_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return cmd.Config{}, fmt.Errorf("parsing HTTP_TIMEOUT: %w", err)
		}
		config.HTTPTimeout = timeout
	}

	return config, nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
