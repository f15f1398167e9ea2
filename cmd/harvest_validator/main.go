// Package main provides the entry point for the harvest-validator CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "harvest_validator",
	Short:   "Harvest submission data validator",
	Long:    "harvest_validator checks harvest measurement files and submitted photos against data-quality rules and flags violating data points for review.",
	Version: version,
}

func init() {
	rootCmd.SetVersionTemplate("harvest-validator v{{.Version}}\n")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
