package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

// @title Ubuntu Hub API
// @version 1.0
// @description Community hub: organizations, facility bookings, polls, volunteering, events, fundraising and documents.
// @BasePath /
func main() {
	rootCmd := &cobra.Command{
		Use:           "hub",
		Short:         "Community hub API server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(serveCmd(), migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
