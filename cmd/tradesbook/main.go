package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tradesbook-ie/tradesbook/internal/interfaces/cli/migrate"
	"github.com/tradesbook-ie/tradesbook/internal/interfaces/cli/server"
	"github.com/tradesbook-ie/tradesbook/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tradesbook",
		Short: "tradesbook - TV installation booking backend",
		Long:  `tradesbook serves the booking, schedule negotiation, installation photo and support ticket APIs.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
