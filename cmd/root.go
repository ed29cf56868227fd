package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "go-cosmos",
	Short: "Cosmos DB authorization signing service",
	Long: `go-cosmos signs Azure Cosmos DB REST requests with the master key
HMAC-SHA256 scheme and manages the account registry backing it.`,
	Run: func(cmd *cobra.Command, _ []string) {
		if err := cmd.Help(); err != nil {
			log.Error().Err(err).Msg("Failed to print help")
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
