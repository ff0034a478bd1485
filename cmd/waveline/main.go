package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/waveline-inc/waveline/internal/interfaces/cli/migrate"
	"github.com/waveline-inc/waveline/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "waveline",
		Short: "Waveline - payment execution and incentive ledger",
		Long:  `Waveline settles freelance invoices on-chain and keeps the fee waiver, gas sponsorship, and referral ledgers that go with them.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
