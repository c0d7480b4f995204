package main

import (
	"os"

	"github.com/spf13/cobra"

	"complaintbox/internal/interfaces/cli/migrate"
	"complaintbox/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "complaintbox",
		Short: "Complaint Box - anonymous complaint collection service",
		Long:  `Complaint Box collects anonymous complaints with optional attachments and serves a realtime admin dashboard.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
