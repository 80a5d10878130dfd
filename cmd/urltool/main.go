package main

import (
	"fmt"
	"os"

	"github.com/feedbackhq/whatsapp-feedback/cmd/urltool/commands"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "urltool",
		Short: "URL resolution inspector for whatsapp-feedback",
		Long:  "Resolves the frontend/backend URLs and CORS allow-list from the current environment, for debugging deployments.",
	}

	rootCmd.AddCommand(commands.NewFrontendCmd())
	rootCmd.AddCommand(commands.NewBackendCmd())
	rootCmd.AddCommand(commands.NewOriginsCmd())
	rootCmd.AddCommand(commands.NewClientCmd())
	rootCmd.AddCommand(commands.NewSummaryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
