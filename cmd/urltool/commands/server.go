package commands

import (
	"fmt"

	"github.com/feedbackhq/whatsapp-feedback/internal/config"
	"github.com/feedbackhq/whatsapp-feedback/internal/urls"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// snapshot captures the environment, optionally merging a dotenv file first.
func snapshot(envFile string) (config.Snapshot, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}
	return config.FromEnvironment(), nil
}

func addEnvFileFlag(cmd *cobra.Command, envFile *string) {
	cmd.Flags().StringVar(envFile, "env-file", "", "Dotenv file to merge into the environment before resolving")
}

// NewFrontendCmd creates the command printing the resolved frontend URL.
func NewFrontendCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "frontend",
		Short: "Print the resolved frontend URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := snapshot(envFile)
			if err != nil {
				return err
			}
			fmt.Println(urls.FrontendURL(env))
			return nil
		},
	}
	addEnvFileFlag(cmd, &envFile)
	return cmd
}

// NewBackendCmd creates the command printing the resolved backend URL.
func NewBackendCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "backend",
		Short: "Print the resolved backend URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := snapshot(envFile)
			if err != nil {
				return err
			}
			fmt.Println(urls.BackendURL(env))
			return nil
		},
	}
	addEnvFileFlag(cmd, &envFile)
	return cmd
}

// NewOriginsCmd creates the command listing the CORS allow-list.
func NewOriginsCmd() *cobra.Command {
	var envFile string
	var check string
	cmd := &cobra.Command{
		Use:   "origins",
		Short: "List the CORS origin allow-list",
		Long:  "Lists the ordered CORS allow-list for the current environment. With --check, also reports whether a given origin would be accepted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := snapshot(envFile)
			if err != nil {
				return err
			}
			origins := urls.CORSOrigins(env)
			fmt.Printf("CORS allow-list (%d entries):\n", len(origins))
			for _, o := range origins {
				fmt.Printf("  %s\n", o)
			}
			if check != "" {
				fmt.Printf("Origin %q allowed: %v\n", check, urls.Allowed(origins, check))
			}
			return nil
		},
	}
	addEnvFileFlag(cmd, &envFile)
	cmd.Flags().StringVar(&check, "check", "", "Origin to test against the allow-list")
	return cmd
}
