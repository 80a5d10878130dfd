package commands

import (
	"fmt"

	"github.com/feedbackhq/whatsapp-feedback/internal/client"
	"github.com/spf13/cobra"
)

// NewClientCmd creates the command printing the client-side resolution for a
// given build mode and page host, mirroring what the browser bundle computes.
func NewClientCmd() *cobra.Command {
	var mode string
	var pageHost string
	var port string
	var apiBase string
	cmd := &cobra.Command{
		Use:   "client",
		Short: "Print the client-side URL resolution",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := client.Env{
				APIBaseOverride: apiBase,
				Mode:            client.Mode(mode),
				BackendPort:     port,
				PageHost:        pageHost,
			}
			fmt.Printf("API base URL:     %s\n", client.APIBaseURL(env))
			fmt.Printf("Backend base URL: %s\n", client.BackendBaseURL(env))
			fmt.Printf("Event stream URL: %s\n", client.EventStreamURL(env))
			return nil
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "development", "Build mode (development or production)")
	cmd.Flags().StringVar(&pageHost, "page-host", "", "Browser location.host to resolve against")
	cmd.Flags().StringVar(&port, "port", "", "Development backend port override")
	cmd.Flags().StringVar(&apiBase, "api-base", "", "Explicit API base URL override")
	return cmd
}
