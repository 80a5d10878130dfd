package commands

import (
	"fmt"

	"github.com/feedbackhq/whatsapp-feedback/internal/logger"
	"github.com/feedbackhq/whatsapp-feedback/internal/urls"
	"github.com/spf13/cobra"
)

// NewSummaryCmd creates the command emitting the startup diagnostic summary,
// exactly as the server process logs it at boot.
func NewSummaryCmd() *cobra.Command {
	var envFile string
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Log the startup URL summary for the current environment",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := snapshot(envFile)
			if err != nil {
				return err
			}
			log, err := logger.NewDevelopmentLogger(false)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer func() {
				_ = logger.Sync(log)
			}()
			urls.StartupSummary(log, env)
			return nil
		},
	}
	addEnvFileFlag(cmd, &envFile)
	return cmd
}
