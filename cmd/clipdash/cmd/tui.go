package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/msto63/clipdash/internal/tui/dashboard"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive dashboard",
	Long: `Start the clipboard dashboard.

Navigation:
  Tab        - Switch between buffers, actions, arg1 and arg2
  Space      - Select the buffer under the cursor
  Enter      - Retrieve (buffers) or run the action (actions, arguments)
  s / r      - Store the clipboard / retrieve the next selected buffer
  /          - Filter the actions
  ?          - All keys
  q, Ctrl+C  - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		printError("startup failed", err)
		return err
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := dashboard.Run(ctx, cfg, logger); err != nil {
		logger.Error("Dashboard failed", "error", err.Error())
		printError("dashboard failed", err)
		return err
	}
	return nil
}
