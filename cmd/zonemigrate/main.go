package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"zonemigrate/internal/app"
	"zonemigrate/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "zonemigrate",
		Short:         "Migrate DNS records from an authoritative zone into a hosting API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().String("log-format", "text", "Log format (text|json)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		l, err := logging.New(format, slog.LevelInfo)
		if err != nil {
			return err
		}
		c.SetContext(logging.WithLogger(c.Context(), l))
		return nil
	}

	cmd.AddCommand(newCmdMigrate())
	cmd.AddCommand(newCmdPlan())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		if errors.Is(err, app.ErrAborted) {
			logging.FromContext(ctx).Warn("migration aborted, no further records were created")
		} else {
			logging.Errorf(ctx, "Failed: %s", err)
		}
		os.Exit(1)
	}
}
