package main

import (
	"os"

	"github.com/spf13/cobra"

	"zonemigrate/internal/app"
	"zonemigrate/internal/ui"
	"zonemigrate/internal/zone"
)

func newCmdPlan() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:           "plan",
		Short:         "Transfer and parse the zone, report only, create nothing",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			prompt := ui.NewStdinPrompter(os.Stdin, os.Stdout)
			if err := opts.resolve(prompt); err != nil {
				return err
			}

			text, err := opts.fetchZone(cmd.Context())
			if err != nil {
				return err
			}

			app.PrintReport(os.Stdout, zone.Parse(text, opts.domain))
			return nil
		},
	}

	opts.register(cmd)
	return cmd
}
