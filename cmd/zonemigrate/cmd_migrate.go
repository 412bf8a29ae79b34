package main

import (
	"os"

	"github.com/spf13/cobra"

	"zonemigrate/internal/app"
	"zonemigrate/internal/logging"
	"zonemigrate/internal/ui"
	"zonemigrate/internal/zone"
)

func newCmdMigrate() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Transfer the zone, report, and create records after confirmation",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := logging.FromContext(ctx)
			prompt := ui.NewStdinPrompter(os.Stdin, os.Stdout)

			if err := opts.resolve(prompt); err != nil {
				return err
			}

			client, err := opts.buildClient(os.Stdout)
			if err != nil {
				return err
			}

			logger.Info("starting zone transfer", "domain", opts.domain, "nameserver", opts.nameserver)
			text, err := opts.fetchZone(ctx)
			if err != nil {
				return err
			}

			set := zone.Parse(text, opts.domain)
			logger.Info("zone parsed",
				"considered", set.Considered,
				"valid", set.ValidCount,
				"invalid", set.InvalidCount,
				"unclassified", len(set.Unclassified))

			return app.NewController(client, prompt, os.Stdout).Run(ctx, opts.domain, set)
		},
	}

	opts.register(cmd)
	opts.registerProvider(cmd)
	return cmd
}
