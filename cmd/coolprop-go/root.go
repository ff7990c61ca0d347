package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	verbose    bool
	logger     *log.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "coolprop-go",
		Short:         "Query thermophysical properties from the command line",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.logger = log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: false,
			})
			if opts.verbose {
				opts.logger.SetLevel(log.DebugLevel)
			}
			return applyStartupConfig(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML file with startup configuration")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newPropCmd(opts),
		newProp1Cmd(opts),
		newHAPropCmd(opts),
		newPhaseCmd(opts),
		newFluidsCmd(opts),
		newTableCmd(opts),
		newVersionCmd(opts),
	)
	return cmd
}
