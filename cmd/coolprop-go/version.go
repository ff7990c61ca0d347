package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fluidkit/coolprop-go/pkg/coolprop"
)

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print wrapper and native library versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "wrapper: %s\n", coolprop.WrapperVersion())

			native, err := coolprop.Version()
			if err != nil {
				if errors.Is(err, coolprop.ErrNotBuilt) {
					fmt.Fprintln(cmd.OutOrStdout(), "native: not linked into this binary")
					return nil
				}
				return err
			}
			rev, err := coolprop.GitRevision()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "native: %s (%s)\n", native, rev)
			return nil
		},
	}
}
