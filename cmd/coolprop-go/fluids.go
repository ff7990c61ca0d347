package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fluidkit/coolprop-go/pkg/coolprop"
)

func newFluidsCmd(opts *rootOptions) *cobra.Command {
	var showAliases bool

	cmd := &cobra.Command{
		Use:   "fluids [name]",
		Short: "List known fluids, or show metadata for one fluid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fluids, err := coolprop.FluidsList()
				if err != nil {
					return err
				}
				for _, f := range fluids {
					fmt.Fprintln(cmd.OutOrStdout(), f)
				}
				return nil
			}

			fluid := args[0]
			for _, param := range []string{"CAS", "formula"} {
				v, err := coolprop.FluidParamString(fluid, param)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", param, v)
			}
			if showAliases {
				aliases, err := coolprop.FluidParamString(fluid, "aliases")
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "aliases: %s\n", aliases)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAliases, "aliases", false, "also print the fluid's aliases")
	return cmd
}
