package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fluidkit/coolprop-go/pkg/coolprop"
)

func newPhaseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "phase <name1> <value1> <name2> <value2> <fluid>",
		Short:   "Classify the phase at a state point",
		Example: "  coolprop-go phase T 300 P 101325 Water",
		Args:    cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			value1, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("value1: %w", err)
			}
			value2, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("value2: %w", err)
			}
			phase, err := coolprop.PhaseSI(args[0], value1, args[2], value2, args[4])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), phase)
			return nil
		},
	}
}
