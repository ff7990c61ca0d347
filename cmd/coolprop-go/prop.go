package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fluidkit/coolprop-go/pkg/coolprop"
)

func newPropCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "prop <output> <name1> <value1> <name2> <value2> <fluid>",
		Short: "Evaluate a thermodynamic property from two state variables (SI units)",
		Example: `  coolprop-go prop T P 101325 Q 0 Water
  coolprop-go prop Dmass T 300 P 5e6 "HEOS::Methane[0.5]&Ethane[0.5]"`,
		Args: cobra.ExactArgs(6),
		RunE: func(cmd *cobra.Command, args []string) error {
			value1, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("value1: %w", err)
			}
			value2, err := strconv.ParseFloat(args[4], 64)
			if err != nil {
				return fmt.Errorf("value2: %w", err)
			}
			v, err := coolprop.PropsSI(args[0], args[1], value1, args[3], value2, args[5])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", v)
			return nil
		},
	}
}

func newProp1Cmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "prop1 <fluid> <output>",
		Short:   "Evaluate a state-independent fluid property",
		Example: "  coolprop-go prop1 Water Tcrit",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := coolprop.Props1SI(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", v)
			return nil
		},
	}
}
