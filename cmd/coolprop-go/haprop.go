package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fluidkit/coolprop-go/pkg/coolprop"
)

func newHAPropCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "haprop <output> <name1> <value1> <name2> <value2> <name3> <value3>",
		Short:   "Evaluate a humid-air property from three state variables (SI units)",
		Example: "  coolprop-go haprop H T 298.15 P 101325 R 0.5",
		Args:    cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make([]float64, 3)
			for i := 0; i < 3; i++ {
				v, err := strconv.ParseFloat(args[2+2*i], 64)
				if err != nil {
					return fmt.Errorf("value%d: %w", i+1, err)
				}
				values[i] = v
			}
			v, err := coolprop.HAPropsSI(args[0], args[1], values[0], args[3], values[1], args[5], values[2])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g\n", v)
			return nil
		},
	}
}
