package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hydromix/internal/mixture"
)

func newUnitsCmd() *cobra.Command {
	var variant string
	cmd := &cobra.Command{
		Use:   "units",
		Short: "List supported units and their millilitre factors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, u := range mixture.VariantByName(variant).Units {
				factor, _ := mixture.Factor(u)
				fmt.Fprintf(out, "%-8s %-12s %s ml\n", u, mixture.DisplayName(u), strconv.FormatFloat(factor, 'f', -1, 64))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&variant, "variant", mixture.FullVariant.Name, "unit set to list (full or container)")
	return cmd
}

func newRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range UNIT",
		Short: "Show the slider range for a unit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit := mixture.ParseUnit(args[0])
			if _, ok := mixture.Factor(unit); !ok {
				return fmt.Errorf("%s: %q", mixture.MsgInvalidUnit, args[0])
			}
			r := mixture.RangeFor(unit)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: min %s, max %s, step %s, default %s\n",
				mixture.DisplayName(unit),
				strconv.FormatFloat(r.Min, 'f', -1, 64),
				strconv.FormatFloat(r.Max, 'f', -1, 64),
				strconv.FormatFloat(r.Step, 'f', -1, 64),
				strconv.FormatFloat(r.Default, 'f', -1, 64),
			)
			return nil
		},
	}
}
