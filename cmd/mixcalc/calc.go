package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hydromix/internal/mixture"
)

type calcOptions struct {
	system  string
	variant string
	asJSON  bool
}

func newCalcCmd() *cobra.Command {
	opts := calcOptions{}
	cmd := &cobra.Command{
		Use:   "calc SIZE UNIT",
		Short: "Calculate grams of each concentrate for a container",
		Example: `  mixcalc calc 1 gallon
  mixcalc calc 17 floz --system imperial
  mixcalc calc 2 liter --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, args, opts)
		},
	}
	cmd.Flags().StringVar(&opts.system, "system", "", "measurement system used to display the volume (metric or imperial)")
	cmd.Flags().StringVar(&opts.variant, "variant", mixture.FullVariant.Name, "unit set to validate against (full or container)")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	return cmd
}

func runCalc(cmd *cobra.Command, args []string, opts calcOptions) error {
	size, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return errors.New(mixture.MsgInvalidSize)
	}

	system := mixture.ParseSystem(opts.system)
	if opts.system != "" && system == "" {
		return fmt.Errorf("unknown measurement system %q", opts.system)
	}

	input := mixture.CalculationInput{
		ContainerSize: size,
		Unit:          mixture.ParseUnit(args[1]),
		System:        system,
	}
	result, err := mixture.VariantByName(opts.variant).Calculate(input)
	if err != nil {
		var invalid *mixture.InvalidInputError
		if errors.As(err, &invalid) {
			return errors.New(invalid.First())
		}
		return err
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Fprintf(out, "For %s of water:\n", mixture.FormatVolume(result.TotalVolumeML, input.System))
	fmt.Fprintf(out, "  Master Blend:    %s g\n", mixture.FormatWeight(result.MasterBlend))
	fmt.Fprintf(out, "  Epsom Salt:      %s g\n", mixture.FormatWeight(result.EpsomSalt))
	fmt.Fprintf(out, "  Calcium Nitrate: %s g\n", mixture.FormatWeight(result.CalciumNitrate))
	fmt.Fprintf(out, "Scaling factor: %sx\n", mixture.Fixed(result.ScalingFactor, 3))
	return nil
}
