package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"hydromix/internal/mixture"
	"hydromix/internal/presets"
)

func newPresetsCmd() *cobra.Command {
	var system string
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in container presets with their mixtures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := mixture.ParseSystem(system)
			if system != "" && filter == "" {
				return fmt.Errorf("unknown measurement system %q", system)
			}

			catalogue, err := presets.Default()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range catalogue {
				if filter != "" && p.System != string(filter) {
					continue
				}
				result, err := mixture.Calculate(presets.Input(p))
				if err != nil {
					return fmt.Errorf("preset %s: %w", p.Slug, err)
				}
				fmt.Fprintf(out, "%-18s %s %s -> %s g master blend, %s g epsom salt, %s g calcium nitrate\n",
					p.Slug,
					strconv.FormatFloat(p.Size, 'f', -1, 64),
					mixture.DisplayName(mixture.ParseUnit(p.Unit)),
					mixture.FormatWeight(result.MasterBlend),
					mixture.FormatWeight(result.EpsomSalt),
					mixture.FormatWeight(result.CalciumNitrate),
				)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&system, "system", "", "only list presets for this measurement system")
	return cmd
}
