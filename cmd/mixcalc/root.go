package main

import (
	"github.com/spf13/cobra"

	applog "hydromix/internal/log"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "mixcalc",
		Short: "Scale the hydroponic concentrate formula to a container",
		Long: `mixcalc scales the reference formula (Master Blend, Epsom Salt and
Calcium Nitrate per 500 ml of water) to any container size.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applog.SetLevel(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newCalcCmd(),
		newUnitsCmd(),
		newRangeCmd(),
		newPresetsCmd(),
	)
	return root
}
