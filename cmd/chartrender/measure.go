package main

import (
	"fmt"

	"github.com/roffe/columnchart/pkg/chart"
	"github.com/spf13/cobra"
)

func newMeasureCmd(root *rootOptions) *cobra.Command {
	var window windowFlags
	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Print the size the chart is measured to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if err := window.apply(cmd, cfg); err != nil {
				return err
			}
			wm, hm, err := cfg.Window.MeasureModes()
			if err != nil {
				return err
			}
			size := chart.ComputeMeasuredSize(wm, hm, chart.NewSize(cfg.Window.Width, cfg.Window.Height), cfg.Window.Density)
			fmt.Fprintf(cmd.OutOrStdout(), "%gx%g\n", size.Width, size.Height)
			return nil
		},
	}
	window.register(cmd)
	return cmd
}
