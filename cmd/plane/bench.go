package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/willbeason/complex-plane/pkg/plane"
)

const (
	flagSteps = "steps"
	flagAt    = "at"
	flagJSON  = "json"
)

func benchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Render the base view and a series of zooms without a window, reporting timings",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			steps, err := cmd.Flags().GetInt(flagSteps)
			if err != nil {
				return err
			}
			at, err := cmd.Flags().GetIntSlice(flagAt)
			if err != nil {
				return err
			}
			asJSON, err := cmd.Flags().GetBool(flagJSON)
			if err != nil {
				return err
			}

			s := readSettings(v)
			x, y := s.Width/2, s.Height/2
			if len(at) > 0 {
				if len(at) != 2 {
					return fmt.Errorf("--%s wants x,y, got %v", flagAt, at)
				}
				x, y = at[0], at[1]
			}

			p, _, cleanup, err := setup(s)
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := plane.Bench(p, steps, x, y, nil)
			if err != nil {
				return err
			}

			if asJSON {
				return report.WriteJSON(cmd.OutOrStdout())
			}
			return report.WriteText(cmd.OutOrStdout())
		},
	}

	cmd.Flags().Int(flagSteps, 8, "number of zoom-in steps after the base view")
	cmd.Flags().IntSlice(flagAt, nil, "pixel to zoom in at, as x,y (default the raster center)")
	cmd.Flags().Bool(flagJSON, false, "print the report as JSON")

	return cmd
}
