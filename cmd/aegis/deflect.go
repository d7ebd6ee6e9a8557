package main

import (
	"github.com/spf13/cobra"

	aegis "github.com/NexionisJake/Aegis"
)

var deflectCmd = &cobra.Command{
	Use:   "deflect",
	Short: "Simulate a prograde deflection maneuver",
	Long: "Propagates the body to the maneuver instant, applies the velocity increment\n" +
		"along the current velocity vector and reports the post-burn orbit and path.",
	RunE: runDeflect,
}

func init() {
	elementFlags(deflectCmd)
	deflectCmd.Flags().Float64("delta-v", 0, "velocity increment (m/s)")
	deflectCmd.Flags().Float64("days", 0, "maneuver time, days from epoch")
	deflectCmd.Flags().Int("points", aegis.DefaultTrajectoryPoints, "number of path points")
	rootCmd.AddCommand(deflectCmd)
}

func runDeflect(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	set, err := elementsFromFlags(cmd, logger)
	if err != nil {
		return err
	}
	deltaV, _ := cmd.Flags().GetFloat64("delta-v")
	days, _ := cmd.Flags().GetFloat64("days")
	points, _ := cmd.Flags().GetInt("points")

	sim := aegis.NewDeflectionSimulator(logger)
	res, err := sim.Deflect(set, deltaV, days, points)
	if err != nil {
		return err
	}
	return writeJSON(res)
}
