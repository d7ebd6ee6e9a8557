package main

import (
	"github.com/spf13/cobra"

	aegis "github.com/NexionisJake/Aegis"
)

var impactCmd = &cobra.Command{
	Use:   "impact",
	Short: "Compute impact effects from size, velocity and density",
	RunE:  runImpact,
}

func init() {
	impactCmd.Flags().Float64("diameter", 0, "asteroid diameter (km)")
	impactCmd.Flags().Float64("velocity", 0, "impact velocity (km/s)")
	impactCmd.Flags().Float64("density", aegis.DefaultAsteroidDensityKgM3, "asteroid density (kg/m³)")
	impactCmd.Flags().Float64("target-density", aegis.DefaultTargetDensityKgM3, "target material density (kg/m³)")
	rootCmd.AddCommand(impactCmd)
}

func runImpact(cmd *cobra.Command, args []string) error {
	f := func(name string) float64 {
		v, _ := cmd.Flags().GetFloat64(name)
		return v
	}
	res, err := aegis.ComputeImpact(aegis.ImpactParameters{
		DiameterKm:          f("diameter"),
		VelocityKps:         f("velocity"),
		AsteroidDensityKgM3: f("density"),
		TargetDensityKgM3:   f("target-density"),
	})
	if err != nil {
		return err
	}
	return writeJSON(aegis.FormatImpactResult(res))
}
