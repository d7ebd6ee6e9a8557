package main

import (
	"fmt"

	"github.com/spf13/cobra"

	aegis "github.com/NexionisJake/Aegis"
)

var trajectoryCmd = &cobra.Command{
	Use:   "trajectory",
	Short: "Compute synchronized asteroid and Earth trajectories",
	Long: "Computes both heliocentric paths over a shared time grid spanning two years\n" +
		"from the element epoch. Requires VSOP87 ephemeris tables; point AEGIS_CONFIG\n" +
		"at a directory holding conf.toml with vsop87.directory set.",
	RunE: runTrajectory,
}

func init() {
	elementFlags(trajectoryCmd)
	trajectoryCmd.Flags().Int("points", aegis.DefaultTrajectoryPoints, "number of grid points")
	rootCmd.AddCommand(trajectoryCmd)
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	set, err := elementsFromFlags(cmd, logger)
	if err != nil {
		return err
	}
	ephem, err := aegis.NewVSOP87ProviderFromConfig()
	if err != nil {
		return fmt.Errorf("loading VSOP87 ephemeris: %w", err)
	}
	points, _ := cmd.Flags().GetInt("points")

	eng := aegis.NewTrajectoryEngine(ephem, logger)
	res, err := eng.ComputeBoth(set, points)
	if err != nil {
		return err
	}
	return writeJSON(res)
}
