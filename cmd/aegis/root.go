package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	aegis "github.com/NexionisJake/Aegis"
)

var rootCmd = &cobra.Command{
	Use:   "aegis",
	Short: "Asteroid trajectory and impact computations",
	Long: "Aegis computes synchronized heliocentric trajectories for an asteroid and Earth,\n" +
		"simulates prograde deflection maneuvers and derives impact effects from scaling laws.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log computation details to stderr")
}

func initConfig() {
	viper.SetEnvPrefix("AEGIS")
	viper.AutomaticEnv()
}

// newLogger returns a logfmt logger on stderr, or a nop logger unless -v.
func newLogger(cmd *cobra.Command) log.Logger {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	}
	return log.NewNopLogger()
}

// writeJSON prints v as indented JSON on stdout.
func writeJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// elementFlags registers the six classical element flags plus the epoch
// and an alternative JSON record file.
func elementFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("a", 0, "semi-major axis (AU)")
	cmd.Flags().Float64("e", 0, "eccentricity")
	cmd.Flags().Float64("i", 0, "inclination (deg)")
	cmd.Flags().Float64("om", 0, "longitude of ascending node (deg)")
	cmd.Flags().Float64("w", 0, "argument of periapsis (deg)")
	cmd.Flags().Float64("ma", 0, "mean anomaly (deg)")
	cmd.Flags().Float64("epoch", 0, "epoch (Julian date)")
	cmd.Flags().String("record", "", "JSON element record file (overrides element flags)")
}

// elementsFromFlags builds a validated element set from --record or the
// individual element flags.
func elementsFromFlags(cmd *cobra.Command, logger log.Logger) (aegis.OrbitalElementSet, error) {
	if path, _ := cmd.Flags().GetString("record"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return aegis.OrbitalElementSet{}, err
		}
		var rec aegis.ElementRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return aegis.OrbitalElementSet{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		return aegis.ExtractElements(rec, logger)
	}

	f := func(name string) float64 {
		v, _ := cmd.Flags().GetFloat64(name)
		return v
	}
	set := aegis.OrbitalElementSet{
		SemiMajorAxisAU: f("a"),
		Eccentricity:    f("e"),
		InclinationDeg:  f("i"),
		NodeDeg:         f("om"),
		ArgPeriapsisDeg: f("w"),
		MeanAnomalyDeg:  f("ma"),
		EpochJD:         f("epoch"),
	}
	if err := set.Validate(); err != nil {
		return aegis.OrbitalElementSet{}, err
	}
	return set, nil
}
