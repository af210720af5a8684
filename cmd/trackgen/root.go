package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	cfg "github.com/automoto/racetrack/config"
	"github.com/automoto/racetrack/log"
)

const envPrefix = "RACETRACK"

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "trackgen",
	Short: "Generate racetrack layouts from waypoint files",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.InitDevelopmentLogger()
		} else {
			log.InitProductionLogger()
		}
	},
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.trackgen.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log with the development logger")
	rootCmd.PersistentFlags().StringVar(&cfg.Track.Dir, "track-dir",
		cfg.Track.Dir,
		"directory holding the track files")
	rootCmd.PersistentFlags().StringVar(&cfg.Track.DefaultTrack, "default-track",
		cfg.Track.DefaultTrack,
		"track loaded when the requested one is missing")
	rootCmd.PersistentFlags().Float64Var(&cfg.Track.CarWidthMultiplier, "car-widths",
		cfg.Track.CarWidthMultiplier,
		"track width in car widths, on top of the wall size")
	rootCmd.PersistentFlags().Float64Var(&cfg.Powerup.SpawnChance, "powerup-chance",
		cfg.Powerup.SpawnChance,
		"chance of a powerup on each centerline segment")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newListCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".trackgen")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// --track-dir is read from RACETRACK_TRACK_DIR
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
