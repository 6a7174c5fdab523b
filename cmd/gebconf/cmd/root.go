package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/gebhydro/gebconf/pkg/logger"
)

var (
	configPath   string
	settingsPath string
	overlayPaths []string
	scenario     string
	logLevel     string
	noColor      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gebconf",
	Short: "GEB configuration inspector",
	Long: `gebconf resolves the configuration of the coupled hydrological /
agent-based simulation: it parses the structured model document and the
flat hydrological settings, merges calibration overlays, interpolates
cross-references, and validates the result before the model ever runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "GEB.yml", "path of the model configuration file")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "path of the hydrological settings file")
	rootCmd.PersistentFlags().StringArrayVar(&overlayPaths, "calibration", nil, "calibration overlay file (repeatable, later overlays win)")
	rootCmd.PersistentFlags().StringVar(&scenario, "scenario", "", "scenario to check the configuration for")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(reportsCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// initConfig configures logging and fills unset flags from GEBCONF_*
// environment variables.
func initConfig() {
	logger.SetLevel(logger.ParseLevel(logLevel))
	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.SetNoColor(true)
		noColor = true
	}

	viper.SetEnvPrefix("GEBCONF")
	viper.AutomaticEnv()

	if !rootCmd.PersistentFlags().Changed("config") {
		if v := viper.GetString("config"); v != "" {
			configPath = v
		}
	}
	if settingsPath == "" {
		settingsPath = viper.GetString("settings")
	}
	if scenario == "" {
		scenario = viper.GetString("scenario")
	}
}
