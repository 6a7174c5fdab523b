package cmd

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gebhydro/gebconf/pkg/config"
	"github.com/gebhydro/gebconf/pkg/logger"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Resolve and validate the full configuration",
	Long: `Parse the model document and the hydrological settings, merge any
calibration overlays, interpolate cross-references, and validate the
result. Exits non-zero on the first resolution error.`,
	RunE: runCheck,
}

func runCheck(_ *cobra.Command, _ []string) error {
	runID := uuid.New()

	logger.Progress("Resolving configuration...")
	cfg, err := config.Load(configPath, settingsPath, overlayPaths...)
	if err != nil {
		return fmt.Errorf("configuration resolution failed: %w", err)
	}

	selected, err := selectScenario(cfg)
	if err != nil {
		return err
	}

	logger.LogSection("Configuration check")
	logger.LogKeyValue("run id", runID)
	logger.LogKeyValue("model config", configPath)
	if settingsPath != "" {
		logger.LogKeyValue("hydrological settings", settingsPath)
	}
	for _, overlay := range overlayPaths {
		logger.LogKeyValue("calibration overlay", overlay)
	}
	if selected != "" {
		logger.LogKeyValue("scenario", selected)
	}
	logger.LogKeyValue("spin-up start", cfg.SpinupStart().Format("2006-01-02"))
	logger.LogKeyValue("start time", cfg.StartTime().Format("2006-01-02"))
	logger.LogKeyValue("end time", cfg.EndTime().Format("2006-01-02"))

	if flat := cfg.Flat(); flat != nil {
		logger.LogKeyValue("flat sections", len(flat.Sections()))
		logger.LogKeyValue("flat keys", flat.Len())
	}
	logger.LogKeyValue("report directives", cfg.Reports().Len())
	if dups := cfg.Reports().DuplicateLabels(); len(dups) > 0 {
		logger.Warnf("labels with multiple directives (intentional or oversight?): %v", dups)
	}

	logger.Success("Configuration is valid")
	return nil
}

// selectScenario validates the --scenario flag against the configured
// scenario set, prompting interactively when the flag is unset and
// stdin is a terminal.
func selectScenario(cfg *config.Config) (string, error) {
	scenarios := cfg.Scenarios()
	if scenario != "" {
		for _, name := range scenarios {
			if name == scenario {
				return scenario, nil
			}
		}
		return "", fmt.Errorf("unknown scenario %q, expected one of %v", scenario, scenarios)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", nil
	}
	var selected string
	prompt := &survey.Select{
		Message: "Select scenario:",
		Options: scenarios,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}
	return selected, nil
}
