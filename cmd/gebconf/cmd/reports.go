package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gebhydro/gebconf/pkg/config"
	"github.com/gebhydro/gebconf/pkg/logger"
)

var (
	reportsFrequency string
	reportsSource    string
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List report directives",
	Long: `List the report directives parsed from the model document, in
document order. Directives sharing a label are listed separately.`,
	RunE: runReports,
}

func init() {
	reportsCmd.Flags().StringVar(&reportsFrequency, "frequency", "", "only directives with this frequency (initial_only, per_timestep)")
	reportsCmd.Flags().StringVar(&reportsSource, "source", "", "only directives reading from this source type")
}

func runReports(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath, settingsPath, overlayPaths...)
	if err != nil {
		return fmt.Errorf("configuration resolution failed: %w", err)
	}
	reg := cfg.Reports()

	directives := reg.All()
	if reportsFrequency != "" {
		directives = reg.ByFrequency(config.Frequency(reportsFrequency))
	}
	if reportsSource != "" {
		filtered := directives[:0:0]
		for _, d := range directives {
			if d.SourceType == reportsSource {
				filtered = append(filtered, d)
			}
		}
		directives = filtered
	}

	if len(directives) == 0 {
		logger.Warn("no report directives match")
		return nil
	}

	title := color.New(color.Bold, color.FgCyan)
	if noColor {
		title.DisableColor()
	}
	title.Printf("Report directives (%d)\n", len(directives))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SUBMODEL\tLABEL\tSOURCE\tVARNAME\tFUNCTION\tFORMAT\tFREQUENCY\tSAVE")
	for _, d := range directives {
		submodel := d.Submodel
		if submodel == "" {
			submodel = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			submodel, d.Label, d.SourceType, d.VarName, d.Aggregation, d.Format, d.Frequency, d.SaveMode)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if dups := reg.DuplicateLabels(); len(dups) > 0 {
		logger.Warnf("labels with multiple directives: %v", dups)
	}
	return nil
}
