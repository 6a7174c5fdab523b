package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gebhydro/gebconf/pkg/config"
)

var getAs string

var getCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print one resolved value",
	Long: `Print the value at a dotted or sectioned key path, for example
general.start_time or TOPOP.Ldd. Use --as to coerce the value through
a typed accessor instead of printing the raw string.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVar(&getAs, "as", "string", "coercion to apply (string, float, bool, date, path, list)")
}

func runGet(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath, settingsPath, overlayPaths...)
	if err != nil {
		return fmt.Errorf("configuration resolution failed: %w", err)
	}

	path := args[0]
	switch getAs {
	case "string":
		v, err := cfg.String(path)
		if err != nil {
			return err
		}
		fmt.Println(v)
	case "float":
		v, err := cfg.Float(path)
		if err != nil {
			return err
		}
		fmt.Println(v)
	case "bool":
		v, err := cfg.Bool(path)
		if err != nil {
			return err
		}
		fmt.Println(v)
	case "date":
		v, err := cfg.Date(path)
		if err != nil {
			return err
		}
		fmt.Println(v.Format("2006-01-02"))
	case "path":
		v, err := cfg.Path(path)
		if err != nil {
			return err
		}
		fmt.Println(v)
	case "list":
		items, err := cfg.StringList(path)
		if err != nil {
			return err
		}
		fmt.Println(strings.Join(items, "\n"))
	default:
		return fmt.Errorf("unknown coercion %q", getAs)
	}
	return nil
}
