package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coursegrid/coursegrid/config"
	"github.com/coursegrid/coursegrid/core/metrics"
	"github.com/coursegrid/coursegrid/infra/logger"
	"github.com/coursegrid/coursegrid/infra/source"
	"github.com/coursegrid/coursegrid/pkg/export"
)

var parseFormat string

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse the timetable once and write it to stdout",
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "json", "output format: json or csv")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetGlobalLevel(cfg.Logging.Level)

	loader := source.NewLoader(cfg.Data.Dir, logger.New("parse-command"), metrics.NopSink{})
	snap, err := loader.Load()
	if err != nil {
		return err
	}
	switch parseFormat {
	case "json":
		return export.WriteJSON(os.Stdout, snap.Courses)
	case "csv":
		return export.WriteCSV(os.Stdout, snap.Courses)
	default:
		return fmt.Errorf("unknown output format %s", parseFormat)
	}
}
