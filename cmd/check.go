package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coursegrid/coursegrid/config"
	"github.com/coursegrid/coursegrid/core/metrics"
	"github.com/coursegrid/coursegrid/core/model"
	"github.com/coursegrid/coursegrid/core/query"
	"github.com/coursegrid/coursegrid/core/schedule"
	"github.com/coursegrid/coursegrid/infra/logger"
	"github.com/coursegrid/coursegrid/infra/source"
)

var checkBatch string

var checkCmd = &cobra.Command{
	Use:   "check <course-code>",
	Short: "Report scheduling conflicts for a course",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkBatch, "batch", "b", "", "batch codes forming the conflict context (comma separated)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.SetGlobalLevel(cfg.Logging.Level)

	loader := source.NewLoader(cfg.Data.Dir, logger.New("check-command"), metrics.NopSink{})
	snap, err := loader.Load()
	if err != nil {
		return err
	}

	code := args[0]
	var candidate model.Course
	found := false
	for _, c := range snap.Courses {
		if c.CourseCode == code {
			candidate = c
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("course %s not found in %s", code, snap.Source)
	}

	context := snap.Courses
	if checkBatch != "" {
		context = query.ByBatch(snap.Courses, strings.Split(checkBatch, ","))
	}
	conflicts := schedule.Conflicts(candidate, context)
	if len(conflicts) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s has no conflicts\n", code)
		return nil
	}
	for _, c := range conflicts {
		fmt.Fprintf(cmd.OutOrStdout(), "%s conflicts with %s (%s %s-%s)\n",
			code, c.CourseCode, c.Day, c.StartTime, c.EndTime)
	}
	return nil
}
