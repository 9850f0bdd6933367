package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/batch"
	"github.com/spigell/resume-scorer/internal/profile"
	"github.com/spigell/resume-scorer/internal/store"
)

var parseCmd = &cobra.Command{
	Use:   "parse [dir]",
	Short: "Extract profiles from every resume in a directory",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parse(cmd, args)
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().Int("top", 20, "number of top skills in the summary")
}

func parse(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, config := setup()

	dir := config.ResumeDir
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		logger.Fatal("resume directory is required", zap.String("hint", "pass it as an argument or set resume-dir"))
	}

	logger.Info("starting the resume parsing", zap.String("version", version), zap.String("dir", dir))

	extractor := newProfileExtractor(config, mustTaxonomy(config.Taxonomy, logger), logger)
	parser := batch.New(newTextExtractor(config.Extraction, logger), extractor, config.Workers, logger)

	profiles, err := parser.ParseDirectory(ctx, dir)
	if err != nil {
		logger.Fatal("parsing resumes", zap.Error(err))
	}

	if len(profiles) == 0 {
		logger.Info("exiting", zap.String("reason", "no resumes found"))
		return
	}

	path, err := store.SaveProfiles(config.OutputDir, profiles)
	if err != nil {
		logger.Fatal("saving profiles", zap.Error(err))
	}
	logger.Info("profiles saved", zap.String("filename", path), zap.Int("count", len(profiles)))

	top, _ := cmd.Flags().GetInt("top")
	logSummary(logger, profile.Summarize(profiles, top))
}

func logSummary(logger *zap.Logger, summary profile.Summary) {
	logger.Info("resumes summary",
		zap.Int("total_resumes", summary.TotalProfiles),
		zap.Float64("avg_experience", summary.AverageExperience),
		zap.Any("specializations", summary.Specializations),
	)

	for _, s := range summary.TopSkills {
		logger.Info("top skill", zap.String("skill", s.Skill), zap.Int("count", s.Count))
	}
}
