package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/filtering"
	"github.com/spigell/resume-scorer/internal/headhunter"
	"github.com/spigell/resume-scorer/internal/scoring"
	"github.com/spigell/resume-scorer/internal/secrets"
	"github.com/spigell/resume-scorer/internal/store"
	"github.com/spigell/resume-scorer/internal/textextract"
)

const (
	PromptTop                 = "Show top candidates"
	PromptReportByCategory    = "Report by category"
	PromptBrowse              = "Browse candidates"
	PromptRankingToFile       = "Dump ranking to file"
	PromptExit                = "Exit"
	PromptBack                = "back"
	PromptAppendToExcludeFile = "Append poor candidates to exclude file"

	inlineVacancyID = "inline"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptTop, PromptReportByCategory, PromptBrowse, PromptRankingToFile, PromptExit},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank parsed resumes against a vacancy",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().String("vacancy-file", "", "file with the vacancy description (.txt, .pdf or .docx)")
	rankCmd.Flags().String("vacancy-text", "", "the vacancy description")
	rankCmd.Flags().String("hh-vacancy", "", "id of a vacancy on hh.ru")
	rankCmd.MarkFlagsMutuallyExclusive("vacancy-file", "vacancy-text", "hh-vacancy")
	rankCmd.MarkFlagsOneRequired("vacancy-file", "vacancy-text", "hh-vacancy")

	rankCmd.Flags().String("profiles", "", "parsed profiles (default is parsed_resumes.json in the output directory)")
	rankCmd.Flags().Int("top", 10, "number of candidates to print")
	rankCmd.Flags().BoolP("interactive", "i", false, "browse the ranking after it is saved")
	rankCmd.Flags().Bool("keep-empty", false, "rank resumes without extracted text too")
	rankCmd.Flags().String("specialization", "", "keep candidates with this specialization only")
	rankCmd.Flags().String("skill", "", "keep candidates with this skill only")
	rankCmd.Flags().Int("min-experience", 0, "keep candidates with at least this many years of experience")
	rankCmd.Flags().StringP("exclude-file", "e", "", "special file with candidates to exclude. Default is unset.")

	viper.BindPFlag("filters.specialization", rankCmd.Flags().Lookup("specialization"))
	viper.BindPFlag("filters.skill", rankCmd.Flags().Lookup("skill"))
	viper.BindPFlag("filters.min-experience", rankCmd.Flags().Lookup("min-experience"))
	viper.BindPFlag("filters.exclude-file", rankCmd.Flags().Lookup("exclude-file"))
}

func rank(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, config := setup()

	logger.Info("starting the ranking", zap.String("version", version))

	profilesPath, _ := cmd.Flags().GetString("profiles")
	if profilesPath == "" {
		profilesPath = filepath.Join(config.OutputDir, store.ProfilesFile)
	}

	profiles, err := store.LoadProfiles(profilesPath)
	if err != nil {
		logger.Fatal("loading profiles", zap.Error(err), zap.String("hint", "run the parse command first or pass --profiles"))
	}
	logger.Info("profiles loaded", zap.String("filename", profilesPath), zap.Int("count", len(profiles)))

	vacancyID, text, err := vacancyText(ctx, cmd, config, logger)
	if err != nil {
		logger.Fatal("getting the vacancy", zap.Error(err))
	}
	if strings.TrimSpace(text) == "" {
		logger.Fatal("vacancy has no text", zap.String("vacancy", vacancyID))
	}

	tx := mustTaxonomy(config.Taxonomy, logger)
	if skill := config.Filters.Skill; skill != "" {
		if _, _, ok := tx.Lookup(skill); !ok {
			logger.Warn("skill is not in the taxonomy, no resume can match it", zap.String("skill", skill))
		}
	}

	steps := filtering.Defaults()
	if keep, _ := cmd.Flags().GetBool("keep-empty"); keep {
		filtering.DisableByName(steps, "with_text", "keep-empty flag is set")
	}

	candidates, err := filtering.Run(ctx, config.Filters, filtering.Deps{Logger: logger}, steps, filtering.NewCandidates(profiles))
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}
	logger.Debug("filters", zap.Any("statuses", filtering.Describe(steps)))

	if candidates.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no resumes left after filters"))
		return
	}

	requirement := newProfileExtractor(config, tx, logger).ExtractRequirements(vacancyID, text)
	logger.Info("vacancy requirements",
		zap.String("vacancy", vacancyID),
		zap.Strings("skills", requirement.AllSkills),
		zap.Strings("specializations", requirement.Specializations),
		zap.Int("experience_years", requirement.ExperienceYears),
	)

	scorer := scoring.NewScorer(scoring.WithWeights(config.Scoring.Weights), scoring.WithLogger(logger))
	results, err := scoring.NewRanker(scorer, config.Workers, logger).Rank(ctx, candidates.Items, requirement)
	if err != nil {
		logger.Fatal("ranking failed", zap.Error(err))
	}

	stats, err := scoring.CategoryStatistics(results)
	if err != nil {
		logger.Fatal("computing statistics", zap.Error(err))
	}

	ranking := &store.Ranking{
		Vacancy:     vacancyID,
		Requirement: requirement,
		Statistics:  stats,
		Results:     results,
		CreatedAt:   time.Now().UTC(),
	}

	path, err := store.SaveRanking(config.OutputDir, ranking)
	if err != nil {
		logger.Fatal("saving ranking", zap.Error(err))
	}
	logger.Info("ranking saved", zap.String("filename", path))

	top, _ := cmd.Flags().GetInt("top")
	logStatistics(logger, stats)
	logTop(logger, ranking.Results, top)

	if interactive, _ := cmd.Flags().GetBool("interactive"); !interactive {
		return
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, config, ranking, top); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// vacancyText returns the vacancy id and description from whichever source flag is set.
func vacancyText(ctx context.Context, cmd *cobra.Command, config *Config, logger *zap.Logger) (string, string, error) {
	if path, _ := cmd.Flags().GetString("vacancy-file"); path != "" {
		text := newTextExtractor(config.Extraction, logger).Extract(ctx, textextract.Document{Path: path})
		return filepath.Base(path), text, nil
	}

	if text, _ := cmd.Flags().GetString("vacancy-text"); text != "" {
		return inlineVacancyID, text, nil
	}

	id, _ := cmd.Flags().GetString("hh-vacancy")
	if id == "" {
		return "", "", errors.New("one of --vacancy-file, --vacancy-text or --hh-vacancy is required")
	}

	return hhVacancyText(ctx, config.Headhunter, id, logger)
}

func hhVacancyText(ctx context.Context, config *HeadhunterConfig, id string, logger *zap.Logger) (string, string, error) {
	token, err := resolveToken(config)
	if err != nil {
		return "", "", fmt.Errorf("loading headhunter token: %w", err)
	}

	hh := headhunter.New(ctx, token, logger)
	if config.UserAgent != "" {
		hh.UserAgent = config.UserAgent
	}
	if config.APIURL != "" {
		hh.APIURL = config.APIURL
	}

	vacancy, err := hh.GetVacancy(id)
	if err != nil {
		return "", "", err
	}

	text, err := vacancy.Text()
	if err != nil {
		return "", "", err
	}

	logger.Info("got vacancy from hh.ru", zap.String("vacancy", vacancy.Label()), zap.String("url", vacancy.AlternateURL))
	return "hh:" + vacancy.ID, text, nil
}

// resolveToken loads the optional token. Without one the public API is used
// anonymously.
func resolveToken(config *HeadhunterConfig) (string, error) {
	return secrets.Load(secrets.Source{
		Name:     "headhunter token",
		File:     config.TokenFile,
		Env:      "HH_TOKEN",
		Optional: true,
	})
}

func handleAction(action string, logger *zap.Logger, config *Config, ranking *store.Ranking, top int) error {
	switch action {
	case PromptTop:
		logTop(logger, ranking.Results, top)
		return nil
	case PromptReportByCategory:
		pretty, _ := json.MarshalIndent(ranking.ByCategory(), "", "  ")
		logger.Info(string(pretty), zap.Int("candidates count", ranking.Len()))
		return nil
	case PromptBrowse:
		return browse(logger, config.Filters.ExcludeFile, ranking)
	case PromptRankingToFile:
		filename, err := store.DumpToTmpFile("ranking_*.json", ranking)
		if err != nil {
			return fmt.Errorf("dump ranking to file: %w", err)
		}
		logger.Info("dumping ranking to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func browse(logger *zap.Logger, excludeFile string, ranking *store.Ranking) error {
	for {
		items := make([]string, 0, ranking.Len()+2)
		for _, res := range ranking.Results {
			items = append(items, fmt.Sprintf("%5.1f %-9s %s", res.TotalScore, res.Category, res.SourceID))
		}

		if excludeFile != "" && ranking.Len() != 0 {
			items = append(items, PromptAppendToExcludeFile)
		}

		candidatePrompt := promptui.Select{
			Label: "Choose a candidate and press ENTER",
			Items: append(items, PromptBack),
			Size:  15,
		}

		idx, selected, err := candidatePrompt.Run()
		if err != nil {
			return err
		}

		switch selected {
		case PromptBack:
			return nil
		case PromptAppendToExcludeFile:
			poor := ranking.Take(scoring.CategoryPoor)
			if len(poor) == 0 {
				logger.Info("nothing to exclude", zap.String("reason", "no poor candidates"))
				continue
			}

			excluded, err := store.LoadExclusions(excludeFile)
			if err != nil {
				return err
			}

			excluded.Append(store.ExclusionsFromResults(ranking.Vacancy, poor))

			if err = excluded.ToFile(excludeFile); err != nil {
				return err
			}

			logger.Info("appended to exclude file", zap.String("filename", excludeFile), zap.Int("count", len(poor)))
		default:
			res := ranking.Results[idx]
			pretty, _ := json.MarshalIndent(res, "", "  ")
			logger.Info(string(pretty), zap.String("source", res.SourceID))
		}
	}
}

func logStatistics(logger *zap.Logger, stats scoring.Statistics) {
	logger.Info("ranking statistics",
		zap.Int("total", stats.Total),
		zap.Int("excellent", stats.Excellent),
		zap.Int("good", stats.Good),
		zap.Int("average", stats.Average),
		zap.Int("poor", stats.Poor),
		zap.Any("categories_percent", stats.Percent),
	)
}

func logTop(logger *zap.Logger, results []*scoring.Result, n int) {
	for i, res := range results {
		if n > 0 && i >= n {
			break
		}
		logger.Info("candidate",
			zap.Int("rank", i+1),
			zap.String("source", res.SourceID),
			zap.Float64("total_score", res.TotalScore),
			zap.String("category", string(res.Category)),
			zap.String("explanation", res.Explanation),
		)
	}
}
