package cmd

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/resume-scorer/internal/filtering"
	"github.com/spigell/resume-scorer/internal/logger"
	"github.com/spigell/resume-scorer/internal/profile"
	"github.com/spigell/resume-scorer/internal/scoring"
	"github.com/spigell/resume-scorer/internal/taxonomy"
	"github.com/spigell/resume-scorer/internal/textextract"
)

const (
	app = "resume-scorer"
)

type Config struct {
	ResumeDir  string            `mapstructure:"resume-dir"`
	OutputDir  string            `mapstructure:"output-dir"`
	Workers    int               `mapstructure:"workers"`
	Extraction *ExtractionConfig `mapstructure:"extraction"`
	Taxonomy   *TaxonomyConfig   `mapstructure:"taxonomy"`
	Scoring    *ScoringConfig    `mapstructure:"scoring"`
	Filters    *filtering.Config `mapstructure:"filters"`
	Headhunter *HeadhunterConfig `mapstructure:"headhunter"`
}

type ExtractionConfig struct {
	MaxFileSize   int64         `mapstructure:"max-file-size"`
	Timeout       time.Duration `mapstructure:"timeout"`
	ExcerptLength int           `mapstructure:"excerpt-length"`
	PDFMinText    int           `mapstructure:"pdf-min-text"`
}

type TaxonomyConfig struct {
	Industrial bool     `mapstructure:"industrial"`
	Extensions []string `mapstructure:"extensions"`
}

type ScoringConfig struct {
	Weights scoring.Weights `mapstructure:"weights"`
}

type HeadhunterConfig struct {
	UserAgent string `mapstructure:"user-agent"`
	TokenFile string `mapstructure:"token-file"`
	APIURL    string `mapstructure:"api-url"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-scorer extracts profiles from resumes and ranks them against a vacancy",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("headhunter.token-file", "HH_TOKEN_FILE"); err != nil {
		log.Fatalf("binding HH_TOKEN_FILE environment variable: %v", err)
	}

	viper.SetDefault("resume-dir", "resumes")
	viper.SetDefault("output-dir", ".")
	viper.SetDefault("workers", 0)
	viper.SetDefault("extraction.max-file-size", textextract.DefaultMaxFileSize)
	viper.SetDefault("extraction.timeout", textextract.DefaultTimeout)
	viper.SetDefault("extraction.excerpt-length", profile.DefaultExcerptLength)
	viper.SetDefault("extraction.pdf-min-text", textextract.DefaultPDFMinText)
	viper.SetDefault("taxonomy.industrial", false)
	viper.SetDefault("scoring.weights.skills", scoring.DefaultWeights.Skills)
	viper.SetDefault("scoring.weights.text", scoring.DefaultWeights.Text)
	viper.SetDefault("scoring.weights.experience", scoring.DefaultWeights.Experience)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is resume-scorer.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("output-dir", "o", "", "directory for parsed_resumes.json and ranked_resumes.json")
	rootCmd.PersistentFlags().IntP("workers", "w", 0, "parallel workers (default is the number of CPUs)")
	rootCmd.PersistentFlags().Bool("industrial", false, "add the industrial skills and specializations to the taxonomy")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("output-dir", rootCmd.PersistentFlags().Lookup("output-dir"))
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	viper.BindPFlag("taxonomy.industrial", rootCmd.PersistentFlags().Lookup("industrial"))
}

func initConfig() {
	// The version command works without a config.
	if versionCmd.CalledAs() != "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	err := viper.ReadInConfig()
	if err == nil {
		return
	}

	// The default config file is optional, an explicit one is not.
	var notFound viper.ConfigFileNotFoundError
	if cfgFile == "" && errors.As(err, &notFound) {
		return
	}

	// We can't proceed if the config file parsed with error.
	log.Fatal(err)
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if config.Extraction == nil {
		config.Extraction = &ExtractionConfig{}
	}
	if config.Taxonomy == nil {
		config.Taxonomy = &TaxonomyConfig{}
	}
	if config.Scoring == nil {
		config.Scoring = &ScoringConfig{Weights: scoring.DefaultWeights}
	}
	if config.Filters == nil {
		config.Filters = &filtering.Config{}
	}
	if config.Headhunter == nil {
		config.Headhunter = &HeadhunterConfig{}
	}

	return config, nil
}

// setup builds the logger and reads the config, any failure is fatal.
func setup() (*zap.Logger, *Config) {
	logger, err := logger.New(app, viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Debug("starting with config",
		zap.String("config_file", viper.ConfigFileUsed()),
		zap.Any("config", config),
	)

	return logger, config
}

func buildTaxonomy(config *TaxonomyConfig, logger *zap.Logger) (*taxonomy.Taxonomy, error) {
	var exts []taxonomy.Extension
	if config.Industrial {
		exts = append(exts, taxonomy.Industrial())
	}

	loaded, err := taxonomy.LoadExtensions(config.Extensions)
	if err != nil {
		return nil, fmt.Errorf("loading taxonomy extensions: %w", err)
	}
	exts = append(exts, loaded...)

	tx := taxonomy.Default(exts...)

	names := make([]string, 0, len(exts))
	for _, e := range exts {
		names = append(names, e.Name)
	}
	logger.Info("taxonomy ready",
		zap.Int("categories", len(tx.CategoryNames())),
		zap.Int("specializations", len(tx.SpecializationLabels())),
		zap.Strings("extensions", names),
	)

	return tx, nil
}

func newTextExtractor(config *ExtractionConfig, logger *zap.Logger) *textextract.Extractor {
	return textextract.New(textextract.Config{
		MaxFileSize: config.MaxFileSize,
		Timeout:     config.Timeout,
		PDFMinText:  config.PDFMinText,
	}, logger)
}

func mustTaxonomy(config *TaxonomyConfig, logger *zap.Logger) *taxonomy.Taxonomy {
	tx, err := buildTaxonomy(config, logger)
	if err != nil {
		logger.Fatal("building taxonomy", zap.Error(err))
	}
	return tx
}

func newProfileExtractor(config *Config, tx *taxonomy.Taxonomy, logger *zap.Logger) *profile.Extractor {
	return profile.NewExtractor(tx,
		profile.WithExcerptLength(config.Extraction.ExcerptLength),
		profile.WithLogger(logger),
	)
}
