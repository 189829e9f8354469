package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/embedding"
	"github.com/jonathan/resume-ranker/internal/experience"
	"github.com/jonathan/resume-ranker/internal/fetch"
	"github.com/jonathan/resume-ranker/internal/logging"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/skills"
	"github.com/jonathan/resume-ranker/internal/textproc"
)

var rankCommand = &cobra.Command{
	Use:   "rank [resume files...]",
	Short: "Score and rank resumes against one job description",
	Long: `Runs the batch scoring pipeline: each resume is normalized, matched
against the skill catalog, scanned for years of experience and embedded;
the weighted combination of those signals produces the ranked table.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runRankCmd,
}

var (
	rankConfigPath     string
	rankResumeDir      string
	rankJD             string
	rankJDURL          string
	rankSkillsPath     string
	rankModel          string
	rankModelCacheDir  string
	rankEmbeddingCache string
	rankExperienceCap  float64
	rankOutput         string
	rankLogLevel       string
	rankVerbose        bool
)

func init() {
	// Config file flag (processed first)
	rankCommand.Flags().StringVar(&rankConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	rankCommand.Flags().StringVarP(&rankResumeDir, "resume-dir", "d", "", "Directory scanned for resume files (.txt, .md)")
	rankCommand.Flags().StringVarP(&rankJD, "jd", "j", "", "Path to job description text file (mutually exclusive with --jd-url)")
	rankCommand.Flags().StringVar(&rankJDURL, "jd-url", "", "URL to fetch the job posting from (mutually exclusive with --jd)")
	rankCommand.Flags().StringVarP(&rankSkillsPath, "skills", "s", "", "Path to skills list, one term per line (built-in list if omitted)")
	rankCommand.Flags().StringVarP(&rankModel, "model", "m", "", "Embedding model name (default "+embedding.DefaultModel+")")
	rankCommand.Flags().StringVar(&rankModelCacheDir, "model-cache-dir", "", "Directory for downloaded model files")
	rankCommand.Flags().StringVar(&rankEmbeddingCache, "embedding-cache", "", "SQLite file for the embedding vector cache (disabled if omitted)")
	rankCommand.Flags().Float64Var(&rankExperienceCap, "experience-cap", 0, "Years ceiling for the experience score (default 10)")
	rankCommand.Flags().StringVarP(&rankOutput, "output", "o", "", "Write the ranked table as CSV to this path")
	rankCommand.Flags().StringVar(&rankLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rankCommand.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print per-candidate score breakdowns")

	rootCmd.AddCommand(rankCommand)
}

func runRankCmd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if rankConfigPath != "" {
		loadedCfg, err := config.LoadConfig(rankConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if len(args) > 0 {
		cfg.Resumes = append(cfg.Resumes, args...)
	}
	if cmd.Flags().Changed("resume-dir") {
		cfg.ResumeDir = rankResumeDir
	}
	if cmd.Flags().Changed("jd") {
		cfg.JD = rankJD
	}
	if cmd.Flags().Changed("jd-url") {
		cfg.JDURL = rankJDURL
	}
	if cmd.Flags().Changed("skills") {
		cfg.Skills = rankSkillsPath
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = rankModel
	}
	if cmd.Flags().Changed("model-cache-dir") {
		cfg.ModelCacheDir = rankModelCacheDir
	}
	if cmd.Flags().Changed("embedding-cache") {
		cfg.EmbeddingCache = rankEmbeddingCache
	}
	if cmd.Flags().Changed("experience-cap") {
		cfg.ExperienceCap = rankExperienceCap
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = rankOutput
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = rankLogLevel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rankVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(defaultConfig())

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, "console")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// Step 4: Resolve inputs
	resumePaths, err := collectResumePaths(cfg)
	if err != nil {
		return err
	}
	if len(resumePaths) == 0 {
		return fmt.Errorf("no resume files given (pass paths as arguments or use --resume-dir)")
	}

	jdText, err := loadJDText(ctx, cfg)
	if err != nil {
		return err
	}

	// Step 5: Build the pipeline
	provider, err := embedding.NewFastEmbedProvider(embedding.FastEmbedConfig{
		Model:    cfg.Model,
		CacheDir: cfg.ModelCacheDir,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize embedding model: %w", err)
	}
	defer func() { _ = provider.Close() }()
	logger.Info("embedding model ready",
		zap.String("model", provider.ModelName()),
		zap.Int("dimension", provider.Dimension()))

	var embedder embedding.Embedder = provider
	if cfg.EmbeddingCache != "" {
		cache, err := embedding.NewSQLiteCache(cfg.EmbeddingCache, logger)
		if err != nil {
			// Cache is an optimization only: run without it.
			logger.Warn("embedding cache unavailable, continuing without it", zap.Error(err))
		} else {
			defer func() { _ = cache.Close() }()
			embedder = embedding.NewCachedEmbedder(provider, cache, provider.ModelName())
		}
	}

	catalog := skills.Load(cfg.Skills)
	normalizer := textproc.Cleaner{}

	pipeline := ranking.NewPipeline(ranking.Options{
		Normalizer:    normalizer,
		Embedder:      embedder,
		Catalog:       catalog,
		ExperienceCap: cfg.ExperienceCap,
		Logger:        logger,
	})

	// Step 6: Rank and report
	table := pipeline.Rank(ctx, resumePaths, jdText)

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		jdClean := normalizer.Normalize(jdText)
		printer.PrintJobSummary(skills.Extract(jdClean, catalog), table.JDEmbedded)
		for _, c := range table.Candidates {
			printer.PrintCandidate(c)
		}
	}
	printer.PrintTable(table)

	if cfg.Output != "" {
		if err := writeCSVFile(table, cfg.Output); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", cfg.Output)
	}

	return nil
}

// defaultConfig holds the values applied when neither flags nor the config
// file set them.
func defaultConfig() config.Config {
	return config.Config{
		Model:         embedding.DefaultModel,
		ExperienceCap: experience.DefaultCap,
	}
}

// resumeExtensions lists the file types picked up by --resume-dir.
var resumeExtensions = map[string]struct{}{
	".txt":  {},
	".text": {},
	".md":   {},
}

func collectResumePaths(cfg config.Config) ([]string, error) {
	paths := append([]string(nil), cfg.Resumes...)

	if cfg.ResumeDir != "" {
		entries, err := os.ReadDir(cfg.ResumeDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume dir: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(entry.Name()))
			if _, ok := resumeExtensions[ext]; ok {
				paths = append(paths, filepath.Join(cfg.ResumeDir, entry.Name()))
			}
		}
	}

	return paths, nil
}

func loadJDText(ctx context.Context, cfg config.Config) (string, error) {
	switch {
	case cfg.JD != "":
		data, err := os.ReadFile(cfg.JD)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	case cfg.JDURL != "":
		result, err := fetch.URL(ctx, cfg.JDURL, nil)
		if err != nil {
			return "", fmt.Errorf("failed to fetch job posting: %w", err)
		}
		return result.Text, nil
	default:
		// An empty job description is allowed; ranking degrades to the
		// experience term only.
		return "", nil
	}
}

func writeCSVFile(table ranking.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := table.WriteCSV(f); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
