package main

import (
	"errors"
	"fmt"
	"os"

	"flashcards/internal/config"
	"flashcards/internal/handler"
	"flashcards/internal/repository"
	"flashcards/internal/repository/builtin"
	"flashcards/internal/repository/csvfile"
	"flashcards/internal/repository/textfile"
	"flashcards/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// flagOverrides holds command-line values that take precedence over the environment
type flagOverrides struct {
	dataDir      string
	mistakesFile string
	source       string
	logLevel     string
	noColor      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgHiRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags flagOverrides

	root := &cobra.Command{
		Use:           "flashcards",
		Short:         "Practise English/Chinese vocabulary in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}

	root.Flags().StringVar(&flags.dataDir, "data-dir", "", "directory of topic files (overrides FLASHCARDS_DATA_DIR)")
	root.Flags().StringVar(&flags.mistakesFile, "mistakes", "", "wrong words file (overrides FLASHCARDS_MISTAKES_FILE)")
	root.Flags().StringVar(&flags.source, "source", "", "topic source: dir or builtin (overrides FLASHCARDS_TOPIC_SOURCE)")
	root.Flags().StringVar(&flags.logLevel, "log-level", "", "log level (overrides FLASHCARDS_LOG_LEVEL)")
	root.Flags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	return root
}

// apply copies the flags that were set onto cfg and re-validates it
func (f flagOverrides) apply(cmd *cobra.Command, cfg *config.Config) error {
	changed := cmd.Flags().Changed
	if changed("data-dir") {
		cfg.DataDir = f.dataDir
	}
	if changed("mistakes") {
		cfg.MistakesFile = f.mistakesFile
	}
	if changed("source") {
		cfg.TopicSource = f.source
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("no-color") {
		cfg.NoColor = f.noColor
	}
	return cfg.Validate()
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	if cfg.NoColor {
		color.NoColor = true
	}

	logger.Info("Starting flashcards",
		zap.String("topic_source", cfg.TopicSource),
		zap.String("data_dir", cfg.DataDir),
		zap.String("mistakes_file", cfg.MistakesFile),
	)

	// Initialize repositories
	var topicRepo repository.TopicRepository
	switch cfg.TopicSource {
	case config.SourceBuiltin:
		topicRepo = builtin.NewTopicRepo()
	default:
		topicRepo = csvfile.NewTopicRepo(cfg.DataDir, cfg.Fields.English, cfg.Fields.Chinese, logger)
	}
	mistakeRepo := textfile.NewMistakeRepo(cfg.MistakesFile, logger)

	// Initialize services
	topicService := service.NewTopicService(topicRepo, logger)
	mistakeService := service.NewMistakeService(mistakeRepo, logger)
	quizService := service.NewQuizService(mistakeService, logger)

	out := cmd.OutOrStdout()

	catalog, err := topicService.LoadCatalog()
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("failed to load topics: %w", err)
		}
		fmt.Fprintf(out, "Data folder '%s' not found.\n", cfg.DataDir)
	}

	h := handler.NewHandler(cmd.InOrStdin(), out, catalog, quizService, mistakeService, logger)
	h.RegisterHandlers()

	if err := h.Run(cmd.Context()); err != nil {
		logger.Error("Session ended with error", zap.Error(err))
		return err
	}

	logger.Info("Session finished")
	return nil
}

// newLogger builds a production logger writing to stderr at the configured level
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	return zapCfg.Build()
}
