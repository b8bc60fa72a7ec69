package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mikey/lead-triage/internal/adapters/filter"
	"github.com/mikey/lead-triage/internal/config"
	"github.com/mikey/lead-triage/internal/core"
	"github.com/mikey/lead-triage/internal/di"
	"github.com/mikey/lead-triage/internal/factory"
	"github.com/mikey/lead-triage/internal/ports"
)

// processFlags contains the flags of the process command
type processFlags struct {
	inputFile        string
	demoKeywords     string
	hotKeywords      string
	warmKeywords     string
	coldKeywords     string
	category         string
	minScore         int
	language         string
	exportFile       string
	highPriorityFile string
	noRender         bool
}

func newProcessCommand(globals *globalFlags) *cobra.Command {
	flags := &processFlags{}

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Categorize, score and report the leads of a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := make(map[string]any)
			keywordFlags := map[string]string{
				"demo-keywords": "keywords.demo",
				"hot-keywords":  "keywords.hot",
				"warm-keywords": "keywords.warm",
				"cold-keywords": "keywords.cold",
			}
			for name, key := range keywordFlags {
				if cmd.Flags().Changed(name) {
					value, _ := cmd.Flags().GetString(name)
					overrides[key] = value
				}
			}

			criteria := filter.Criteria{
				Category: core.Category(flags.category),
				Language: flags.language,
			}
			if cmd.Flags().Changed("min-score") {
				minScore := flags.minScore
				criteria.MinScore = &minScore
			}

			container, err := di.BuildContainer(globals.options(overrides))
			if err != nil {
				return fmt.Errorf("failed to build dependency container: %w", err)
			}

			return container.Invoke(func(
				logger *zap.Logger,
				cfg *config.Config,
				service *core.TriageService,
				sources *factory.SourceFactory,
				exports *factory.ExportFactory,
				renderer ports.Renderer,
			) error {
				defer func() { _ = logger.Sync() }()
				return runProcess(cmd.OutOrStdout(), flags, criteria, logger, cfg, service, sources, exports, renderer)
			})
		},
	}

	cmd.Flags().StringVarP(&flags.inputFile, "file", "f", "", "lead file to process (.xlsx, .xlsm or .csv)")
	cmd.Flags().StringVar(&flags.demoKeywords, "demo-keywords", core.DefaultDemoKeywords, "comma-separated Demo Scheduled keywords")
	cmd.Flags().StringVar(&flags.hotKeywords, "hot-keywords", core.DefaultHotKeywords, "comma-separated Hot Lead keywords")
	cmd.Flags().StringVar(&flags.warmKeywords, "warm-keywords", core.DefaultWarmKeywords, "comma-separated Warm Lead keywords")
	cmd.Flags().StringVar(&flags.coldKeywords, "cold-keywords", core.DefaultColdKeywords, "comma-separated Cold/Dead Lead keywords")
	cmd.Flags().StringVar(&flags.category, "category", "", "only show leads of this category")
	cmd.Flags().IntVar(&flags.minScore, "min-score", 0, "only show leads with at least this priority score")
	cmd.Flags().StringVar(&flags.language, "language", "", "only show leads with this language code")
	cmd.Flags().StringVar(&flags.exportFile, "export", "", "write all categorized leads and the summary to this file (.xlsx or .json)")
	cmd.Flags().StringVar(&flags.highPriorityFile, "export-high-priority", "", "write high priority leads to this file (.xlsx or .json)")
	cmd.Flags().BoolVar(&flags.noRender, "no-render", false, "skip the terminal report")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runProcess(
	out io.Writer,
	flags *processFlags,
	criteria filter.Criteria,
	logger *zap.Logger,
	cfg *config.Config,
	service *core.TriageService,
	sources *factory.SourceFactory,
	exports *factory.ExportFactory,
	renderer ports.Renderer,
) error {
	table, err := loadTable(flags.inputFile, sources)
	if err != nil {
		logger.Error("Failed to load leads", zap.String("file", flags.inputFile), zap.Error(err))
		return err
	}
	logger.Info("Loaded leads",
		zap.String("file", flags.inputFile),
		zap.Int("rows", len(table.Records)),
		zap.Strings("columns", table.Columns))

	processed, err := service.Process(table, cfg.KeywordSets())
	if err != nil {
		return err
	}

	if criteria.Category != "" && !knownCategory(processed, criteria.Category) {
		logger.Warn("No lead has the requested category", zap.String("category", string(criteria.Category)))
	}
	if criteria.Language != "" && !processed.HasColumn(core.ColumnLanguage) {
		logger.Warn("Input has no Language column, ignoring language filter")
	}
	selected := filter.Apply(processed, criteria)

	if !flags.noRender {
		if err := renderer.Render(out, processed, selected); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
	}

	if flags.exportFile != "" {
		if err := exportTo(flags.exportFile, exports, func(e ports.Exporter, w io.Writer) error {
			return e.ExportAll(w, processed)
		}); err != nil {
			return err
		}
		logger.Info("Wrote categorized leads", zap.String("file", flags.exportFile))
	}

	if flags.highPriorityFile != "" {
		if err := exportTo(flags.highPriorityFile, exports, func(e ports.Exporter, w io.Writer) error {
			return e.ExportHighPriority(w, processed)
		}); err != nil {
			return err
		}
		logger.Info("Wrote high priority leads", zap.String("file", flags.highPriorityFile))
	}

	return nil
}

func loadTable(path string, sources *factory.SourceFactory) (*core.Table, error) {
	src, err := sources.CreateLeadSource(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrLoadFailed, err)
	}
	defer f.Close()

	table, err := src.Load(f)
	if err != nil {
		return nil, err
	}
	table.Source = path
	return table, nil
}

// exportTo writes an export to path, removing the file if writing fails
func exportTo(path string, exports *factory.ExportFactory, write func(ports.Exporter, io.Writer) error) error {
	exporter, err := exports.CreateExporter(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	werr := write(exporter, f)
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("failed to export %s: %w", path, err)
	}
	return nil
}

func knownCategory(t *core.ProcessedTable, c core.Category) bool {
	for _, option := range filter.OptionsFor(t).Categories {
		if option == c {
			return true
		}
	}
	return false
}
