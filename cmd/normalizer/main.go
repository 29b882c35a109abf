// Package main provides the normalizer command-line tool for converting interview metadata into documents.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"ohmeta/internal/config"
	"ohmeta/internal/formatter"
	"ohmeta/internal/logger"
	"ohmeta/internal/normalizer"
	"ohmeta/internal/pipeline"
	"ohmeta/internal/reader"
	"ohmeta/pkg/provenance"
)

var (
	configPath    string
	logLevel      string
	outputDir     string
	outputFormat  string
	sheet         string
	sequentialIDs bool
	rowLimit      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "normalizer",
		Short:         "Convert oral-history interview metadata into descriptive documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config (default: built-in defaults)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override logging level: debug, info, warn, error")

	convertCmd := &cobra.Command{
		Use:   "convert [input]",
		Short: "Convert a metadata file into interview documents",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConvert,
	}
	convertCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (overrides output.base_path)")
	convertCmd.Flags().StringVar(&outputFormat, "format", "", "Output format: json or jsonl (overrides output.format)")
	convertCmd.Flags().StringVar(&sheet, "sheet", "", "Workbook sheet to read (xlsx input only)")
	convertCmd.Flags().BoolVar(&sequentialIDs, "sequential-ids", false, "Use deterministic sequential range identifiers")

	previewCmd := &cobra.Command{
		Use:   "preview [input]",
		Short: "Print the question timeline of each interview as markdown",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPreview,
	}
	previewCmd.Flags().StringVar(&sheet, "sheet", "", "Workbook sheet to read (xlsx input only)")
	previewCmd.Flags().IntVarP(&rowLimit, "limit", "n", 0, "Preview at most n interviews (0 means all)")

	verifyCmd := &cobra.Command{
		Use:   "verify <interviews.json>",
		Short: "Verify the content hash of a signed output envelope",
		Args:  cobra.ExactArgs(1),
		RunE:  runVerify,
	}

	rootCmd.AddCommand(convertCmd, previewCmd, verifyCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}

// loadConfig returns the config file named by --config, or the defaults.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.DefaultConfig(), nil
	}

	return config.LoadConfig(configPath)
}

func newLogger(cfg *config.Config) *logger.Logger {
	level := cfg.Logging.Level
	if logLevel != "" {
		level = logLevel
	}

	return logger.New(os.Stderr, level, cfg.Logging.Format)
}

func readerOptions(cfg *config.Config) reader.Options {
	opts := reader.DefaultOptions()
	opts.Sheet = cfg.Input.Sheet

	if sheet != "" {
		opts.Sheet = sheet
	}

	if r, _ := utf8.DecodeRuneInString(cfg.Input.Delimiter); r != utf8.RuneError {
		opts.Delimiter = r
	}

	if r, _ := utf8.DecodeRuneInString(cfg.Input.Quote); r != utf8.RuneError {
		opts.Quote = r
	}

	return opts
}

// loadTable reads the input named by args or input.path.
func loadTable(cfg *config.Config, args []string) (*reader.Table, error) {
	path := cfg.Input.Path
	if len(args) > 0 {
		path = args[0]
	}

	if path == "" {
		return nil, fmt.Errorf("no input file: pass one or set input.path")
	}

	table, err := reader.Open(path, readerOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return table, nil
}

// runTable converts every row of the input with the configured pipeline.
func runTable(cmd *cobra.Command, cfg *config.Config, log *logger.Logger, args []string) (*pipeline.Result, error) {
	table, err := loadTable(cfg, args)
	if err != nil {
		return nil, err
	}

	log.Info("input loaded", "rows", len(table.Rows), "columns", len(table.Columns))

	var ids normalizer.IDGenerator
	if sequentialIDs {
		ids = normalizer.NewSequenceIDs()
	}

	p := pipeline.New(cfg, ids, log)

	if err := p.CheckHeaders(table.Columns); err != nil {
		return nil, err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return p.Run(ctx, table.Rows)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if outputDir != "" {
		cfg.Output.BasePath = outputDir
	}

	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(cfg)

	result, err := runTable(cmd, cfg, log, args)
	if err != nil {
		if result != nil && result.Validation != nil {
			result.Validation.PrintErrors(os.Stderr)
		}

		return err
	}

	for _, f := range result.Failures {
		log.Error("row skipped", "row", f.Row, "err", f.Err)
	}

	if result.Validation != nil {
		result.Validation.PrintWarnings(os.Stderr)
	}

	path, err := writeOutput(cfg, result)
	if err != nil {
		return err
	}

	fmt.Printf("✅ Saved %d interviews to: %s\n", len(result.Documents), path)

	if len(result.Failures) > 0 {
		return fmt.Errorf("%d rows failed", len(result.Failures))
	}

	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Preview never stops at a bad row.
	cfg.Features.ContinueOnErrors = true
	cfg.Features.StrictValidation = false
	sequentialIDs = true

	result, err := runTable(cmd, cfg, newLogger(cfg), args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	for i, doc := range result.Documents {
		if rowLimit > 0 && i >= rowLimit {
			break
		}

		fmt.Fprintln(out, formatter.TimelineTable(doc, cfg.Normalizer.Locale))
	}

	for _, f := range result.Failures {
		fmt.Fprintf(out, "⚠️  row %d: %v\n", f.Row, f.Err)
	}

	return nil
}

func runVerify(cmd *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	meta, err := provenance.Verify(content)
	if err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ %s verified: %d interviews, version %s, signed %s\n",
		args[0], meta.Count, meta.Version, meta.LastModify.Format(time.RFC3339))

	return nil
}
