// Package main provides the transcripts command-line tool for converting SRT subtitles to WebVTT.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"ohmeta/internal/config"
	"ohmeta/internal/logger"
	"ohmeta/internal/transcript"
)

var (
	configPath string
	sourceDir  string
	outputDir  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "transcripts",
		Short:        "Convert a tree of SRT transcripts into WebVTT files",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML config (default: built-in defaults)")
	rootCmd.Flags().StringVar(&sourceDir, "source", "", "Directory of .srt files (overrides transcripts.source_dir)")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Directory for .vtt files (overrides transcripts.output_dir)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg := config.DefaultConfig()

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		cfg = loaded
	}

	if sourceDir != "" {
		cfg.Transcripts.SourceDir = sourceDir
	}

	if outputDir != "" {
		cfg.Transcripts.OutputDir = outputDir
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	conv := transcript.NewConverter(cfg.Transcripts.SourceDir, cfg.Transcripts.OutputDir, log)

	written, err := conv.ConvertAll(ctx)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Printf("✅ Converted %d transcripts into: %s\n", len(written), cfg.Transcripts.OutputDir)

	return nil
}
