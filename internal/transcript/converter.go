package transcript

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"ohmeta/internal/logger"
)

// Converter turns every .srt file under SourceDir into a .vtt file in OutputDir.
type Converter struct {
	SourceDir string
	OutputDir string
	Log       *logger.Logger
}

// NewConverter creates a converter. A nil log discards output.
func NewConverter(sourceDir, outputDir string, log *logger.Logger) *Converter {
	if log == nil {
		log = logger.Discard()
	}

	return &Converter{
		SourceDir: sourceDir,
		OutputDir: outputDir,
		Log:       log.With("component", "transcript"),
	}
}

// ConvertAll walks SourceDir and returns the written files in walk order.
// Files from nested directories are written flat into OutputDir.
func (c *Converter) ConvertAll(ctx context.Context) ([]string, error) {
	if err := os.MkdirAll(c.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string

	err := filepath.WalkDir(c.SourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".srt") {
			return nil
		}

		name := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name())) + ".vtt"
		target := filepath.Join(c.OutputDir, name)

		if err := ConvertFile(path, target); err != nil {
			return err
		}

		c.Log.Debug("converted transcript", "source", path, "target", target)
		written = append(written, target)

		return nil
	})
	if err != nil {
		return written, err
	}

	c.Log.Info("transcripts converted", "files", len(written), "output", c.OutputDir)

	return written, nil
}

// ConvertFile converts one SRT file into a WebVTT file.
func ConvertFile(source, target string) error {
	in, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("open %s: %w", source, err)
	}
	defer in.Close()

	cues, err := ParseSRT(in)
	if err != nil {
		return fmt.Errorf("parse %s: %w", source, err)
	}

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}

	if err := WriteVTT(out, cues); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", target, err)
	}

	return out.Close()
}
