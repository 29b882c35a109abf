package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ohmeta/internal/config"
	"ohmeta/internal/pipeline"
	"ohmeta/pkg/provenance"
)

// writeOutput saves the documents of result in the configured format and returns the file path.
func writeOutput(cfg *config.Config, result *pipeline.Result) (string, error) {
	path := cfg.GetOutputPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("error creating directory: %w", err)
	}

	switch cfg.Output.Format {
	case "jsonl":
		return path, writeJSONLines(path, result)
	default:
		return path, writeEnvelope(path, cfg, result)
	}
}

func writeEnvelope(path string, cfg *config.Config, result *pipeline.Result) error {
	validated := result.Validation != nil && result.Validation.IsValid

	env, err := provenance.Seal(result.Documents, len(result.Documents), cfg.Output.Version, validated, cfg.Output.Sign, time.Now())
	if err != nil {
		return err
	}

	data, err := env.Marshal(cfg.Output.PrettyPrint)
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	return nil
}

func writeJSONLines(path string, result *pipeline.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)

	for _, doc := range result.Documents {
		if err := enc.Encode(doc); err != nil {
			f.Close()
			return fmt.Errorf("error encoding document: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("error writing file: %w", err)
	}

	return f.Close()
}
