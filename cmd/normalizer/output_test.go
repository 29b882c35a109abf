package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ohmeta/internal/config"
	"ohmeta/internal/models"
	"ohmeta/internal/pipeline"
	"ohmeta/pkg/provenance"
)

func testResult() *pipeline.Result {
	return &pipeline.Result{
		Documents: []*models.Document{
			{Label: models.NewLanguageMap("en", "First")},
			{Label: models.NewLanguageMap("en", "Second")},
		},
	}
}

func TestWriteOutput_SignedEnvelope(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.BasePath = filepath.Join(t.TempDir(), "out")
	cfg.Output.Sign = true

	path, err := writeOutput(cfg, testResult())
	if err != nil {
		t.Fatalf("writeOutput failed: %v", err)
	}

	if filepath.Base(path) != "interviews.json" {
		t.Errorf("path = %s, want interviews.json", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	meta, err := provenance.Verify(content)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}

	if meta.Count != 2 {
		t.Errorf("Count = %d, want 2", meta.Count)
	}

	if !strings.Contains(string(content), `"questions": {}`) {
		t.Errorf("Output missing empty question sentinel:\n%s", content)
	}
}

func TestWriteOutput_JSONLines(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.BasePath = t.TempDir()
	cfg.Output.Format = "jsonl"

	path, err := writeOutput(cfg, testResult())
	if err != nil {
		t.Fatalf("writeOutput failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	var lines []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}

	if !strings.Contains(lines[1], `"label":{"en":["Second"]}`) {
		t.Errorf("lines[1] = %s, want second document", lines[1])
	}
}
