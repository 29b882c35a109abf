package transcript

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestConverter_ConvertAll(t *testing.T) {
	src := t.TempDir()
	out := filepath.Join(t.TempDir(), "vtt")

	writeFile(t, filepath.Join(src, "a.srt"), sampleSRT)
	writeFile(t, filepath.Join(src, "nested", "b.SRT"), sampleSRT)
	writeFile(t, filepath.Join(src, "notes.txt"), "ignored")

	written, err := NewConverter(src, out, nil).ConvertAll(context.Background())
	if err != nil {
		t.Fatalf("ConvertAll failed: %v", err)
	}

	if len(written) != 2 {
		t.Fatalf("Expected 2 files, got %v", written)
	}

	for _, name := range []string{"a.vtt", "b.vtt"} {
		data, err := os.ReadFile(filepath.Join(out, name))
		if err != nil {
			t.Fatalf("Missing output %s: %v", name, err)
		}

		if !strings.HasPrefix(string(data), "WEBVTT\n\n") {
			t.Errorf("%s does not start with the WebVTT header", name)
		}
	}
}

func TestConverter_InvalidFile(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "broken.srt"), "1\nnot a timing\n")

	_, err := NewConverter(src, t.TempDir(), nil).ConvertAll(context.Background())
	if err == nil || !strings.Contains(err.Error(), "broken.srt") {
		t.Errorf("ConvertAll() = %v, want error naming broken.srt", err)
	}
}

func TestConverter_Canceled(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "a.srt"), sampleSRT)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewConverter(src, t.TempDir(), nil).ConvertAll(ctx); err == nil {
		t.Error("Expected cancellation error, got nil")
	}
}
