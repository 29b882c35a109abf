// Package config provides configuration management for the interview metadata normalizer.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingLocale          = errors.New("normalizer.locale is required")
	ErrMissingCanvasID        = errors.New("normalizer.canvas_id is required")
	ErrMissingColumn          = errors.New("normalizer.columns entry is required")
	ErrInvalidMaxSlots        = errors.New("normalizer.questions.max_slots must be at least 1")
	ErrInvalidColumnTemplate  = errors.New("question column template must contain exactly one %d")
	ErrNoFields               = errors.New("at least one descriptive field is required")
	ErrFieldMissingKey        = errors.New("field key is required")
	ErrFieldUnknownKey        = errors.New("field key is not a known document field")
	ErrFieldDuplicateKey      = errors.New("field key is declared twice")
	ErrFieldMissingLabel      = errors.New("field label is required")
	ErrFieldMissingColumns    = errors.New("field must declare at least one column")
	ErrInvalidDelimiter       = errors.New("input.delimiter must be a single character")
	ErrInvalidQuote           = errors.New("input.quote must be a single character different from the delimiter")
	ErrMissingOutputPath      = errors.New("output.base_path is required")
	ErrInvalidOutputFormat    = errors.New("output.format must be 'json' or 'jsonl'")
	ErrInvalidLogLevel        = errors.New("logging.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat       = errors.New("logging.format must be 'text' or 'json'")
	ErrInvalidWorkers         = errors.New("features.workers must be at least 1")
	ErrTranscriptDirsConflict = errors.New("transcripts.output_dir must differ from transcripts.source_dir")
)

// FieldKeys lists the descriptive document fields a declaration may target.
var FieldKeys = []string{
	"narrators",
	"interviewer",
	"interviewerLocation",
	"narratorLocation",
	"format",
	"topics",
	"places",
	"subjectNames",
}

// Config represents the complete normalizer configuration.
type Config struct {
	Normalizer  NormalizerConfig  `yaml:"normalizer"`
	Input       InputConfig       `yaml:"input"`
	Output      OutputConfig      `yaml:"output"`
	Transcripts TranscriptsConfig `yaml:"transcripts"`
	Logging     LoggingConfig     `yaml:"logging"`
	Features    FeaturesConfig    `yaml:"features"`
}

// NormalizerConfig describes how interview rows map onto documents.
type NormalizerConfig struct {
	Locale            string         `yaml:"locale"`
	CanvasID          string         `yaml:"canvas_id"`
	RangeIDPrefix     string         `yaml:"range_id_prefix"`
	ApproximateMarker string         `yaml:"approximate_marker"`
	AnnotationMarker  string         `yaml:"annotation_marker"`
	Columns           ColumnsConfig  `yaml:"columns"`
	Questions         QuestionSchema `yaml:"questions"`
	Fields            []FieldConfig  `yaml:"fields"`
}

// ColumnsConfig names the single-valued source columns.
type ColumnsConfig struct {
	Title    string `yaml:"title"`
	License  string `yaml:"license"`
	Abstract string `yaml:"abstract"`
	Date     string `yaml:"date"`
	StopTC   string `yaml:"stop_tc"`
}

// QuestionSchema enumerates the question column family.
type QuestionSchema struct {
	LabelColumn    string `yaml:"label_column"`
	TimecodeColumn string `yaml:"timecode_column"`
	GroupLabel     string `yaml:"group_label"`
	MaxSlots       int    `yaml:"max_slots"`
}

// LabelFor returns the label column name for slot n.
func (q QuestionSchema) LabelFor(n int) string {
	return fmt.Sprintf(q.LabelColumn, n)
}

// TimecodeFor returns the timecode column name for slot n.
func (q QuestionSchema) TimecodeFor(n int) string {
	return fmt.Sprintf(q.TimecodeColumn, n)
}

// SlotOf reports the slot number column carries under either template.
// isTimecode tells which template matched. Columns of neither family return ok false.
func (q QuestionSchema) SlotOf(column string) (n int, isTimecode, ok bool) {
	if n, ok = matchTemplate(q.TimecodeColumn, column); ok {
		return n, true, true
	}

	n, ok = matchTemplate(q.LabelColumn, column)

	return n, false, ok
}

// matchTemplate scans column with tmpl and requires an exact round trip.
func matchTemplate(tmpl, column string) (int, bool) {
	var n int
	if _, err := fmt.Sscanf(column, tmpl, &n); err != nil {
		return 0, false
	}

	if fmt.Sprintf(tmpl, n) != column {
		return 0, false
	}

	return n, true
}

// FieldConfig declares one descriptive field.
type FieldConfig struct {
	Key             string   `yaml:"key"`
	Label           string   `yaml:"label"`
	Columns         []string `yaml:"columns"`
	FirstLine       bool     `yaml:"first_line"`
	StripAnnotation bool     `yaml:"strip_annotation"`
}

// InputConfig describes the delimited source file.
type InputConfig struct {
	Path      string `yaml:"path"`
	Delimiter string `yaml:"delimiter"`
	Quote     string `yaml:"quote"`
	Sheet     string `yaml:"sheet"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	BasePath    string `yaml:"base_path"`
	Format      string `yaml:"format"`
	Version     string `yaml:"version"`
	PrettyPrint bool   `yaml:"pretty_print"`
	Sign        bool   `yaml:"sign"`
}

// TranscriptsConfig locates subtitle files for conversion.
type TranscriptsConfig struct {
	SourceDir string `yaml:"source_dir"`
	OutputDir string `yaml:"output_dir"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// FeaturesConfig contains feature flags.
type FeaturesConfig struct {
	StrictValidation bool `yaml:"strict_validation"`
	ContinueOnErrors bool `yaml:"continue_on_errors"`
	Workers          int  `yaml:"workers"`
}

// DefaultConfig returns the configuration matching the oral history metadata sheet.
func DefaultConfig() *Config {
	return &Config{
		Normalizer: NormalizerConfig{
			Locale:            "en",
			CanvasID:          "https://example.org/iiif/canvas/1",
			RangeIDPrefix:     "https://example.org/iiif/range/",
			ApproximateMarker: "~",
			AnnotationMarker:  "http://vocab.getty.edu/",
			Columns: ColumnsConfig{
				Title:    "Title",
				License:  "License",
				Abstract: "Abstract",
				Date:     "Interview_Date",
				StopTC:   "Interview Stop TC",
			},
			Questions: QuestionSchema{
				LabelColumn:    "Interview_Question_%d",
				TimecodeColumn: "Interview_Question_%d_TC",
				GroupLabel:     "Interview Questions",
				MaxSlots:       40,
			},
			Fields: []FieldConfig{
				{Key: "narrators", Label: "Narrators", Columns: []string{"Narrator_1", "Narrator_2", "Narrator_3"}},
				{Key: "interviewer", Label: "Interviewer", Columns: []string{"Interviewer"}},
				{Key: "interviewerLocation", Label: "Interviewer Location", Columns: []string{"Interviewer_Location"}, FirstLine: true},
				{Key: "narratorLocation", Label: "Narrator Location", Columns: []string{"Narrator_Location"}, FirstLine: true},
				{Key: "format", Label: "Format", Columns: []string{"AAT_Format"}, StripAnnotation: true},
				{Key: "topics", Label: "Topics", Columns: []string{"Topic_1", "Topic_2", "Topic_3"}},
				{Key: "places", Label: "Places", Columns: []string{"Place_1", "Place_2"}},
				{Key: "subjectNames", Label: "Subject Names", Columns: []string{"Subject_Name_1", "Subject_Name_2"}},
			},
		},
		Input: InputConfig{
			Delimiter: "|",
			Quote:     "%",
		},
		Output: OutputConfig{
			BasePath:    "./output",
			Format:      "json",
			Version:     "1",
			PrettyPrint: true,
		},
		Transcripts: TranscriptsConfig{
			SourceDir: "data/srt_transcripts",
			OutputDir: "data/web_vtt_files",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Features: FeaturesConfig{
			Workers: 4,
		},
	}
}

// LoadConfig loads configuration from a YAML file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to a YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	n := c.Normalizer

	if n.Locale == "" {
		return ErrMissingLocale
	}

	if n.CanvasID == "" {
		return ErrMissingCanvasID
	}

	columns := map[string]string{
		"title":    n.Columns.Title,
		"license":  n.Columns.License,
		"abstract": n.Columns.Abstract,
		"date":     n.Columns.Date,
		"stop_tc":  n.Columns.StopTC,
	}
	for name, col := range columns {
		if col == "" {
			return fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	if n.Questions.MaxSlots < 1 {
		return ErrInvalidMaxSlots
	}

	if !validTemplate(n.Questions.LabelColumn) {
		return fmt.Errorf("%w: label_column %q", ErrInvalidColumnTemplate, n.Questions.LabelColumn)
	}

	if !validTemplate(n.Questions.TimecodeColumn) || n.Questions.TimecodeColumn == n.Questions.LabelColumn {
		return fmt.Errorf("%w: timecode_column %q", ErrInvalidColumnTemplate, n.Questions.TimecodeColumn)
	}

	if err := c.validateFields(); err != nil {
		return err
	}

	if len([]rune(c.Input.Delimiter)) != 1 {
		return ErrInvalidDelimiter
	}

	if len([]rune(c.Input.Quote)) != 1 || c.Input.Quote == c.Input.Delimiter {
		return ErrInvalidQuote
	}

	if c.Output.BasePath == "" {
		return ErrMissingOutputPath
	}

	if c.Output.Format != "json" && c.Output.Format != "jsonl" {
		return ErrInvalidOutputFormat
	}

	if c.Transcripts.SourceDir != "" &&
		filepath.Clean(c.Transcripts.SourceDir) == filepath.Clean(c.Transcripts.OutputDir) {
		return ErrTranscriptDirsConflict
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return ErrInvalidLogFormat
	}

	if c.Features.Workers < 1 {
		return ErrInvalidWorkers
	}

	return nil
}

func (c *Config) validateFields() error {
	if len(c.Normalizer.Fields) == 0 {
		return ErrNoFields
	}

	known := make(map[string]bool, len(FieldKeys))
	for _, k := range FieldKeys {
		known[k] = true
	}

	seen := make(map[string]bool)

	for i, f := range c.Normalizer.Fields {
		if f.Key == "" {
			return fmt.Errorf("%w: fields[%d]", ErrFieldMissingKey, i)
		}

		if !known[f.Key] {
			return fmt.Errorf("%w: fields[%d] %q", ErrFieldUnknownKey, i, f.Key)
		}

		if seen[f.Key] {
			return fmt.Errorf("%w: fields[%d] %q", ErrFieldDuplicateKey, i, f.Key)
		}

		seen[f.Key] = true

		if f.Label == "" {
			return fmt.Errorf("%w: fields[%d]", ErrFieldMissingLabel, i)
		}

		if len(f.Columns) == 0 {
			return fmt.Errorf("%w: fields[%d]", ErrFieldMissingColumns, i)
		}
	}

	return nil
}

// validTemplate reports whether tmpl holds a single %d verb and no other verbs.
func validTemplate(tmpl string) bool {
	return strings.Count(tmpl, "%d") == 1 && strings.Count(tmpl, "%") == 1
}

// GetOutputPath follows structure: {base_path}/interviews.{format}.
func (c *Config) GetOutputPath() string {
	return filepath.Join(c.Output.BasePath, "interviews."+c.Output.Format)
}

// GetField returns the declaration for key, if any.
func (c *Config) GetField(key string) (FieldConfig, bool) {
	for _, f := range c.Normalizer.Fields {
		if f.Key == key {
			return f, true
		}
	}

	return FieldConfig{}, false
}

// ResolvedFields returns one declaration per document field in FieldKeys order.
// Keys the configuration leaves undeclared fall back to the defaults.
func (n NormalizerConfig) ResolvedFields() []FieldConfig {
	declared := make(map[string]FieldConfig, len(n.Fields))
	for _, f := range n.Fields {
		declared[f.Key] = f
	}

	defaults := DefaultConfig()
	resolved := make([]FieldConfig, 0, len(FieldKeys))

	for _, key := range FieldKeys {
		if f, ok := declared[key]; ok {
			resolved = append(resolved, f)
			continue
		}

		if f, ok := defaults.GetField(key); ok {
			resolved = append(resolved, f)
		}
	}

	return resolved
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Fields: %d, QuestionSlots: %d, Output: %s}",
		len(c.Normalizer.Fields),
		c.Normalizer.Questions.MaxSlots,
		c.GetOutputPath(),
	)
}
