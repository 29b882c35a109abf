package models

// LanguageMap maps a locale tag to an ordered list of strings.
type LanguageMap map[string][]string

// NewLanguageMap returns a map holding values under locale. A nil slice is stored as empty.
func NewLanguageMap(locale string, values ...string) LanguageMap {
	if values == nil {
		values = []string{}
	}

	return LanguageMap{locale: values}
}

// DescriptiveEntry is a label/value pair used for every descriptive field.
type DescriptiveEntry struct {
	Label LanguageMap `json:"label"`
	Value LanguageMap `json:"value"`
}

// CanvasRef points a range at a fragment of the media canvas.
type CanvasRef struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Range describes one time-bounded question segment.
type Range struct {
	Type  string      `json:"type"`
	ID    string      `json:"id"`
	Label LanguageMap `json:"label"`
	Items []CanvasRef `json:"items"`
}

// QuestionIndex groups the question ranges of an interview.
// The zero value marshals to an empty object and means "no timeline".
type QuestionIndex struct {
	Type  string      `json:"type,omitempty"`
	ID    string      `json:"id,omitempty"`
	Label LanguageMap `json:"label,omitempty"`
	Items []Range     `json:"items,omitempty"`
}

// IsEmpty reports whether the index holds no ranges.
func (q QuestionIndex) IsEmpty() bool {
	return len(q.Items) == 0
}

// Segment is a question label with its start and end offsets in seconds.
type Segment struct {
	Label string
	Start int
	End   int
}

// Duration returns the segment length in seconds.
func (s Segment) Duration() int {
	return s.End - s.Start
}

// Document is the descriptive metadata assembled for one interview.
type Document struct {
	Label               LanguageMap      `json:"label"`
	Rights              string           `json:"rights"`
	Summary             LanguageMap      `json:"summary"`
	Narrators           DescriptiveEntry `json:"narrators"`
	Interviewer         DescriptiveEntry `json:"interviewer"`
	NavDate             string           `json:"navDate"`
	InterviewerLocation DescriptiveEntry `json:"interviewerLocation"`
	NarratorLocation    DescriptiveEntry `json:"narratorLocation"`
	Format              DescriptiveEntry `json:"format"`
	Topics              DescriptiveEntry `json:"topics"`
	Places              DescriptiveEntry `json:"places"`
	SubjectNames        DescriptiveEntry `json:"subjectNames"`
	Questions           QuestionIndex    `json:"questions"`
}

// Entries returns the descriptive entries keyed by their field key.
func (d *Document) Entries() map[string]DescriptiveEntry {
	return map[string]DescriptiveEntry{
		"narrators":           d.Narrators,
		"interviewer":         d.Interviewer,
		"interviewerLocation": d.InterviewerLocation,
		"narratorLocation":    d.NarratorLocation,
		"format":              d.Format,
		"topics":              d.Topics,
		"places":              d.Places,
		"subjectNames":        d.SubjectNames,
	}
}

// SetEntry stores entry under the field key. It reports false for an unknown key.
func (d *Document) SetEntry(key string, entry DescriptiveEntry) bool {
	switch key {
	case "narrators":
		d.Narrators = entry
	case "interviewer":
		d.Interviewer = entry
	case "interviewerLocation":
		d.InterviewerLocation = entry
	case "narratorLocation":
		d.NarratorLocation = entry
	case "format":
		d.Format = entry
	case "topics":
		d.Topics = entry
	case "places":
		d.Places = entry
	case "subjectNames":
		d.SubjectNames = entry
	default:
		return false
	}

	return true
}
