// Package transcript converts SRT subtitle files into WebVTT.
package transcript

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/asticode/go-astisub"
)

// ErrNoCues is returned for a subtitle file without any timed cue.
var ErrNoCues = errors.New("no cues found")

// ParseSRT reads SRT cues from r. Trailing blank lines of each cue are dropped.
func ParseSRT(r io.Reader) (*astisub.Subtitles, error) {
	subs, err := astisub.ReadFromSRT(r)
	if err != nil {
		return nil, fmt.Errorf("read srt: %w", err)
	}

	if len(subs.Items) == 0 {
		return nil, ErrNoCues
	}

	for _, item := range subs.Items {
		for len(item.Lines) > 0 && strings.TrimSpace(item.Lines[len(item.Lines)-1].String()) == "" {
			item.Lines = item.Lines[:len(item.Lines)-1]
		}
	}

	return subs, nil
}

// WriteVTT writes subs in WebVTT format.
func WriteVTT(w io.Writer, subs *astisub.Subtitles) error {
	if err := subs.WriteToWebVTT(w); err != nil {
		return fmt.Errorf("write webvtt: %w", err)
	}

	return nil
}
