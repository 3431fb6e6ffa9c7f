package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/Penguin825/chatlog-search/internal/aggregator"
	"github.com/Penguin825/chatlog-search/internal/model"
)

// Renderer reports scan progress to the user. It observes the scanner
// directly and is told about the steps around the scan.
type Renderer interface {
	model.Observer
	SearchType(useRegex bool) error
	Writing(filename string) error
	Summary(stats aggregator.Stats) error
	Err() error
}

// ---------------------------------------------------------------------------
// Text Renderer (styled terminal output)
// ---------------------------------------------------------------------------

var (
	styleLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))             // gray
	styleFile    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))              // cyan
	styleSkipped = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Faint(true) // dim gray
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)  // yellow
	styleCount   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)   // green
)

// TextRenderer prints progress lines to the terminal.
type TextRenderer struct {
	w   io.Writer
	err error
}

// NewTextRenderer returns a Renderer that writes styled text to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

func (r *TextRenderer) SearchType(useRegex bool) error {
	mode := "Text"
	if useRegex {
		mode = "Regex"
	}
	return r.println(styleLabel.Render("Search type:") + " " + mode)
}

func (r *TextRenderer) Observe(ev model.Event) {
	var err error
	switch ev.Kind {
	case model.EventSearching:
		err = r.println(styleLabel.Render("Searching:") + " " + styleFile.Render(ev.File))
	case model.EventSkipped:
		err = r.println(styleSkipped.Render("File Skipped: " + ev.File))
	case model.EventTruncated:
		msg := fmt.Sprintf("EOFError: %s ended before the end-of-stream marker was reached", ev.File)
		err = r.println("\n" + styleWarn.Render(msg) + "\n")
	}
	if err != nil && r.err == nil {
		r.err = err
	}
}

func (r *TextRenderer) Match(model.MatchRecord) {}

func (r *TextRenderer) Writing(filename string) error {
	return r.println(styleLabel.Render("Writing to file:") + " " + styleFile.Render(filename))
}

func (r *TextRenderer) Summary(stats aggregator.Stats) error {
	line := fmt.Sprintf("%s in %d file(s), %d skipped",
		styleCount.Render(fmt.Sprintf("%d match(es)", stats.TotalMatches)),
		stats.FilesSearched, stats.FilesSkipped)
	if stats.FilesTruncated > 0 {
		line += ", " + styleWarn.Render(fmt.Sprintf("%d truncated", stats.FilesTruncated))
	}
	return r.println(line)
}

// Err returns the first write error hit while observing the scan.
func (r *TextRenderer) Err() error {
	return r.err
}

func (r *TextRenderer) println(s string) error {
	_, err := fmt.Fprintln(r.w, s)
	return err
}

// ---------------------------------------------------------------------------
// JSON Renderer (structured output for piping)
// ---------------------------------------------------------------------------

// jsonEvent is one line of JSON progress output.
type jsonEvent struct {
	Kind  string            `json:"kind"`
	File  string            `json:"file,omitempty"`
	Error string            `json:"error,omitempty"`
	Mode  string            `json:"mode,omitempty"`
	Stats *aggregator.Stats `json:"stats,omitempty"`
}

// JSONRenderer prints each progress event as a single JSON object per line.
type JSONRenderer struct {
	enc *json.Encoder
	err error
}

// NewJSONRenderer returns a Renderer that writes JSON lines to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{enc: json.NewEncoder(w)}
}

func (r *JSONRenderer) SearchType(useRegex bool) error {
	mode := "text"
	if useRegex {
		mode = "regex"
	}
	return r.enc.Encode(jsonEvent{Kind: "search_type", Mode: mode})
}

func (r *JSONRenderer) Observe(ev model.Event) {
	out := jsonEvent{Kind: string(ev.Kind), File: ev.File}
	if ev.Err != nil {
		out.Error = ev.Err.Error()
	}
	if err := r.enc.Encode(out); err != nil && r.err == nil {
		r.err = err
	}
}

func (r *JSONRenderer) Match(model.MatchRecord) {}

func (r *JSONRenderer) Writing(filename string) error {
	return r.enc.Encode(jsonEvent{Kind: "writing", File: filename})
}

func (r *JSONRenderer) Summary(stats aggregator.Stats) error {
	return r.enc.Encode(jsonEvent{Kind: "summary", Stats: &stats})
}

// Err returns the first write error hit while observing the scan.
func (r *JSONRenderer) Err() error {
	return r.err
}
