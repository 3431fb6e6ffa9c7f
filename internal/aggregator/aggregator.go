package aggregator

import (
	"sort"

	"github.com/Penguin825/chatlog-search/internal/model"
)

// Stats holds a point-in-time snapshot of scan totals.
type Stats struct {
	FilesSearched  int            `json:"files_searched"`
	FilesSkipped   int            `json:"files_skipped"`
	FilesTruncated int            `json:"files_truncated"`
	TotalMatches   int            `json:"total_matches"`
	MatchCounts    map[string]int `json:"match_counts"`
}

// Aggregator observes a scan and tallies files and matches.
type Aggregator struct {
	searched  int
	skipped   int
	truncated int
	total     int
	counts    map[string]int
}

// New creates an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{counts: make(map[string]int)}
}

// Observe records a scanner event.
func (a *Aggregator) Observe(ev model.Event) {
	switch ev.Kind {
	case model.EventSearching:
		a.searched++
	case model.EventSkipped:
		a.skipped++
	case model.EventTruncated:
		a.truncated++
	}
}

// Match records a matched line against its source file.
func (a *Aggregator) Match(rec model.MatchRecord) {
	a.total++
	a.counts[rec.Source]++
}

// Snapshot returns the current totals.
func (a *Aggregator) Snapshot() Stats {
	// Copy match counts.
	counts := make(map[string]int, len(a.counts))
	for k, v := range a.counts {
		counts[k] = v
	}

	return Stats{
		FilesSearched:  a.searched,
		FilesSkipped:   a.skipped,
		FilesTruncated: a.truncated,
		TotalMatches:   a.total,
		MatchCounts:    counts,
	}
}

// Sources returns the files that produced matches, sorted by name.
func (s Stats) Sources() []string {
	names := make([]string, 0, len(s.MatchCounts))
	for name := range s.MatchCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
