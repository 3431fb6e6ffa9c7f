package model

import "testing"

type countingObserver struct {
	events  int
	matches int
}

func (c *countingObserver) Observe(Event) { c.events++ }
func (c *countingObserver) Match(MatchRecord) { c.matches++ }

func TestObserversFanOut(t *testing.T) {
	a, b := &countingObserver{}, &countingObserver{}
	obs := Observers{a, b}

	obs.Observe(Event{Kind: EventSearching, File: "a.log"})
	obs.Match(MatchRecord{Source: "a.log", Line: "x\n"})
	obs.Match(MatchRecord{Source: "a.log", Line: "y\n"})

	for i, c := range []*countingObserver{a, b} {
		if c.events != 1 {
			t.Errorf("observer %d: expected 1 event, got %d", i, c.events)
		}
		if c.matches != 2 {
			t.Errorf("observer %d: expected 2 matches, got %d", i, c.matches)
		}
	}
}

func TestMatchRecordString(t *testing.T) {
	rec := MatchRecord{Source: "latest.log", Line: "[12:00] hi\n"}
	if got := rec.String(); got != "latest.log[12:00] hi\n" {
		t.Errorf("expected concatenated form, got %q", got)
	}
}
