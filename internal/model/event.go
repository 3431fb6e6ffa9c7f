package model

// EventKind identifies a scanner progress notification.
type EventKind string

const (
	EventSearching EventKind = "searching"
	EventSkipped   EventKind = "skipped"
	EventTruncated EventKind = "truncated"
)

// Event is emitted by the scanner as it walks the log directory.
type Event struct {
	Kind EventKind `json:"kind"`
	File string    `json:"file"`
	Err  error     `json:"-"`
}

// Observer receives scanner events and matches as they happen.
type Observer interface {
	Observe(ev Event)
	Match(rec MatchRecord)
}

// Observers fans every notification out to each observer in order.
type Observers []Observer

func (o Observers) Observe(ev Event) {
	for _, obs := range o {
		obs.Observe(ev)
	}
}

func (o Observers) Match(rec MatchRecord) {
	for _, obs := range o {
		obs.Match(rec)
	}
}
