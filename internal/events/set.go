// Package events is the read-only query layer over a synthesized
// event set. A Set is an immutable snapshot; pipeline passes build a
// fresh one rather than mutating an existing snapshot.
package events

import (
	"sort"
	"time"

	"github.com/misodaily/newsdesk/internal/pipeline"
)

// DefaultWindowHours is the window used by callers that do not ask
// for a specific one.
const DefaultWindowHours = 24.0

// Set holds one pass's synthesized events with an id index.
type Set struct {
	events []pipeline.Event
	byID   map[string]pipeline.Event
}

// NewSet copies the given events into a snapshot.
func NewSet(evs []pipeline.Event) *Set {
	s := &Set{
		events: make([]pipeline.Event, len(evs)),
		byID:   make(map[string]pipeline.Event, len(evs)),
	}
	copy(s.events, evs)
	for _, ev := range s.events {
		s.byID[ev.ID] = ev
	}
	return s
}

// Len reports the snapshot size.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.events)
}

// All returns every event, updatedAt descending.
func (s *Set) All() []pipeline.Event {
	if s == nil {
		return nil
	}
	out := make([]pipeline.Event, len(s.events))
	copy(out, s.events)
	sortByUpdatedDesc(out)
	return out
}

// ByTicker returns the events for one equity, startedAt descending.
// An unknown ticker yields an empty result, not an error.
func (s *Set) ByTicker(market, ticker string) []pipeline.Event {
	if s == nil {
		return nil
	}
	var out []pipeline.Event
	for _, ev := range s.events {
		if ev.Market == market && ev.Ticker == ticker {
			out = append(out, ev)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	return out
}

// InWindow returns events whose startedAt falls within [ref-hours,
// ref], updatedAt descending. The reference instant is explicit so
// results are reproducible; events with a zero startedAt (missing
// timestamps upstream) never qualify.
func (s *Set) InWindow(ref time.Time, hours float64) []pipeline.Event {
	if s == nil || hours <= 0 {
		return nil
	}
	cutoff := ref.Add(-time.Duration(hours * float64(time.Hour)))
	var out []pipeline.Event
	for _, ev := range s.events {
		if ev.StartedAt.IsZero() {
			continue
		}
		if ev.StartedAt.Before(cutoff) || ev.StartedAt.After(ref) {
			continue
		}
		out = append(out, ev)
	}
	sortByUpdatedDesc(out)
	return out
}

// TopInWindow truncates InWindow to at most n events.
func (s *Set) TopInWindow(ref time.Time, hours float64, n int) []pipeline.Event {
	if n <= 0 {
		return nil
	}
	out := s.InWindow(ref, hours)
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// ByID looks an event up by its deterministic id. The second return
// is false on a miss; absence is not an error condition.
func (s *Set) ByID(id string) (pipeline.Event, bool) {
	if s == nil {
		return pipeline.Event{}, false
	}
	ev, ok := s.byID[id]
	return ev, ok
}

// LabelCounts tallies event types across the given list. Every
// taxonomy label appears in the result, zero counts included, so
// display layers can render the full set.
func LabelCounts(evs []pipeline.Event) map[pipeline.Label]int {
	counts := make(map[pipeline.Label]int, len(pipeline.Labels()))
	for _, label := range pipeline.Labels() {
		counts[label] = 0
	}
	for _, ev := range evs {
		counts[ev.Type]++
	}
	return counts
}

func sortByUpdatedDesc(evs []pipeline.Event) {
	sort.SliceStable(evs, func(i, j int) bool {
		return evs[i].UpdatedAt.After(evs[j].UpdatedAt)
	})
}
