// Package lifecycle enforces the fixed status transition tables of
// courier shipments, invoices and payouts.
package lifecycle

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// Table is a directed adjacency list: status -> allowed next statuses.
// A status mapped to an empty list is terminal.
type Table[S comparable] map[S][]S

// Allows reports whether from -> to is an edge of the table. Self edges are
// only allowed when listed explicitly.
func (t Table[S]) Allows(from, to S) bool {
	for _, next := range t[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Next returns a copy of the statuses reachable from s.
func (t Table[S]) Next(s S) []S {
	out := make([]S, len(t[s]))
	copy(out, t[s])
	return out
}

type Request[S comparable] struct {
	Current   S
	Requested S
	Notes     string
	Location  string
	ActorID   *uint
	Timestamp time.Time
}

// Entry is the timeline record produced by an admitted transition.
type Entry[S comparable] struct {
	Status    S
	Timestamp time.Time
	Notes     string
	Location  string
	ActorID   *uint
}

type TransitionError[S comparable] struct {
	Entity  string
	From    S
	To      S
	Allowed []S
}

func (e *TransitionError[S]) Error() string {
	return fmt.Sprintf("%s cannot move from %v to %v (allowed: %v)", e.Entity, e.From, e.To, e.Allowed)
}

func (e *TransitionError[S]) Unwrap() error { return ErrInvalidTransition }

// Guard validates transitions for one entity type. It performs no I/O.
type Guard[S comparable] struct {
	entity string
	table  Table[S]
	now    func() time.Time
}

func NewGuard[S comparable](entity string, table Table[S]) *Guard[S] {
	return &Guard[S]{entity: entity, table: table, now: time.Now}
}

// WithClock returns a copy of the guard using now for default timestamps.
func (g *Guard[S]) WithClock(now func() time.Time) *Guard[S] {
	cp := *g
	cp.now = now
	return &cp
}

func (g *Guard[S]) Entity() string { return g.entity }

func (g *Guard[S]) Table() Table[S] { return g.table }

// Transition admits or rejects req. On success the new status is req.Requested
// and the returned entry is what the caller must append to the timeline.
func (g *Guard[S]) Transition(req Request[S]) (Entry[S], error) {
	if !g.table.Allows(req.Current, req.Requested) {
		return Entry[S]{}, &TransitionError[S]{
			Entity:  g.entity,
			From:    req.Current,
			To:      req.Requested,
			Allowed: g.table.Next(req.Current),
		}
	}

	ts := req.Timestamp
	if ts.IsZero() {
		ts = g.now()
	}

	return Entry[S]{
		Status:    req.Requested,
		Timestamp: ts.UTC(),
		Notes:     req.Notes,
		Location:  req.Location,
		ActorID:   req.ActorID,
	}, nil
}
