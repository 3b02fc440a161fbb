// Package game owns the session state for the question game: the selected
// category, the pair currently on screen, the ordered history of past rounds,
// and the cursor marking which round is displayed.
//
// All transitions are pure functions on a Session value. The app layer decides
// when to call the generation client; this package only records the results.
package game

import (
	"time"

	"github.com/google/uuid"
)

// OptionPair is the two contrasting short-text choices shown for a round.
// Both strings are non-empty for a completed round; both empty means no round
// is displayed (startup or a failed generation).
type OptionPair struct {
	First  string
	Second string
}

// Empty reports whether the pair holds no displayable round.
func (p OptionPair) Empty() bool {
	return p.First == "" && p.Second == ""
}

// HistoryEntry is a recorded past round. Entries are immutable once appended.
type HistoryEntry struct {
	ID        string
	Category  Category
	Pair      OptionPair
	CreatedAt time.Time
}

// State identifies the controller state. States are explicit rather than
// derived from flag combinations so transitions stay traceable.
type State int

const (
	StateIdle    State = iota // A round is displayed (or nothing yet), ready for input
	StateLoading              // A generation call is in flight
	StateErrored              // The last generation failed; error text is displayed
)

// String returns a human-readable name for the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLoading:
		return "Loading"
	case StateErrored:
		return "Errored"
	default:
		return "Unknown"
	}
}

// Session is the aggregate session state. The zero value is not useful; use
// NewSession. Transition methods are value receivers returning the next
// Session, leaving the receiver untouched.
type Session struct {
	Category  Category
	InFlight  Category // category the active generation was requested for; empty when idle
	Pair      OptionPair
	Loading   bool
	LastError string
	History   []HistoryEntry
	Cursor    int // index of the displayed round in History, -1 = nothing loaded yet
}

// NewSession creates a session with no rounds loaded.
func NewSession(c Category) Session {
	return Session{
		Category: c,
		Cursor:   -1,
	}
}

// State returns the explicit state for the current field combination.
func (s Session) State() State {
	if s.Loading {
		return StateLoading
	}
	if s.LastError != "" {
		return StateErrored
	}
	return StateIdle
}

// InitialLoad reports whether no round has ever been recorded. The first
// successful generation replaces history instead of appending.
func (s Session) InitialLoad() bool {
	return s.Cursor == -1
}

// NeedsGeneration reports whether the displayed round is absent or belongs to
// a different category than the selected one. Callers must check this
// synchronously after a selection change and issue the generation command
// themselves; nothing re-evaluates it implicitly, so a mismatch triggers
// exactly one call.
func (s Session) NeedsGeneration() bool {
	if s.Loading {
		return false
	}
	if s.Cursor == -1 {
		return true
	}
	return s.History[s.Cursor].Category != s.Category
}

// CanStepBack reports whether a previous round exists to navigate to.
func (s Session) CanStepBack() bool {
	return !s.Loading && s.Cursor > 0
}

// SelectCategory sets the selected category. It does not touch history or the
// displayed pair; the caller checks NeedsGeneration afterwards.
func (s Session) SelectCategory(c Category) Session {
	s.Category = c
	return s
}

// BeginGeneration enters the loading state and snapshots the category the
// request is issued for. The prior pair stays displayed until the call
// resolves.
func (s Session) BeginGeneration() Session {
	s.Loading = true
	s.InFlight = s.Category
	s.LastError = ""
	return s
}

// CompleteGeneration records a successful generation. The entry is labeled
// with the category the request was issued for, so a category selected while
// the call was in flight does not relabel the round; NeedsGeneration then
// reports the mismatch and the caller issues the deferred request. On the
// initial load the entry becomes the whole history; otherwise history is
// truncated to the rounds at or before the cursor (discarding any abandoned
// branch) before the entry is appended. A pair with both strings empty is
// treated as a failure and recorded via FailGeneration.
func (s Session) CompleteGeneration(pair OptionPair) Session {
	if pair.Empty() {
		return s.FailGeneration("the service returned an empty question")
	}

	category := s.InFlight
	if category == "" {
		category = s.Category
	}

	entry := HistoryEntry{
		ID:        uuid.New().String(),
		Category:  category,
		Pair:      pair,
		CreatedAt: time.Now(),
	}

	var history []HistoryEntry
	if s.Cursor == -1 {
		history = []HistoryEntry{entry}
	} else {
		// Copy so the receiver's history is never aliased by the new session.
		history = make([]HistoryEntry, s.Cursor+1, s.Cursor+2)
		copy(history, s.History[:s.Cursor+1])
		history = append(history, entry)
	}

	s.History = history
	s.Cursor = len(history) - 1
	s.Pair = pair
	s.LastError = ""
	s.Loading = false
	s.InFlight = ""
	return s
}

// FailGeneration records a failed generation. The displayed pair is cleared
// (not left stale) and the error text takes its place. History and cursor are
// untouched, so a later success resumes from the same point.
func (s Session) FailGeneration(msg string) Session {
	s.Pair = OptionPair{}
	s.LastError = msg
	s.Loading = false
	s.InFlight = ""
	return s
}

// StepBack moves the cursor to the previous round and replays it, restoring
// both the pair and that round's category. It never calls out to generation
// and is a no-op when no previous round exists or a call is in flight.
func (s Session) StepBack() Session {
	if !s.CanStepBack() {
		return s
	}
	s.Cursor--
	entry := s.History[s.Cursor]
	s.Pair = entry.Pair
	s.Category = entry.Category
	s.LastError = ""
	return s
}

// Current returns the history entry at the cursor, or false when nothing has
// been loaded yet.
func (s Session) Current() (HistoryEntry, bool) {
	if s.Cursor == -1 {
		return HistoryEntry{}, false
	}
	return s.History[s.Cursor], true
}
