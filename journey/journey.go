// Package journey is the controller behind a chapter's section-by-section lessons. A Journey tracks the current
// section and which sections are completed; its transitions are driven by Next, Prev, JumpTo, Complete and keyboard
// keys.
//
// States are the section indices 0..N-1. Out-of-range targets are clamped, so no event can fail. When the last
// outstanding section is completed the OnComplete callback runs, once.
//
// A Journey holds UI state for one learner and is not safe for concurrent use.
package journey

import (
	"errors"

	"github.com/hananather/probability"
	"github.com/hananather/probability/sets"
)

var ErrNoSections = errors.New("journey: at least one section is required")

// Event names what caused a transition.
type Event int

const (
	EventNext Event = iota
	EventPrev
	EventJump
	EventComplete
	EventReset
)

func (e Event) String() string {
	switch e {
	case EventNext:
		return "next"
	case EventPrev:
		return "prev"
	case EventJump:
		return "jump"
	case EventComplete:
		return "complete"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

// Section is one step of a journey.
type Section struct {
	ID    string `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

// Transition describes the effect of one event. Completed is the section the event marked completed, or -1.
// Finished is true only for the transition which completed the final outstanding section.
type Transition struct {
	Event     Event
	From      int
	To        int
	Completed int
	Finished  bool
}

// Moved reports whether the current section changed.
func (t Transition) Moved() bool {
	return t.From != t.To
}

// Journey is the navigation state machine for one chapter.
type Journey struct {
	sections   []Section
	current    int
	completed  sets.Set[int]
	finished   bool
	onComplete func()
	observers  []func(Transition)
}

// Option configures a Journey at construction.
type Option func(*Journey)

// WithOnComplete registers f to run when every section has been completed.
func WithOnComplete(f func()) Option {
	return func(j *Journey) {
		j.onComplete = f
	}
}

// WithStart sets the initial section. It is clamped into range.
func WithStart(index int) Option {
	return func(j *Journey) {
		j.current = index
	}
}

// WithCompleted marks sections as already completed, e.g. when restoring saved progress. Indices out of range are
// ignored. Restoring a fully completed journey does not run OnComplete again.
func WithCompleted(indices ...int) Option {
	return func(j *Journey) {
		for _, i := range indices {
			if i >= 0 && i < len(j.sections) {
				j.completed.Add(i)
			}
		}
	}
}

// New creates a Journey positioned at the first section.
func New(sections []Section, opts ...Option) (*Journey, error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}
	j := &Journey{
		sections:  append([]Section(nil), sections...),
		completed: sets.New[int](),
	}
	for _, opt := range opts {
		opt(j)
	}
	j.current = j.clamp(j.current)
	j.finished = j.completed.Len() == len(j.sections)
	return j, nil
}

// Len returns the number of sections.
func (j *Journey) Len() int { return len(j.sections) }

// Current returns the index of the current section.
func (j *Journey) Current() int { return j.current }

// Section returns the current section.
func (j *Journey) Section() Section { return j.sections[j.current] }

// Sections returns a copy of all sections.
func (j *Journey) Sections() []Section { return append([]Section(nil), j.sections...) }

// IsCompleted reports whether section i has been completed.
func (j *Journey) IsCompleted(i int) bool { return j.completed.Contains(i) }

// Completed returns the completed section indices in ascending order.
func (j *Journey) Completed() []int { return j.completed.Elems() }

// Finished reports whether every section has been completed.
func (j *Journey) Finished() bool { return j.finished }

// Progress returns the completed fraction of sections, in [0, 1].
func (j *Journey) Progress() float64 {
	return float64(j.completed.Len()) / float64(len(j.sections))
}

func (j *Journey) CanPrev() bool { return j.current > 0 }
func (j *Journey) CanNext() bool { return j.current < len(j.sections)-1 }

// OnTransition registers f to observe every transition, including ones which change nothing.
func (j *Journey) OnTransition(f func(Transition)) {
	j.observers = append(j.observers, f)
}

// Next completes the current section and advances to the following one. On the last section it only completes.
func (j *Journey) Next() Transition {
	t := Transition{Event: EventNext, From: j.current, Completed: -1}
	t.Completed, t.Finished = j.markCompleted(j.current)
	j.current = j.clamp(j.current + 1)
	return j.emit(t)
}

// Prev moves back one section. On the first section it does nothing.
func (j *Journey) Prev() Transition {
	t := Transition{Event: EventPrev, From: j.current, Completed: -1}
	j.current = j.clamp(j.current - 1)
	return j.emit(t)
}

// JumpTo moves to section i, clamped into range. Completion is unaffected.
func (j *Journey) JumpTo(i int) Transition {
	t := Transition{Event: EventJump, From: j.current, Completed: -1}
	j.current = j.clamp(i)
	return j.emit(t)
}

// Complete marks section i, clamped into range, as completed without moving.
func (j *Journey) Complete(i int) Transition {
	t := Transition{Event: EventComplete, From: j.current, Completed: -1}
	t.Completed, t.Finished = j.markCompleted(j.clamp(i))
	return j.emit(t)
}

// Reset returns to the first section and forgets all progress. OnComplete may run again afterwards.
func (j *Journey) Reset() Transition {
	t := Transition{Event: EventReset, From: j.current, Completed: -1}
	j.current = 0
	j.completed = sets.New[int]()
	j.finished = false
	return j.emit(t)
}

// HandleKey maps keyboard navigation onto events: ArrowRight and ArrowDown go forward, ArrowLeft and ArrowUp go back,
// Home and End jump to the ends. The second result is false for keys without a binding.
func (j *Journey) HandleKey(key string) (Transition, bool) {
	switch key {
	case "ArrowRight", "ArrowDown":
		return j.Next(), true
	case "ArrowLeft", "ArrowUp":
		return j.Prev(), true
	case "Home":
		return j.JumpTo(0), true
	case "End":
		return j.JumpTo(len(j.sections) - 1), true
	}
	return Transition{}, false
}

// markCompleted returns the index it marked, or -1 if it was already completed, and whether this finished the
// journey.
func (j *Journey) markCompleted(i int) (int, bool) {
	if j.completed.Contains(i) {
		return -1, false
	}
	j.completed.Add(i)
	if j.finished || j.completed.Len() < len(j.sections) {
		return i, false
	}
	j.finished = true
	if j.onComplete != nil {
		j.onComplete()
	}
	return i, true
}

func (j *Journey) emit(t Transition) Transition {
	t.To = j.current
	for _, f := range j.observers {
		f(t)
	}
	return t
}

func (j *Journey) clamp(i int) int {
	return probability.Clamp(i, 0, len(j.sections)-1)
}

// Snapshot is the persistable progress of a Journey.
type Snapshot struct {
	Current   int   `json:"current" yaml:"current"`
	Completed []int `json:"completed" yaml:"completed"`
}

// Snapshot captures the current position and completed sections.
func (j *Journey) Snapshot() Snapshot {
	return Snapshot{Current: j.current, Completed: j.completed.Elems()}
}

// Restore recreates a Journey over sections from a snapshot.
func Restore(sections []Section, snap Snapshot, opts ...Option) (*Journey, error) {
	opts = append([]Option{WithStart(snap.Current), WithCompleted(snap.Completed...)}, opts...)
	return New(sections, opts...)
}
