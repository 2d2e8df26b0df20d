// Package diag collects the Fatal/Warning diagnostics raised while the
// pipeline runs, per the error handling design: unrecognized commands,
// unrecognized capture labels, duplicate unique keys, and unresolved
// @ingroup are all Warnings; an invalid query at startup or an I/O failure
// opening a source file the caller asked to parse are both Fatal.
package diag

import (
	"fmt"
	"io"
)

// Severity distinguishes diagnostics that abort a run from ones that don't.
type Severity int

const (
	// Warning is recoverable: the pipeline continues, emitting a
	// best-effort result for the offending entity or token.
	Warning Severity = iota
	// Fatal aborts the run before any output is written.
	Fatal
)

func (s Severity) String() string {
	if s == Fatal {
		return "fatal"
	}
	return "warning"
}

// Event is a single diagnostic raised by any component.
type Event struct {
	Severity Severity
	Message  string
	File     string
	Offset   int
}

// Sink accumulates diagnostics during a run. The zero value is usable.
type Sink struct {
	events []Event
}

// Warningf records a Warning diagnostic against file (may be empty).
func (s *Sink) Warningf(file string, format string, args ...any) {
	s.events = append(s.events, Event{
		Severity: Warning,
		Message:  fmt.Sprintf(format, args...),
		File:     file,
	})
}

// Fatalf records a Fatal diagnostic against file (may be empty).
func (s *Sink) Fatalf(file string, format string, args ...any) {
	s.events = append(s.events, Event{
		Severity: Fatal,
		Message:  fmt.Sprintf(format, args...),
		File:     file,
	})
}

// Events returns all diagnostics recorded so far, in the order raised.
func (s *Sink) Events() []Event {
	return s.events
}

// HasFatal reports whether any Fatal diagnostic was recorded.
func (s *Sink) HasFatal() bool {
	for _, e := range s.events {
		if e.Severity == Fatal {
			return true
		}
	}
	return false
}

// Merge appends another sink's events onto s, preserving relative order.
// Used when merging per-file diagnostics gathered concurrently (§5).
func (s *Sink) Merge(other *Sink) {
	if other == nil {
		return
	}
	s.events = append(s.events, other.events...)
}

// Print writes every recorded event to w, one per line, prefixed by its
// severity and file (when known).
func (s *Sink) Print(w io.Writer) {
	for _, e := range s.events {
		if e.File != "" {
			fmt.Fprintf(w, "%s: %s: %s\n", e.Severity, e.File, e.Message)
		} else {
			fmt.Fprintf(w, "%s: %s\n", e.Severity, e.Message)
		}
	}
}
