// Package cyarg is a declarative command-line argument parsing engine:
// given a list of argument descriptors (positional or named, valued or
// boolean switches, with defaults and synonyms) and a flat token list,
// it produces a mapping from argument identity to a typed value.
//
// Short flags bundle (-abc), valued short flags take inline values
// (-ovalue) or the following token (-o value), long flags (--out) take
// the following token, and synonyms (-a/--all) always share one
// resolved value.
package cyarg

import (
	"os"
	"time"
)

// Process parses the process's own argument vector (os.Args minus the
// program name) against the descriptor list.
func Process(descs []*Descriptor) (Result, error) {
	return ProcessArgs(descs, os.Args[1:])
}

// ProcessArgs parses the given token list against the descriptor list.
// The returned mapping holds one entry per resolved key, synonyms
// included; absent optional arguments without defaults simply have no
// entry. The caller's args slice is never mutated, and no state
// persists between calls.
func ProcessArgs(descs []*Descriptor, args []string) (Result, error) {
	l := newLoader(descs, args)
	defer l.release()
	return l.loadAll()
}

// Result is the plain mapping produced by a parse: canonical argument
// keys (and their synonyms) to resolved values.
type Result map[Key]any

// Value returns the raw resolved value for a key.
func (r Result) Value(key Key) (any, bool) {
	v, ok := r[key]
	return v, ok
}

// Get returns the value stored under a name (any synonym works).
func (r Result) Get(name string) (any, bool) {
	return r.Value(NameKey(name))
}

// Pos returns the value of the positional argument at the 1-based slot.
func (r Result) Pos(slot int) (any, bool) {
	return r.Value(SlotKey(slot))
}

// GetString returns a named string value.
func (r Result) GetString(name string) (string, bool) {
	v, ok := r[NameKey(name)].(string)
	return v, ok
}

// GetInt returns a named integer value.
func (r Result) GetInt(name string) (int, bool) {
	v, ok := r[NameKey(name)].(int)
	return v, ok
}

// GetBool returns a named boolean value; absent keys read as false.
func (r Result) GetBool(name string) bool {
	v, _ := r[NameKey(name)].(bool)
	return v
}

// GetFloat returns a named float64 value.
func (r Result) GetFloat(name string) (float64, bool) {
	v, ok := r[NameKey(name)].(float64)
	return v, ok
}

// GetDuration returns a named duration value.
func (r Result) GetDuration(name string) (time.Duration, bool) {
	v, ok := r[NameKey(name)].(time.Duration)
	return v, ok
}

// PosString returns a positional value as a string.
func (r Result) PosString(slot int) (string, bool) {
	v, ok := r[SlotKey(slot)].(string)
	return v, ok
}

// MustGetString returns a named string value or the fallback.
func (r Result) MustGetString(name, fallback string) string {
	if v, ok := r.GetString(name); ok {
		return v
	}
	return fallback
}

// MustGetInt returns a named integer value or the fallback.
func (r Result) MustGetInt(name string, fallback int) int {
	if v, ok := r.GetInt(name); ok {
		return v
	}
	return fallback
}

// MustGetDuration returns a named duration value or the fallback.
func (r Result) MustGetDuration(name string, fallback time.Duration) time.Duration {
	if v, ok := r.GetDuration(name); ok {
		return v
	}
	return fallback
}
