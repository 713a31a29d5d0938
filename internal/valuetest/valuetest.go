// Package valuetest provides a live value fake that records every release,
// for testing that formatters free exactly the values they create.
package valuetest

import (
	"fmt"
	"sync"

	"github.com/sigfmt/sigfmt/value"
)

// Shape describes a fake value.
type Shape struct {
	Null       bool
	Count      *uint32
	Dimensions []value.DimensionInfo
	Ref        *Shape // target of LoadIndirect
}

// Count returns a pointer to n, for Shape.Count.
func Count(n uint32) *uint32 { return &n }

// Tracker creates fake values and counts their releases.
// All methods are thread-safe.
type Tracker struct {
	mu       sync.Mutex
	created  int
	released int
	problems []string
}

// New creates an empty Tracker.
func New() *Tracker {
	return &Tracker{}
}

// Root returns a caller-owned value. Releasing it is recorded as a problem.
func (tr *Tracker) Root(s Shape) *Value {
	return &Value{tracker: tr, shape: s, borrowed: true}
}

func (tr *Tracker) derive(s Shape) *Value {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.created++
	return &Value{tracker: tr, shape: s}
}

func (tr *Tracker) problem(format string, args ...any) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.problems = append(tr.problems, fmt.Sprintf(format, args...))
}

// Created returns how many values were handed out by LoadIndirect.
func (tr *Tracker) Created() int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.created
}

// Outstanding returns how many derived values were never released.
func (tr *Tracker) Outstanding() int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return tr.created - tr.released
}

// Problems returns misuse reports: released roots and double releases.
func (tr *Tracker) Problems() []string {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return append([]string(nil), tr.problems...)
}

// Value is a fake value.Value.
type Value struct {
	tracker  *Tracker
	shape    Shape
	borrowed bool

	mu       sync.Mutex
	released bool
}

var _ value.Value = (*Value)(nil)

func (v *Value) IsNull() bool { return v.shape.Null }

func (v *Value) LoadIndirect() (value.Value, bool) {
	if v.shape.Ref == nil {
		return nil, false
	}
	return v.tracker.derive(*v.shape.Ref), true
}

func (v *Value) ArrayCount() (uint32, bool) {
	if v.shape.Count == nil {
		return 0, false
	}
	return *v.shape.Count, true
}

func (v *Value) ArrayInfo() ([]value.DimensionInfo, bool) {
	if v.shape.Dimensions == nil {
		return nil, false
	}
	return v.shape.Dimensions, true
}

func (v *Value) Release() {
	if v.borrowed {
		v.tracker.problem("released a caller-owned value")
		return
	}
	v.mu.Lock()
	already := v.released
	v.released = true
	v.mu.Unlock()
	if already {
		v.tracker.problem("value released twice")
		return
	}
	v.tracker.mu.Lock()
	v.tracker.released++
	v.tracker.mu.Unlock()
}
