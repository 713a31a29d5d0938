// Package typeinfo carries source-level type annotations that a signature alone
// cannot express: dynamic, native-sized integers and tuple element names.
//
// A Provider answers questions by position. Positions are counted in the exact
// order a formatter walks a signature, so a Provider and a formatter walking the
// same signature stay in step. State holds the running counters.
package typeinfo

// Provider answers position-indexed annotation questions.
type Provider interface {
	// IsDynamicType reports whether the object at position index is dynamic.
	IsDynamicType(index int) bool

	// IsNativeIntegerType reports whether the IntPtr/UIntPtr occurrence at
	// index is nint/nuint.
	IsNativeIntegerType(index int) bool

	// TupleElementName returns the name of the tuple element at index.
	TupleElementName(index int) (name string, ok bool)
}

// State holds the running position counters of one formatting walk.
// Counters only increase.
type State struct {
	Provider Provider

	DynamicTypeIndex   int
	NativeIntTypeIndex int
	TupleNameIndex     int
}

// NewState returns a State at position zero. p may be nil.
func NewState(p Provider) State {
	return State{Provider: p}
}

// IsDynamic asks the provider about the current dynamic position.
func (s *State) IsDynamic() bool {
	return s.Provider != nil && s.Provider.IsDynamicType(s.DynamicTypeIndex)
}

// NextNativeInt asks the provider about the next native integer position and
// advances the counter. Without a provider nothing advances.
func (s *State) NextNativeInt() bool {
	if s.Provider == nil {
		return false
	}
	i := s.NativeIntTypeIndex
	s.NativeIntTypeIndex++
	return s.Provider.IsNativeIntegerType(i)
}

// TupleName returns the name of the tuple element at index, if any.
func (s *State) TupleName(index int) (string, bool) {
	if s.Provider == nil {
		return "", false
	}
	return s.Provider.TupleElementName(index)
}
