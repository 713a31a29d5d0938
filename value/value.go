// Package value defines the live debuggee value contract consumed by formatters.
//
// A Value is an opaque handle owned by whoever created it. Formatters only
// release values they created themselves (for example by following a by-ref);
// the value handed in by a caller is never released. Handle makes that
// ownership explicit instead of comparing handles by identity.
package value

// DimensionInfo describes one dimension of a live array.
type DimensionInfo struct {
	BaseIndex int32
	Length    uint32
}

// Value is a live value obtained from a debugger.
type Value interface {
	// IsNull reports whether the value is a null reference.
	IsNull() bool

	// LoadIndirect dereferences a by-ref value. The returned value is owned by
	// the caller and must be released. ok is false when the value cannot be
	// dereferenced.
	LoadIndirect() (v Value, ok bool)

	// ArrayCount returns the element count of an array.
	ArrayCount() (count uint32, ok bool)

	// ArrayInfo returns per-dimension base index and length of an array.
	ArrayInfo() (dims []DimensionInfo, ok bool)

	// Release frees the underlying debugger resources.
	Release()
}

// Ownership records who must release a value.
type Ownership int

const (
	// Borrowed values belong to someone else and are never released here.
	Borrowed Ownership = iota
	// Owned values were created here and are released exactly once.
	Owned
)

// String returns the string representation of the ownership tag.
func (o Ownership) String() string {
	switch o {
	case Borrowed:
		return "borrowed"
	case Owned:
		return "owned"
	default:
		return "unknown"
	}
}

// Handle pairs a possibly nil Value with its ownership tag.
// The zero Handle holds no value.
type Handle struct {
	v   Value
	own Ownership
}

// Borrow wraps a caller-owned value.
func Borrow(v Value) Handle { return Handle{v: v, own: Borrowed} }

// Own wraps a value the holder must release.
func Own(v Value) Handle { return Handle{v: v, own: Owned} }

// Value returns the wrapped value, or nil once released.
func (h *Handle) Value() Value { return h.v }

// Ownership returns the ownership tag.
func (h *Handle) Ownership() Ownership { return h.own }

// Valid reports whether the handle holds a non-null value.
func (h *Handle) Valid() bool { return h.v != nil && !h.v.IsNull() }

// Release releases an owned value and clears the handle so a second call is a
// no-op. Borrowed values are only cleared.
func (h *Handle) Release() {
	if h.v == nil {
		return
	}
	if h.own == Owned {
		h.v.Release()
	}
	h.v = nil
}

// Deref follows a by-ref value. The result is owned; it is empty when v is nil
// or cannot be dereferenced.
func Deref(v Value) Handle {
	if v == nil {
		return Handle{}
	}
	inner, ok := v.LoadIndirect()
	if !ok || inner == nil {
		return Handle{}
	}
	return Own(inner)
}
