package typeinfo

import (
	"encoding/json"
	"fmt"
)

// Flags is a Provider built from decoded attribute payloads.
type Flags struct {
	// Dynamic holds one flag per dynamic position. A present but empty slice
	// means only position 0 is dynamic, matching an argument-less attribute.
	Dynamic []bool `json:"dynamic,omitempty"`

	// NativeInt holds one flag per IntPtr/UIntPtr occurrence. A present but
	// empty slice means every occurrence is native.
	NativeInt []bool `json:"nativeInt,omitempty"`

	// TupleNames holds one name per tuple element position; "" is unnamed.
	TupleNames []string `json:"tupleNames,omitempty"`

	hasDynamic   bool
	hasNativeInt bool
}

// NewFlags returns a Flags provider. Pass nil for an absent attribute and an
// empty non-nil slice for an attribute without arguments.
func NewFlags(dynamic, nativeInt []bool, tupleNames []string) *Flags {
	return &Flags{
		Dynamic:      dynamic,
		NativeInt:    nativeInt,
		TupleNames:   tupleNames,
		hasDynamic:   dynamic != nil,
		hasNativeInt: nativeInt != nil,
	}
}

// IsDynamicType implements Provider.
func (f *Flags) IsDynamicType(index int) bool {
	if f == nil || !f.hasDynamic || index < 0 {
		return false
	}
	if len(f.Dynamic) == 0 {
		return index == 0
	}
	return index < len(f.Dynamic) && f.Dynamic[index]
}

// IsNativeIntegerType implements Provider.
func (f *Flags) IsNativeIntegerType(index int) bool {
	if f == nil || !f.hasNativeInt || index < 0 {
		return false
	}
	if len(f.NativeInt) == 0 {
		return true
	}
	return index < len(f.NativeInt) && f.NativeInt[index]
}

// TupleElementName implements Provider.
func (f *Flags) TupleElementName(index int) (string, bool) {
	if f == nil || index < 0 || index >= len(f.TupleNames) {
		return "", false
	}
	name := f.TupleNames[index]
	return name, name != ""
}

// UnmarshalJSON keeps the difference between an absent and an empty list.
func (f *Flags) UnmarshalJSON(data []byte) error {
	var raw struct {
		Dynamic    *[]bool  `json:"dynamic"`
		NativeInt  *[]bool  `json:"nativeInt"`
		TupleNames []string `json:"tupleNames"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode type info: %w", err)
	}
	*f = Flags{TupleNames: raw.TupleNames}
	if raw.Dynamic != nil {
		f.Dynamic, f.hasDynamic = *raw.Dynamic, true
		if f.Dynamic == nil {
			f.Dynamic = []bool{}
		}
	}
	if raw.NativeInt != nil {
		f.NativeInt, f.hasNativeInt = *raw.NativeInt, true
		if f.NativeInt == nil {
			f.NativeInt = []bool{}
		}
	}
	return nil
}
