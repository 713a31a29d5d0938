package sig

import (
	"fmt"
	"strings"
)

// CallingConvention holds the calling convention byte of a method signature.
// The low nibble selects the convention; the high bits are flags.
type CallingConvention uint8

const (
	CallConvDefault   CallingConvention = 0x00
	CallConvC         CallingConvention = 0x01
	CallConvStdCall   CallingConvention = 0x02
	CallConvThisCall  CallingConvention = 0x03
	CallConvFastCall  CallingConvention = 0x04
	CallConvVarArg    CallingConvention = 0x05
	CallConvUnmanaged CallingConvention = 0x09

	CallConvMask CallingConvention = 0x0F

	CallConvGeneric      CallingConvention = 0x10
	CallConvHasThis      CallingConvention = 0x20
	CallConvExplicitThis CallingConvention = 0x40
)

// Convention returns the masked convention.
func (c CallingConvention) Convention() CallingConvention { return c & CallConvMask }

// String renders the flags the way an enum flags value prints,
// e.g. "StdCall" or "HasThis, 0x0B".
func (c CallingConvention) String() string {
	var parts []string
	switch c.Convention() {
	case CallConvDefault:
		parts = append(parts, "Default")
	case CallConvC:
		parts = append(parts, "C")
	case CallConvStdCall:
		parts = append(parts, "StdCall")
	case CallConvThisCall:
		parts = append(parts, "ThisCall")
	case CallConvFastCall:
		parts = append(parts, "FastCall")
	case CallConvVarArg:
		parts = append(parts, "VarArg")
	case CallConvUnmanaged:
		parts = append(parts, "Unmanaged")
	default:
		parts = append(parts, fmt.Sprintf("0x%02X", uint8(c.Convention())))
	}
	if c&CallConvGeneric != 0 {
		parts = append(parts, "Generic")
	}
	if c&CallConvHasThis != 0 {
		parts = append(parts, "HasThis")
	}
	if c&CallConvExplicitThis != 0 {
		parts = append(parts, "ExplicitThis")
	}
	if rest := c &^ (CallConvMask | CallConvGeneric | CallConvHasThis | CallConvExplicitThis); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%02X", uint8(rest)))
	}
	return strings.Join(parts, ", ")
}

// MethodSignature is the signature of a function pointer.
type MethodSignature struct {
	CallingConvention CallingConvention
	ReturnType        *Type
	Parameters        []*Type

	// VarArgParameters are the types passed after the sentinel of a vararg call site.
	VarArgParameters []*Type
}

// Parameter describes a method parameter. Formatters use it to pick the
// directional keyword of a by-ref parameter.
type Parameter struct {
	Name       string
	Type       *Type
	IsIn       bool
	IsOut      bool
	Attributes []string // full names of applied custom attributes
}

const (
	// IsReadOnlyAttribute marks `in` parameters and readonly refs.
	IsReadOnlyAttribute = "System.Runtime.CompilerServices.IsReadOnlyAttribute"
	// InAttribute is the modreq emitted for `in` parameters.
	InAttribute = "System.Runtime.InteropServices.InAttribute"
	// OutAttribute is the modreq emitted for `out` function pointer parameters.
	OutAttribute = "System.Runtime.InteropServices.OutAttribute"
)

// IsReadOnly reports whether the parameter is a read-only reference.
func (p *Parameter) IsReadOnly() bool {
	if p == nil {
		return false
	}
	for _, a := range p.Attributes {
		if a == IsReadOnlyAttribute {
			return true
		}
	}
	if p.Type == nil {
		return false
	}
	for _, m := range p.Type.RequiredModifiers() {
		if m.Type.FullName() == InAttribute {
			return true
		}
	}
	return false
}
