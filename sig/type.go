// Package sig defines resolved type signature descriptors.
// A Type is an immutable node in a signature tree; formatters walk it and never
// modify it. Trees are built by a metadata resolution layer, by the builders in
// this package, or decoded from JSON.
package sig

import (
	"strconv"
	"strings"
)

// Type is a resolved type signature node.
type Type struct {
	// Kind selects which of the remaining fields are meaningful.
	Kind SignatureKind

	// Namespace and Name are the metadata namespace and name.
	// Name keeps the generic arity tick (List`1).
	// For generic parameters Name is the parameter name.
	Namespace string
	Name      string

	// Token is the metadata token, shown in token comments.
	Token uint32

	// Category, Static and Sealed drive the color of the rendered name.
	Category Category
	Static   bool
	Sealed   bool

	// DeclaringType is the enclosing type of a nested type.
	DeclaringType *Type

	// Arity is the number of generic parameters of a definition, counting the
	// parameters inherited from enclosing types.
	Arity int

	// Definition is the generic type definition of a KindGenericInstance.
	Definition *Type

	// GenericArguments are the arguments of a KindGenericInstance, flattened
	// across the nesting chain. Outer levels consume a prefix.
	GenericArguments []*Type

	// ElementType is the wrapped type of arrays, pointers and by-refs.
	ElementType *Type

	// Rank, LowerBounds and Sizes describe arrays. LowerBounds and Sizes are
	// only present when statically known.
	Rank        int
	LowerBounds []int32
	Sizes       []int32

	// Method is the signature of a KindFunctionPointer.
	Method *MethodSignature

	// Modifiers are the custom modifiers attached to this position.
	Modifiers []CustomModifier

	// Domain owns the well-known primitive instances this type is compared with.
	Domain *Domain

	base *Type // set on modifier-carrying copies
}

func (t *Type) canonical() *Type {
	if t.base != nil {
		return t.base
	}
	return t
}

// CustomModifier is a modreq or modopt attached to a signature position.
type CustomModifier struct {
	Type     *Type
	Required bool
}

// IsArray reports whether t is a vector or a general array.
func (t *Type) IsArray() bool {
	return t.Kind == KindSZArray || t.Kind == KindMDArray
}

// IsVariableBoundArray reports whether t is a general (non-vector) array.
func (t *Type) IsVariableBoundArray() bool { return t.Kind == KindMDArray }

// IsByRef reports whether t is a managed reference.
func (t *Type) IsByRef() bool { return t.Kind == KindByRef }

// IsNested reports whether t has an enclosing type.
func (t *Type) IsNested() bool { return t.DeclaringType != nil }

// IsGenericParameter reports whether t is a type or method generic parameter.
func (t *Type) IsGenericParameter() bool {
	return t.Kind == KindTypeGenericParameter || t.Kind == KindMethodGenericParameter
}

// IsNullable reports whether t is an instantiation of System.Nullable`1.
func (t *Type) IsNullable() bool {
	return t.Kind == KindGenericInstance && !t.IsNested() &&
		t.Namespace == "System" && t.Name == "Nullable`1" && len(t.GenericArguments) == 1
}

// NullableElementType returns the argument of a Nullable`1 instance.
func (t *Type) NullableElementType() *Type {
	if !t.IsNullable() {
		return nil
	}
	return t.GenericArguments[0]
}

// IsValueType reports whether t is a value type or an enum.
func (t *Type) IsValueType() bool {
	return t.Category == CategoryValueType || t.Category == CategoryEnum
}

// GenericParameterCount returns the number of generic arguments t owns,
// counting those inherited from enclosing types.
func (t *Type) GenericParameterCount() int {
	if n := len(t.GenericArguments); n > 0 {
		return n
	}
	if t.Definition != nil {
		return t.Definition.GenericParameterCount()
	}
	return t.Arity
}

// RequiredModifiers returns the modreqs attached to t, in order.
func (t *Type) RequiredModifiers() []CustomModifier {
	var mods []CustomModifier
	for _, m := range t.Modifiers {
		if m.Required {
			mods = append(mods, m)
		}
	}
	return mods
}

// FullName returns the namespace-qualified name, with nested levels joined by '+'.
// Composite signatures render their suffix in metadata syntax.
func (t *Type) FullName() string {
	if t == nil {
		return ""
	}
	switch t.Kind {
	case KindSZArray:
		return t.ElementType.FullName() + "[]"
	case KindMDArray:
		if t.Rank <= 1 {
			return t.ElementType.FullName() + "[*]"
		}
		return t.ElementType.FullName() + "[" + strings.Repeat(",", t.Rank-1) + "]"
	case KindPointer:
		return t.ElementType.FullName() + "*"
	case KindByRef:
		return t.ElementType.FullName() + "&"
	case KindTypeGenericParameter, KindMethodGenericParameter:
		return t.Name
	case KindFunctionPointer:
		return "method"
	}
	if t.DeclaringType != nil {
		return t.DeclaringType.FullName() + "+" + t.Name
	}
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

// String implements fmt.Stringer.
func (t *Type) String() string { return t.FullName() }

// RemoveGenericTick strips a trailing generic arity suffix ("List`1" -> "List").
// Names whose suffix after the tick is not a number are returned unchanged.
func RemoveGenericTick(name string) string {
	i := strings.LastIndexByte(name, '`')
	if i < 0 || i == len(name)-1 {
		return name
	}
	if _, err := strconv.ParseUint(name[i+1:], 10, 32); err != nil {
		return name
	}
	return name[:i]
}
