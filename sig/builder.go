package sig

import (
	"strconv"
	"strings"
)

// Convenience constructors for signature trees.

// Define returns the unnested type namespace.name, creating it on first use.
// A name ending in a generic tick (List`1) gets a matching Arity.
func (d *Domain) Define(namespace, name string, category Category) *Type {
	full := name
	if namespace != "" {
		full = namespace + "." + name
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.defined[full]; ok {
		return t
	}
	t := &Type{
		Kind:      KindType,
		Namespace: namespace,
		Name:      name,
		Category:  category,
		Arity:     tickArity(name),
		Domain:    d,
	}
	d.defined[full] = t
	return t
}

// Nested returns a new type nested inside outer. Its Arity counts the
// generic parameters inherited from outer plus its own tick arity.
func Nested(outer *Type, name string, category Category) *Type {
	return &Type{
		Kind:          KindType,
		Name:          name,
		Category:      category,
		DeclaringType: outer,
		Arity:         outer.GenericParameterCount() + tickArity(name),
		Domain:        outer.Domain,
	}
}

// Instantiate constructs def with the given flattened generic arguments.
func Instantiate(def *Type, args ...*Type) *Type {
	return &Type{
		Kind:             KindGenericInstance,
		Namespace:        def.Namespace,
		Name:             def.Name,
		Token:            def.Token,
		Category:         def.Category,
		Static:           def.Static,
		Sealed:           def.Sealed,
		DeclaringType:    def.DeclaringType,
		Arity:            def.Arity,
		Definition:       def,
		GenericArguments: args,
		Domain:           def.Domain,
	}
}

// Nullable returns System.Nullable<elem>.
func (d *Domain) Nullable(elem *Type) *Type {
	def := d.Define("System", "Nullable`1", CategoryValueType)
	return Instantiate(def, elem)
}

// ValueTuple returns System.ValueTuple<...> of the given elements, nesting the
// eighth and later elements in the TRest slot.
func (d *Domain) ValueTuple(elems ...*Type) *Type {
	if len(elems) == 0 {
		return d.Define("System", "ValueTuple", CategoryValueType)
	}
	if len(elems) > 7 {
		rest := d.ValueTuple(elems[7:]...)
		def := d.Define("System", "ValueTuple`8", CategoryValueType)
		return Instantiate(def, append(append([]*Type(nil), elems[:7]...), rest)...)
	}
	def := d.Define("System", "ValueTuple`"+strconv.Itoa(len(elems)), CategoryValueType)
	return Instantiate(def, elems...)
}

// SZArrayOf returns elem[].
func SZArrayOf(elem *Type) *Type {
	return &Type{Kind: KindSZArray, ElementType: elem, Rank: 1, Domain: elem.Domain}
}

// MDArrayOf returns a general array of elem. lowerBounds and sizes may be nil.
func MDArrayOf(elem *Type, rank int, lowerBounds, sizes []int32) *Type {
	return &Type{
		Kind:        KindMDArray,
		ElementType: elem,
		Rank:        rank,
		LowerBounds: lowerBounds,
		Sizes:       sizes,
		Domain:      elem.Domain,
	}
}

// PointerTo returns elem*.
func PointerTo(elem *Type) *Type {
	return &Type{Kind: KindPointer, ElementType: elem, Domain: elem.Domain}
}

// ByRefOf returns a managed reference to elem.
func ByRefOf(elem *Type) *Type {
	return &Type{Kind: KindByRef, ElementType: elem, Domain: elem.Domain}
}

// TypeParam returns a type-level generic parameter.
func TypeParam(name string) *Type {
	return &Type{Kind: KindTypeGenericParameter, Name: name}
}

// MethodParam returns a method-level generic parameter.
func MethodParam(name string) *Type {
	return &Type{Kind: KindMethodGenericParameter, Name: name}
}

// FunctionPointer returns a function pointer type with the given signature.
func FunctionPointer(cc CallingConvention, ret *Type, params ...*Type) *Type {
	return &Type{
		Kind: KindFunctionPointer,
		Method: &MethodSignature{
			CallingConvention: cc,
			ReturnType:        ret,
			Parameters:        params,
		},
		Domain: ret.Domain,
	}
}

// WithModifiers returns a shallow copy of t carrying mods. The copy still
// compares equal to t's canonical instance in Domain.Is.
func WithModifiers(t *Type, mods ...CustomModifier) *Type {
	c := *t
	c.base = t.canonical()
	c.Modifiers = append(append([]CustomModifier(nil), t.Modifiers...), mods...)
	return &c
}

// ModReq returns a required custom modifier of type t.
func ModReq(t *Type) CustomModifier { return CustomModifier{Type: t, Required: true} }

// ModOpt returns an optional custom modifier of type t.
func ModOpt(t *Type) CustomModifier { return CustomModifier{Type: t} }

func tickArity(name string) int {
	i := strings.LastIndexByte(name, '`')
	if i < 0 {
		return 0
	}
	n, err := strconv.Atoi(name[i+1:])
	if err != nil || n < 0 {
		return 0
	}
	return n
}
