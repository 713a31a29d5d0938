package sig

import (
	"encoding/json"
	"errors"
	"fmt"
)

// JSON serialization support for signature trees.
// Every node carries a "kind" field for type discrimination.

// maxJSONDepth bounds encoding and decoding of degenerate or cyclic trees.
const maxJSONDepth = 1000

// ErrTooDeep is returned when a tree exceeds the JSON nesting limit.
var ErrTooDeep = errors.New("signature tree too deep")

type wireModifier struct {
	Type     *wireType `json:"type"`
	Required bool      `json:"required,omitempty"`
}

type wireMethod struct {
	CallingConvention CallingConvention `json:"callingConvention,omitempty"`
	ReturnType        *wireType         `json:"returnType"`
	Parameters        []*wireType       `json:"parameters,omitempty"`
	VarArgParameters  []*wireType       `json:"varArgParameters,omitempty"`
}

type wireType struct {
	Kind             string         `json:"kind"`
	Namespace        string         `json:"namespace,omitempty"`
	Name             string         `json:"name,omitempty"`
	Token            uint32         `json:"token,omitempty"`
	Category         string         `json:"category,omitempty"`
	Static           bool           `json:"static,omitempty"`
	Sealed           bool           `json:"sealed,omitempty"`
	Arity            int            `json:"arity,omitempty"`
	DeclaringType    *wireType      `json:"declaringType,omitempty"`
	GenericArguments []*wireType    `json:"genericArguments,omitempty"`
	ElementType      *wireType      `json:"elementType,omitempty"`
	Rank             int            `json:"rank,omitempty"`
	LowerBounds      []int32        `json:"lowerBounds,omitempty"`
	Sizes            []int32        `json:"sizes,omitempty"`
	Method           *wireMethod    `json:"method,omitempty"`
	Modifiers        []wireModifier `json:"modifiers,omitempty"`
}

// MarshalJSON implements json.Marshaler for Type.
func (t *Type) MarshalJSON() ([]byte, error) {
	w, err := toWire(t, 0)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func toWire(t *Type, depth int) (*wireType, error) {
	if t == nil {
		return nil, nil
	}
	if depth > maxJSONDepth {
		return nil, ErrTooDeep
	}
	w := &wireType{
		Kind:        t.Kind.jsonName(),
		Namespace:   t.Namespace,
		Name:        t.Name,
		Token:       t.Token,
		Static:      t.Static,
		Sealed:      t.Sealed,
		Arity:       t.Arity,
		Rank:        t.Rank,
		LowerBounds: t.LowerBounds,
		Sizes:       t.Sizes,
	}
	if t.Kind == KindType || t.Kind == KindGenericInstance {
		w.Category = t.Category.String()
	}
	if t.Kind == KindSZArray {
		w.Rank = 0
	}
	var err error
	if w.DeclaringType, err = toWire(t.DeclaringType, depth+1); err != nil {
		return nil, err
	}
	if w.ElementType, err = toWire(t.ElementType, depth+1); err != nil {
		return nil, err
	}
	if w.GenericArguments, err = toWireList(t.GenericArguments, depth+1); err != nil {
		return nil, err
	}
	if m := t.Method; m != nil {
		w.Method = &wireMethod{CallingConvention: m.CallingConvention}
		if w.Method.ReturnType, err = toWire(m.ReturnType, depth+1); err != nil {
			return nil, err
		}
		if w.Method.Parameters, err = toWireList(m.Parameters, depth+1); err != nil {
			return nil, err
		}
		if w.Method.VarArgParameters, err = toWireList(m.VarArgParameters, depth+1); err != nil {
			return nil, err
		}
	}
	for _, mod := range t.Modifiers {
		mt, err := toWire(mod.Type, depth+1)
		if err != nil {
			return nil, err
		}
		w.Modifiers = append(w.Modifiers, wireModifier{Type: mt, Required: mod.Required})
	}
	return w, nil
}

func toWireList(ts []*Type, depth int) ([]*wireType, error) {
	if len(ts) == 0 {
		return nil, nil
	}
	out := make([]*wireType, len(ts))
	for i, t := range ts {
		w, err := toWire(t, depth)
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

// Decode parses a JSON signature tree. Unnested System types named after a
// well-known primitive resolve to the domain's canonical instances.
func (d *Domain) Decode(data []byte) (*Type, error) {
	var w wireType
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("decode signature: %w", err)
	}
	return d.fromWire(&w, "$", 0)
}

func (d *Domain) fromWire(w *wireType, path string, depth int) (*Type, error) {
	if w == nil {
		return nil, fmt.Errorf("%s: missing type", path)
	}
	if depth > maxJSONDepth {
		return nil, fmt.Errorf("%s: %w", path, ErrTooDeep)
	}
	kind, ok := parseKind(w.Kind)
	if !ok {
		return nil, fmt.Errorf("%s: unknown kind %q", path, w.Kind)
	}

	switch kind {
	case KindSZArray, KindMDArray, KindPointer, KindByRef:
		elem, err := d.fromWire(w.ElementType, path+".elementType", depth+1)
		if err != nil {
			return nil, err
		}
		t := &Type{Kind: kind, ElementType: elem, Domain: d}
		switch kind {
		case KindSZArray:
			t.Rank = 1
		case KindMDArray:
			t.Rank, t.LowerBounds, t.Sizes = w.Rank, w.LowerBounds, w.Sizes
		}
		return d.withWireModifiers(t, w, path, depth)

	case KindTypeGenericParameter, KindMethodGenericParameter:
		t := &Type{Kind: kind, Name: w.Name, Domain: d}
		return d.withWireModifiers(t, w, path, depth)

	case KindFunctionPointer:
		if w.Method == nil {
			return nil, fmt.Errorf("%s: function pointer without method", path)
		}
		ret, err := d.fromWire(w.Method.ReturnType, path+".method.returnType", depth+1)
		if err != nil {
			return nil, err
		}
		params, err := d.fromWireList(w.Method.Parameters, path+".method.parameters", depth+1)
		if err != nil {
			return nil, err
		}
		varargs, err := d.fromWireList(w.Method.VarArgParameters, path+".method.varArgParameters", depth+1)
		if err != nil {
			return nil, err
		}
		t := &Type{
			Kind: kind,
			Method: &MethodSignature{
				CallingConvention: w.Method.CallingConvention,
				ReturnType:        ret,
				Parameters:        params,
				VarArgParameters:  varargs,
			},
			Domain: d,
		}
		return d.withWireModifiers(t, w, path, depth)
	}

	// KindType or KindGenericInstance
	if w.Name == "" {
		return nil, fmt.Errorf("%s: %s without a name", path, w.Kind)
	}
	cat := CategoryClass
	if w.Category != "" {
		if cat, ok = parseCategory(w.Category); !ok {
			return nil, fmt.Errorf("%s: unknown category %q", path, w.Category)
		}
	}
	var declaring *Type
	if w.DeclaringType != nil {
		var err error
		if declaring, err = d.fromWire(w.DeclaringType, path+".declaringType", depth+1); err != nil {
			return nil, err
		}
	}

	def := &Type{
		Kind:          KindType,
		Namespace:     w.Namespace,
		Name:          w.Name,
		Token:         w.Token,
		Category:      cat,
		Static:        w.Static,
		Sealed:        w.Sealed,
		DeclaringType: declaring,
		Arity:         w.Arity,
		Domain:        d,
	}
	if def.Arity == 0 {
		def.Arity = tickArity(w.Name)
		if declaring != nil {
			def.Arity += declaring.GenericParameterCount()
		}
	}
	if declaring == nil && w.Namespace == "System" && kind == KindType {
		if wk, ok := lookupWellKnown(w.Name); ok {
			if len(w.Modifiers) == 0 {
				return d.WellKnown(wk), nil
			}
			return d.withWireModifiers(WithModifiers(d.WellKnown(wk)), w, path, depth)
		}
	}

	if kind == KindType {
		return d.withWireModifiers(def, w, path, depth)
	}
	args, err := d.fromWireList(w.GenericArguments, path+".genericArguments", depth+1)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%s: generic instance without arguments", path)
	}
	return d.withWireModifiers(Instantiate(def, args...), w, path, depth)
}

func (d *Domain) fromWireList(ws []*wireType, path string, depth int) ([]*Type, error) {
	if len(ws) == 0 {
		return nil, nil
	}
	out := make([]*Type, len(ws))
	for i, w := range ws {
		t, err := d.fromWire(w, fmt.Sprintf("%s[%d]", path, i), depth)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

func (d *Domain) withWireModifiers(t *Type, w *wireType, path string, depth int) (*Type, error) {
	for i, m := range w.Modifiers {
		mt, err := d.fromWire(m.Type, fmt.Sprintf("%s.modifiers[%d]", path, i), depth+1)
		if err != nil {
			return nil, err
		}
		t.Modifiers = append(t.Modifiers, CustomModifier{Type: mt, Required: m.Required})
	}
	return t, nil
}
