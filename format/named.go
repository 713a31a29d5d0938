package format

import (
	"strings"

	"github.com/sigfmt/sigfmt/sig"
	"github.com/sigfmt/sigfmt/sink"
	"github.com/sigfmt/sigfmt/typeinfo"
)

// formatNamed writes a plain or generic type: nullable shorthand, tuple
// syntax, or the namespace-qualified name with each nesting level's arguments.
func (f *Formatter) formatNamed(t *sig.Type, st *typeinfo.State) error {
	if t.IsNullable() {
		f.advanceDynamic(st)
		if err := f.format(t.NullableElementType(), nil, st); err != nil {
			return err
		}
		f.write(sink.ColorOperator, "?")
		return nil
	}

	if n, ok := tupleCardinality(t); ok {
		index := st.TupleNameIndex
		st.TupleNameIndex += n
		if n > 1 {
			return f.formatTuple(t, index, st)
		}
	}

	args := t.GenericArguments
	argIndex := 0

	if !t.IsNested() {
		kw, hasKeyword := f.typeKeyword(t, st)
		if hasKeyword {
			f.write(sink.ColorKeyword, kw)
		} else {
			f.writeNamespace(t.Namespace)
			f.writeTypeName(t)
		}
		return f.writeGenericArguments(t, args, &argIndex, st)
	}

	var chain []*sig.Type
	for c := t; c != nil; c = c.DeclaringType {
		chain = append(chain, c)
	}
	f.writeNamespace(chain[len(chain)-1].Namespace)
	for i := len(chain) - 1; i >= 0; i-- {
		f.writeTypeName(chain[i])
		if err := f.writeGenericArguments(chain[i], args, &argIndex, st); err != nil {
			return err
		}
		if i > 0 {
			f.write(sink.ColorOperator, ".")
		}
	}
	return nil
}

// typeKeyword returns the keyword an unnested root type is shown as.
func (f *Formatter) typeKeyword(t *sig.Type, st *typeinfo.State) (string, bool) {
	w, known := t.WellKnown()
	var kw string
	hasKeyword := false
	if known && f.opts.Has(IntrinsicTypeKeywords) {
		kw, hasKeyword = f.dialect.TypeKeyword(w)
	}
	if !f.dialect.cStyle || st.Provider == nil || !known {
		return kw, hasKeyword
	}

	switch {
	case hasKeyword && w == sig.WellKnownObject && st.IsDynamic():
		return "dynamic", true
	case w == sig.WellKnownIntPtr:
		if st.NextNativeInt() {
			return "nint", true
		}
	case w == sig.WellKnownUIntPtr:
		if st.NextNativeInt() {
			return "nuint", true
		}
	}
	return kw, hasKeyword
}

func (f *Formatter) writeNamespace(ns string) {
	if ns == "" || !f.opts.Has(Namespaces) {
		return
	}
	for _, part := range strings.Split(ns, ".") {
		f.identifier(sink.ColorNamespace, part)
		f.write(sink.ColorOperator, ".")
	}
}

func (f *Formatter) writeTypeName(t *sig.Type) {
	f.identifier(f.typeColor(t), sig.RemoveGenericTick(t.Name))
	if f.opts.Has(Tokens) {
		f.write(sink.ColorComment, "/*")
		f.write(sink.ColorComment, f.tokens.UInt32(t.Token))
		f.write(sink.ColorComment, "*/")
	}
}

func (f *Formatter) typeColor(t *sig.Type) sink.Color {
	switch {
	case t.Category == sig.CategoryDelegate:
		return sink.ColorDelegate
	case t.Category == sig.CategoryEnum:
		return sink.ColorEnum
	case t.Category == sig.CategoryValueType:
		return sink.ColorValueType
	case t.Category == sig.CategoryInterface:
		return sink.ColorInterface
	case t.Category == sig.CategoryModule && f.dialect.modules:
		return sink.ColorModule
	case t.Category == sig.CategoryModule, t.Static:
		return sink.ColorStaticType
	case t.Sealed:
		return sink.ColorSealedType
	default:
		return sink.ColorType
	}
}

// writeGenericArguments writes the arguments owned by one nesting level.
// *index is the first argument not yet consumed by an outer level.
func (f *Formatter) writeGenericArguments(level *sig.Type, args []*sig.Type, index *int, st *typeinfo.State) error {
	n := level.GenericParameterCount()
	if *index >= len(args) || *index >= n {
		return nil
	}
	f.write(sink.ColorPunctuation, f.dialect.genericOpen)
	if f.dialect.genericOf != "" {
		f.keyword(f.dialect.genericOf)
	}
	for start := *index; *index < len(args) && *index < n; *index++ {
		if *index > start {
			f.comma()
		}
		f.advanceDynamic(st)
		if err := f.format(args[*index], nil, st); err != nil {
			return err
		}
	}
	f.write(sink.ColorPunctuation, f.dialect.genericClose)
	return nil
}

// tupleArity returns n for System.ValueTuple`n, or 0.
func tupleArity(t *sig.Type) int {
	if t == nil || t.Kind != sig.KindGenericInstance || t.IsNested() || t.Namespace != "System" {
		return 0
	}
	name, ok := strings.CutPrefix(t.Name, "ValueTuple`")
	if !ok || len(name) != 1 || name[0] < '1' || name[0] > '8' {
		return 0
	}
	return int(name[0] - '0')
}

// tupleCardinality returns the total element count of a value tuple, following
// the continuation in the eighth slot.
func tupleCardinality(t *sig.Type) (int, bool) {
	total := 0
	for {
		n := tupleArity(t)
		if n == 0 {
			return 0, false
		}
		if n < maxTupleArity {
			return total + n, true
		}
		if len(t.GenericArguments) < maxTupleArity {
			return 0, false
		}
		total += maxTupleArity - 1
		t = t.GenericArguments[maxTupleArity-1]
	}
}

func (f *Formatter) formatTuple(t *sig.Type, index int, st *typeinfo.State) error {
	f.write(sink.ColorPunctuation, f.dialect.tupleOpen)
	for t != nil {
		rest, err := f.writeTupleFields(t, &index, st)
		if err != nil {
			return err
		}
		if rest != nil {
			f.comma()
			f.advanceDynamic(st)
			st.TupleNameIndex += tupleArity(rest)
		}
		t = rest
	}
	f.write(sink.ColorPunctuation, f.dialect.tupleClose)
	return nil
}

// writeTupleFields writes the first seven elements of t and returns the
// continuation tuple in the eighth slot, if any.
func (f *Formatter) writeTupleFields(t *sig.Type, index *int, st *typeinfo.State) (*sig.Type, error) {
	args := t.GenericArguments
	if len(args) > maxTupleArity {
		f.errorText()
		return nil, nil
	}
	for i := 0; i < len(args) && i < maxTupleArity-1; i++ {
		if i > 0 {
			f.comma()
		}
		name, named := st.TupleName(*index)
		*index++
		if f.dialect.cStyle {
			f.advanceDynamic(st)
			if err := f.format(args[i], nil, st); err != nil {
				return nil, err
			}
			if named {
				f.space()
				f.write(sink.ColorInstanceField, name)
			}
			continue
		}
		if named {
			f.write(sink.ColorInstanceField, name)
			f.space()
			f.keyword("As")
		}
		if err := f.format(args[i], nil, st); err != nil {
			return nil, err
		}
	}
	if len(args) == maxTupleArity {
		return args[maxTupleArity-1], nil
	}
	return nil, nil
}
