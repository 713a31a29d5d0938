// Package format renders resolved type signatures as C# or Visual Basic source
// text, one colored token at a time.
package format

import (
	"golang.org/x/text/language"

	"github.com/sigfmt/sigfmt/sig"
	"github.com/sigfmt/sigfmt/sink"
	"github.com/sigfmt/sigfmt/typeinfo"
	"github.com/sigfmt/sigfmt/value"
)

const (
	maxRecursion  = 200
	maxArrayRank  = 100
	maxTupleArity = 8

	errorText = "???"
)

// ParamContext describes the parameter a by-ref type belongs to.
type ParamContext struct {
	Param *sig.Parameter
	// ForceReadOnly prints `ref readonly` for a plain by-ref.
	ForceReadOnly bool
}

// Formatter writes type signatures to a sink.Writer.
// A Formatter is not safe for concurrent use.
type Formatter struct {
	out     sink.Writer
	dialect *Dialect
	opts    Options
	numbers Numbers
	tokens  Numbers

	depth     int
	truncated bool
}

// New returns a Formatter writing to out.
func New(out sink.Writer, d *Dialect, opts Options, locale language.Tag) *Formatter {
	return &Formatter{
		out:     out,
		dialect: d,
		opts:    opts,
		numbers: NumbersFor(d, opts, locale),
		tokens:  NewNumbers(false, opts.Has(DigitSeparators), d.hexPrefix, locale),
	}
}

// Dialect returns the dialect the formatter renders.
func (f *Formatter) Dialect() *Dialect { return f.dialect }

// Options returns the formatting options.
func (f *Formatter) Options() Options { return f.opts }

// Truncated reports whether the last call hit the nesting limit.
func (f *Formatter) Truncated() bool { return f.truncated }

// Format writes t. v is an optional live value of t used for array sizes; it
// stays owned by the caller. p may be nil.
func (f *Formatter) Format(t *sig.Type, v value.Value, p typeinfo.Provider) error {
	st := typeinfo.NewState(p)
	return f.FormatState(t, &st, v, nil)
}

// FormatState writes t continuing from st, which is advanced in place.
// pc is the parameter t is declared by, if any.
func (f *Formatter) FormatState(t *sig.Type, st *typeinfo.State, v value.Value, pc *ParamContext) error {
	if t == nil {
		return ErrNilType
	}
	f.truncated = false
	if f.dialect.cStyle && t.IsByRef() {
		f.writeDirection(pc)
		t = t.ElementType
		st.DynamicTypeIndex++
	}
	return f.format(t, v, st)
}

func (f *Formatter) writeDirection(pc *ParamContext) {
	var p *sig.Parameter
	forceReadOnly := false
	if pc != nil {
		p, forceReadOnly = pc.Param, pc.ForceReadOnly
	}
	switch {
	case p != nil && !p.IsIn && p.IsOut:
		f.keyword("out")
	case p != nil && p.IsIn && !p.IsOut && p.IsReadOnly():
		f.keyword("in")
	default:
		f.keyword("ref")
		if forceReadOnly {
			f.keyword("readonly")
		}
	}
}

func (f *Formatter) format(t *sig.Type, v value.Value, st *typeinfo.State) error {
	if t == nil {
		return ErrNilType
	}
	f.depth++
	defer func() { f.depth-- }()
	if f.depth > maxRecursion {
		f.truncated = true
		return nil
	}

	if f.dialect.cStyle {
		st.DynamicTypeIndex += len(t.Modifiers)
	}

	switch t.Kind {
	case sig.KindSZArray, sig.KindMDArray:
		return f.formatArray(t, v, st)

	case sig.KindPointer:
		f.advanceDynamic(st)
		if err := f.format(t.ElementType, nil, st); err != nil {
			return err
		}
		f.write(sink.ColorOperator, "*")
		return nil

	case sig.KindByRef:
		f.advanceDynamic(st)
		f.keyword(f.dialect.byRefKeyword)
		h := value.Deref(v)
		defer h.Release()
		return f.format(t.ElementType, h.Value(), st)

	case sig.KindTypeGenericParameter:
		f.identifier(sink.ColorTypeGenericParameter, t.Name)
		return nil

	case sig.KindMethodGenericParameter:
		f.identifier(sink.ColorMethodGenericParameter, t.Name)
		return nil

	case sig.KindType, sig.KindGenericInstance:
		return f.formatNamed(t, st)

	case sig.KindFunctionPointer:
		if f.dialect.cStyle {
			return f.formatFunctionPointer(t, st)
		}
		return f.formatFunctionPointerBasic(t, st)

	default:
		return &UnknownKindError{Kind: t.Kind}
	}
}

// skip advances st exactly as formatting t would, writing nothing.
func (f *Formatter) skip(t *sig.Type, st *typeinfo.State) error {
	out, truncated := f.out, f.truncated
	f.out = sink.Discard
	defer func() { f.out, f.truncated = out, truncated }()
	return f.format(t, nil, st)
}

func (f *Formatter) advanceDynamic(st *typeinfo.State) {
	if f.dialect.cStyle {
		st.DynamicTypeIndex++
	}
}

func (f *Formatter) write(c sink.Color, text string) {
	f.out.Write(c, text)
}

func (f *Formatter) space() { f.write(sink.ColorText, " ") }

func (f *Formatter) comma() {
	f.write(sink.ColorPunctuation, ",")
	f.space()
}

// keyword writes kw followed by a space.
func (f *Formatter) keyword(kw string) {
	f.write(sink.ColorKeyword, kw)
	f.space()
}

func (f *Formatter) identifier(c sink.Color, id string) {
	f.write(c, f.dialect.FormatIdentifier(id))
}

func (f *Formatter) errorText() { f.write(sink.ColorError, errorText) }
