package format

import (
	"testing"

	"github.com/sigfmt/sigfmt/sig"
	"github.com/sigfmt/sigfmt/typeinfo"
)

func TestFormatKeywords(t *testing.T) {
	d := sig.NewDomain()

	for w, kw := range csharpTypeKeywords {
		t.Run("csharp/"+w.String(), func(t *testing.T) {
			if got := render(t, CSharp, IntrinsicTypeKeywords|Namespaces, d.WellKnown(w), nil, nil); got != kw {
				t.Errorf("got %q, want %q", got, kw)
			}
		})
	}
	for w, kw := range visualBasicTypeKeywords {
		t.Run("vb/"+w.String(), func(t *testing.T) {
			if got := render(t, VisualBasic, IntrinsicTypeKeywords|Namespaces, d.WellKnown(w), nil, nil); got != kw {
				t.Errorf("got %q, want %q", got, kw)
			}
		})
	}

	runRenderCases(t, []renderCase{
		{"keywords disabled", d.Int32(), Namespaces, "System.Int32", "System.Int32"},
		{"keywords and namespaces disabled", d.StringType(), 0, "String", "String"},
		{"date", d.DateTime(), IntrinsicTypeKeywords | Namespaces, "System.DateTime", "Date"},
		{"void", d.Void(), IntrinsicTypeKeywords | Namespaces, "void", "System.Void"},
		{"native int without provider", d.IntPtr(), IntrinsicTypeKeywords | Namespaces, "System.IntPtr", "System.IntPtr"},
		{
			name:   "modified primitive",
			typ:    sig.WithModifiers(d.Int32(), sig.ModOpt(d.Define("System.Runtime.CompilerServices", "IsConst", sig.CategoryClass))),
			opts:   IntrinsicTypeKeywords,
			csharp: "int",
			vb:     "Integer",
		},
		{
			name:   "lookalike is not the primitive",
			typ:    &sig.Type{Kind: sig.KindType, Namespace: "System", Name: "Int32", Category: sig.CategoryValueType, Domain: d},
			opts:   IntrinsicTypeKeywords | Namespaces,
			csharp: "System.Int32",
			vb:     "System.Int32",
		},
		{
			name:   "primitive of another domain",
			typ:    sig.NewDomain().Int32(),
			opts:   IntrinsicTypeKeywords,
			csharp: "int",
			vb:     "Integer",
		},
	})
}

func TestFormatNamedTypes(t *testing.T) {
	d := sig.NewDomain()
	list := d.Define("System.Collections.Generic", "List`1", sig.CategoryClass)
	dict := d.Define("System.Collections.Generic", "Dictionary`2", sig.CategoryClass)
	outer := d.Define("N", "Outer`1", sig.CategoryClass)
	inner := sig.Nested(outer, "Inner`1", sig.CategoryClass)
	plainNested := sig.Nested(outer, "Node", sig.CategoryClass)
	reserved := d.Define("event", "class", sig.CategoryClass)
	notTick := d.Define("", "Foo`bar", sig.CategoryClass)

	runRenderCases(t, []renderCase{
		{"generic", sig.Instantiate(list, d.Int32()), testOptions | Namespaces, "System.Collections.Generic.List<int>", "System.Collections.Generic.List(Of Integer)"},
		{"two arguments", sig.Instantiate(dict, d.StringType(), d.Int32()), testOptions, "Dictionary<string, int>", "Dictionary(Of String, Integer)"},
		{"nested generic", sig.Instantiate(inner, d.Int32(), d.StringType()), testOptions | Namespaces, "N.Outer<int>.Inner<string>", "N.Outer(Of Integer).Inner(Of String)"},
		{"nested without namespaces", sig.Instantiate(inner, d.Int32(), d.StringType()), testOptions, "Outer<int>.Inner<string>", "Outer(Of Integer).Inner(Of String)"},
		{"nested in generic", sig.Instantiate(plainNested, d.Int32()), testOptions, "Outer<int>.Node", "Outer(Of Integer).Node"},
		{"open nested", inner, testOptions, "Outer.Inner", "Outer.Inner"},
		{"generic of generic", sig.Instantiate(list, sig.Instantiate(list, sig.TypeParam("T"))), testOptions, "List<List<T>>", "List(Of List(Of T))"},
		{"reserved names", reserved, Namespaces, "@event.@class", "[event].[class]"},
		{"tick without arity", notTick, 0, "Foo`bar", "Foo`bar"},
		{"nullable", d.Nullable(d.Int32()), testOptions, "int?", "Integer?"},
		{"nullable struct", d.Nullable(d.Define("N", "Point", sig.CategoryValueType)), testOptions | Namespaces, "N.Point?", "N.Point?"},
		{"array of nullable", sig.SZArrayOf(d.Nullable(d.Double())), testOptions, "double?[]", "Double?()"},
	})
}

func TestFormatTuples(t *testing.T) {
	d := sig.NewDomain()
	i32 := d.Int32()
	pair := d.ValueTuple(i32, d.StringType())
	nine := d.ValueTuple(i32, i32, i32, i32, i32, i32, i32, i32, i32)
	dict := d.Define("System.Collections.Generic", "Dictionary`2", sig.CategoryClass)
	triple := d.Define("System", "ValueTuple`3", sig.CategoryValueType)
	malformed := sig.Instantiate(triple, i32, i32, i32, i32, i32, i32, i32, i32, i32)

	tests := []struct {
		name   string
		typ    *sig.Type
		names  []string
		csharp string
		vb     string
	}{
		{"unnamed", pair, nil, "(int, string)", "(Integer, String)"},
		{"named", pair, []string{"x", "y"}, "(int x, string y)", "(x As Integer, y As String)"},
		{"partially named", pair, []string{"", "y"}, "(int, string y)", "(Integer, y As String)"},
		{"single element", d.ValueTuple(i32), []string{"x"}, "ValueTuple<int>", "ValueTuple(Of Integer)"},
		{
			name:   "continuation",
			typ:    nine,
			csharp: "(int, int, int, int, int, int, int, int, int)",
			vb:     "(Integer, Integer, Integer, Integer, Integer, Integer, Integer, Integer, Integer)",
		},
		{
			name:   "continuation names",
			typ:    nine,
			names:  []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
			csharp: "(int a, int b, int c, int d, int e, int f, int g, int h, int i)",
			vb:     "(a As Integer, b As Integer, c As Integer, d As Integer, e As Integer, f As Integer, g As Integer, h As Integer, i As Integer)",
		},
		{
			name:   "sibling tuples",
			typ:    sig.Instantiate(dict, d.ValueTuple(i32, i32), d.ValueTuple(i32, i32)),
			names:  []string{"a", "b", "c", "d"},
			csharp: "Dictionary<(int a, int b), (int c, int d)>",
			vb:     "Dictionary(Of (a As Integer, b As Integer), (c As Integer, d As Integer))",
		},
		{"too many arguments", malformed, nil, "(???)", "(???)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p typeinfo.Provider
			if tt.names != nil {
				p = typeinfo.NewFlags(nil, nil, tt.names)
			}
			if got := render(t, CSharp, testOptions, tt.typ, nil, p); got != tt.csharp {
				t.Errorf("csharp = %q, want %q", got, tt.csharp)
			}
			if got := render(t, VisualBasic, testOptions, tt.typ, nil, p); got != tt.vb {
				t.Errorf("vb = %q, want %q", got, tt.vb)
			}
		})
	}
}

func TestFormatDynamicAndNativeIntegers(t *testing.T) {
	d := sig.NewDomain()
	list := d.Define("System.Collections.Generic", "List`1", sig.CategoryClass)
	dict := d.Define("System.Collections.Generic", "Dictionary`2", sig.CategoryClass)

	tests := []struct {
		name   string
		typ    *sig.Type
		opts   Options
		flags  *typeinfo.Flags
		csharp string
		vb     string
	}{
		{"dynamic", d.Object(), testOptions, typeinfo.NewFlags([]bool{}, nil, nil), "dynamic", "Object"},
		{"dynamic needs keywords", d.Object(), 0, typeinfo.NewFlags([]bool{true}, nil, nil), "Object", "Object"},
		{"dynamic argument", sig.Instantiate(list, d.Object()), testOptions, typeinfo.NewFlags([]bool{false, true}, nil, nil), "List<dynamic>", "List(Of Object)"},
		{"dynamic element", sig.SZArrayOf(d.Object()), testOptions, typeinfo.NewFlags([]bool{false, true}, nil, nil), "dynamic[]", "Object()"},
		{"array slot is not the element", sig.SZArrayOf(d.Object()), testOptions, typeinfo.NewFlags([]bool{true}, nil, nil), "object[]", "Object()"},
		{
			name:   "dynamic in tuple",
			typ:    d.ValueTuple(d.Object(), d.Object()),
			opts:   testOptions,
			flags:  typeinfo.NewFlags([]bool{false, false, true}, nil, nil),
			csharp: "(object, dynamic)",
			vb:     "(Object, Object)",
		},
		{"nint", d.IntPtr(), testOptions, typeinfo.NewFlags(nil, []bool{}, nil), "nint", "IntPtr"},
		{"nuint", d.UIntPtr(), 0, typeinfo.NewFlags(nil, []bool{}, nil), "nuint", "UIntPtr"},
		{
			name:   "native int positions",
			typ:    sig.Instantiate(dict, d.IntPtr(), d.UIntPtr()),
			opts:   testOptions,
			flags:  typeinfo.NewFlags(nil, []bool{false, true}, nil),
			csharp: "Dictionary<IntPtr, nuint>",
			vb:     "Dictionary(Of IntPtr, UIntPtr)",
		},
		{
			name:   "native int positions skip other types",
			typ:    sig.Instantiate(dict, d.Int32(), d.IntPtr()),
			opts:   testOptions,
			flags:  typeinfo.NewFlags(nil, []bool{true, false}, nil),
			csharp: "Dictionary<int, nint>",
			vb:     "Dictionary(Of Integer, IntPtr)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, CSharp, tt.opts, tt.typ, nil, tt.flags); got != tt.csharp {
				t.Errorf("csharp = %q, want %q", got, tt.csharp)
			}
			if got := render(t, VisualBasic, tt.opts, tt.typ, nil, tt.flags); got != tt.vb {
				t.Errorf("vb = %q, want %q", got, tt.vb)
			}
		})
	}
}
