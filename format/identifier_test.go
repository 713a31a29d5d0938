package format

import (
	"strings"
	"testing"
)

func TestEscapeIdentifier(t *testing.T) {
	long := strings.Repeat("a", 600)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "<<EMPTY_NAME>>"},
		{"plain", "List", "List"},
		{"unicode letters", "café", "café"},
		{"compiler generated", "<>c__DisplayClass0_0", "<>c__DisplayClass0_0"},
		{"newline", "a\nb", `a\u000Ab`},
		{"space", "a b", `a\u0020b`},
		{"format character", "a\u200bb", `a\u200Bb`},
		{"line separator", "a\u2028", `a\u2028`},
		{"private use", "x\ue000", `x\uE000`},
		{"supplementary private use", "x\U000F0000", `x\U000F0000`},
		{"invalid utf-8", "a\xffb", `a\uFFFDb`},
		{"truncated", long, strings.Repeat("a", maxIdentifierLen) + "…"},
		{"exact limit", long[:maxIdentifierLen], long[:maxIdentifierLen]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeIdentifier(tt.input); got != tt.want {
				t.Errorf("EscapeIdentifier(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatIdentifier(t *testing.T) {
	tests := []struct {
		dialect *Dialect
		input   string
		want    string
	}{
		{CSharp, "class", "@class"},
		{CSharp, "Class", "Class"},
		{CSharp, "int", "@int"},
		{CSharp, "dynamic", "dynamic"},
		{CSharp, "MyType", "MyType"},
		{VisualBasic, "Integer", "[Integer]"},
		{VisualBasic, "integer", "[integer]"},
		{VisualBasic, "INTEGER", "[INTEGER]"},
		{VisualBasic, "#If", "[#If]"},
		{VisualBasic, "class", "[class]"},
		{VisualBasic, "MyType", "MyType"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect.Name+"/"+tt.input, func(t *testing.T) {
			if got := tt.dialect.FormatIdentifier(tt.input); got != tt.want {
				t.Errorf("FormatIdentifier(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestReservedWords(t *testing.T) {
	for _, d := range Dialects {
		t.Run(d.Name, func(t *testing.T) {
			words := d.ReservedWords()
			if len(words) == 0 {
				t.Fatal("no reserved words")
			}
			for _, w := range words {
				if !d.IsReserved(w) {
					t.Errorf("IsReserved(%q) = false", w)
				}
			}
		})
	}
	if CSharp.IsReserved("Int") {
		t.Error("C# reserved words must be case-sensitive")
	}
	if !VisualBasic.IsReserved("sTrInG") {
		t.Error("Visual Basic reserved words must be case-insensitive")
	}
}

func TestLookupDialect(t *testing.T) {
	tests := []struct {
		name string
		want *Dialect
	}{
		{"csharp", CSharp},
		{"CSharp", CSharp},
		{"vb", VisualBasic},
	}
	for _, tt := range tests {
		if got, ok := LookupDialect(tt.name); !ok || got != tt.want {
			t.Errorf("LookupDialect(%q) = %v, %v", tt.name, got, ok)
		}
	}
	if _, ok := LookupDialect("fsharp"); ok {
		t.Error("LookupDialect(fsharp) succeeded")
	}
}
