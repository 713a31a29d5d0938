package format

import (
	"testing"

	"golang.org/x/text/language"

	"github.com/sigfmt/sigfmt/sig"
	"github.com/sigfmt/sigfmt/sink"
	"github.com/sigfmt/sigfmt/typeinfo"
	"github.com/sigfmt/sigfmt/value"
)

const testOptions = IntrinsicTypeKeywords | UseDecimal

func render(t *testing.T, d *Dialect, opts Options, typ *sig.Type, v value.Value, p typeinfo.Provider) string {
	t.Helper()
	rec := sink.NewRecorder()
	if err := New(rec, d, opts, language.Und).Format(typ, v, p); err != nil {
		t.Fatalf("Format(%v) error: %v", typ, err)
	}
	return rec.String()
}

func renderTokens(t *testing.T, d *Dialect, opts Options, typ *sig.Type) []sink.Token {
	t.Helper()
	rec := sink.NewRecorder()
	if err := New(rec, d, opts, language.Und).Format(typ, nil, nil); err != nil {
		t.Fatalf("Format(%v) error: %v", typ, err)
	}
	return rec.Tokens()
}

type renderCase struct {
	name   string
	typ    *sig.Type
	opts   Options
	csharp string
	vb     string
}

func runRenderCases(t *testing.T, tests []renderCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, CSharp, tt.opts, tt.typ, nil, nil); got != tt.csharp {
				t.Errorf("csharp = %q, want %q", got, tt.csharp)
			}
			if got := render(t, VisualBasic, tt.opts, tt.typ, nil, nil); got != tt.vb {
				t.Errorf("vb = %q, want %q", got, tt.vb)
			}
		})
	}
}
