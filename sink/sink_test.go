package sink

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/google/go-cmp/cmp"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.Write(ColorKeyword, "int")
	r.Write(ColorText, "")
	r.Write(ColorPunctuation, "[]")

	want := []Token{{ColorKeyword, "int"}, {ColorPunctuation, "[]"}}
	if diff := cmp.Diff(want, r.Tokens()); diff != "" {
		t.Errorf("Tokens() mismatch (-want +got):\n%s", diff)
	}
	if r.Len() != 2 || r.String() != "int[]" {
		t.Errorf("Len() = %d, String() = %q", r.Len(), r.String())
	}

	tokens := r.Tokens()
	tokens[0].Text = "changed"
	if r.String() != "int[]" {
		t.Error("Tokens() returned the internal slice")
	}

	r.Reset()
	if r.Len() != 0 {
		t.Error("Reset did not clear the recorder")
	}
}

func TestRecorder_Concurrent(t *testing.T) {
	r := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Write(ColorText, "x")
			}
		}()
	}
	wg.Wait()
	if r.Len() != 800 {
		t.Errorf("Len() = %d, want 800", r.Len())
	}
}

func TestReplay(t *testing.T) {
	tokens := []Token{{ColorNamespace, "System"}, {ColorOperator, "."}, {ColorValueType, "Guid"}}
	var got []Token
	Replay(WriterFunc(func(c Color, s string) { got = append(got, Token{c, s}) }), tokens)
	if diff := cmp.Diff(tokens, got); diff != "" {
		t.Errorf("Replay mismatch (-want +got):\n%s", diff)
	}
	Replay(Discard, tokens)
}

func TestColorString(t *testing.T) {
	if ColorInstanceField.String() != "InstanceField" {
		t.Errorf("got %q", ColorInstanceField.String())
	}
	if Color(-1).String() != "Unknown" || Color(1000).String() != "Unknown" {
		t.Error("out of range colors should be Unknown")
	}
}

func TestChromaType(t *testing.T) {
	for c := ColorText; c <= ColorInstanceField; c++ {
		if _, ok := chromaTypes[c]; !ok {
			t.Errorf("%s has no chroma mapping", c)
		}
	}
	if ChromaType(Color(1000)) != chroma.Text {
		t.Error("unknown colors should map to chroma.Text")
	}
}

func TestHighlight(t *testing.T) {
	tokens := []Token{{ColorKeyword, "int"}, {ColorPunctuation, "[]"}}

	var buf bytes.Buffer
	if err := Highlight(&buf, tokens, "noop", "monokai"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "int[]" {
		t.Errorf("noop output = %q", buf.String())
	}

	buf.Reset()
	if err := Highlight(&buf, tokens, "terminal256", "monokai"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "\x1b[") || !strings.Contains(buf.String(), "int") {
		t.Errorf("terminal output = %q", buf.String())
	}

	if err := Highlight(&buf, tokens, "nope", "monokai"); err == nil || !strings.Contains(err.Error(), "unknown formatter") {
		t.Errorf("err = %v", err)
	}
	if err := Highlight(&buf, tokens, "noop", "nope"); err == nil || !strings.Contains(err.Error(), "unknown style") {
		t.Errorf("err = %v", err)
	}
}
