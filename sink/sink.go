// Package sink provides destinations for formatted (text, color) tokens.
package sink

import (
	"strings"
	"sync"
)

// Writer receives formatted tokens in emission order.
type Writer interface {
	Write(color Color, text string)
}

// Token is one emitted run of text.
type Token struct {
	Color Color
	Text  string
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(color Color, text string)

// Write implements Writer.
func (f WriterFunc) Write(color Color, text string) { f(color, text) }

// Discard drops every token.
var Discard Writer = discard{}

type discard struct{}

func (discard) Write(Color, string) {}

// Recorder stores tokens in memory.
// All operations are thread-safe.
type Recorder struct {
	mu     sync.RWMutex
	tokens []Token
}

// NewRecorder creates a new Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Write appends a token. Empty text is dropped.
func (r *Recorder) Write(color Color, text string) {
	if text == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens = append(r.tokens, Token{Color: color, Text: text})
}

// Tokens returns a copy of the recorded tokens.
func (r *Recorder) Tokens() []Token {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Token(nil), r.tokens...)
}

// Len returns the number of recorded tokens.
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}

// String returns the concatenated text of all tokens.
func (r *Recorder) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Join(r.tokens)
}

// Reset clears all recorded tokens.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens = nil
}

// Join concatenates the text of tokens.
func Join(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}

// Replay writes tokens to w in order.
func Replay(w Writer, tokens []Token) {
	for _, t := range tokens {
		w.Write(t.Color, t.Text)
	}
}
