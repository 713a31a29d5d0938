package sigfmt

import (
	"encoding/json"
	"io"

	"github.com/sigfmt/sigfmt/sink"
)

// response is the envelope for successful responses: {"result": ...}.
type response struct {
	Result any `json:"result"`
}

// errorResponse is the envelope for failures: {"error": {...}}.
type errorResponse struct {
	Error *Error `json:"error"`
}

// Rendering is one formatted type as returned by the HTTP handler.
type Rendering struct {
	Text   string     `json:"text"`
	Tokens []TokenRun `json:"tokens,omitempty"`
}

// TokenRun is a colored run of text.
type TokenRun struct {
	Color string `json:"color"`
	Text  string `json:"text"`
}

func newRendering(tokens []sink.Token) Rendering {
	r := Rendering{Text: sink.Join(tokens), Tokens: make([]TokenRun, len(tokens))}
	for i, t := range tokens {
		r.Tokens[i] = TokenRun{Color: t.Color.String(), Text: t.Text}
	}
	return r
}

func encodeResponse(w io.Writer, result any) error {
	return json.NewEncoder(w).Encode(response{Result: result})
}

func encodeErrorResponse(w io.Writer, err *Error) error {
	return json.NewEncoder(w).Encode(errorResponse{Error: err})
}
