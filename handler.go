package sigfmt

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/sigfmt/sigfmt/format"
	"github.com/sigfmt/sigfmt/sig"
	"github.com/sigfmt/sigfmt/sink"
)

// DefaultMaxBodySize bounds the size of a /format request body.
const DefaultMaxBodySize = 1 << 20

// Handler serves type formatting over HTTP:
//
//	POST /format?dialect=vb&tokens=true    body: a Document or an array of them
//	GET  /keywords?dialect=vb&types=true
//
// Query parameters override the configuration of the Handler's Printer for a
// single request. Responses are wrapped as {"result": ...} or {"error": ...}.
type Handler struct {
	printer     *Printer
	logger      *slog.Logger
	maxBodySize int64
}

// NewHandler creates a Handler formatting with p.
func NewHandler(p *Printer) *Handler {
	if p == nil {
		p = CSharp()
	}
	return &Handler{
		printer:     p,
		logger:      slog.Default(),
		maxBodySize: DefaultMaxBodySize,
	}
}

// WithLogger sets the logger used for response encoding failures.
func (h *Handler) WithLogger(logger *slog.Logger) *Handler {
	if logger != nil {
		h.logger = logger
	}
	return h
}

// MaxBodySize sets the request body limit in bytes.
func (h *Handler) MaxBodySize(n int64) *Handler {
	h.maxBodySize = n
	return h
}

type keywordsQuery struct {
	Dialect string `schema:"dialect" validate:"omitempty,oneof=csharp vb"`
	Types   bool   `schema:"types"`
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var (
		method string
		serve  func(*http.Request) (any, error)
	)
	switch r.URL.Path {
	case "/format":
		method, serve = http.MethodPost, func(r *http.Request) (any, error) { return h.format(w, r) }
	case "/keywords":
		method, serve = http.MethodGet, h.keywords
	default:
		writeError(w, Errorf(CodeNotFound, "no route for %s", r.URL.Path), h.logger)
		return
	}
	if r.Method != method {
		w.Header().Set("Allow", method)
		writeError(w, Errorf(CodeMethodNotAllowed, "%s requires %s", r.URL.Path, method), h.logger)
		return
	}

	res, err := serve(r)
	if err != nil {
		writeError(w, AsError(err), h.logger)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := encodeResponse(w, res); err != nil {
		h.logger.Error("failed to encode response", slog.String("path", r.URL.Path), slog.Any("error", err))
	}
}

func (h *Handler) format(w http.ResponseWriter, r *http.Request) (any, error) {
	cfg, err := configFromQuery(h.printer.Config(), r.URL.Query())
	if err != nil {
		return nil, err
	}
	p := h.printer.WithConfig(cfg)

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodySize))
	if err != nil {
		return nil, err
	}
	jobs, err := DecodeDocuments(data, sig.NewDomain())
	if err != nil {
		// Anything DecodeDocuments rejects is a malformed request.
		if e := AsError(err); e.Code != CodeInternal {
			return nil, e
		}
		return nil, NewError(CodeInvalidArgument, err.Error())
	}

	out := make([]Rendering, 0, len(jobs))
	for i, j := range jobs {
		rec := sink.NewRecorder()
		if err := j.Run(p, rec); err != nil {
			return nil, AsError(err).WithDetail("document", i)
		}
		out = append(out, newRendering(rec.Tokens()))
	}
	return out, nil
}

func (h *Handler) keywords(r *http.Request) (any, error) {
	var q keywordsQuery
	if err := schemaDecoder.Decode(&q, r.URL.Query()); err != nil {
		return nil, Errorf(CodeInvalidArgument, "failed to decode query: %v", err)
	}
	if err := validate.Struct(&q); err != nil {
		return nil, err
	}
	d := h.printer.Config().Dialect
	if q.Dialect != "" {
		d, _ = format.LookupDialect(q.Dialect)
	}
	if !q.Types {
		return d.ReservedWords(), nil
	}
	kws := make(map[string]string)
	for wk := sig.WellKnownVoid; wk <= sig.WellKnownDateTime; wk++ {
		if kw, ok := d.TypeKeyword(wk); ok {
			kws["System."+wk.String()] = kw
		}
	}
	return kws, nil
}
