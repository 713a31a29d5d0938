// Package sigfmt renders resolved .NET type signatures as C# or Visual Basic
// source text for debugger views.
//
// The fluent Printer covers the common case:
//
//	s, err := sigfmt.CSharp().WithOptions(sigfmt.DefaultOptions | sigfmt.Tokens).String(t)
//
// Lower-level building blocks live in the sig, value, typeinfo, sink and
// format packages.
package sigfmt

import (
	"io"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/sigfmt/sigfmt/format"
	"github.com/sigfmt/sigfmt/sig"
	"github.com/sigfmt/sigfmt/sink"
	"github.com/sigfmt/sigfmt/typeinfo"
	"github.com/sigfmt/sigfmt/value"
)

// Printer formats types with a fixed configuration.
// Printers are immutable; the With methods return modified copies, so a
// Printer may be shared between goroutines.
type Printer struct {
	cfg      Config
	provider typeinfo.Provider
	logger   *slog.Logger
	cache    *Cache
}

// New returns a Printer for cfg. A nil cfg.Dialect means C#.
func New(cfg Config) *Printer {
	if cfg.Dialect == nil {
		cfg.Dialect = format.CSharp
	}
	return &Printer{cfg: cfg}
}

// CSharp returns a C# Printer with DefaultOptions.
func CSharp() *Printer {
	return New(DefaultConfig())
}

// VisualBasic returns a Visual Basic Printer with DefaultOptions.
func VisualBasic() *Printer {
	cfg := DefaultConfig()
	cfg.Dialect = format.VisualBasic
	return New(cfg)
}

func (p *Printer) clone() *Printer {
	c := *p
	return &c
}

// Config returns the printer configuration.
func (p *Printer) Config() Config { return p.cfg }

// WithConfig returns a copy using cfg. A nil cfg.Dialect keeps the current one.
func (p *Printer) WithConfig(cfg Config) *Printer {
	c := p.clone()
	if cfg.Dialect == nil {
		cfg.Dialect = p.cfg.Dialect
	}
	c.cfg = cfg
	return c
}

// WithOptions returns a copy using opts.
func (p *Printer) WithOptions(opts Options) *Printer {
	c := p.clone()
	c.cfg.Options = opts
	return c
}

// WithLocale returns a copy printing decimal numbers for tag.
func (p *Printer) WithLocale(tag language.Tag) *Printer {
	c := p.clone()
	c.cfg.Locale = tag
	return c
}

// WithProvider returns a copy consulting tp for dynamic, native integer and
// tuple name annotations.
func (p *Printer) WithProvider(tp typeinfo.Provider) *Printer {
	c := p.clone()
	c.provider = tp
	return c
}

// WithLogger returns a copy that logs truncated output at debug level.
func (p *Printer) WithLogger(logger *slog.Logger) *Printer {
	c := p.clone()
	c.logger = logger
	return c
}

// WithCache returns a copy that memoizes value-less, provider-less renderings.
func (p *Printer) WithCache(cache *Cache) *Printer {
	c := p.clone()
	c.cache = cache
	return c
}

// Format writes t to w. v is an optional live value used for array sizes and
// stays owned by the caller. pc describes the parameter a by-ref t belongs to.
func (p *Printer) Format(w sink.Writer, t *sig.Type, v value.Value, pc *format.ParamContext) error {
	if v == nil && pc == nil && p.provider == nil && p.cache != nil && t != nil {
		key := cacheKey{t: t, dialect: p.cfg.Dialect.Name, opts: p.cfg.Options, locale: p.cfg.Locale.String()}
		if e, ok := p.cache.get(key); ok {
			p.logTruncated(t, e.truncated)
			sink.Replay(w, e.tokens)
			return nil
		}
		rec := sink.NewRecorder()
		truncated, err := p.format(rec, t, nil, nil)
		if err != nil {
			return err
		}
		p.logTruncated(t, truncated)
		e := cacheEntry{tokens: rec.Tokens(), truncated: truncated}
		p.cache.add(key, e)
		sink.Replay(w, e.tokens)
		return nil
	}
	truncated, err := p.format(w, t, v, pc)
	if err != nil {
		return err
	}
	p.logTruncated(t, truncated)
	return nil
}

func (p *Printer) format(w sink.Writer, t *sig.Type, v value.Value, pc *format.ParamContext) (bool, error) {
	f := format.New(w, p.cfg.Dialect, p.cfg.Options, p.cfg.Locale)
	st := typeinfo.NewState(p.provider)
	if err := f.FormatState(t, &st, v, pc); err != nil {
		return false, err
	}
	return f.Truncated(), nil
}

func (p *Printer) logTruncated(t *sig.Type, truncated bool) {
	if !truncated || p.logger == nil {
		return
	}
	p.logger.Debug("type signature truncated at nesting limit",
		slog.String("type", t.FullName()),
		slog.String("dialect", p.cfg.Dialect.Name))
}

// Tokens returns the colored tokens of t.
func (p *Printer) Tokens(t *sig.Type) ([]sink.Token, error) {
	rec := sink.NewRecorder()
	if err := p.Format(rec, t, nil, nil); err != nil {
		return nil, err
	}
	return rec.Tokens(), nil
}

// String returns t as plain text.
func (p *Printer) String(t *sig.Type) (string, error) {
	tokens, err := p.Tokens(t)
	if err != nil {
		return "", err
	}
	return sink.Join(tokens), nil
}

// Fprint writes t to w as plain text.
func (p *Printer) Fprint(w io.Writer, t *sig.Type) error {
	s, err := p.String(t)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}
