package sigfmt

import (
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
	"golang.org/x/text/language"

	"github.com/sigfmt/sigfmt/format"
)

// Options is a bitset controlling type formatting.
type Options = format.Options

const (
	ShowArrayValueSizes   = format.ShowArrayValueSizes
	UseDecimal            = format.UseDecimal
	DigitSeparators       = format.DigitSeparators
	IntrinsicTypeKeywords = format.IntrinsicTypeKeywords
	Tokens                = format.Tokens
	Namespaces            = format.Namespaces

	DefaultOptions = format.DefaultOptions
)

// ParseOptions parses flag names such as "namespaces,keywords".
func ParseOptions(s string) (Options, error) {
	return format.ParseOptions(s)
}

var (
	validate      = validator.New()
	schemaDecoder = schema.NewDecoder()
)

func init() {
	schemaDecoder.IgnoreUnknownKeys(true)
}

// Query is the query-string form of a Config. Unset booleans keep their
// DefaultOptions value.
type Query struct {
	Dialect    string `schema:"dialect" validate:"omitempty,oneof=csharp vb"`
	Locale     string `schema:"locale" validate:"omitempty,bcp47_language_tag"`
	ArraySizes *bool  `schema:"arraysizes"`
	Decimal    *bool  `schema:"decimal"`
	Separators *bool  `schema:"separators"`
	Keywords   *bool  `schema:"keywords"`
	Tokens     *bool  `schema:"tokens"`
	Namespaces *bool  `schema:"namespaces"`
}

// Config selects a dialect, options and number locale.
type Config struct {
	Dialect *format.Dialect
	Options Options
	Locale  language.Tag
}

// DefaultConfig is C# with DefaultOptions and the root locale.
func DefaultConfig() Config {
	return Config{Dialect: format.CSharp, Options: DefaultOptions, Locale: language.Und}
}

// OptionsFromQuery decodes and validates a Config from query parameters such as
// "dialect=vb&tokens=true&locale=de".
func OptionsFromQuery(q url.Values) (Config, error) {
	return configFromQuery(DefaultConfig(), q)
}

func configFromQuery(base Config, q url.Values) (Config, error) {
	var qs Query
	if err := schemaDecoder.Decode(&qs, q); err != nil {
		return Config{}, Errorf(CodeInvalidArgument, "failed to decode query: %v", err)
	}
	if err := validate.Struct(&qs); err != nil {
		return Config{}, AsError(err)
	}
	return qs.Apply(base)
}

// Config applies q on top of DefaultConfig.
func (q *Query) Config() (Config, error) {
	return q.Apply(DefaultConfig())
}

// Apply returns cfg with the fields set in q overridden.
func (q *Query) Apply(cfg Config) (Config, error) {
	if q.Dialect != "" {
		d, ok := format.LookupDialect(q.Dialect)
		if !ok {
			return Config{}, Errorf(CodeInvalidArgument, "unknown dialect %q", q.Dialect).WithDetail("dialect", q.Dialect)
		}
		cfg.Dialect = d
	}
	if q.Locale != "" {
		tag, err := language.Parse(q.Locale)
		if err != nil {
			return Config{}, Errorf(CodeInvalidArgument, "invalid locale %q: %v", q.Locale, err).WithDetail("locale", q.Locale)
		}
		cfg.Locale = tag
	}
	for _, f := range []struct {
		set *bool
		opt Options
	}{
		{q.ArraySizes, ShowArrayValueSizes},
		{q.Decimal, UseDecimal},
		{q.Separators, DigitSeparators},
		{q.Keywords, IntrinsicTypeKeywords},
		{q.Tokens, Tokens},
		{q.Namespaces, Namespaces},
	} {
		if f.set == nil {
			continue
		}
		if *f.set {
			cfg.Options |= f.opt
		} else {
			cfg.Options &^= f.opt
		}
	}
	return cfg, nil
}
