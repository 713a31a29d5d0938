package format

import (
	"sort"
	"strings"

	"github.com/sigfmt/sigfmt/sig"
)

// Dialect is the table of surface-syntax choices a Formatter renders with.
// The traversal is shared; everything that differs between languages lives here
// or behind the C-style branches in the formatter.
type Dialect struct {
	// Name identifies the dialect on the command line and in queries.
	Name string

	arrayOpen, arrayClose     string
	genericOpen, genericClose string
	genericOf                 string // keyword after genericOpen
	tupleOpen, tupleClose     string
	hexPrefix                 string
	byRefKeyword              string

	escapeOpen, escapeClose string
	reserved                map[string]bool
	foldCase                bool

	typeKeywords map[sig.WellKnown]string

	// cStyle enables the directional by-ref prefix, dynamic and native integer
	// tracking, `delegate*` function pointers and "type name" tuple elements.
	cStyle bool
	// rankOneMarker prints `*` for a rank-1 general array of unknown size.
	rankOneMarker bool
	// modules renders static classes in module color.
	modules bool
}

// CSharp is the C-style dialect.
var CSharp = &Dialect{
	Name:          "csharp",
	arrayOpen:     "[",
	arrayClose:    "]",
	genericOpen:   "<",
	genericClose:  ">",
	tupleOpen:     "(",
	tupleClose:    ")",
	hexPrefix:     "0x",
	byRefKeyword:  "ref",
	escapeOpen:    "@",
	reserved:      reservedSet(csharpReservedWords, false),
	typeKeywords:  csharpTypeKeywords,
	cStyle:        true,
	rankOneMarker: true,
}

// VisualBasic is the BASIC-style dialect.
var VisualBasic = &Dialect{
	Name:         "vb",
	arrayOpen:    "(",
	arrayClose:   ")",
	genericOpen:  "(",
	genericClose: ")",
	genericOf:    "Of",
	tupleOpen:    "(",
	tupleClose:   ")",
	hexPrefix:    "&H",
	byRefKeyword: "ByRef",
	escapeOpen:   "[",
	escapeClose:  "]",
	reserved:     reservedSet(visualBasicReservedWords, true),
	foldCase:     true,
	typeKeywords: visualBasicTypeKeywords,
	modules:      true,
}

// Dialects lists the supported dialects.
var Dialects = []*Dialect{CSharp, VisualBasic}

// LookupDialect returns the dialect with the given name.
func LookupDialect(name string) (*Dialect, bool) {
	for _, d := range Dialects {
		if strings.EqualFold(d.Name, name) {
			return d, true
		}
	}
	return nil, false
}

func reservedSet(words []string, foldCase bool) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		if foldCase {
			w = strings.ToLower(w)
		}
		m[w] = true
	}
	return m
}

// String returns the dialect name.
func (d *Dialect) String() string { return d.Name }

// HexPrefix returns the prefix of hexadecimal literals.
func (d *Dialect) HexPrefix() string { return d.hexPrefix }

// IsReserved reports whether id collides with a reserved word.
func (d *Dialect) IsReserved(id string) bool {
	if d.foldCase {
		id = strings.ToLower(id)
	}
	return d.reserved[id]
}

// ReservedWords returns the reserved words in their canonical spelling, sorted.
func (d *Dialect) ReservedWords() []string {
	src := csharpReservedWords
	if d.foldCase {
		src = visualBasicReservedWords
	}
	words := append([]string(nil), src...)
	sort.Slice(words, func(i, j int) bool {
		return strings.ToLower(words[i]) < strings.ToLower(words[j])
	})
	return words
}

// TypeKeyword returns the keyword spelling of a well-known primitive.
func (d *Dialect) TypeKeyword(w sig.WellKnown) (string, bool) {
	kw, ok := d.typeKeywords[w]
	return kw, ok
}

// FormatIdentifier escapes id and wraps it in escape delimiters when it is a
// reserved word.
func (d *Dialect) FormatIdentifier(id string) string {
	if d.IsReserved(id) {
		return d.escapeOpen + EscapeIdentifier(id) + d.escapeClose
	}
	return EscapeIdentifier(id)
}
