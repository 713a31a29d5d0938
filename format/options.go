package format

import (
	"fmt"
	"strings"
)

// Options is a bitset controlling type formatting.
type Options uint32

const (
	// ShowArrayValueSizes shows array lengths taken from the live value or,
	// failing that, from the signature's static bounds.
	ShowArrayValueSizes Options = 1 << iota
	// UseDecimal prints numbers in decimal instead of hex.
	UseDecimal
	// DigitSeparators groups digits with '_'.
	DigitSeparators
	// IntrinsicTypeKeywords prints int instead of Int32.
	IntrinsicTypeKeywords
	// Tokens appends metadata token comments to type names.
	Tokens
	// Namespaces prints namespaces.
	Namespaces
)

// DefaultOptions is what a debugger shows in its variables windows.
const DefaultOptions = IntrinsicTypeKeywords | Namespaces | UseDecimal

var optionNames = []struct {
	opt  Options
	name string
}{
	{ShowArrayValueSizes, "arraysizes"},
	{UseDecimal, "decimal"},
	{DigitSeparators, "separators"},
	{IntrinsicTypeKeywords, "keywords"},
	{Tokens, "tokens"},
	{Namespaces, "namespaces"},
}

// Has reports whether every flag in f is set.
func (o Options) Has(f Options) bool { return o&f == f }

// String returns the set flags joined by '|', or "none".
func (o Options) String() string {
	var parts []string
	for _, n := range optionNames {
		if o.Has(n.opt) {
			parts = append(parts, n.name)
		}
	}
	if rest := o &^ (ShowArrayValueSizes | UseDecimal | DigitSeparators | IntrinsicTypeKeywords | Tokens | Namespaces); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%X", uint32(rest)))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ParseOptions parses flag names separated by ',' or '|'.
// The empty string and "none" yield no flags.
func ParseOptions(s string) (Options, error) {
	var o Options
	for _, field := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' || r == ' ' }) {
		name := strings.ToLower(field)
		if name == "none" {
			continue
		}
		found := false
		for _, n := range optionNames {
			if n.name == name {
				o |= n.opt
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown option %q", field)
		}
	}
	return o, nil
}

// OptionNames returns the recognized flag names.
func OptionNames() []string {
	names := make([]string, len(optionNames))
	for i, n := range optionNames {
		names[i] = n.name
	}
	return names
}
