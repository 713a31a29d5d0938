package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const digitSeparator = "_"

// Numbers renders the integers a formatter shows: array bounds and metadata
// tokens. The zero value prints unprefixed upper-case hex.
type Numbers struct {
	Decimal         bool
	DigitSeparators bool
	Prefix          string // hex prefix, e.g. "0x" or "&H"

	printer *message.Printer
}

// NewNumbers returns a Numbers printing decimal digits for locale.
func NewNumbers(decimal, separators bool, prefix string, locale language.Tag) Numbers {
	return Numbers{
		Decimal:         decimal,
		DigitSeparators: separators,
		Prefix:          prefix,
		printer:         message.NewPrinter(locale),
	}
}

// NumbersFor returns the Numbers a Formatter with opts uses for d.
func NumbersFor(d *Dialect, opts Options, locale language.Tag) Numbers {
	return NewNumbers(opts.Has(UseDecimal), opts.Has(DigitSeparators), d.hexPrefix, locale)
}

// Int32 formats v.
func (n Numbers) Int32(v int32) string {
	if n.Decimal {
		return n.decimal(v)
	}
	return n.hex(fmt.Sprintf("%08X", uint32(v)))
}

// UInt32 formats v.
func (n Numbers) UInt32(v uint32) string {
	if n.Decimal {
		return n.decimal(v)
	}
	return n.hex(fmt.Sprintf("%08X", v))
}

// Int64 formats v.
func (n Numbers) Int64(v int64) string {
	if n.Decimal {
		return n.decimal(v)
	}
	return n.hex(fmt.Sprintf("%016X", uint64(v)))
}

// UInt64 formats v.
func (n Numbers) UInt64(v uint64) string {
	if n.Decimal {
		return n.decimal(v)
	}
	return n.hex(fmt.Sprintf("%016X", v))
}

func (n Numbers) decimal(v any) string {
	var s string
	if n.printer == nil {
		s = fmt.Sprint(v)
	} else {
		s = n.printer.Sprint(number.Decimal(v, number.NoSeparator()))
	}
	if n.DigitSeparators {
		s = AddDigitSeparators(s, 3, digitSeparator)
	}
	return s
}

func (n Numbers) hex(s string) string {
	if n.DigitSeparators {
		s = AddDigitSeparators(s, 4, digitSeparator)
	}
	return n.Prefix + s
}

// AddDigitSeparators inserts sep between every group of size digits counted
// from the right. A separator never follows a leading sign.
func AddDigitSeparators(s string, size int, sep string) string {
	if size <= 0 {
		return s
	}
	rs := []rune(s)
	if len(rs) <= size {
		return s
	}
	var b strings.Builder
	for i, r := range rs {
		if i > 0 && (len(rs)-i)%size == 0 && !isSign(rs[i-1]) {
			b.WriteString(sep)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isSign(r rune) bool {
	return r == '-' || r == '+' || r == '−'
}
