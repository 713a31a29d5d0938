package format

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	emptyName         = "<<EMPTY_NAME>>"
	maxIdentifierLen  = 512
	truncatedEllipsis = "…"
)

// EscapeIdentifier makes a raw metadata name safe to show as a single token.
// Runes that would render invisibly or break the line are replaced by \uXXXX
// (\UXXXXXXXX above the BMP). Invalid UTF-8 bytes become U+FFFD escapes.
// Long names are truncated.
func EscapeIdentifier(id string) string {
	if id == "" {
		return emptyName
	}
	if !needsEscaping(id) {
		return id
	}

	var b strings.Builder
	n := 0
	for _, r := range id {
		if n == maxIdentifierLen {
			b.WriteString(truncatedEllipsis)
			break
		}
		n++
		if isUnsafeRune(r) {
			if r > 0xFFFF {
				fmt.Fprintf(&b, `\U%08X`, r)
			} else {
				fmt.Fprintf(&b, `\u%04X`, r)
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func needsEscaping(id string) bool {
	if utf8.RuneCountInString(id) > maxIdentifierLen {
		return true
	}
	for _, r := range id {
		if isUnsafeRune(r) {
			return true
		}
	}
	return false
}

func isUnsafeRune(r rune) bool {
	switch {
	case r == utf8.RuneError:
		return true
	case unicode.IsControl(r),
		unicode.Is(unicode.Cf, r),
		unicode.Is(unicode.Zl, r),
		unicode.Is(unicode.Zp, r),
		unicode.Is(unicode.Co, r),
		unicode.Is(unicode.Cs, r):
		return true
	case unicode.IsSpace(r):
		return true
	}
	return !unicode.In(r, unicode.L, unicode.M, unicode.N, unicode.P, unicode.S, unicode.Zs)
}
