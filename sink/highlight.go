package sink

import (
	"fmt"
	"io"
	"sort"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
)

// chromaTypes maps each Color to the chroma token type whose style it borrows.
var chromaTypes = map[Color]chroma.TokenType{
	ColorText:                   chroma.Text,
	ColorPunctuation:            chroma.Punctuation,
	ColorOperator:               chroma.Operator,
	ColorKeyword:                chroma.Keyword,
	ColorNumber:                 chroma.LiteralNumberInteger,
	ColorComment:                chroma.Comment,
	ColorError:                  chroma.Error,
	ColorNamespace:              chroma.NameNamespace,
	ColorType:                   chroma.NameClass,
	ColorStaticType:             chroma.NameClass,
	ColorSealedType:             chroma.NameClass,
	ColorValueType:              chroma.KeywordType,
	ColorEnum:                   chroma.NameConstant,
	ColorInterface:              chroma.NameAttribute,
	ColorDelegate:               chroma.NameFunction,
	ColorModule:                 chroma.NameNamespace,
	ColorTypeGenericParameter:   chroma.NameVariable,
	ColorMethodGenericParameter: chroma.NameVariable,
	ColorInstanceField:          chroma.NameProperty,
}

// ChromaType returns the chroma token type used to render c.
func ChromaType(c Color) chroma.TokenType {
	if t, ok := chromaTypes[c]; ok {
		return t
	}
	return chroma.Text
}

// Highlight renders tokens to w with the named chroma formatter and style,
// e.g. ("terminal256", "monokai") or ("html", "github").
func Highlight(w io.Writer, tokens []Token, formatterName, styleName string) error {
	f, ok := formatters.Registry[formatterName]
	if !ok {
		return fmt.Errorf("unknown formatter %q (available: %v)", formatterName, registryNames(formatters.Registry))
	}
	style, ok := styles.Registry[styleName]
	if !ok {
		return fmt.Errorf("unknown style %q (available: %v)", styleName, registryNames(styles.Registry))
	}

	ct := make([]chroma.Token, 0, len(tokens))
	for _, t := range tokens {
		ct = append(ct, chroma.Token{Type: ChromaType(t.Color), Value: t.Text})
	}
	if err := f.Format(w, style, chroma.Literator(ct...)); err != nil {
		return fmt.Errorf("highlight: %w", err)
	}
	return nil
}

func registryNames[V any](registry map[string]V) []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
