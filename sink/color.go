package sink

// Color classifies emitted text for syntax highlighting.
type Color int

const (
	ColorText Color = iota
	ColorPunctuation
	ColorOperator
	ColorKeyword
	ColorNumber
	ColorComment
	ColorError
	ColorNamespace
	ColorType
	ColorStaticType
	ColorSealedType
	ColorValueType
	ColorEnum
	ColorInterface
	ColorDelegate
	ColorModule
	ColorTypeGenericParameter
	ColorMethodGenericParameter
	ColorInstanceField
)

var colorNames = [...]string{
	ColorText:                   "Text",
	ColorPunctuation:            "Punctuation",
	ColorOperator:               "Operator",
	ColorKeyword:                "Keyword",
	ColorNumber:                 "Number",
	ColorComment:                "Comment",
	ColorError:                  "Error",
	ColorNamespace:              "Namespace",
	ColorType:                   "Type",
	ColorStaticType:             "StaticType",
	ColorSealedType:             "SealedType",
	ColorValueType:              "ValueType",
	ColorEnum:                   "Enum",
	ColorInterface:              "Interface",
	ColorDelegate:               "Delegate",
	ColorModule:                 "Module",
	ColorTypeGenericParameter:   "TypeGenericParameter",
	ColorMethodGenericParameter: "MethodGenericParameter",
	ColorInstanceField:          "InstanceField",
}

// String returns the string representation of the color.
func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "Unknown"
	}
	return colorNames[c]
}
