package format

import "github.com/sigfmt/sigfmt/sig"

// C# reserved words. Matching is case-sensitive.
var csharpReservedWords = []string{
	"abstract", "as", "base", "bool", "break", "byte", "case", "catch",
	"char", "checked", "class", "const", "continue", "decimal", "default", "delegate",
	"do", "double", "else", "enum", "event", "explicit", "extern", "false",
	"finally", "fixed", "float", "for", "foreach", "goto", "if", "implicit",
	"in", "int", "interface", "internal", "is", "lock", "long", "namespace",
	"new", "null", "object", "operator", "out", "override", "params", "private",
	"protected", "public", "readonly", "ref", "return", "sbyte", "sealed", "short",
	"sizeof", "stackalloc", "static", "string", "struct", "switch", "this", "throw",
	"true", "try", "typeof", "uint", "ulong", "unchecked", "unsafe", "ushort",
	"using", "virtual", "void", "volatile", "while",
}

// Visual Basic reserved words. Matching is case-insensitive.
var visualBasicReservedWords = []string{
	"#Const", "#Else", "#ElseIf", "#End", "#If", "AddHandler", "AddressOf",
	"Alias", "And", "AndAlso", "As", "Boolean", "ByRef", "Byte", "ByVal",
	"Call", "Case", "Catch", "CBool", "CByte", "CChar", "CDate", "CDbl",
	"CDec", "Char", "CInt", "Class", "CLng", "CObj", "Const", "Continue",
	"CSByte", "CShort", "CSng", "CStr", "CType", "CUInt", "CULng", "CUShort",
	"Date", "Decimal", "Declare", "Default", "Delegate", "Dim", "DirectCast",
	"Do", "Double", "Each", "Else", "ElseIf", "End", "EndIf", "Enum", "Erase",
	"Error", "Event", "Exit", "False", "Finally", "For", "Friend", "Function",
	"Get", "GetType", "GetXMLNamespace", "Global", "GoSub", "GoTo", "Handles",
	"If", "Implements", "Imports", "In", "Inherits", "Integer", "Interface",
	"Is", "IsNot", "Let", "Lib", "Like", "Long", "Loop", "Me", "Mod", "Module",
	"MustInherit", "MustOverride", "MyBase", "MyClass", "Namespace", "Narrowing",
	"New", "Next", "Not", "Nothing", "NotInheritable", "NotOverridable", "Object",
	"Of", "On", "Operator", "Option", "Optional", "Or", "OrElse", "Out",
	"Overloads", "Overridable", "Overrides", "ParamArray", "Partial", "Private",
	"Property", "Protected", "Public", "RaiseEvent", "ReadOnly", "ReDim", "REM",
	"RemoveHandler", "Resume", "Return", "SByte", "Select", "Set", "Shadows",
	"Shared", "Short", "Single", "Static", "Step", "Stop", "String", "Structure",
	"Sub", "SyncLock", "Then", "Throw", "To", "True", "Try", "TryCast", "TypeOf",
	"UInteger", "ULong", "UShort", "Using", "Variant", "Wend", "When", "While",
	"Widening", "With", "WithEvents", "WriteOnly", "Xor",
}

var csharpTypeKeywords = map[sig.WellKnown]string{
	sig.WellKnownVoid:    "void",
	sig.WellKnownBoolean: "bool",
	sig.WellKnownChar:    "char",
	sig.WellKnownSByte:   "sbyte",
	sig.WellKnownByte:    "byte",
	sig.WellKnownInt16:   "short",
	sig.WellKnownUInt16:  "ushort",
	sig.WellKnownInt32:   "int",
	sig.WellKnownUInt32:  "uint",
	sig.WellKnownInt64:   "long",
	sig.WellKnownUInt64:  "ulong",
	sig.WellKnownSingle:  "float",
	sig.WellKnownDouble:  "double",
	sig.WellKnownObject:  "object",
	sig.WellKnownDecimal: "decimal",
	sig.WellKnownString:  "string",
}

var visualBasicTypeKeywords = map[sig.WellKnown]string{
	sig.WellKnownBoolean:  "Boolean",
	sig.WellKnownByte:     "Byte",
	sig.WellKnownChar:     "Char",
	sig.WellKnownDateTime: "Date",
	sig.WellKnownDecimal:  "Decimal",
	sig.WellKnownDouble:   "Double",
	sig.WellKnownInt32:    "Integer",
	sig.WellKnownInt64:    "Long",
	sig.WellKnownObject:   "Object",
	sig.WellKnownSByte:    "SByte",
	sig.WellKnownInt16:    "Short",
	sig.WellKnownSingle:   "Single",
	sig.WellKnownString:   "String",
	sig.WellKnownUInt32:   "UInteger",
	sig.WellKnownUInt64:   "ULong",
	sig.WellKnownUInt16:   "UShort",
}
