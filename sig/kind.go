package sig

// SignatureKind identifies the shape of a type signature node.
type SignatureKind int

const (
	// Named type descriptors
	KindType            SignatureKind = iota // Class, struct, enum, interface or delegate
	KindGenericInstance                      // Constructed generic type (List<int>)

	// Composite descriptors wrapping an ElementType
	KindSZArray // Single-dimension zero-based array (T[])
	KindMDArray // General, possibly variable-bound array (T[,])
	KindPointer // Unmanaged pointer (T*)
	KindByRef   // Managed reference (ref T)

	// Generic parameters
	KindTypeGenericParameter   // Type-level generic parameter (T)
	KindMethodGenericParameter // Method-level generic parameter (TResult)

	// Function pointer (delegate*<...>)
	KindFunctionPointer
)

// String returns the string representation of the signature kind.
func (k SignatureKind) String() string {
	switch k {
	case KindType:
		return "Type"
	case KindGenericInstance:
		return "GenericInstance"
	case KindSZArray:
		return "SZArray"
	case KindMDArray:
		return "MDArray"
	case KindPointer:
		return "Pointer"
	case KindByRef:
		return "ByRef"
	case KindTypeGenericParameter:
		return "TypeGenericParameter"
	case KindMethodGenericParameter:
		return "MethodGenericParameter"
	case KindFunctionPointer:
		return "FunctionPointer"
	default:
		return "Unknown"
	}
}

// parseKind maps the JSON spelling of a kind back to its value.
func parseKind(s string) (SignatureKind, bool) {
	switch s {
	case "type":
		return KindType, true
	case "generic":
		return KindGenericInstance, true
	case "szarray":
		return KindSZArray, true
	case "mdarray":
		return KindMDArray, true
	case "pointer":
		return KindPointer, true
	case "byref":
		return KindByRef, true
	case "typeparam":
		return KindTypeGenericParameter, true
	case "methodparam":
		return KindMethodGenericParameter, true
	case "fnptr":
		return KindFunctionPointer, true
	}
	return 0, false
}

func (k SignatureKind) jsonName() string {
	switch k {
	case KindType:
		return "type"
	case KindGenericInstance:
		return "generic"
	case KindSZArray:
		return "szarray"
	case KindMDArray:
		return "mdarray"
	case KindPointer:
		return "pointer"
	case KindByRef:
		return "byref"
	case KindTypeGenericParameter:
		return "typeparam"
	case KindMethodGenericParameter:
		return "methodparam"
	case KindFunctionPointer:
		return "fnptr"
	default:
		return "unknown"
	}
}

// Category classifies a named type. It only affects coloring.
type Category int

const (
	CategoryClass Category = iota
	CategoryValueType
	CategoryEnum
	CategoryInterface
	CategoryDelegate
	CategoryModule // VB standard module
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case CategoryClass:
		return "class"
	case CategoryValueType:
		return "valuetype"
	case CategoryEnum:
		return "enum"
	case CategoryInterface:
		return "interface"
	case CategoryDelegate:
		return "delegate"
	case CategoryModule:
		return "module"
	default:
		return "unknown"
	}
}

func parseCategory(s string) (Category, bool) {
	for c := CategoryClass; c <= CategoryModule; c++ {
		if c.String() == s {
			return c, true
		}
	}
	return 0, false
}
