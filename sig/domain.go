package sig

import "sync"

// WellKnown identifies a core library type that formatters may replace by a keyword.
type WellKnown int

const (
	WellKnownVoid WellKnown = iota
	WellKnownBoolean
	WellKnownChar
	WellKnownSByte
	WellKnownByte
	WellKnownInt16
	WellKnownUInt16
	WellKnownInt32
	WellKnownUInt32
	WellKnownInt64
	WellKnownUInt64
	WellKnownSingle
	WellKnownDouble
	WellKnownDecimal
	WellKnownString
	WellKnownObject
	WellKnownIntPtr
	WellKnownUIntPtr
	WellKnownDateTime

	numWellKnown
)

var wellKnownNames = [numWellKnown]string{
	WellKnownVoid:     "Void",
	WellKnownBoolean:  "Boolean",
	WellKnownChar:     "Char",
	WellKnownSByte:    "SByte",
	WellKnownByte:     "Byte",
	WellKnownInt16:    "Int16",
	WellKnownUInt16:   "UInt16",
	WellKnownInt32:    "Int32",
	WellKnownUInt32:   "UInt32",
	WellKnownInt64:    "Int64",
	WellKnownUInt64:   "UInt64",
	WellKnownSingle:   "Single",
	WellKnownDouble:   "Double",
	WellKnownDecimal:  "Decimal",
	WellKnownString:   "String",
	WellKnownObject:   "Object",
	WellKnownIntPtr:   "IntPtr",
	WellKnownUIntPtr:  "UIntPtr",
	WellKnownDateTime: "DateTime",
}

// String returns the metadata name of the well-known type.
func (w WellKnown) String() string {
	if w < 0 || w >= numWellKnown {
		return "Unknown"
	}
	return wellKnownNames[w]
}

// Domain owns one instance of each well-known primitive. Formatters compare
// against these instances by identity, so two structurally identical types from
// different domains never share a keyword.
type Domain struct {
	wellKnown [numWellKnown]*Type

	mu      sync.Mutex
	defined map[string]*Type
}

// NewDomain creates a domain with its well-known primitives.
func NewDomain() *Domain {
	d := &Domain{defined: make(map[string]*Type)}
	for w := WellKnown(0); w < numWellKnown; w++ {
		cat := CategoryValueType
		switch w {
		case WellKnownString, WellKnownObject:
			cat = CategoryClass
		}
		t := &Type{
			Kind:      KindType,
			Namespace: "System",
			Name:      wellKnownNames[w],
			Category:  cat,
			Sealed:    w != WellKnownObject,
			Token:     0x02000000 | uint32(w+1),
			Domain:    d,
		}
		d.wellKnown[w] = t
		d.defined[t.FullName()] = t
	}
	return d
}

// WellKnown returns the canonical instance of w.
func (d *Domain) WellKnown(w WellKnown) *Type {
	if d == nil || w < 0 || w >= numWellKnown {
		return nil
	}
	return d.wellKnown[w]
}

// Is reports whether t is the canonical instance of w, or a copy of it made
// by WithModifiers.
func (d *Domain) Is(t *Type, w WellKnown) bool {
	return t != nil && d != nil && t.canonical() == d.WellKnown(w)
}

// lookupWellKnown returns the well-known kind named by an unnested System type name.
func lookupWellKnown(name string) (WellKnown, bool) {
	for w, n := range wellKnownNames {
		if n == name {
			return WellKnown(w), true
		}
	}
	return 0, false
}

// Lookup returns a previously defined unnested type by full name.
func (d *Domain) Lookup(fullName string) *Type {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.defined[fullName]
}

func (d *Domain) Void() *Type       { return d.wellKnown[WellKnownVoid] }
func (d *Domain) Boolean() *Type    { return d.wellKnown[WellKnownBoolean] }
func (d *Domain) Char() *Type       { return d.wellKnown[WellKnownChar] }
func (d *Domain) SByte() *Type      { return d.wellKnown[WellKnownSByte] }
func (d *Domain) Byte() *Type       { return d.wellKnown[WellKnownByte] }
func (d *Domain) Int16() *Type      { return d.wellKnown[WellKnownInt16] }
func (d *Domain) UInt16() *Type     { return d.wellKnown[WellKnownUInt16] }
func (d *Domain) Int32() *Type      { return d.wellKnown[WellKnownInt32] }
func (d *Domain) UInt32() *Type     { return d.wellKnown[WellKnownUInt32] }
func (d *Domain) Int64() *Type      { return d.wellKnown[WellKnownInt64] }
func (d *Domain) UInt64() *Type     { return d.wellKnown[WellKnownUInt64] }
func (d *Domain) Single() *Type     { return d.wellKnown[WellKnownSingle] }
func (d *Domain) Double() *Type     { return d.wellKnown[WellKnownDouble] }
func (d *Domain) Decimal() *Type    { return d.wellKnown[WellKnownDecimal] }
func (d *Domain) StringType() *Type { return d.wellKnown[WellKnownString] }
func (d *Domain) Object() *Type     { return d.wellKnown[WellKnownObject] }
func (d *Domain) IntPtr() *Type     { return d.wellKnown[WellKnownIntPtr] }
func (d *Domain) UIntPtr() *Type    { return d.wellKnown[WellKnownUIntPtr] }
func (d *Domain) DateTime() *Type   { return d.wellKnown[WellKnownDateTime] }

// WellKnown returns which well-known primitive t is, if any.
func (t *Type) WellKnown() (WellKnown, bool) {
	if t == nil || t.Domain == nil {
		return 0, false
	}
	c := t.canonical()
	for w, wk := range t.Domain.wellKnown {
		if wk == c {
			return WellKnown(w), true
		}
	}
	return 0, false
}
