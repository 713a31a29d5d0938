package value

import (
	"encoding/json"
	"fmt"
)

// Static is an in-memory Value describing the shape of a value without a
// debugger behind it. It is used for values described in JSON.
type Static struct {
	Null       bool            `json:"null,omitempty"`
	Count      *uint32         `json:"count,omitempty"`
	Dimensions []DimensionInfo `json:"dimensions,omitempty"`
	Ref        *Static         `json:"ref,omitempty"`
}

// IsNull implements Value.
func (s *Static) IsNull() bool { return s == nil || s.Null }

// LoadIndirect implements Value.
func (s *Static) LoadIndirect() (Value, bool) {
	if s == nil || s.Ref == nil {
		return nil, false
	}
	return s.Ref, true
}

// ArrayCount implements Value.
func (s *Static) ArrayCount() (uint32, bool) {
	if s == nil {
		return 0, false
	}
	if s.Count != nil {
		return *s.Count, true
	}
	if len(s.Dimensions) == 1 && s.Dimensions[0].BaseIndex == 0 {
		return s.Dimensions[0].Length, true
	}
	return 0, false
}

// ArrayInfo implements Value.
func (s *Static) ArrayInfo() ([]DimensionInfo, bool) {
	if s == nil {
		return nil, false
	}
	if len(s.Dimensions) > 0 {
		return s.Dimensions, true
	}
	if s.Count != nil {
		return []DimensionInfo{{Length: *s.Count}}, true
	}
	return nil, false
}

// Release implements Value. Static values hold no resources.
func (s *Static) Release() {}

// Array returns a Static vector with n elements.
func Array(n uint32) *Static { return &Static{Count: &n} }

// MDArray returns a Static general array with the given dimensions.
func MDArray(dims ...DimensionInfo) *Static { return &Static{Dimensions: dims} }

// RefTo returns a Static by-ref pointing at target.
func RefTo(target *Static) *Static { return &Static{Ref: target} }

// DecodeStatic parses a JSON value description.
func DecodeStatic(data []byte) (*Static, error) {
	var s Static
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode value: %w", err)
	}
	return &s, nil
}
