package value_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sigfmt/sigfmt/internal/valuetest"
	"github.com/sigfmt/sigfmt/value"
)

func TestHandle(t *testing.T) {
	tr := valuetest.New()
	root := tr.Root(valuetest.Shape{Ref: &valuetest.Shape{Count: valuetest.Count(3)}})

	b := value.Borrow(root)
	if b.Ownership() != value.Borrowed || !b.Valid() {
		t.Fatalf("borrowed handle = %v, valid %v", b.Ownership(), b.Valid())
	}

	inner := value.Deref(root)
	if inner.Ownership() != value.Owned || !inner.Valid() {
		t.Fatalf("deref handle = %v, valid %v", inner.Ownership(), inner.Valid())
	}
	if n, ok := inner.Value().ArrayCount(); !ok || n != 3 {
		t.Errorf("ArrayCount() = %d, %v", n, ok)
	}

	inner.Release()
	inner.Release()
	b.Release()
	if inner.Value() != nil || b.Value() != nil {
		t.Error("Release did not clear the handle")
	}

	if tr.Created() != 1 || tr.Outstanding() != 0 {
		t.Errorf("created %d, outstanding %d", tr.Created(), tr.Outstanding())
	}
	if p := tr.Problems(); len(p) != 0 {
		t.Errorf("problems: %v", p)
	}
}

func TestDeref_Empty(t *testing.T) {
	var zero value.Handle
	if zero.Valid() {
		t.Error("zero handle is valid")
	}
	zero.Release()

	if h := value.Deref(nil); h.Value() != nil {
		t.Error("Deref(nil) returned a value")
	}
	tr := valuetest.New()
	if h := value.Deref(tr.Root(valuetest.Shape{})); h.Value() != nil {
		t.Error("Deref of a non-reference returned a value")
	}
	null := value.Borrow(tr.Root(valuetest.Shape{Null: true}))
	if null.Valid() {
		t.Error("null value is valid")
	}
}

func TestOwnershipString(t *testing.T) {
	for o, want := range map[value.Ownership]string{value.Borrowed: "borrowed", value.Owned: "owned", 7: "unknown"} {
		if got := o.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(o), got, want)
		}
	}
}

func TestStatic(t *testing.T) {
	tests := []struct {
		name      string
		v         *value.Static
		wantCount uint32
		countOK   bool
		wantDims  []value.DimensionInfo
	}{
		{"vector", value.Array(5), 5, true, []value.DimensionInfo{{Length: 5}}},
		{"zero based md", value.MDArray(value.DimensionInfo{Length: 4}), 4, true, []value.DimensionInfo{{Length: 4}}},
		{"offset md", value.MDArray(value.DimensionInfo{BaseIndex: 1, Length: 4}), 0, false, []value.DimensionInfo{{BaseIndex: 1, Length: 4}}},
		{"two dims", value.MDArray(value.DimensionInfo{Length: 2}, value.DimensionInfo{Length: 3}), 0, false, []value.DimensionInfo{{Length: 2}, {Length: 3}}},
		{"not an array", &value.Static{}, 0, false, nil},
		{"nil", nil, 0, false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, ok := tt.v.ArrayCount()
			if n != tt.wantCount || ok != tt.countOK {
				t.Errorf("ArrayCount() = %d, %v", n, ok)
			}
			dims, _ := tt.v.ArrayInfo()
			if diff := cmp.Diff(tt.wantDims, dims); diff != "" {
				t.Errorf("ArrayInfo() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeStatic(t *testing.T) {
	s, err := value.DecodeStatic([]byte(`{"ref": {"dimensions": [{"BaseIndex": -1, "Length": 3}]}}`))
	if err != nil {
		t.Fatal(err)
	}
	inner, ok := s.LoadIndirect()
	if !ok {
		t.Fatal("LoadIndirect failed")
	}
	dims, ok := inner.ArrayInfo()
	if !ok || len(dims) != 1 || dims[0].BaseIndex != -1 || dims[0].Length != 3 {
		t.Errorf("dims = %+v", dims)
	}
	if !(*value.Static)(nil).IsNull() || value.RefTo(nil).IsNull() {
		t.Error("IsNull mismatch")
	}
	if _, err := value.DecodeStatic([]byte(`[`)); err == nil {
		t.Error("expected an error")
	}
}
