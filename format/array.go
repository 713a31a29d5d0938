package format

import (
	"strings"

	"github.com/sigfmt/sigfmt/sig"
	"github.com/sigfmt/sigfmt/sink"
	"github.com/sigfmt/sigfmt/typeinfo"
	"github.com/sigfmt/sigfmt/value"
)

type arrayLayer struct {
	t *sig.Type
	v value.Handle
}

// formatArray writes the innermost element type followed by one bracket group
// per array layer, outermost first, as in int[][,].
func (f *Formatter) formatArray(t *sig.Type, v value.Value, st *typeinfo.State) error {
	var layers []arrayLayer
	defer func() {
		for i := range layers {
			layers[i].v.Release()
		}
	}()

	elem := t
	for {
		layer := arrayLayer{t: elem}
		if len(layers) == 0 {
			layer.v = value.Borrow(v)
		}
		layers = append(layers, layer)
		elem = elem.ElementType
		f.advanceDynamic(st)
		if elem == nil || !elem.IsArray() {
			break
		}
	}

	if err := f.format(elem, nil, st); err != nil {
		return err
	}

	for i := range layers {
		l := &layers[i]
		f.write(sink.ColorPunctuation, f.dialect.arrayOpen)
		if l.t.IsVariableBoundArray() {
			f.writeBounds(l)
		} else if f.opts.Has(ShowArrayValueSizes) && l.v.Valid() {
			if n, ok := l.v.Value().ArrayCount(); ok {
				f.write(sink.ColorNumber, f.numbers.UInt32(n))
			}
		}
		f.write(sink.ColorPunctuation, f.dialect.arrayClose)
	}
	return nil
}

func (f *Formatter) writeBounds(l *arrayLayer) {
	rank := l.t.Rank
	if rank > maxArrayRank {
		rank = maxArrayRank
	}
	if rank <= 0 {
		f.errorText()
		return
	}

	if f.opts.Has(ShowArrayValueSizes) {
		if l.v.Valid() {
			if dims, ok := l.v.Value().ArrayInfo(); ok && len(dims) == rank {
				for i, d := range dims {
					if i > 0 {
						f.comma()
					}
					f.writeDimension(d)
				}
				return
			}
		}
		if len(l.t.Sizes) == rank {
			for i, size := range l.t.Sizes {
				if i > 0 {
					f.comma()
				}
				var lb int32
				if i < len(l.t.LowerBounds) {
					lb = l.t.LowerBounds[i]
				}
				if lb == 0 {
					f.write(sink.ColorNumber, f.numbers.Int32(size))
					continue
				}
				f.writeRange(lb, lb+size-1)
			}
			return
		}
	}

	if rank == 1 && f.dialect.rankOneMarker {
		f.write(sink.ColorOperator, "*")
	}
	if rank > 1 {
		f.write(sink.ColorPunctuation, strings.Repeat(",", rank-1))
	}
}

func (f *Formatter) writeDimension(d value.DimensionInfo) {
	if d.BaseIndex == 0 {
		f.write(sink.ColorNumber, f.numbers.UInt32(d.Length))
		return
	}
	f.writeRange(d.BaseIndex, int32(int64(d.BaseIndex)+int64(d.Length)-1))
}

func (f *Formatter) writeRange(lo, hi int32) {
	f.write(sink.ColorNumber, f.numbers.Int32(lo))
	f.write(sink.ColorOperator, "..")
	f.write(sink.ColorNumber, f.numbers.Int32(hi))
}
