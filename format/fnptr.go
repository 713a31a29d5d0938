package format

import (
	"fmt"
	"strings"

	"github.com/sigfmt/sigfmt/sig"
	"github.com/sigfmt/sigfmt/sink"
	"github.com/sigfmt/sigfmt/typeinfo"
)

const (
	callConvNamespace = "System.Runtime.CompilerServices"
	callConvPrefix    = "CallConv"
)

func methodOf(t *sig.Type) (*sig.MethodSignature, error) {
	if t.Method == nil || t.Method.ReturnType == nil {
		return nil, fmt.Errorf("function pointer signature: %w", ErrNilType)
	}
	return t.Method, nil
}

// formatFunctionPointer writes delegate* unmanaged[Cdecl]<int, void>.
func (f *Formatter) formatFunctionPointer(t *sig.Type, st *typeinfo.State) error {
	m, err := methodOf(t)
	if err != nil {
		return err
	}

	f.write(sink.ColorKeyword, "delegate")
	f.write(sink.ColorOperator, "*")

	conv := m.CallingConvention.Convention()
	explicit := conv != sig.CallConvDefault && conv != sig.CallConvUnmanaged
	if conv != sig.CallConvDefault {
		f.space()
		f.write(sink.ColorKeyword, "unmanaged")
	}

	var custom []*sig.Type
	for _, mod := range m.ReturnType.Modifiers {
		if mod.Type == nil || mod.Type.Namespace != callConvNamespace || !strings.HasPrefix(mod.Type.Name, callConvPrefix) {
			break
		}
		st.DynamicTypeIndex++
		custom = append(custom, mod.Type)
	}

	if explicit || len(custom) > 0 {
		f.write(sink.ColorPunctuation, "[")
		needComma := false
		if explicit {
			f.write(sink.ColorKeyword, conventionName(m.CallingConvention))
			needComma = true
		}
		for _, cc := range custom {
			if needComma {
				f.comma()
			}
			needComma = true
			if len(cc.Name) > len(callConvPrefix) {
				f.write(sink.ColorKeyword, cc.Name[len(callConvPrefix):])
				continue
			}
			fresh := typeinfo.NewState(nil)
			if err := f.format(cc, nil, &fresh); err != nil {
				return err
			}
		}
		f.write(sink.ColorPunctuation, "]")
	}

	f.write(sink.ColorPunctuation, "<")

	st.DynamicTypeIndex++
	ps := *st
	if err := f.skip(m.ReturnType, &ps); err != nil {
		return err
	}
	for i, p := range m.Parameters {
		if i > 0 {
			f.comma()
		}
		if p == nil {
			return fmt.Errorf("function pointer parameter %d: %w", i, ErrNilType)
		}
		ps.DynamicTypeIndex++
		written := false
		if mods := p.RequiredModifiers(); len(mods) > 0 && mods[0].Type != nil {
			switch mods[0].Type.FullName() {
			case sig.InAttribute:
				f.keyword("in")
				written = true
				ps.DynamicTypeIndex++
			case sig.OutAttribute:
				f.keyword("out")
				written = true
				ps.DynamicTypeIndex++
			}
		}
		if p.IsByRef() {
			if !written {
				f.keyword("ref")
			}
			ps.DynamicTypeIndex++
			p = p.ElementType
		}
		if err := f.format(p, nil, &ps); err != nil {
			return err
		}
	}
	if len(m.Parameters) > 0 {
		f.comma()
	}

	if err := f.format(m.ReturnType, nil, st); err != nil {
		return err
	}
	f.write(sink.ColorPunctuation, ">")
	return nil
}

func conventionName(cc sig.CallingConvention) string {
	switch cc.Convention() {
	case sig.CallConvC:
		return "Cdecl"
	case sig.CallConvStdCall:
		return "Stdcall"
	case sig.CallConvThisCall:
		return "Thiscall"
	case sig.CallConvFastCall:
		return "Fastcall"
	case sig.CallConvVarArg:
		return "Varargs"
	default:
		return cc.String()
	}
}

// formatFunctionPointerBasic writes Integer (String, ..., Object).
func (f *Formatter) formatFunctionPointerBasic(t *sig.Type, st *typeinfo.State) error {
	m, err := methodOf(t)
	if err != nil {
		return err
	}
	if err := f.format(m.ReturnType, nil, st); err != nil {
		return err
	}
	f.space()
	f.write(sink.ColorPunctuation, "(")
	for i, p := range m.Parameters {
		if i > 0 {
			f.comma()
		}
		if err := f.format(p, nil, st); err != nil {
			return err
		}
	}
	if len(m.VarArgParameters) > 0 {
		if len(m.Parameters) > 0 {
			f.comma()
		}
		f.write(sink.ColorPunctuation, "...")
		for _, p := range m.VarArgParameters {
			f.comma()
			if err := f.format(p, nil, st); err != nil {
				return err
			}
		}
	}
	f.write(sink.ColorPunctuation, ")")
	return nil
}
