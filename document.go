package sigfmt

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sigfmt/sigfmt/format"
	"github.com/sigfmt/sigfmt/sig"
	"github.com/sigfmt/sigfmt/sink"
	"github.com/sigfmt/sigfmt/typeinfo"
	"github.com/sigfmt/sigfmt/value"
)

// Document is the JSON form of one formatting request: a type tree plus the
// optional live value, type info annotations and parameter it belongs to.
type Document struct {
	Type      json.RawMessage    `json:"type"`
	Value     *value.Static      `json:"value,omitempty"`
	TypeInfo  *typeinfo.Flags    `json:"typeinfo,omitempty"`
	Parameter *DocumentParameter `json:"parameter,omitempty"`
}

// DocumentParameter describes the parameter a by-ref type is declared on.
type DocumentParameter struct {
	Name          string   `json:"name,omitempty"`
	In            bool     `json:"in,omitempty"`
	Out           bool     `json:"out,omitempty"`
	ReadOnly      bool     `json:"readOnly,omitempty"`
	ForceReadOnly bool     `json:"forceReadOnly,omitempty"`
	Attributes    []string `json:"attributes,omitempty"`
}

// Job is a decoded Document ready to format.
type Job struct {
	Type     *sig.Type
	Value    value.Value
	Provider typeinfo.Provider
	Param    *format.ParamContext
}

// Run formats j with p, adding j's provider when it has one.
func (j Job) Run(p *Printer, w sink.Writer) error {
	if j.Provider != nil {
		p = p.WithProvider(j.Provider)
	}
	return p.Format(w, j.Type, j.Value, j.Param)
}

// DecodeDocuments decodes a single Document or a JSON array of them, resolving
// types in d.
func DecodeDocuments(data []byte, d *sig.Domain) ([]Job, error) {
	var docs []Document
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, fmt.Errorf("decode documents: %w", err)
		}
	} else {
		var doc Document
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
		docs = []Document{doc}
	}

	jobs := make([]Job, 0, len(docs))
	for i := range docs {
		j, err := docs[i].Job(d)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// Job resolves doc in d.
func (doc *Document) Job(d *sig.Domain) (Job, error) {
	if len(doc.Type) == 0 {
		return Job{}, fmt.Errorf("missing type: %w", ErrNilType)
	}
	t, err := d.Decode(doc.Type)
	if err != nil {
		return Job{}, err
	}
	// Leave the interfaces nil rather than holding typed nil pointers.
	j := Job{Type: t}
	if doc.Value != nil {
		j.Value = doc.Value
	}
	if doc.TypeInfo != nil {
		j.Provider = doc.TypeInfo
	}
	if p := doc.Parameter; p != nil {
		attrs := append([]string(nil), p.Attributes...)
		if p.ReadOnly {
			attrs = append(attrs, sig.IsReadOnlyAttribute)
		}
		j.Param = &format.ParamContext{
			Param: &sig.Parameter{
				Name:       p.Name,
				Type:       t,
				IsIn:       p.In,
				IsOut:      p.Out,
				Attributes: attrs,
			},
			ForceReadOnly: p.ForceReadOnly,
		}
	}
	return j, nil
}
