package main

import (
	"fmt"
	"io"

	"github.com/sigfmt/sigfmt/format"
	"github.com/sigfmt/sigfmt/sig"
)

type KeywordsCmd struct {
	Dialect string `help:"Dialect to list." default:"csharp" enum:"csharp,vb" short:"d" env:"SIGFMT_DIALECT"`
	Types   bool   `help:"List primitive type keywords instead of reserved words."`
}

func (c *KeywordsCmd) Run(g *Globals) error {
	d, _ := format.LookupDialect(c.Dialect)
	if c.Types {
		return writeTypeKeywords(g.Stdout, d)
	}
	for _, w := range d.ReservedWords() {
		if _, err := fmt.Fprintln(g.Stdout, w); err != nil {
			return err
		}
	}
	return nil
}

func writeTypeKeywords(w io.Writer, d *format.Dialect) error {
	for wk := sig.WellKnownVoid; wk <= sig.WellKnownDateTime; wk++ {
		kw, ok := d.TypeKeyword(wk)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "System.%-10s %s\n", wk, kw); err != nil {
			return err
		}
	}
	return nil
}
