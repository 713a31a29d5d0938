package main

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"

	"github.com/sigfmt/sigfmt"
	"github.com/sigfmt/sigfmt/format"
)

type NumberCmd struct {
	Value      string `arg:"" help:"Integer to format (decimal, 0x hex or 0b binary)."`
	Bits       int    `help:"Integer width (32 or 64)." default:"32"`
	Unsigned   bool   `help:"Treat the value as unsigned." short:"u"`
	Decimal    bool   `help:"Print decimal instead of hex."`
	Separators bool   `help:"Group digits with '_'."`
	Dialect    string `help:"Dialect for the hex prefix." default:"csharp" enum:"csharp,vb" short:"d" env:"SIGFMT_DIALECT"`
	Locale     string `help:"Locale for decimal numbers." default:"und" env:"SIGFMT_LOCALE"`
}

func (c *NumberCmd) Validate() error {
	if c.Bits != 32 && c.Bits != 64 {
		return fmt.Errorf("--bits must be 32 or 64, got %d", c.Bits)
	}
	return nil
}

func (c *NumberCmd) Run(g *Globals) error {
	s, err := c.format()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.Stdout, s)
	return err
}

func (c *NumberCmd) format() (string, error) {
	d, _ := format.LookupDialect(c.Dialect)
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return "", sigfmt.Errorf(sigfmt.CodeInvalidArgument, "invalid locale %q: %v", c.Locale, err)
	}
	n := format.NewNumbers(c.Decimal, c.Separators, d.HexPrefix(), tag)

	if c.Unsigned {
		v, err := strconv.ParseUint(c.Value, 0, c.Bits)
		if err != nil {
			return "", sigfmt.Errorf(sigfmt.CodeInvalidArgument, "invalid value: %v", err)
		}
		if c.Bits == 32 {
			return n.UInt32(uint32(v)), nil
		}
		return n.UInt64(v), nil
	}
	v, err := strconv.ParseInt(c.Value, 0, c.Bits)
	if err != nil {
		return "", sigfmt.Errorf(sigfmt.CodeInvalidArgument, "invalid value: %v", err)
	}
	if c.Bits == 32 {
		return n.Int32(int32(v)), nil
	}
	return n.Int64(v), nil
}
