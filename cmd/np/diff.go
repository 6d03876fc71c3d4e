package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/nestpath/ir"
	"github.com/signadot/nestpath/libdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := readDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := readDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	differs, err := diffDocs(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffDocs(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	d := libdiff.Diff(a, b)
	if len(d) == 0 {
		return false, nil
	}
	if cfg.Reverse {
		d = libdiff.Reverse(d)
	}
	for _, c := range d {
		ln := c.String()
		if cfg.Strings {
			if s, ok := c.StringDiff(); ok {
				ln = fmt.Sprintf("~ %s: %s", c.Path, s)
			}
		}
		if _, err := fmt.Fprintln(w, ln); err != nil {
			return true, err
		}
	}
	return true, nil
}
