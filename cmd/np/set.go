package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/nestpath/ir"
	"github.com/signadot/nestpath/ir/dpath"
	"github.com/signadot/nestpath/parse"
)

type assignment struct {
	path  dpath.Path
	value *ir.Node
}

// parseAssignment reads "path=value". The value is read as a yaml scalar or
// flow collection, so "n=1" stores a number and "s='1'" a string.
func parseAssignment(a string) (assignment, error) {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return assignment{}, fmt.Errorf("%w: %q: expected path=value", cli.ErrUsage, a)
	}
	p, err := dpath.Parse(key)
	if err != nil {
		return assignment{}, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return assignment{path: p, value: parse.Value(val)}, nil
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(cfg.Assign) == 0 {
		return fmt.Errorf("%w: set requires at least one -e path=value", cli.ErrUsage)
	}
	return eachDoc(cfg.MainConfig, cc, args, func(i int, file string, doc *ir.Node) error {
		if err := setDoc(cfg.MainConfig, cc.Out, doc, cfg.Assign, i); err != nil {
			return fmt.Errorf("error setting in %s: %w", file, err)
		}
		return nil
	})
}

func setDoc(cfg *MainConfig, w io.Writer, doc *ir.Node, as []assignment, i int) error {
	for _, a := range as {
		if err := doc.SetPath(a.path, a.value.Clone()); err != nil {
			return err
		}
	}
	if err := writeSep(cfg, w, i); err != nil {
		return err
	}
	return cfg.encode(w, doc)
}
