package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/nestpath/ir"
	"github.com/signadot/nestpath/ir/dpath"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	p, err := dpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	missing := 0
	err = eachDoc(cfg.MainConfig, cc, args[1:], func(i int, file string, doc *ir.Node) error {
		found, err := getDoc(cfg.MainConfig, cc.Out, doc, p, i)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", p, file, err)
		}
		if !found {
			theLog.Warn("path not found", "path", p.String(), "file", file)
			missing++
		}
		return nil
	})
	if err != nil {
		return err
	}
	if missing > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// getDoc writes the value at p. A path that does not exist is reported
// through found rather than err.
func getDoc(cfg *MainConfig, w io.Writer, doc *ir.Node, p dpath.Path, i int) (found bool, err error) {
	v, err := doc.NavigatePath(p)
	if errors.Is(err, ir.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := writeSep(cfg, w, i); err != nil {
		return true, err
	}
	return true, cfg.encode(w, v)
}
