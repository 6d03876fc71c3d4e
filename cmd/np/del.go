package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/nestpath/ir"
	"github.com/signadot/nestpath/ir/dpath"
)

func del(cfg *DelConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Del.Parse(cc, args)
	if err != nil {
		cfg.Del.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: del requires one argument, a path", cli.ErrUsage)
	}
	p, err := dpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(i int, file string, doc *ir.Node) error {
		if err := delDoc(cfg.MainConfig, cc.Out, doc, p, i); err != nil {
			return fmt.Errorf("error deleting from %s: %w", file, err)
		}
		return nil
	})
}

func delDoc(cfg *MainConfig, w io.Writer, doc *ir.Node, p dpath.Path, i int) error {
	if _, err := doc.DeletePath(p); err != nil {
		return err
	}
	if err := writeSep(cfg, w, i); err != nil {
		return err
	}
	return cfg.encode(w, doc)
}

func exists(cfg *ExistsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Exists.Parse(cc, args)
	if err != nil {
		cfg.Exists.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: exists requires one argument, a path", cli.ErrUsage)
	}
	p, err := dpath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	missing := false
	err = eachDoc(cfg.MainConfig, cc, args[1:], func(_ int, file string, doc *ir.Node) error {
		ok := existsDoc(doc, p)
		if !ok {
			missing = true
		}
		if cfg.Quiet {
			return nil
		}
		_, err := fmt.Fprintf(cc.Out, "%s: %t\n", file, ok)
		return err
	})
	if err != nil {
		return err
	}
	if missing {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func existsDoc(doc *ir.Node, p dpath.Path) bool {
	_, err := doc.NavigatePath(p)
	return err == nil
}
