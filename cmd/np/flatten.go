package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/signadot/nestpath/ir"
)

func flatten(cfg *FlattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flatten.Parse(cc, args)
	if err != nil {
		cfg.Flatten.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachDoc(cfg.MainConfig, cc, args, func(i int, _ string, doc *ir.Node) error {
		if err := writeSep(cfg.MainConfig, cc.Out, i); err != nil {
			return err
		}
		return cfg.encode(cc.Out, ir.Flatten(doc, cfg.Sep))
	})
}

func unflatten(cfg *UnflattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unflatten.Parse(cc, args)
	if err != nil {
		cfg.Unflatten.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachDoc(cfg.MainConfig, cc, args, func(i int, file string, doc *ir.Node) error {
		res, err := ir.Unflatten(doc, cfg.Sep)
		if err != nil {
			return fmt.Errorf("error unflattening %s: %w", file, err)
		}
		if err := writeSep(cfg.MainConfig, cc.Out, i); err != nil {
			return err
		}
		return cfg.encode(cc.Out, res)
	})
}

func paths(cfg *PathsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Paths.Parse(cc, args)
	if err != nil {
		cfg.Paths.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return eachDoc(cfg.MainConfig, cc, args, func(_ int, _ string, doc *ir.Node) error {
		return writeLines(cc.Out, ir.LeafPaths(doc))
	})
}

func writeLines(w io.Writer, lines []string) error {
	for _, ln := range lines {
		if _, err := io.WriteString(w, ln+"\n"); err != nil {
			return err
		}
	}
	return nil
}
