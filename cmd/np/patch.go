package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/nestpath"
	"github.com/signadot/nestpath/ir"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a json patch argument", cli.ErrUsage)
	}
	ops, err := getPatch(cfg, args[0])
	if err != nil {
		return err
	}
	return eachDoc(cfg.MainConfig, cc, args[1:], func(i int, file string, doc *ir.Node) error {
		res, err := nestpath.ApplyJSONPatch(doc, ops)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := writeSep(cfg.MainConfig, cc.Out, i); err != nil {
			return err
		}
		return cfg.encode(cc.Out, res)
	})
}

func getPatch(cfg *PatchConfig, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("error reading patch %s: %w", arg, err)
	}
	return d, nil
}
