package main

import (
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/signadot/nestpath"
	"github.com/signadot/nestpath/ir"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	want := splitKeys(cfg.Has)
	missing := false
	err = eachDoc(cfg.MainConfig, cc, args, func(_ int, file string, doc *ir.Node) error {
		if len(want) == 0 {
			return writeLines(cc.Out, nestpath.AllKeys(doc))
		}
		if !nestpath.HasAllKeys(doc, want...) {
			theLog.Warn("missing keys", "file", file, "keys", cfg.Has)
			missing = true
		}
		return nil
	})
	if err != nil {
		return err
	}
	if missing {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func splitKeys(s string) []string {
	var res []string
	for k := range strings.SplitSeq(s, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			res = append(res, k)
		}
	}
	return res
}
