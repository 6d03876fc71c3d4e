package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/nestpath/ir"
	"github.com/signadot/nestpath/parse"
)

func readDoc(cfg *MainConfig, cc *cli.Context, file string) (*ir.Node, error) {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", file, err)
	}
	y, err := parse.Parse(d, cfg.parseOpts(file)...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return y, nil
}

// eachDoc calls f with every input document in turn. No files means stdin.
func eachDoc(cfg *MainConfig, cc *cli.Context, files []string, f func(i int, file string, doc *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		doc, err := readDoc(cfg, cc, file)
		if err != nil {
			return err
		}
		if err := f(i, file, doc); err != nil {
			return err
		}
	}
	return nil
}

// writeSep separates yaml documents after the first.
func writeSep(cfg *MainConfig, w io.Writer, i int) error {
	if i == 0 || cfg.Flat || !cfg.outFormat().IsYAML() {
		return nil
	}
	if _, err := w.Write([]byte("---\n")); err != nil {
		return fmt.Errorf("unable to write separator: %w", err)
	}
	return nil
}
