package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/nestpath/encode"
	"github.com/signadot/nestpath/format"
	"github.com/signadot/nestpath/ir"
	"github.com/signadot/nestpath/parse"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Pretty bool `cli:"name=pretty aliases=p desc='indent json output'"`
	Flat   bool `cli:"name=flat desc='write one path = value line per leaf'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return 0, false
}

// parseOpts picks the input format of the document called name: -I, then
// -j/-y, then the file extension. Otherwise the parser detects it.
func (cfg *MainConfig) parseOpts(name string) []parse.ParseOption {
	if cfg.InFormat != nil {
		return []parse.ParseOption{parse.ParseFormat(*cfg.InFormat)}
	}
	if f, ok := cfg.flagFormat(); ok {
		return []parse.ParseOption{parse.ParseFormat(f)}
	}
	if f, ok := format.FromFilename(name); ok {
		return []parse.ParseOption{parse.ParseFormat(f)}
	}
	return nil
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	f, _ := cfg.flagFormat()
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
		encode.EncodePretty(cfg.Pretty),
	}
	if cfg.Flat {
		res = append(res, encode.EncodeFlat(""))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor honors -color when given and otherwise colors terminal output.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encode(w io.Writer, y *ir.Node) error {
	if err := encode.Encode(y, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Assign []assignment

	Set *cli.Command
}

type DelConfig struct {
	*MainConfig

	Del *cli.Command
}

type ExistsConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='print nothing, only set the exit code'"`

	Exists *cli.Command
}

type FlattenConfig struct {
	*MainConfig
	Sep string `cli:"name=sep desc='path separator'"`

	Flatten *cli.Command
}

type UnflattenConfig struct {
	*MainConfig
	Sep string `cli:"name=sep desc='path separator'"`

	Unflatten *cli.Command
}

type PathsConfig struct {
	*MainConfig

	Paths *cli.Command
}

type KeysConfig struct {
	*MainConfig
	Has string `cli:"name=has desc='comma separated keys which must all be present'"`

	Keys *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Strings bool `cli:"name=s desc='show character diffs of changed strings'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	String bool `cli:"name=s desc='patch arg is the patch text, not a file'"`

	Patch *cli.Command
}
