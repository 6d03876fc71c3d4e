package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "np").
		WithSynopsis("np [opts] command [opts]").
		WithDescription("np reads and writes nested json and yaml documents by dotted path.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return npMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			DelCommand(cfg),
			ExistsCommand(cfg),
			FlattenCommand(cfg),
			UnflattenCommand(cfg),
			PathsCommand(cfg),
			KeysCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the value at a path, such as users.[0].name").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "e",
			Description: "value to store, parsed as yaml; repeatable",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(assignOptTypeFunc(&cfg.Assign)), "(path=val)"),
		})
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set -e path=val [-e path2=val2]... [files]").
		WithDescription("set values, creating missing objects and arrays on the way").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func assignOptTypeFunc(dst *[]assignment) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		as, err := parseAssignment(a)
		if err != nil {
			return nil, err
		}
		*dst = append(*dst, as)
		return 0, nil
	}
}

func DelCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DelConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Del, "del").
		WithAliases("d", "rm").
		WithSynopsis("del <path> [files]").
		WithDescription("delete the value at a path; later array elements move down").
		WithRun(func(cc *cli.Context, args []string) error {
			return del(cfg, cc, args)
		})
}

func ExistsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExistsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Exists, "exists").
		WithAliases("e", "x").
		WithSynopsis("exists [-q] <path> [files]").
		WithDescription("report whether a path exists; exits 1 if it is missing anywhere").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return exists(cfg, cc, args)
		})
}

func FlattenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FlattenConfig{MainConfig: mainCfg, Sep: "."}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Flatten, "flatten").
		WithAliases("f").
		WithSynopsis("flatten [-sep s] [files]").
		WithDescription("map every leaf path to its value").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return flatten(cfg, cc, args)
		})
}

func UnflattenCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnflattenConfig{MainConfig: mainCfg, Sep: "."}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Unflatten, "unflatten").
		WithAliases("u").
		WithSynopsis("unflatten [-sep s] [files]").
		WithDescription("rebuild nested documents from flat path maps").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return unflatten(cfg, cc, args)
		})
}

func PathsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PathsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Paths, "paths").
		WithAliases("ls").
		WithSynopsis("paths [files]").
		WithDescription("list leaf paths, one per line").
		WithRun(func(cc *cli.Context, args []string) error {
			return paths(cfg, cc, args)
		})
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Keys, "keys").
		WithAliases("k").
		WithSynopsis("keys [-has k1,k2] [files]").
		WithDescription("list object keys found at any depth, or check for some").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("di").
		WithSynopsis("diff [-r] [-s] a b").
		WithDescription("compare two documents leaf by leaf; exits 1 if they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-s] <json-patch> [files]").
		WithDescription("apply an RFC 6902 json patch").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
