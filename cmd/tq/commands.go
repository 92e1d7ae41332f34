package main

import (
	"github.com/beckdong/BitTornado/typed"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "tq").
		WithSynopsis("tq [opts] command [opts]").
		WithDescription("tq builds typed containers from kind files and checks documents against them.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tqMain(cfg, cc, args)
		}).
		WithSubs(
			QueryCommand(cfg),
			SplitCommand(cfg),
			CheckCommand(cfg),
			PatchCommand(cfg),
			KindsCommand(cfg))
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query [-f kinds.yaml -k kind] key=val...").
		WithDescription(queryDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

const queryDescription = `query stores key=val arguments in a query map and prints its encoding.

Values are read as YAML scalars, so 'port=6881' stores a number and
'event=started' text.  Without -k the map accepts any key and value;
text and byte values are escaped as they are and everything else must
be an integer.`

func SplitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SplitConfig{MainConfig: mainCfg, Sep: typed.DefaultSep}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Split, "split").
		WithAliases("s").
		WithSynopsis("split [-sep sep] [text...]").
		WithDescription("split delimited text, printing the non-empty tokens one per line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return split(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check -f kinds.yaml -k kind [-diff | -stat] [files]").
		WithDescription("coerce YAML mappings into a map kind and print the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch -f kinds.yaml -k kind [-merge] <patchfile> [files]").
		WithDescription("apply a JSON patch to YAML mappings of a map kind, revalidating the result").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func KindsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KindsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Kinds, "kinds").
		WithAliases("k").
		WithSynopsis("kinds -f kinds.yaml | kinds -conv").
		WithDescription("list the kinds of a kind file or the conversions kinds may name").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return kinds(cfg, cc, args)
		})
}
