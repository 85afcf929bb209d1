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
	opts := append(sOpts, &cli.Opt{
		Name:        "I",
		Aliases:     []string{"ifmt"},
		Description: "input format: json/j, xml/x (default from file suffix or content)",
		Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
	})

	return cli.NewCommandAt(&cfg.Main, "treeview").
		WithSynopsis("treeview [opts] command [opts]").
		WithDescription("treeview loads json and xml documents into a browsable tree.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return treeviewMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			PathCommand(cfg),
			CountCommand(cfg),
			FindCommand(cfg),
			RoundtripCommand(cfg),
			PatchCommand(cfg),
			ServeCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-d depth | -all] [files]").
		WithDescription("show documents as a tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("serialize the subtree at a path, such as $.a[1] or /a/b[0]").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func PathCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PathConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Path, "path").
		WithAliases("p", "paths").
		WithOpts(opts...).
		WithSynopsis("path [-v] [files]").
		WithDescription("list the path of every node").
		WithRun(func(cc *cli.Context, args []string) error {
			return paths(cfg, cc, args)
		})
}

func CountCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CountConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Count, "count").
		WithAliases("c").
		WithSynopsis("count [files]").
		WithDescription("count the nodes of documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return count(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithOpts(opts...).
		WithSynopsis("find [-s] <expr> [files]").
		WithDescription("list nodes for which expr holds, e.g. 'type == \"Number\" && depth > 1'").
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

func RoundtripCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RoundtripConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Roundtrip, "roundtrip").
		WithAliases("rt").
		WithOpts(opts...).
		WithSynopsis("roundtrip [-q] [files]").
		WithDescription("check that serialized documents load back to the same tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return roundtrip(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("pa").
		WithOpts(opts...).
		WithSynopsis("patch [-s] <patch.json> [files]").
		WithDescription("apply an RFC 6902 json patch to json documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithOpts(opts...).
		WithSynopsis("serve [-debug]").
		WithDescription("serve the tree models as json-rpc 2.0 on stdin and stdout").
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}
