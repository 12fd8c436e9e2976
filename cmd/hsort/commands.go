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
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "hsort").
		WithSynopsis("hsort [opts] command [opts]").
		WithDescription("hsort orders text the way humans expect: item-2 before item-11.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return hsortMain(cfg, cc, args)
		}).
		WithSubs(
			SortCommand(cfg),
			CmpCommand(cfg),
			TokensCommand(cfg),
			CheckCommand(cfg),
			YAMLCommand(cfg))
}

func SortCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SortConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("sort").
		WithAliases("s").
		WithSynopsis("sort [-r] [-u] [files]").
		WithDescription("sort lines of files or stdin in humane order").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sortLines(cfg, cc, args)
		})
	cfg.Sort = cmd
	return cmd
}

func CmpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CmpConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("cmp").
		WithAliases("c").
		WithSynopsis("cmp <a> <b>").
		WithDescription("print the humane ordering of two strings").
		WithRun(func(cc *cli.Context, args []string) error {
			return cmp(cfg, cc, args)
		})
	cfg.Cmp = cmd
	return cmd
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("tokens").
		WithAliases("t", "tok").
		WithSynopsis("tokens [-i] [strings]").
		WithDescription("show the numeric/text token breakdown of strings or stdin lines").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
	cfg.Tokens = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("ck").
		WithSynopsis("check [-diff] [files]").
		WithDescription("verify files are already in humane order").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func YAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &YAMLConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("yaml").
		WithAliases("y").
		WithSynopsis("yaml [-key expr] [-r] [files]").
		WithDescription("sort the elements of a top-level YAML/JSON array by a humane key").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yamlSort(cfg, cc, args)
		})
	cfg.YAML = cmd
	return cmd
}
