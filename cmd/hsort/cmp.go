package main

import (
	"fmt"

	"github.com/humanesort/humanesort"

	"github.com/scott-cotton/cli"
)

func cmp(cfg *CmpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cmp.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: cmp requires two arguments", cli.ErrUsage)
	}
	fmt.Fprintf(cc.Out, "%s\n", humanesort.Compare(args[0], args[1]))
	return nil
}
