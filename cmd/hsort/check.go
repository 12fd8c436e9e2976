package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/humanesort/humanesort"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	unsorted := 0
	for _, file := range args {
		lines, err := readFileLines(nil, cc, file)
		if err != nil {
			return err
		}
		if humanesort.StringsAreSorted(lines) {
			fmt.Fprintf(cc.Out, "%s: ok\n", file)
			continue
		}
		unsorted++
		fmt.Fprintf(cc.Out, "%s: not in humane order\n", file)
		if cfg.Diff {
			writeOrderDiff(cc.Out, lines, cfg.useColor(cc.Out))
		}
	}
	if unsorted > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// orderDiff diffs the given line order against the humane order.
func orderDiff(lines []string) []diffpatch.Diff {
	have := strings.Join(lines, "\n") + "\n"
	want := strings.Join(humanesort.SortedStrings(lines), "\n") + "\n"
	dmp := diffpatch.New()
	return dmp.DiffMain(have, want, true)
}

// writeOrderDiff shows how the given line order differs from the
// humane order.
func writeOrderDiff(w io.Writer, lines []string, colored bool) {
	diffs := orderDiff(lines)
	if colored {
		dmp := diffpatch.New()
		io.WriteString(w, dmp.DiffPrettyText(diffs))
		return
	}
	for _, diff := range diffs {
		switch diff.Type {
		case diffpatch.DiffInsert:
			fmt.Fprintf(w, "+%s", diff.Text)
		case diffpatch.DiffDelete:
			fmt.Fprintf(w, "-%s", diff.Text)
		case diffpatch.DiffEqual:
			io.WriteString(w, diff.Text)
		}
	}
}
