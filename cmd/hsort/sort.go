package main

import (
	"slices"

	"github.com/humanesort/humanesort"

	"github.com/scott-cotton/cli"
)

func sortLines(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		return err
	}
	lines, err := readArgLines(cc, args)
	if err != nil {
		return err
	}
	lines = sortSlice(lines, cfg.Reverse, cfg.Unique)
	return writeLines(cc.Out, lines)
}

// sortSlice orders lines humanely. Descending order reverses the
// comparator rather than the result so equal-ranked lines keep their
// input order either way.
func sortSlice(lines []string, reverse, unique bool) []string {
	slices.SortStableFunc(lines, func(a, b string) int {
		o := humanesort.Compare(a, b)
		if reverse {
			o = o.Reverse()
		}
		return int(o)
	})
	if unique {
		lines = slices.CompactFunc(lines, func(a, b string) bool {
			return humanesort.Compare(a, b) == humanesort.Equal
		})
	}
	return lines
}
