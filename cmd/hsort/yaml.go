package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/humanesort/humanesort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func yamlSort(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		return err
	}
	var prg *vm.Program
	if cfg.Key != "" {
		prg, err = expr.Compile(cfg.Key)
		if err != nil {
			return fmt.Errorf("%w: bad key expression %q: %w", cli.ErrUsage, cfg.Key, err)
		}
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		if err := yamlSortFile(cfg, cc, prg, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("---\n"))
		}
	}
	return nil
}

func yamlSortFile(cfg *YAMLConfig, cc *cli.Context, prg *vm.Program, file string) error {
	var r io.Reader = cc.In
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", file, err)
	}
	var elts []any
	if err := yaml.Unmarshal(in, &elts); err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	elts, err = sortElements(elts, prg, cfg.Reverse)
	if err != nil {
		return fmt.Errorf("error sorting %s: %w", file, err)
	}
	out, err := yaml.Marshal(elts)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	if _, err := cc.Out.Write(out); err != nil {
		return fmt.Errorf("error writing %s: %w", file, err)
	}
	return nil
}

// sortElements orders elts by the humane ordering of their extracted
// keys, stably, so elements with equal keys keep document order.
func sortElements(elts []any, prg *vm.Program, reverse bool) ([]any, error) {
	type keyed struct {
		key string
		elt any
	}
	pairs := make([]keyed, len(elts))
	for i, elt := range elts {
		key, err := elementKey(prg, elt)
		if err != nil {
			return nil, fmt.Errorf("key of element %d: %w", i, err)
		}
		pairs[i] = keyed{key: key, elt: elt}
	}
	slices.SortStableFunc(pairs, func(a, b keyed) int {
		o := humanesort.Compare(a.key, b.key)
		if reverse {
			o = o.Reverse()
		}
		return int(o)
	})
	for i := range pairs {
		elts[i] = pairs[i].elt
	}
	return elts, nil
}

// elementKey evaluates the key program against one element. Without a
// program the element's own text is the key.
func elementKey(prg *vm.Program, elt any) (string, error) {
	if prg == nil {
		if s, ok := elt.(string); ok {
			return s, nil
		}
		return fmt.Sprintf("%v", elt), nil
	}
	res, err := expr.Run(prg, elt)
	if err != nil {
		return "", err
	}
	switch v := res.(type) {
	case string:
		return v, nil
	case nil:
		return "", nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}
