package main

import (
	"fmt"
	"io"

	"github.com/humanesort/humanesort/token"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

var (
	numericColor = color.RGB(128, 216, 236).SprintfFunc()
	textColor    = color.RGB(8, 196, 16).SprintfFunc()
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args, err = readLines(nil, cc.In)
		if err != nil {
			return err
		}
	}
	colored := cfg.useColor(cc.Out)
	for _, arg := range args {
		if err := writeTokens(cc.Out, arg, colored, cfg.Info); err != nil {
			return err
		}
	}
	return nil
}

func writeTokens(w io.Writer, s string, colored, info bool) error {
	toks := token.Tokenize(nil, []byte(s))
	if info {
		for i := range toks {
			if _, err := fmt.Fprintf(w, "%s\n", toks[i].Info()); err != nil {
				return err
			}
		}
		return nil
	}
	for i := range toks {
		seg := toks[i].String()
		if colored {
			if toks[i].Type == token.Numeric {
				seg = numericColor("%s", seg)
			} else {
				seg = textColor("%s", seg)
			}
		} else if toks[i].Type == token.Numeric {
			seg = "[" + seg + "]"
		}
		if _, err := io.WriteString(w, seg); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}
