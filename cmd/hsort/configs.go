package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// useColor mirrors the color flag and otherwise colors only when
// writing to a terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type SortConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r aliases=reverse desc='sort descending'"`
	Unique  bool `cli:"name=u aliases=unique desc='keep one line per humane rank'"`

	Sort *cli.Command
}

type CmpConfig struct {
	*MainConfig

	Cmp *cli.Command
}

type TokensConfig struct {
	*MainConfig
	Info bool `cli:"name=i aliases=info desc='print one line per token with its class'"`

	Tokens *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Diff bool `cli:"name=diff desc='show a diff against the humane order'"`

	Check *cli.Command
}

type YAMLConfig struct {
	*MainConfig
	Key     string `cli:"name=key desc='expression extracting the sort key from an element'"`
	Reverse bool   `cli:"name=r aliases=reverse desc='sort descending'"`

	YAML *cli.Command
}
