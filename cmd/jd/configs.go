package main

import (
	"io"
	"os"

	"github.com/jsondom/jsondom/encode"
	"github.com/jsondom/jsondom/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Pretty bool `cli:"name=p aliases=pretty desc='pretty-print output'"`
	Indent int  `cli:"name=indent desc='spaces per indent level (default 2)'"`
	Color  bool `cli:"name=color desc='encode with color'"`
	Views  bool `cli:"name=views desc='borrow string bytes from the input buffer'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.Option {
	if cfg.Views {
		return []parse.Option{parse.ViewStrings()}
	}
	return nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.Option {
	res := []encode.Option{encode.Pretty(cfg.Pretty)}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.Color {
		return append(res, encode.WithColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.WithColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Compact bool `cli:"name=compact desc='compact output instead of pretty'"`
	View    *cli.Command
}

type ConvConfig struct {
	*MainConfig

	From string `cli:"name=I aliases=ifmt desc='input format: json or yaml (default by extension)'"`
	To   string `cli:"name=O aliases=ofmt desc='output format: json or yaml (default the other one)'"`

	Conv *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress output, only set the exit code'"`
	Diff  *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Filter *cli.Command
}
