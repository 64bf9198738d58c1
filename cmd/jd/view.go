package main

import (
	"fmt"
	"io"

	"github.com/jsondom/jsondom"
	"github.com/jsondom/jsondom/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := viewArg(cfg, cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}

func viewArg(cfg *ViewConfig, w io.Writer, arg string) error {
	data, err := readArg(arg)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", arg, err)
	}
	v, err := jsondom.ParseValue(data, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	opts := append(cfg.encOpts(w), encode.Pretty(!cfg.Compact))
	if err := v.Ref().Encode(w, opts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", arg, err)
	}
	_, err = io.WriteString(w, "\n")
	return err
}
