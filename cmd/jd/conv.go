package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jsondom/jsondom"

	"github.com/scott-cotton/cli"
)

func conv(cfg *ConvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Conv.Parse(cc, args)
	if err != nil {
		cfg.Conv.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := convArg(cfg, cc.Out, arg); err != nil {
			return err
		}
	}
	return nil
}

func convArg(cfg *ConvConfig, w io.Writer, arg string) error {
	from, to, err := convFormats(cfg, arg)
	if err != nil {
		return err
	}
	data, err := readArg(arg)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", arg, err)
	}
	var v *jsondom.Value
	switch from {
	case "json":
		v, err = jsondom.ParseValue(data, cfg.parseOpts()...)
	case "yaml":
		v, err = jsondom.FromYAML(data)
	}
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	switch to {
	case "json":
		if err := v.Ref().Encode(w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		_, err = io.WriteString(w, "\n")
		return err
	case "yaml":
		out, err := jsondom.ToYAML(v.Ref())
		if err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		_, err = w.Write(out)
		return err
	}
	return nil
}

func convFormats(cfg *ConvConfig, arg string) (from, to string, err error) {
	from = cfg.From
	if from == "" {
		switch filepath.Ext(arg) {
		case ".yaml", ".yml":
			from = "yaml"
		default:
			from = "json"
		}
	}
	if err := checkFormat(from); err != nil {
		return "", "", err
	}
	to = cfg.To
	if to == "" {
		if from == "json" {
			to = "yaml"
		} else {
			to = "json"
		}
	}
	if err := checkFormat(to); err != nil {
		return "", "", err
	}
	return from, to, nil
}

func checkFormat(f string) error {
	switch f {
	case "json", "yaml":
		return nil
	}
	return fmt.Errorf("%w: unknown format %q", cli.ErrUsage, f)
}
