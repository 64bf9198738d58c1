package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/jsondom/jsondom"
	"github.com/jsondom/jsondom/encode"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := diffText(cfg, args[0])
	if err != nil {
		return err
	}
	b, err := diffText(cfg, args[1])
	if err != nil {
		return err
	}
	dmp := diffpatch.New()
	aCh, bCh, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(aCh, bCh, false), lines)

	changed := false
	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			if !cfg.Quiet {
				if _, err := io.WriteString(cc.Out, prefixLines(" ", d.Text)); err != nil {
					return err
				}
			}
		case diffpatch.DiffInsert:
			changed = true
			if !cfg.Quiet {
				if _, err := ins.Fprint(cc.Out, prefixLines("+", d.Text)); err != nil {
					return err
				}
			}
		case diffpatch.DiffDelete:
			changed = true
			if !cfg.Quiet {
				if _, err := del.Fprint(cc.Out, prefixLines("-", d.Text)); err != nil {
					return err
				}
			}
		}
	}
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffText renders arg in a stable pretty form so the line diff compares
// structure rather than input formatting.
func diffText(cfg *DiffConfig, arg string) (string, error) {
	data, err := readArg(arg)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", arg, err)
	}
	v, err := jsondom.ParseValue(data, cfg.parseOpts()...)
	if err != nil {
		return "", fmt.Errorf("error decoding %s: %w", arg, err)
	}
	buf := bytes.NewBuffer(nil)
	if err := v.Ref().Encode(buf, encode.Pretty(true)); err != nil {
		return "", fmt.Errorf("error encoding %s: %w", arg, err)
	}
	buf.WriteByte('\n')
	return buf.String(), nil
}

func prefixLines(prefix, text string) string {
	buf := bytes.NewBuffer(nil)
	for len(text) > 0 {
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i+1], text[i+1:]
		} else {
			text = ""
		}
		buf.WriteString(prefix)
		buf.WriteString(line)
	}
	return buf.String()
}
