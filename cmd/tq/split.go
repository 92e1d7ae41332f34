package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/beckdong/BitTornado/typed"

	"github.com/scott-cotton/cli"
)

func split(cfg *SplitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Split.Parse(cc, args)
	if err != nil {
		cfg.Split.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		d, err := io.ReadAll(cc.In)
		if err != nil {
			return err
		}
		args = []string{strings.TrimRight(string(d), "\r\n")}
	}
	toks, err := splitTokens(cfg.Sep, args)
	if err != nil {
		return err
	}
	for _, tok := range toks {
		fmt.Fprintln(cc.Out, tok)
	}
	return nil
}

// splitTokens splits each text on sep.
func splitTokens(sep string, texts []string) ([]string, error) {
	l, err := typed.NewSplitList(sep, nil)
	if err != nil {
		return nil, err
	}
	for _, text := range texts {
		if err := l.Extend(text); err != nil {
			return nil, err
		}
	}
	return l.Slice(), nil
}
