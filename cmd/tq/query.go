package main

import (
	"fmt"

	"github.com/beckdong/BitTornado/typed"

	"github.com/scott-cotton/cli"
)

var openQueryKind = typed.QueryKind(typed.MapKind[string, any]{Name: "query"})

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	kind := openQueryKind
	if cfg.File != "" || cfg.Kind != "" {
		def, err := loadMapDef(cfg.File, cfg.Kind)
		if err != nil {
			return err
		}
		kind = def.TextKind()
	}
	s, err := encodeQuery(kind, args)
	if err != nil {
		return err
	}
	fmt.Fprintln(cc.Out, s)
	return nil
}

func encodeQuery(kind *typed.MapKind[string, any], args []string) (string, error) {
	fields := make([]typed.Pair, 0, len(args))
	for _, arg := range args {
		p, err := parseKV(arg)
		if err != nil {
			return "", err
		}
		fields = append(fields, p)
	}
	q, err := typed.NewQueryMap(kind, nil, fields...)
	if err != nil {
		return "", err
	}
	return q.Encode()
}
