package main

import (
	"bytes"
	"fmt"

	"github.com/beckdong/BitTornado/libdiff"
	"github.com/beckdong/BitTornado/schema"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	def, err := loadMapDef(cfg.File, cfg.Kind)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	n := 0
	return forEachArg(cc, args, func(name string, d []byte) error {
		if cfg.Stat {
			ins, del, err := statDoc(def, d)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cc.Out, "%s: %d insertions(+), %d deletions(-)\n", name, ins, del)
			return err
		}
		out, err := checkDoc(def, d, cfg.Diff, colors)
		if err != nil {
			return err
		}
		if n > 0 {
			cc.Out.Write([]byte("---\n"))
		}
		n++
		_, err = cc.Out.Write(out)
		return err
	})
}

// checkDoc coerces the mapping in d into def's kind and renders the
// result, or with diff set the line diff from the input to the result.
func checkDoc(def *schema.MapDef, d []byte, diff bool, colors *libdiff.Colors) ([]byte, error) {
	inText, out, err := coerceDoc(def, d)
	if err != nil {
		return nil, err
	}
	if !diff {
		return out, nil
	}
	if bytes.Equal(inText, out) {
		return nil, nil
	}
	return []byte(libdiff.Lines(string(inText), string(out), colors)), nil
}

// statDoc counts the lines coercion adds to and removes from d.
func statDoc(def *schema.MapDef, d []byte) (ins, del int, err error) {
	inText, out, err := coerceDoc(def, d)
	if err != nil {
		return 0, 0, err
	}
	ins, del = libdiff.Stat(string(inText), string(out))
	return ins, del, nil
}

// coerceDoc returns the mapping in d and its coercion into def's kind,
// both encoded as YAML.
func coerceDoc(def *schema.MapDef, d []byte) (inText, out []byte, err error) {
	in, err := decodeMapping(d)
	if err != nil {
		return nil, nil, err
	}
	m, err := def.New(pairs(in))
	if err != nil {
		return nil, nil, err
	}
	out, err = encodeYAML(toMapSlice(m))
	if err != nil {
		return nil, nil, err
	}
	inText, err = encodeYAML(plain(in))
	if err != nil {
		return nil, nil, err
	}
	return inText, out, nil
}
