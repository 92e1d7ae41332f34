package main

import (
	"fmt"

	"github.com/beckdong/BitTornado/schema"
	"github.com/beckdong/BitTornado/typed"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	def, err := loadMapDef(cfg.File, cfg.Kind)
	if err != nil {
		return err
	}
	pd, err := readArg(cc, args[0])
	if err != nil {
		return err
	}
	// patches may be written in YAML
	p, err := yaml.YAMLToJSON(pd)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	n := 0
	return forEachArg(cc, args[1:], func(_ string, d []byte) error {
		out, err := patchDoc(def, d, p, cfg.Merge)
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

// patchDoc coerces the mapping in d into def's kind, applies the JSON
// patch p and renders the result.
func patchDoc(def *schema.MapDef, d, p []byte, merge bool) ([]byte, error) {
	in, err := decodeMapping(d)
	if err != nil {
		return nil, err
	}
	m, err := def.New(pairs(in))
	if err != nil {
		return nil, err
	}
	switch x := m.(type) {
	case *typed.QueryMap[any]:
		err = applyPatch(x.Map, p, merge)
	case *typed.Map[string, any]:
		err = applyPatch(x, p, merge)
	case *typed.Map[typed.ByteKey, any]:
		err = applyPatch(x, p, merge)
	default:
		err = fmt.Errorf("cannot patch %T", m)
	}
	if err != nil {
		return nil, err
	}
	return encodeYAML(toMapSlice(m))
}

func applyPatch[K ~string](m *typed.Map[K, any], p []byte, merge bool) error {
	if merge {
		return typed.ApplyMergePatch(m, p)
	}
	return typed.ApplyPatch(m, p)
}
