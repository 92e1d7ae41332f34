package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/beckdong/BitTornado/conv"
	"github.com/beckdong/BitTornado/schema"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func kinds(cfg *KindsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Kinds.Parse(cc, args)
	if err != nil {
		cfg.Kinds.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: kinds takes no arguments", cli.ErrUsage)
	}
	name := fmt.Sprintf
	if cfg.colors(cc.Out) != nil {
		name = color.RGB(128, 168, 196).SprintfFunc()
	}
	if cfg.Conv {
		listConvs(cc.Out, name)
		return nil
	}
	f, err := loadKinds(cfg.File)
	if err != nil {
		return err
	}
	listKinds(cc.Out, f, name)
	return nil
}

// listConvs lists the conversions a kind file's convert tables may name.
func listConvs(w io.Writer, name func(string, ...any) string) {
	for _, n := range conv.Names() {
		fmt.Fprintf(w, "conv %s\n", name("%s", n))
	}
}

func listKinds(w io.Writer, f *schema.File, name func(string, ...any) string) {
	for _, n := range f.ListNames() {
		def, _ := f.List(n)
		fmt.Fprintf(w, "list %s: %s\n", name("%s", n), describeList(def))
	}
	for _, n := range f.MapNames() {
		def, _ := f.Map(n)
		fmt.Fprintf(w, "map %s: %s\n", name("%s", n), describeMap(def))
	}
}

func describeList(def *schema.ListDef) string {
	if def.IsSplit() {
		return fmt.Sprintf("split %q", def.Sep())
	}
	kind := def.Kind()
	parts := []string{kind.Shape.String(), kind.Policy.String()}
	if def.Accept != "" {
		parts = append(parts, "accept "+def.Accept)
	}
	return strings.Join(parts, ", ")
}

func describeMap(def *schema.MapDef) string {
	kind := def.TextKind()
	parts := []string{def.Variant}
	if kind.ValueShape != nil {
		parts = append(parts, "value "+kind.ValueShape.String())
	}
	if len(def.Types) != 0 {
		types := make([]string, 0, len(kind.Types))
		for _, k := range sortedKeys(kind.Types) {
			types = append(types, k+" "+kind.Types[k].String())
		}
		parts = append(parts, "types {"+strings.Join(types, ", ")+"}")
	}
	if def.Keys != nil {
		parts = append(parts, "keys ["+strings.Join(def.Keys, ", ")+"]")
	}
	if def.IgnoreUnknown {
		parts = append(parts, "ignoring unknown keys")
	}
	return strings.Join(parts, ", ")
}

func sortedKeys[V any](m map[string]V) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	slices.Sort(res)
	return res
}
