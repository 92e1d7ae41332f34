package main

import (
	"fmt"
	"io"
	"os"

	"github.com/beckdong/BitTornado/libdiff"
	"github.com/beckdong/BitTornado/schema"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='output with color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// colors returns the diff colours for w: on when -color is given, or
// when it is not and w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *libdiff.Colors {
	if cfg.Color {
		color.NoColor = false
		return libdiff.NewColors()
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
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return libdiff.NewColors()
	}
	return nil
}

func loadKinds(path string) (*schema.File, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no kind file given, use -f", cli.ErrUsage)
	}
	return schema.LoadFile(path)
}

func loadMapDef(path, kind string) (*schema.MapDef, error) {
	f, err := loadKinds(path)
	if err != nil {
		return nil, err
	}
	if kind == "" {
		return nil, fmt.Errorf("%w: no kind given, use -k", cli.ErrUsage)
	}
	return f.Map(kind)
}

type QueryConfig struct {
	*MainConfig
	File string `cli:"name=f aliases=file desc='kind file'"`
	Kind string `cli:"name=k aliases=kind desc='kind name'"`

	Query *cli.Command
}

type SplitConfig struct {
	*MainConfig
	Sep string `cli:"name=sep desc='separator'"`

	Split *cli.Command
}

type CheckConfig struct {
	*MainConfig
	File string `cli:"name=f aliases=file desc='kind file'"`
	Kind string `cli:"name=k aliases=kind desc='kind name'"`
	Diff bool   `cli:"name=diff desc='show the difference between input and result'"`
	Stat bool   `cli:"name=stat desc='count the lines coercion changes'"`

	Check *cli.Command
}

type PatchConfig struct {
	*MainConfig
	File  string `cli:"name=f aliases=file desc='kind file'"`
	Kind  string `cli:"name=k aliases=kind desc='kind name'"`
	Merge bool   `cli:"name=merge desc='the patch is a JSON merge patch'"`

	Patch *cli.Command
}

type KindsConfig struct {
	*MainConfig
	File string `cli:"name=f aliases=file desc='kind file'"`
	Conv bool   `cli:"name=conv desc='show available conversions'"`

	Kinds *cli.Command
}
