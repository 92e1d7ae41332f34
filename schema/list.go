package schema

import (
	"fmt"

	"github.com/beckdong/BitTornado/coerce"
	"github.com/beckdong/BitTornado/typed"
)

// ListDef describes a list kind. A definition with Split describes a
// delimited text list and takes no other setting.
type ListDef struct {
	Type    any               `yaml:"type"`
	Split   *string           `yaml:"split"`
	Accept  string            `yaml:"accept"`
	Policy  string            `yaml:"policy"`
	Convert map[string]string `yaml:"convert"`

	kind *typed.ListKind[any]
}

func (d *ListDef) build(name string) error {
	if d.Split != nil {
		if d.Type != nil || d.Accept != "" || d.Policy != "" || d.Convert != nil {
			return fmt.Errorf("split lists hold text and take no other setting")
		}
		return nil
	}
	s, err := ResolveType(d.Type)
	if err != nil {
		return err
	}
	tbl, err := convTable(d.Convert)
	if err != nil {
		return err
	}
	pol, err := policy(d.Policy)
	if err != nil {
		return err
	}
	kind := &typed.ListKind[any]{Name: name, Shape: s, Conv: tbl, Policy: pol}
	if kind.Shape == nil {
		kind.Shape = coerce.Of[any]()
	}
	if d.Accept != "" {
		if kind.Accept, err = typed.Expr[any](d.Accept); err != nil {
			return err
		}
	}
	d.kind = kind
	return nil
}

// IsSplit reports whether d describes a delimited text list.
func (d *ListDef) IsSplit() bool {
	return d.Split != nil
}

// Sep is the separator of a split list, typed.DefaultSep when empty.
func (d *ListDef) Sep() string {
	if d.Split == nil || *d.Split == "" {
		return typed.DefaultSep
	}
	return *d.Split
}

// Kind returns the list kind, nil for split lists.
func (d *ListDef) Kind() *typed.ListKind[any] {
	return d.kind
}

// New builds a container of this definition holding items: a
// *typed.SplitList for split lists, which splits text items, and a
// *typed.List[any] otherwise.
func (d *ListDef) New(items ...any) (any, error) {
	if d.IsSplit() {
		l, err := typed.NewSplitList(d.Sep(), nil)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if err := l.Extend(item); err != nil {
				return nil, err
			}
		}
		return l, nil
	}
	l, err := typed.NewList(d.kind, items...)
	if err != nil {
		return nil, err
	}
	return l, nil
}
