package typed

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newInts(t *testing.T) *Map[string, int] {
	t.Helper()
	m, err := NewMap(intKind, nil, P("a", 1), P("b", 2))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

type patchTest struct {
	name  string
	patch string
	merge bool
	want  []kv
}

var patchTests = []patchTest{
	{
		name:  "replace coerces",
		patch: `[{"op": "replace", "path": "/a", "value": "5"}]`,
		want:  []kv{{"a", 5}, {"b", 2}},
	},
	{
		name:  "add and remove",
		patch: `[{"op": "remove", "path": "/b"}, {"op": "add", "path": "/c", "value": 3.5}]`,
		want:  []kv{{"a", 1}, {"c", 3}},
	},
	{
		name:  "merge",
		patch: `{"b": null, "c": "7"}`,
		merge: true,
		want:  []kv{{"a", 1}, {"c", 7}},
	},
}

func TestApplyPatch(t *testing.T) {
	for _, tc := range patchTests {
		t.Run(tc.name, func(t *testing.T) {
			m := newInts(t)
			var err error
			if tc.merge {
				err = ApplyMergePatch(m, []byte(tc.patch))
			} else {
				err = ApplyPatch(m, []byte(tc.patch))
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, items(m)); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyPatchLeavesMapOnError(t *testing.T) {
	patches := []string{
		`not json`,
		`[{"op": "replace", "path": "/missing", "value": 1}]`,
		`[{"op": "replace", "path": "/a", "value": "x"}]`,
	}
	for _, p := range patches {
		m := newInts(t)
		if err := ApplyPatch(m, []byte(p)); err == nil {
			t.Errorf("patch %s applied", p)
		}
		if diff := cmp.Diff([]kv{{"a", 1}, {"b", 2}}, items(m)); diff != "" {
			t.Errorf("patch %s changed map (-want +got):\n%s", p, diff)
		}
	}
	m := newInts(t)
	err := ApplyPatch(m, []byte(`[{"op": "add", "path": "/c", "value": [1]}]`))
	if !errors.Is(err, ErrCoercion) {
		t.Errorf("got %v, want coercion error", err)
	}
}

func TestApplyPatchKeepsOrder(t *testing.T) {
	m, err := NewMap(intKind, nil, P("z", 1), P("a", 2))
	if err != nil {
		t.Fatal(err)
	}
	if err := ApplyPatch(m, []byte(`[{"op": "replace", "path": "/z", "value": 3}]`)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"z", "a"}, m.Keys()); diff != "" {
		t.Errorf("replace (-want +got):\n%s", diff)
	}
	if err := ApplyMergePatch(m, []byte(`{"y": 4, "z": 6}`)); err != nil {
		t.Fatal(err)
	}
	want := []kv{{"z", 6}, {"a", 2}, {"y", 4}}
	if diff := cmp.Diff(want, items(m)); diff != "" {
		t.Errorf("merge (-want +got):\n%s", diff)
	}
}

var hashKind = &MapKind[string, []byte]{Name: "hashes"}

func TestApplyPatchBytes(t *testing.T) {
	m, err := NewMap(hashKind, nil, P("h", []byte("abc")))
	if err != nil {
		t.Fatal(err)
	}
	if err := ApplyMergePatch(m, []byte(`{}`)); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.Get("h"); string(got) != "abc" {
		t.Errorf("h = %q after empty merge, want %q", got, "abc")
	}
	if err := ApplyMergePatch(m, []byte(`{"g": "eHl6"}`)); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.Get("g"); string(got) != "xyz" {
		t.Errorf("g = %q, want %q", got, "xyz")
	}
	err = ApplyPatch(m, []byte(`[{"op": "add", "path": "/bad", "value": "%%"}]`))
	if !errors.Is(err, ErrCoercion) {
		t.Errorf("got %v, want coercion error", err)
	}
	if m.Has("bad") {
		t.Error("bad key stored")
	}
}
