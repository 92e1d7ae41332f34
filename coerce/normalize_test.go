package coerce

import (
	"errors"
	"net/netip"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type normTest struct {
	name  string
	in    any
	shape *Shape
	tbl   Table
	out   any
	err   bool
}

var upper = Add(nil, func(s string) (string, error) {
	return strings.ToUpper(s), nil
})

var normTests = []normTest{
	{name: "nil shape", in: []int{1}, shape: nil, out: []int{1}},
	{name: "identity", in: 5, shape: Of[int](), out: 5},
	{name: "int from text", in: "42", shape: Of[int](), out: 42},
	{name: "int from padded text", in: " 42\n", shape: Of[int](), out: 42},
	{name: "int from bad text", in: "4x2", shape: Of[int](), err: true},
	{name: "int from float truncates", in: 7.9, shape: Of[int](), out: 7},
	{name: "int from negative float", in: -7.9, shape: Of[int64](), out: int64(-7)},
	{name: "int from bool", in: true, shape: Of[int](), out: 1},
	{name: "int8 overflow", in: 300, shape: Of[int8](), err: true},
	{name: "uint from negative", in: -1, shape: Of[uint](), err: true},
	{name: "uint16 from text", in: "6881", shape: Of[uint16](), out: uint16(6881)},
	{name: "string from int", in: 7, shape: Of[string](), out: "7"},
	{name: "string from bytes", in: []byte("ab"), shape: Of[string](), out: "ab"},
	{name: "string from float", in: 1.5, shape: Of[string](), out: "1.5"},
	{name: "string from stringer", in: netip.MustParseAddr("10.0.0.1"), shape: Of[string](), out: "10.0.0.1"},
	{name: "float from text", in: "2.5", shape: Of[float64](), out: 2.5},
	{name: "bool from text", in: "true", shape: Of[bool](), out: true},
	{name: "bool from int", in: 0, shape: Of[bool](), out: false},
	{name: "bytes from text needs table", in: "k", shape: Of[[]byte](), err: true},
	{name: "bytes from text with table", in: "k", shape: Of[[]byte](),
		tbl: Add(nil, func(s string) ([]byte, error) { return []byte(s), nil }),
		out: []byte("k")},
	{name: "table before construction", in: "abc", shape: Of[int](), tbl: upper, out: "ABC"},
	{name: "table error", in: "abc", shape: Of[int](),
		tbl: Add(nil, func(s string) (int, error) { return 0, errors.New("nope") }),
		err: true},
	{name: "text unmarshaler", in: "10.0.0.1", shape: Of[netip.Addr](), out: netip.MustParseAddr("10.0.0.1")},
	{name: "text unmarshaler rejects numbers", in: 10, shape: Of[netip.Addr](), err: true},
	{name: "interface", in: 3, shape: Of[any](), out: 3},
	{name: "interface not implemented", in: 3, shape: Of[error](), err: true},
	{name: "nil to slice", in: nil, shape: Of[[]string](), out: []string(nil)},
	{name: "nil to int", in: nil, shape: Of[int](), err: true},
	{name: "tuple", in: []any{"host", "6881"}, shape: Tuple(Of[string](), Of[uint16]()),
		out: []any{"host", uint16(6881)}},
	{name: "tuple from typed slice", in: []string{"1", "2"}, shape: Tuple(Of[int](), Of[int]()),
		out: []any{1, 2}},
	{name: "tuple from array", in: [2]int{1, 2}, shape: Tuple(Of[string](), nil),
		out: []any{"1", 2}},
	{name: "tuple element fails", in: []any{"a", "b"}, shape: Tuple(Of[string](), Of[int]()), err: true},
	{name: "tuple from string", in: "ab", shape: Tuple(Of[string](), Of[string]()),
		out: []any{"a", "b"}},
	{name: "tuple from multibyte string", in: "7é", shape: Tuple(Of[int](), Of[string]()),
		out: []any{7, "é"}},
	{name: "tuple from short string", in: "7", shape: Tuple(Of[int](), Of[string]()),
		out: []any{7}},
	{name: "tuple from scalar", in: 5, shape: Tuple(Of[int]()), err: true},
	{name: "tuple from scalar with table", in: 5, shape: Tuple(Of[int]()),
		tbl: Add(nil, func(i int) ([]any, error) { return []any{i}, nil }),
		out: []any{5}},
}

func TestNormalize(t *testing.T) {
	for _, tc := range normTests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.in, tc.shape, tc.tbl)
			if tc.err {
				if err == nil {
					t.Fatalf("expected error, got %#v", got)
				}
				if !errors.Is(err, ErrShape) {
					t.Errorf("error %v does not match ErrShape", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.out, got, cmp.Comparer(func(a, b netip.Addr) bool { return a == b })); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if tc.out != nil && reflect.TypeOf(got) != reflect.TypeOf(tc.out) {
				t.Errorf("got type %T want %T", got, tc.out)
			}
		})
	}
}

func TestNormalizeIdentity(t *testing.T) {
	in := []byte("peer")
	got, err := Normalize(in, Of[[]byte](), nil)
	if err != nil {
		t.Fatal(err)
	}
	b := got.([]byte)
	if &b[0] != &in[0] {
		t.Errorf("conforming value was copied")
	}
	for _, x := range []any{3, "x", 2.5, true} {
		got, err := Normalize(x, TypeShape(reflect.TypeOf(x)), upper)
		if err != nil {
			t.Fatal(err)
		}
		if got != x {
			t.Errorf("Normalize(%v) = %v", x, got)
		}
	}
}

// The tuple rule pairs positions with zip semantics: a length mismatch
// silently truncates. This is kept as is but is almost certainly not what
// callers want.
func TestNormalizeTupleTruncates(t *testing.T) {
	shape := Tuple(Of[string](), Of[int]())
	got, err := Normalize([]any{"a", 1, "extra"}, shape, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"a", 1}, got); diff != "" {
		t.Errorf("long value (-want +got):\n%s", diff)
	}
	got, err = Normalize([]any{"a"}, shape, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"a"}, got); diff != "" {
		t.Errorf("short value (-want +got):\n%s", diff)
	}
}

func TestShapeString(t *testing.T) {
	tests := map[string]*Shape{
		"<any>":              nil,
		"int":                Of[int](),
		"(string, uint16)":   Tuple(Of[string](), Of[uint16]()),
		"(<any>, [2]string)": Tuple(nil, Of[[2]string]()),
	}
	for want, s := range tests {
		if got := s.String(); got != want {
			t.Errorf("got %q want %q", got, want)
		}
	}
}

func TestMerge(t *testing.T) {
	a := Add(nil, func(s string) (int, error) { return 1, nil })
	b := Add(nil, func(s string) (int, error) { return 2, nil })
	m := Merge(a, b)
	f, ok := m.Lookup("x")
	if !ok {
		t.Fatal("missing entry")
	}
	if v, _ := f("x"); v != 2 {
		t.Errorf("later table should win, got %v", v)
	}
	if len(a) != 1 {
		t.Errorf("merge modified its input")
	}
}
