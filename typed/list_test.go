package typed

import (
	"errors"
	"testing"

	"github.com/beckdong/BitTornado/coerce"
	"github.com/google/go-cmp/cmp"
)

var portKind = &ListKind[uint16]{
	Name:   "ports",
	Accept: func(p uint16) bool { return p != 0 },
	Policy: Strict,
}

var lenientPortKind = &ListKind[uint16]{
	Name:   "ports",
	Accept: func(p uint16) bool { return p != 0 },
	Policy: Lenient,
}

func TestListCoerces(t *testing.T) {
	l, err := NewList(portKind, "6881", 6882, 6883.0, []byte("6884"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint16{6881, 6882, 6883, 6884}, l.Slice()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestListStrictAppend(t *testing.T) {
	l, err := NewList(portKind, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		in   any
		want error
	}{
		{in: 0, want: ErrRejected},
		{in: "zero", want: ErrCoercion},
		{in: 70000, want: ErrCoercion},
		{in: nil, want: ErrCoercion},
	}
	for _, tc := range tests {
		err := l.Append(tc.in)
		if !errors.Is(err, tc.want) {
			t.Errorf("Append(%v) = %v, want %v", tc.in, err, tc.want)
		}
		if l.Len() != 2 {
			t.Fatalf("failed append changed the list: %v", l)
		}
	}
	if err := l.Append("3"); err != nil {
		t.Fatal(err)
	}
	if got := l.At(l.Len() - 1); got != 3 {
		t.Errorf("last element %d, want 3", got)
	}
	var rej *RejectionError
	if err := l.Append(false); !errors.As(err, &rej) || rej.Value != uint16(0) {
		t.Errorf("expected rejection of coerced 0, got %v", err)
	}
}

func TestListLenientDrops(t *testing.T) {
	l, err := NewList(lenientPortKind, 1, 0, "0", 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]uint16{1, 2}, l.Slice()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if err := l.Set(0, 0); err != nil {
		t.Fatal(err)
	}
	if l.At(0) != 1 {
		t.Errorf("lenient Set of a rejected value replaced the element")
	}
	// coercion failures are never silent
	if err := l.Append("x"); !errors.Is(err, ErrCoercion) {
		t.Errorf("got %v, want coercion error", err)
	}
}

func TestListSet(t *testing.T) {
	l, err := NewList(portKind, 1, 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if err := l.Set(1, "20"); err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{-1, 3} {
		err := l.Set(i, 5)
		var ie *IndexError
		if !errors.As(err, &ie) || !errors.Is(err, ErrIndex) {
			t.Errorf("Set(%d) = %v, want index error", i, err)
		}
	}
	if err := l.Set(2, 0); !errors.Is(err, ErrRejected) {
		t.Errorf("Set of rejected value = %v", err)
	}
	if diff := cmp.Diff([]uint16{1, 20, 3}, l.Slice()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestListExtendNotAtomic(t *testing.T) {
	l, err := NewList(portKind)
	if err != nil {
		t.Fatal(err)
	}
	err = l.Extend(1, 2, 0, 4)
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("got %v, want rejection", err)
	}
	if diff := cmp.Diff([]uint16{1, 2}, l.Slice()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestListConstructionFails(t *testing.T) {
	if _, err := NewList(portKind, 1, 0); !errors.Is(err, ErrRejected) {
		t.Errorf("got %v, want rejection", err)
	}
}

func TestListConversionTable(t *testing.T) {
	kind := &ListKind[int]{
		Name: "flags",
		Conv: coerce.Add(nil, func(b bool) (int, error) {
			if b {
				return 100, nil
			}
			return -100, nil
		}),
	}
	l, err := NewList(kind, true, false, "7")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{100, -100, 7}, l.Slice()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	// a table entry producing the wrong type is a coercion error
	kind.Conv = coerce.Add(nil, func(b bool) (string, error) { return "yes", nil })
	if err := l.Append(true); !errors.Is(err, ErrCoercion) {
		t.Errorf("got %v, want coercion error", err)
	}
}

func TestListTuples(t *testing.T) {
	kind := &ListKind[[]any]{
		Name:  "peers",
		Shape: coerce.Tuple(coerce.Of[string](), coerce.Of[uint16]()),
		Accept: func(p []any) bool {
			return len(p) == 2
		},
		Policy: Lenient,
	}
	l, err := NewList(kind,
		[]any{"10.0.0.1", "6881"},
		[]string{"10.0.0.2", "6882"},
		[]any{"short"},
		"h7",
	)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]any{{"10.0.0.1", uint16(6881)}, {"10.0.0.2", uint16(6882)}, {"h", uint16(7)}}
	if diff := cmp.Diff(want, l.Slice()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestListAll(t *testing.T) {
	l, err := NewList(portKind, 5, 6)
	if err != nil {
		t.Fatal(err)
	}
	var got []uint16
	for i, p := range l.All() {
		if i != len(got) {
			t.Errorf("index %d out of order", i)
		}
		got = append(got, p)
	}
	if diff := cmp.Diff([]uint16{5, 6}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if l.String() != "[5 6]" {
		t.Errorf("String() = %q", l.String())
	}
}
