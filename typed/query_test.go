package typed

import (
	"errors"
	"strings"
	"testing"
)

var announceKind = QueryKind(MapKind[string, any]{Name: "announce"})

type queryTest struct {
	name   string
	fields []Pair
	want   string
}

var queryTests = []queryTest{
	{"empty", nil, ""},
	{"text and int", []Pair{P("a", 1), P("b", "x y")}, "a=1&b=x%20y"},
	{"float truncates", []Pair{P("n", 7.0)}, "n=7"},
	{"numeric text kept", []Pair{P("port", "6881")}, "port=6881"},
	{"bytes", []Pair{P("info_hash", []byte{0x12, 'a', '/', 0xff})}, "info_hash=%12a%2F%FF"},
	{"bool", []Pair{P("compact", true)}, "compact=1"},
	{"insertion order", []Pair{P("z", 1), P("a", 2)}, "z=1&a=2"},
}

func TestQueryEncode(t *testing.T) {
	for _, tc := range queryTests {
		t.Run(tc.name, func(t *testing.T) {
			q, err := NewQueryMap(announceKind, nil, tc.fields...)
			if err != nil {
				t.Fatal(err)
			}
			got, err := q.Encode()
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("Encode() = %q, want %q", got, tc.want)
			}
			if q.String() != tc.want {
				t.Errorf("String() = %q, want %q", q.String(), tc.want)
			}
		})
	}
}

func TestQueryEncodeNotInteger(t *testing.T) {
	q, err := NewQueryMap(announceKind, nil, P("a", 1), P("peers", []int{1}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := q.Encode(); !errors.Is(err, ErrCoercion) {
		t.Errorf("got %v, want coercion error", err)
	}
	if s := q.String(); !strings.HasPrefix(s, "%!(BADQUERY ") {
		t.Errorf("String() = %q", s)
	}
}

func TestQueryKindKeepsSettings(t *testing.T) {
	kind := QueryKind(MapKind[string, int]{Name: "closed", Keys: []string{"left"}})
	q, err := NewQueryMap(kind, nil, P("left", "0"))
	if err != nil {
		t.Fatal(err)
	}
	if err := q.Set("right", 1); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("got %v, want invalid key", err)
	}
	if s, _ := q.Encode(); s != "left=0" {
		t.Errorf("Encode() = %q", s)
	}
}
