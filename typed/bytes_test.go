package typed

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var peerKind = BytesKeyed(MapKind[ByteKey, int]{Name: "peers"})

func TestBytesKeyed(t *testing.T) {
	m, err := NewMap(peerKind, nil, P("k", "1"), P([]byte("b"), 2), P(ByteKey("c"), 3))
	if err != nil {
		t.Fatal(err)
	}
	want := []ByteKey{"k", "b", "c"}
	if diff := cmp.Diff(want, m.Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, ok := m.Lookup("k"); ok {
		t.Errorf("text key found a byte key")
	}
	if v, ok := m.Lookup(ByteKey("k")); !ok || v != 1 {
		t.Errorf("Lookup(ByteKey(\"k\")) = %v, %v", v, ok)
	}
	if err := m.Set(5, 1); !errors.Is(err, ErrCoercion) {
		t.Errorf("int key: got %v, want coercion error", err)
	}
}

func TestByteKey(t *testing.T) {
	k := ByteKey("a\x00")
	if diff := cmp.Diff([]byte{'a', 0}, k.Bytes()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := k.GoString(); got != `typed.ByteKey("a\x00")` {
		t.Errorf("GoString() = %s", got)
	}
	var u ByteKey
	if err := u.UnmarshalText([]byte("xyz")); err != nil || u != "xyz" {
		t.Errorf("UnmarshalText gave %q, %v", u, err)
	}
}
