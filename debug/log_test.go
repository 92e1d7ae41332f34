package debug

import (
	"bytes"
	"os"
	"testing"
)

func TestLogf(t *testing.T) {
	buf := &bytes.Buffer{}
	out = buf
	defer func() { out = os.Stderr }()

	Logf("plain %d %s\n", 3, "1.5")
	Logf("map %v", map[string]any{"a": 1})
	Logf("list %v", []any{"x"})
	want := "plain 3 1.5\nmap \na: 1\nlist \n- x\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("BT_TEST_FLAG", "true")
	if !boolEnv("BT_TEST_FLAG") {
		t.Errorf("true not read")
	}
	t.Setenv("BT_TEST_FLAG", "nope")
	if boolEnv("BT_TEST_FLAG") {
		t.Errorf("garbage read as true")
	}
	if boolEnv("BT_TEST_UNSET_FLAG") {
		t.Errorf("unset read as true")
	}
}
