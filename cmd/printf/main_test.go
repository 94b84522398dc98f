package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shogo82148/printf"
)

func TestUnescape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`%d\n`, "%d\n"},
		{`tab\there`, "tab\there"},
		{`say "hi"`, `say "hi"`},
		{`bad \q`, `bad \q`},
	}
	for _, tt := range tests {
		if got := unescape(tt.in); got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestParseArgs(t *testing.T) {
	args, err := parseArgs("%s %c %d %ld %u %lh %f %le", []string{"x", "é", "-5", "-9223372036854775808", "0x10", "18446744073709551615", "0.1", "1e300"})
	if err != nil {
		t.Fatal(err)
	}
	got := printf.Sprintf("%s %c %d %ld %u %lh %f %le", args...)
	want := "x é -5 -9223372036854775808 16 0xffffffffffffffff 0.10000 1e300"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestParseArgsErrors(t *testing.T) {
	if _, err := parseArgs("%d %d", []string{"1"}); !errors.Is(err, errArgCount) {
		t.Errorf("expected %v, got %v", errArgCount, err)
	}
	if _, err := parseArgs("%d", []string{"4294967296"}); err == nil {
		t.Errorf("expected out of range error")
	}
	if _, err := parseArgs("%c", []string{"ab"}); err == nil {
		t.Errorf("expected error for multi-character %%c argument")
	}
	if _, err := parseArgs("%lf", []string{"pi"}); err == nil {
		t.Errorf("expected syntax error")
	}
}

func TestRunScript(t *testing.T) {
	script := `
- format: "%ld %lh"
  args: [-5, 255]
  want: "-5 0xff"
- format: "%lf"
  args: [3.14159265]
  capture: 3
  want: "3.1"
- format: "%le"
  args: [0]
  want: "0e0"
- format: "%d"
  args: [1]
  want: "2"
`
	path := filepath.Join(t.TempDir(), "cases.yaml")
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	failed, err := runScript(path, &out)
	if err != nil {
		t.Fatal(err)
	}
	if failed != 1 {
		t.Errorf("expected 1 failure, got %d\n%s", failed, out.String())
	}
	if !strings.Contains(out.String(), `ok   2 "3.1" (6 characters)`) {
		t.Errorf("unexpected output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "FAIL 4") {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRunScriptMissing(t *testing.T) {
	if _, err := runScript(filepath.Join(t.TempDir(), "nope.yaml"), &strings.Builder{}); err == nil {
		t.Errorf("expected error")
	}
}
