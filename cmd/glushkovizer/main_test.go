package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Lurgrid/Glushkovizer/internal/automata"
	"github.com/Lurgrid/Glushkovizer/internal/regexp"
)

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessAccept(t *testing.T) {
	var out bytes.Buffer
	cfg := &config{accept: words{"aa", "a"}}
	a := automata.FromRegexp(regexp.MustParse("a.a"))
	if err := process(&out, a, cfg, quiet()); err != nil {
		t.Fatalf("process: %v", err)
	}
	want := "\"aa\": accepted\n\"a\": rejected\n"
	if out.String() != want {
		t.Fatalf("want %q got %q", want, out.String())
	}
}

func TestProcessDefaultsToDOT(t *testing.T) {
	var out bytes.Buffer
	a := automata.FromRegexp(regexp.MustParse("a"))
	if err := process(&out, a, &config{}, quiet()); err != nil {
		t.Fatalf("process: %v", err)
	}
	if !strings.HasPrefix(out.String(), "digraph G {") {
		t.Fatalf("want DOT output got %q", out.String())
	}
}

func TestReport(t *testing.T) {
	var out bytes.Buffer
	report(&out, automata.FromRegexp(regexp.MustParse("(a+b).a*.b*.(a+b)*")))
	for _, want := range []string{"PROPERTY", "STANDARD", "COMPONENT", "[5 6]", "5:In"} {
		if !strings.Contains(strings.ToUpper(out.String()), strings.ToUpper(want)) {
			t.Fatalf("missing %q in\n%s", want, out.String())
		}
	}
}

func TestWriteDOTFiles(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "orbits")
	a := automata.FromRegexp(regexp.MustParse("(a+b).a*.b*.(a+b)*"))
	if err := writeDOT(a, prefix, false, quiet()); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, name := range []string{".dot", "3.dot", "4.dot", "5.dot"} {
		if _, err := os.Stat(prefix + name); err != nil {
			t.Fatalf("missing %s: %v", prefix+name, err)
		}
	}
	for _, name := range []string{"0.dot", "1.dot", "2.dot"} {
		if _, err := os.Stat(prefix + name); err == nil {
			t.Fatalf("%s is not an orbit", prefix+name)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	for _, ext := range []string{"json", "cbor"} {
		path := filepath.Join(dir, "a."+ext)
		cfg := &config{}
		if ext == "json" {
			cfg.json = path
		} else {
			cfg.cbor = path
		}
		a := automata.FromRegexp(regexp.MustParse("a.b*"))
		if err := process(io.Discard, a, cfg, quiet()); err != nil {
			t.Fatalf("%s: process: %v", ext, err)
		}
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("%s: read: %v", ext, err)
		}
		back, err := decode[int](path, b, nil)
		if err != nil {
			t.Fatalf("%s: decode: %v", ext, err)
		}
		if !back.Accept(regexp.Letters("abb")) || back.Accept(regexp.Letters("b")) {
			t.Fatalf("%s: decoded automaton recognises another language", ext)
		}
	}
}

func TestDecodeStringLabels(t *testing.T) {
	b := []byte(`{"states":["p","q"],"initials":["p"],"finals":["q"],"follows":[["p","a","q"]]}`)
	if _, err := decode[int]("a.json", b, nil); err == nil {
		t.Fatalf("string labels must not decode as integers")
	}
	a, err := decode[string]("a.json", b, nil)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !a.Accept(regexp.Letters("a")) {
		t.Fatalf("a must be accepted")
	}
}

func TestValidateLine(t *testing.T) {
	if validateLine("(a+b)*") != nil || validateLine("?ab") != nil {
		t.Fatalf("valid lines rejected")
	}
	if validateLine("a+") == nil {
		t.Fatalf("invalid expression accepted")
	}
}

func TestEval(t *testing.T) {
	var out bytes.Buffer
	cfg := &config{}
	last := eval(&out, "?a", nil, cfg, quiet())
	if last != nil || !strings.Contains(out.String(), "no automaton yet") {
		t.Fatalf("a word before any expression: %q", out.String())
	}

	last = eval(&out, "a.b", nil, cfg, quiet())
	if last == nil || !last.Accept(regexp.Letters("ab")) {
		t.Fatalf("expression must build an automaton")
	}

	out.Reset()
	if got := eval(&out, "a+", last, cfg, quiet()); got != last {
		t.Fatalf("an invalid expression must keep the last automaton")
	}
	if out.Len() == 0 || strings.Contains(out.String(), "PROPERTY") {
		t.Fatalf("an invalid expression must print the parse error, got %q", out.String())
	}

	out.Reset()
	eval(&out, "?ab", last, cfg, quiet())
	if !strings.Contains(out.String(), `"ab" accepted`) {
		t.Fatalf("word test: %q", out.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"what":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Fatalf("%q: want %v got %v", in, want, got)
		}
	}
}
