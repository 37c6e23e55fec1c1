package regexp

import (
	"fmt"
	"testing"
)

// ------------------------------------------------------------------- Parser

func TestParseTrees(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"$", "Epsilon"},
		{"a", "Symbol(a)"},
		{"(a+b)*.a.b+$", "Or(Concat(Concat(Repeat(Or(Symbol(a), Symbol(b))), Symbol(a)), Symbol(b)), Epsilon)"},
		{"(a + b) . ( a* . b)", "Concat(Or(Symbol(a), Symbol(b)), Concat(Repeat(Symbol(a)), Symbol(b)))"},
		{"a**", "Repeat(Repeat(Symbol(a)))"},
		{"a+b+c", "Or(Or(Symbol(a), Symbol(b)), Symbol(c))"},
	}
	for _, tt := range tests {
		r, err := Parse(tt.input)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.input, err)
		}
		if got := r.GoString(); got != tt.want {
			t.Fatalf("parse %q\nwant %s\ngot  %s", tt.input, tt.want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, input := range []string{"a....b", "a.b/b", "", "(a+b", "a+", "1"} {
		if _, err := Parse(input); err == nil {
			t.Fatalf("parse %q: expected an error", input)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, input := range []string{"(a+b)*.a.b+$", "a.(b+$)*.c", "((a))", "$*"} {
		r := MustParse(input)
		back, err := Parse(r.String())
		if err != nil {
			t.Fatalf("reparse %q (from %q): %v", r.String(), input, err)
		}
		if !r.Equal(back) {
			t.Fatalf("round trip of %q: %#v != %#v", input, r, back)
		}
	}
}

// ------------------------------------------------------------------- Linearization

func TestLinearize(t *testing.T) {
	r := MustParse("(a+b).(a*.b)")
	lin, end := r.Linearize(1)
	want := "Concat(Or(Symbol(a1), Symbol(b2)), Concat(Repeat(Symbol(a3)), Symbol(b4)))"
	if got := lin.GoString(); got != want {
		t.Fatalf("want %s got %s", want, got)
	}
	if end != 5 {
		t.Fatalf("want next position 5 got %d", end)
	}

	_, end = MustParse("$").Linearize(7)
	if end != 7 {
		t.Fatalf("epsilon must not consume positions, got %d", end)
	}
}

func positions(s Set[Numbered[Letter]]) map[int]bool {
	out := map[int]bool{}
	for n := range s {
		out[n.Pos] = true
	}
	return out
}

func samePositions(t *testing.T, what string, got Set[Numbered[Letter]], want ...int) {
	t.Helper()
	p := positions(got)
	if len(p) != len(want) {
		t.Fatalf("%s: want %v got %v", what, want, p)
	}
	for _, w := range want {
		if !p[w] {
			t.Fatalf("%s: want %v got %v", what, want, p)
		}
	}
}

func TestInfo(t *testing.T) {
	lin, _ := MustParse("(a+b).a*.b*.(a+b)*").Linearize(1)
	info := lin.Info()

	samePositions(t, "firsts", info.Firsts, 1, 2)
	samePositions(t, "lasts", info.Lasts, 1, 2, 3, 4, 5, 6)
	if info.Nullable {
		t.Fatalf("expression must not be nullable")
	}

	follows := map[int][]int{
		1: {3, 4, 5, 6},
		2: {3, 4, 5, 6},
		3: {3, 4, 5, 6},
		4: {4, 5, 6},
		5: {5, 6},
		6: {5, 6},
	}
	for k, f := range info.Follows {
		samePositions(t, fmt.Sprintf("follows(%d)", k.Pos), f, follows[k.Pos]...)
	}
	if len(info.Follows) != len(follows) {
		t.Fatalf("want %d follow entries got %d", len(follows), len(info.Follows))
	}
}

func TestInfoNullable(t *testing.T) {
	tests := []struct {
		input    string
		nullable bool
	}{
		{"$", true},
		{"a", false},
		{"a*", true},
		{"a+$", true},
		{"a.$", false},
		{"$.$", true},
		{"a*.b*", true},
	}
	for _, tt := range tests {
		lin, _ := MustParse(tt.input).Linearize(1)
		if got := lin.Info().Nullable; got != tt.nullable {
			t.Fatalf("%q: want nullable=%v got %v", tt.input, tt.nullable, got)
		}
	}
}

func TestConcatNullableLeftAndRight(t *testing.T) {
	lin, _ := MustParse("a*.b*").Linearize(1)
	info := lin.Info()
	samePositions(t, "firsts", info.Firsts, 1, 2)
	samePositions(t, "lasts", info.Lasts, 1, 2)
}

// ------------------------------------------------------------------- Letters

func TestLetterText(t *testing.T) {
	var l Letter
	if err := l.UnmarshalText([]byte("z")); err != nil || l != 'z' {
		t.Fatalf("unmarshal z: %v %v", l, err)
	}
	if err := l.UnmarshalText([]byte("zz")); err == nil {
		t.Fatalf("two runes must be rejected")
	}
	if got := fmt.Sprint(Letters("ab")); got != "[a b]" {
		t.Fatalf("letters: %s", got)
	}
}

func TestAlphabet(t *testing.T) {
	got := fmt.Sprint(MustParse("(b+a).b*.c").Alphabet())
	if got != "[b a c]" {
		t.Fatalf("alphabet: %s", got)
	}
}
