package regexp

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Grammar, lowest precedence first: union, concatenation, star.
//
//	expr   = concat { "+" concat }
//	concat = star { "." star }
//	star   = atom { "*" }
//	atom   = Letter | "$" | "(" expr ")"

type orExpr struct {
	Left  *concatExpr   `parser:"@@"`
	Right []*concatExpr `parser:"( '+' @@ )*"`
}

type concatExpr struct {
	Left  *starExpr   `parser:"@@"`
	Right []*starExpr `parser:"( '.' @@ )*"`
}

type starExpr struct {
	Atom  *atom    `parser:"@@"`
	Stars []string `parser:"( @'*' )*"`
}

type atom struct {
	Letter  *string `parser:"  @Letter"`
	Epsilon bool    `parser:"| @'$'"`
	Group   *orExpr `parser:"| '(' @@ ')'"`
}

var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Letter", Pattern: `[a-zA-Z]`},
	{Name: "Punct", Pattern: `[$*.+()]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[orExpr](
	participle.Lexer(regexLexer),
	participle.Elide("Whitespace"),
)

// Parse reads an expression written with letters a-z/A-Z, $ for the empty
// word, postfix * for repetition, . for concatenation and + for union.
// Binary operators are left associative.
func Parse(text string) (*Regexp[Letter], error) {
	ast, err := parser.ParseString("", text)
	if err != nil {
		return nil, err
	}
	return ast.tree(), nil
}

func MustParse(text string) *Regexp[Letter] {
	r, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return r
}

func (e *orExpr) tree() *Regexp[Letter] {
	left := e.Left.tree()
	for _, r := range e.Right {
		left = Union(left, r.tree())
	}
	return left
}

func (e *concatExpr) tree() *Regexp[Letter] {
	left := e.Left.tree()
	for _, r := range e.Right {
		left = Cat(left, r.tree())
	}
	return left
}

func (e *starExpr) tree() *Regexp[Letter] {
	r := e.Atom.tree()
	for range e.Stars {
		r = Star(r)
	}
	return r
}

func (a *atom) tree() *Regexp[Letter] {
	switch {
	case a.Letter != nil:
		return Sym(Letter([]rune(*a.Letter)[0]))
	case a.Group != nil:
		return a.Group.tree()
	default:
		return Epsilon[Letter]()
	}
}
