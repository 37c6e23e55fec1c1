package regexp

import "fmt"

// Kind tells which operator a Regexp node holds.
type Kind int

const (
	KindEpsilon Kind = iota // $
	KindSymbol
	KindRepeat // r*
	KindConcat // l.r
	KindOr     // l+r
)

func (k Kind) String() string {
	switch k {
	case KindEpsilon:
		return "Epsilon"
	case KindSymbol:
		return "Symbol"
	case KindRepeat:
		return "Repeat"
	case KindConcat:
		return "Concat"
	case KindOr:
		return "Or"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Regexp is an immutable regular expression tree over symbols of type T.
//
// Repeat uses Left only; Concat and Or use both children.
type Regexp[T comparable] struct {
	Kind   Kind
	Symbol T // KindSymbol only
	Left   *Regexp[T]
	Right  *Regexp[T]
}

func Epsilon[T comparable]() *Regexp[T] { return &Regexp[T]{Kind: KindEpsilon} }

func Sym[T comparable](v T) *Regexp[T] { return &Regexp[T]{Kind: KindSymbol, Symbol: v} }

func Star[T comparable](r *Regexp[T]) *Regexp[T] {
	return &Regexp[T]{Kind: KindRepeat, Left: r}
}

func Cat[T comparable](l, r *Regexp[T]) *Regexp[T] {
	return &Regexp[T]{Kind: KindConcat, Left: l, Right: r}
}

func Union[T comparable](l, r *Regexp[T]) *Regexp[T] {
	return &Regexp[T]{Kind: KindOr, Left: l, Right: r}
}

// String prints the expression in the text syntax accepted by Parse, fully
// parenthesised so that Parse(r.String()) rebuilds the same tree.
func (r *Regexp[T]) String() string {
	switch r.Kind {
	case KindEpsilon:
		return "$"
	case KindSymbol:
		return fmt.Sprint(r.Symbol)
	case KindRepeat:
		return r.Left.String() + "*"
	case KindConcat:
		return "(" + r.Left.String() + "." + r.Right.String() + ")"
	case KindOr:
		return "(" + r.Left.String() + "+" + r.Right.String() + ")"
	default:
		return "?"
	}
}

// GoString prints the tree structure, e.g. Or(Symbol(a), Epsilon).
func (r *Regexp[T]) GoString() string {
	switch r.Kind {
	case KindEpsilon:
		return "Epsilon"
	case KindSymbol:
		return fmt.Sprintf("Symbol(%v)", r.Symbol)
	case KindRepeat:
		return "Repeat(" + r.Left.GoString() + ")"
	default:
		return fmt.Sprintf("%s(%s, %s)", r.Kind, r.Left.GoString(), r.Right.GoString())
	}
}

// Equal reports whether both trees have the same shape and symbols.
func (r *Regexp[T]) Equal(o *Regexp[T]) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.Kind != o.Kind || r.Symbol != o.Symbol {
		return false
	}
	return r.Left.Equal(o.Left) && r.Right.Equal(o.Right)
}

// Alphabet returns the distinct symbols of the tree in left-to-right order.
func (r *Regexp[T]) Alphabet() []T {
	seen := map[T]struct{}{}
	var out []T
	var walk func(*Regexp[T])
	walk = func(n *Regexp[T]) {
		if n == nil {
			return
		}
		if n.Kind == KindSymbol {
			if _, ok := seen[n.Symbol]; !ok {
				seen[n.Symbol] = struct{}{}
				out = append(out, n.Symbol)
			}
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(r)
	return out
}
