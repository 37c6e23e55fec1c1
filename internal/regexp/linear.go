package regexp

import "fmt"

// Numbered is a symbol occurrence tagged with its position in the expression.
type Numbered[T comparable] struct {
	Symbol T
	Pos    int
}

func (n Numbered[T]) String() string { return fmt.Sprintf("%v%d", n.Symbol, n.Pos) }

// Set is an unordered set of elements.
type Set[T comparable] map[T]struct{}

func (s Set[T]) add(v T) { s[v] = struct{}{} }

func (s Set[T]) union(o Set[T]) {
	for v := range o {
		s[v] = struct{}{}
	}
}

// Has reports whether v is in the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Info groups the firsts, lasts, nullable and follows (FLNF) of an expression.
type Info[T comparable] struct {
	Firsts   Set[T]
	Lasts    Set[T]
	Nullable bool
	Follows  map[T]Set[T]
}

// Linearize returns a copy of the tree where every symbol occurrence is
// numbered, starting from start, and the first position left unused.
func (r *Regexp[T]) Linearize(start int) (*Regexp[Numbered[T]], int) {
	switch r.Kind {
	case KindEpsilon:
		return Epsilon[Numbered[T]](), start
	case KindSymbol:
		return Sym(Numbered[T]{Symbol: r.Symbol, Pos: start}), start + 1
	case KindRepeat:
		inner, end := r.Left.Linearize(start)
		return Star(inner), end
	case KindConcat:
		l, end := r.Left.Linearize(start)
		rr, end := r.Right.Linearize(end)
		return Cat(l, rr), end
	case KindOr:
		l, end := r.Left.Linearize(start)
		rr, end := r.Right.Linearize(end)
		return Union(l, rr), end
	default:
		panic(fmt.Sprintf("regexp: unknown node kind %v", r.Kind))
	}
}

// Info computes the FLNF of the tree. Follow sets are only meaningful on a
// linearized tree, where every symbol is unique.
func (r *Regexp[T]) Info() Info[T] {
	switch r.Kind {
	case KindEpsilon:
		return Info[T]{
			Firsts:   Set[T]{},
			Lasts:    Set[T]{},
			Nullable: true,
			Follows:  map[T]Set[T]{},
		}
	case KindSymbol:
		return Info[T]{
			Firsts:  Set[T]{r.Symbol: {}},
			Lasts:   Set[T]{r.Symbol: {}},
			Follows: map[T]Set[T]{r.Symbol: {}},
		}
	case KindRepeat:
		gi := r.Left.Info()
		gi.Nullable = true
		for last := range gi.Lasts {
			gi.follow(last).union(gi.Firsts)
		}
		return gi
	case KindOr:
		gl, gr := r.Left.Info(), r.Right.Info()
		gl.Firsts.union(gr.Firsts)
		gl.Lasts.union(gr.Lasts)
		gl.Nullable = gl.Nullable || gr.Nullable
		gl.mergeFollows(gr.Follows)
		return gl
	case KindConcat:
		gl, gr := r.Left.Info(), r.Right.Info()
		for last := range gl.Lasts {
			gl.follow(last).union(gr.Firsts)
		}
		gl.mergeFollows(gr.Follows)
		if gl.Nullable {
			gl.Firsts.union(gr.Firsts)
		}
		if gr.Nullable {
			gr.Lasts.union(gl.Lasts)
		}
		gl.Lasts = gr.Lasts
		gl.Nullable = gl.Nullable && gr.Nullable
		return gl
	default:
		panic(fmt.Sprintf("regexp: unknown node kind %v", r.Kind))
	}
}

func (gi *Info[T]) follow(v T) Set[T] {
	f, ok := gi.Follows[v]
	if !ok {
		f = Set[T]{}
		gi.Follows[v] = f
	}
	return f
}

func (gi *Info[T]) mergeFollows(o map[T]Set[T]) {
	for k, v := range o {
		gi.follow(k).union(v)
	}
}
