package automata

import (
	"golang.org/x/exp/slices"

	"github.com/Lurgrid/Glushkovizer/internal/regexp"
)

// FromRegexp builds the Glushkov automaton of r. State 0 is the only initial
// state; state i stands for the i-th symbol occurrence of r, counted from 1.
func FromRegexp[T comparable](r *regexp.Regexp[T], opts ...Option) *Automaton[T, int] {
	lin, end := r.Linearize(1)
	info := lin.Info()

	a := New[T, int](opts...)
	for i := 0; i < end; i++ {
		a.AddState(i)
	}
	// follows is keyed by occurrence, ordered here by position
	byPos := make([]regexp.Numbered[T], 0, len(info.Follows))
	for n := range info.Follows {
		byPos = append(byPos, n)
	}
	for _, from := range sortByPos(byPos) {
		for _, to := range sortByPos(setItems(info.Follows[from])) {
			a.AddTransition(from.Pos, to.Pos, to.Symbol)
		}
	}
	for _, f := range sortByPos(setItems(info.Firsts)) {
		a.AddTransition(0, f.Pos, f.Symbol)
	}
	if info.Nullable {
		a.AddFinal(0)
	}
	for _, l := range sortByPos(setItems(info.Lasts)) {
		a.AddFinal(l.Pos)
	}
	a.AddInitial(0)
	return a
}

func setItems[T comparable](s regexp.Set[regexp.Numbered[T]]) []regexp.Numbered[T] {
	out := make([]regexp.Numbered[T], 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	return out
}

// sortByPos orders occurrences by position. Positions are unique in a
// linearized expression.
func sortByPos[T comparable](ns []regexp.Numbered[T]) []regexp.Numbered[T] {
	at := make(map[int]regexp.Numbered[T], len(ns))
	pos := make([]int, 0, len(ns))
	for _, n := range ns {
		at[n.Pos] = n
		pos = append(pos, n.Pos)
	}
	slices.Sort(pos)
	out := make([]regexp.Numbered[T], len(pos))
	for i, p := range pos {
		out[i] = at[p]
	}
	return out
}
