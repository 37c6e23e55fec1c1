package automata

import "fmt"

// Split is a state of a homogenized automaton: a copy of State entered only
// by Symbol. HasSymbol is false for the single copy of a state with no
// incoming transition.
type Split[T, V comparable] struct {
	Symbol    T
	HasSymbol bool
	State     V
}

func (s Split[T, V]) String() string {
	if !s.HasSymbol {
		return fmt.Sprintf("(ε, %v)", s.State)
	}
	return fmt.Sprintf("(%v, %v)", s.Symbol, s.State)
}

// Homogenize returns a homogeneous automaton recognising the same language.
// Every state is split into one copy per symbol entering it, and p -a-> q
// becomes an a transition from every copy of p to the a copy of q. Copies
// keep the initial and final flags of their state.
func (v *view[T, V]) Homogenize() *Automaton[T, Split[T, V]] {
	out := New[T, Split[T, V]](WithDoorPolicy(v.policy))
	copies := make(map[stateID][]Split[T, V], len(v.states))
	order := v.order()
	for _, id := range order {
		label := v.g.label(id)
		e := &v.g.slots[id].previous
		for _, sym := range e.symbols {
			if len(v.visible(e.get(sym))) > 0 {
				copies[id] = append(copies[id], Split[T, V]{Symbol: sym, HasSymbol: true, State: label})
			}
		}
		if len(copies[id]) == 0 {
			copies[id] = []Split[T, V]{{State: label}}
		}
		for _, s := range copies[id] {
			out.AddState(s)
			if v.initials.has(id) {
				out.AddInitial(s)
			}
			if v.finals.has(id) {
				out.AddFinal(s)
			}
		}
	}
	for _, t := range v.AllTransitions() {
		from, _ := v.g.lookup(t.From)
		to := Split[T, V]{Symbol: t.Symbol, HasSymbol: true, State: t.To}
		for _, s := range copies[from] {
			out.AddTransition(s, to, t.Symbol)
		}
	}
	return out
}
