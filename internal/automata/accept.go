package automata

import "github.com/bits-and-blooms/bitset"

// Accept reports whether the automaton recognises word.
func (v *view[T, V]) Accept(word []T) bool {
	frontier := bitset.New(uint(len(v.g.slots)))
	for id := range v.initials {
		frontier.Set(uint(id))
	}
	for _, sym := range word {
		next := bitset.New(uint(len(v.g.slots)))
		for i, ok := frontier.NextSet(0); ok; i, ok = frontier.NextSet(i + 1) {
			for to := range v.g.slots[i].follows.get(sym) {
				if v.states.has(to) {
					next.Set(uint(to))
				}
			}
		}
		if next.None() {
			return false
		}
		frontier = next
	}
	for id := range v.finals {
		if frontier.Test(uint(id)) {
			return true
		}
	}
	return false
}
