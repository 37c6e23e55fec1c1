package automata

import "golang.org/x/exp/slices"

// Kosaraju returns the strongly connected components of the automaton in the
// order the second pass discovers them. Each component lists its states in
// discovery order.
func (v *view[T, V]) Kosaraju() [][]V {
	comps := v.components()
	out := make([][]V, len(comps))
	for i, c := range comps {
		out[i] = v.g.labels(c)
	}
	return out
}

func (v *view[T, V]) components() [][]stateID {
	order := v.order()
	if len(order) == 0 {
		return nil
	}
	first := v.dfs(order, false)
	rev := slices.Clone(first.suffix)
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	second := v.dfs(rev, true)

	var comps [][]stateID
	for _, id := range second.prefix {
		if _, ok := second.pred[id]; !ok {
			comps = append(comps, nil)
		}
		comps[len(comps)-1] = append(comps[len(comps)-1], id)
	}
	return comps
}

// IsStronglyConnected reports whether the automaton has at most one
// strongly connected component.
func (v *view[T, V]) IsStronglyConnected() bool { return len(v.components()) <= 1 }
