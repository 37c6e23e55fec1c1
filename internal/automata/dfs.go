package automata

import (
	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/slices"
)

// DFSInfo is the trace of a depth first search.
//
// Prefix lists states in discovery order, Suffix in finishing order.
// Predecessor maps every non-root state to the state it was discovered from.
type DFSInfo[V comparable] struct {
	Prefix      []V
	Suffix      []V
	Predecessor map[V]V
}

// dfsTrace is DFSInfo over arena ids.
type dfsTrace struct {
	prefix []stateID
	suffix []stateID
	pred   map[stateID]stateID
}

type frame struct {
	id   stateID
	next []stateID
}

// DFS runs a depth first search starting from the states of order, in order.
// The neighbours of a state are visited following their position in order.
// With backward set, transitions are followed in reverse.
//
// order must be a permutation of the states of the automaton.
func (v *view[T, V]) DFS(order []V, backward bool) (DFSInfo[V], error) {
	ids, err := v.permutation(order)
	if err != nil {
		return DFSInfo[V]{}, err
	}
	tr := v.dfs(ids, backward)
	info := DFSInfo[V]{
		Prefix:      v.g.labels(tr.prefix),
		Suffix:      v.g.labels(tr.suffix),
		Predecessor: make(map[V]V, len(tr.pred)),
	}
	for n, p := range tr.pred {
		info.Predecessor[v.g.label(n)] = v.g.label(p)
	}
	return info, nil
}

// permutation resolves order and checks that it names every state once.
func (v *view[T, V]) permutation(order []V) ([]stateID, error) {
	ids := make([]stateID, 0, len(order))
	seen := idSet{}
	for _, label := range order {
		id, err := v.resolve(label, ErrUnknownState)
		if err != nil {
			return nil, err
		}
		if !seen.add(id) {
			return nil, stateErr(ErrNotEnoughState, label)
		}
		ids = append(ids, id)
	}
	if len(ids) != len(v.states) {
		return nil, ErrNotEnoughState
	}
	return ids, nil
}

func (v *view[T, V]) dfs(order []stateID, backward bool) dfsTrace {
	rank := make(map[stateID]int, len(order))
	for i, id := range order {
		rank[id] = i
	}
	// neighbours restricted to the view, sorted by rank
	next := func(id stateID) []stateID {
		var pos []int
		for n := range v.g.neighbours(id, backward) {
			if r, ok := rank[n]; ok {
				pos = append(pos, r)
			}
		}
		slices.Sort(pos)
		out := make([]stateID, len(pos))
		for i, p := range pos {
			out[i] = order[p]
		}
		return out
	}

	tr := dfsTrace{
		prefix: make([]stateID, 0, len(order)),
		suffix: make([]stateID, 0, len(order)),
		pred:   map[stateID]stateID{},
	}
	visited := bitset.New(uint(len(v.g.slots)))
	for _, root := range order {
		if visited.Test(uint(root)) {
			continue
		}
		visited.Set(uint(root))
		tr.prefix = append(tr.prefix, root)
		stack := []frame{{id: root, next: next(root)}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if len(top.next) == 0 {
				tr.suffix = append(tr.suffix, top.id)
				stack = stack[:len(stack)-1]
				continue
			}
			n := top.next[0]
			top.next = top.next[1:]
			if visited.Test(uint(n)) {
				continue
			}
			visited.Set(uint(n))
			tr.pred[n] = top.id
			tr.prefix = append(tr.prefix, n)
			stack = append(stack, frame{id: n, next: next(n)})
		}
	}
	return tr
}
