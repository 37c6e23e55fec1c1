package automata

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// stateID addresses a slot of the arena. Slots are never reused, so ids are
// stable for the lifetime of the arena and increase with insertion order.
type stateID int

type idSet map[stateID]struct{}

func (s idSet) has(id stateID) bool {
	_, ok := s[id]
	return ok
}

func (s idSet) add(id stateID) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

func (s idSet) remove(id stateID) bool {
	if _, ok := s[id]; !ok {
		return false
	}
	delete(s, id)
	return true
}

func (s idSet) sorted() []stateID {
	ids := maps.Keys(s)
	slices.Sort(ids)
	return ids
}

func (s idSet) clone() idSet {
	out := make(idSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

func (s idSet) equal(o idSet) bool {
	if len(s) != len(o) {
		return false
	}
	for id := range s {
		if !o.has(id) {
			return false
		}
	}
	return true
}

// edges maps a symbol to the set of states on the other end. Symbols keep
// their first insertion order.
type edges[T comparable] struct {
	symbols []T
	dest    map[T]idSet
}

func (e *edges[T]) add(sym T, id stateID) bool {
	if e.dest == nil {
		e.dest = map[T]idSet{}
	}
	set, ok := e.dest[sym]
	if !ok {
		set = idSet{}
		e.dest[sym] = set
		e.symbols = append(e.symbols, sym)
	}
	return set.add(id)
}

func (e *edges[T]) remove(sym T, id stateID) bool {
	set, ok := e.dest[sym]
	if !ok || !set.remove(id) {
		return false
	}
	if len(set) == 0 {
		delete(e.dest, sym)
		if i := slices.Index(e.symbols, sym); i >= 0 {
			e.symbols = slices.Delete(e.symbols, i, i+1)
		}
	}
	return true
}

func (e *edges[T]) get(sym T) idSet { return e.dest[sym] }

type slot[T, V comparable] struct {
	label    V
	follows  edges[T]
	previous edges[T]
}

// graph is the state arena shared by an automaton and its sub-automata. It
// owns labels and the transition relation; views decide which states they see.
type graph[T, V comparable] struct {
	slots []*slot[T, V]
	ids   map[V]stateID
}

func newGraph[T, V comparable]() *graph[T, V] {
	return &graph[T, V]{ids: map[V]stateID{}}
}

func (g *graph[T, V]) lookup(v V) (stateID, bool) {
	id, ok := g.ids[v]
	return id, ok
}

func (g *graph[T, V]) label(id stateID) V { return g.slots[id].label }

func (g *graph[T, V]) labels(ids []stateID) []V {
	out := make([]V, len(ids))
	for i, id := range ids {
		out[i] = g.slots[id].label
	}
	return out
}

// add returns the id of v, creating a slot when v is new.
func (g *graph[T, V]) add(v V) (stateID, bool) {
	if id, ok := g.ids[v]; ok {
		return id, false
	}
	id := stateID(len(g.slots))
	g.slots = append(g.slots, &slot[T, V]{label: v})
	g.ids[v] = id
	return id, true
}

func (g *graph[T, V]) link(from, to stateID, sym T) bool {
	if !g.slots[from].follows.add(sym, to) {
		return false
	}
	g.slots[to].previous.add(sym, from)
	return true
}

func (g *graph[T, V]) unlink(from, to stateID, sym T) bool {
	if !g.slots[from].follows.remove(sym, to) {
		return false
	}
	g.slots[to].previous.remove(sym, from)
	return true
}

// remove drops every transition incident to id and frees its label. The
// slot itself is never reused.
func (g *graph[T, V]) remove(id stateID) {
	s := g.slots[id]
	for _, sym := range slices.Clone(s.previous.symbols) {
		for from := range s.previous.get(sym).clone() {
			g.unlink(from, id, sym)
		}
	}
	for _, sym := range slices.Clone(s.follows.symbols) {
		for to := range s.follows.get(sym).clone() {
			g.unlink(id, to, sym)
		}
	}
	delete(g.ids, s.label)
}

// neighbours returns the union of the states linked to id, either through
// follows or, when backward, through previous.
func (g *graph[T, V]) neighbours(id stateID, backward bool) idSet {
	e := &g.slots[id].follows
	if backward {
		e = &g.slots[id].previous
	}
	out := idSet{}
	for _, set := range e.dest {
		for n := range set {
			out[n] = struct{}{}
		}
	}
	return out
}
