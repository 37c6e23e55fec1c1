package automata

// IsStandard reports whether the automaton has exactly one initial state and
// no transition of the automaton enters it.
func (v *view[T, V]) IsStandard() bool {
	if len(v.initials) != 1 {
		return false
	}
	for id := range v.initials {
		if v.count(&v.g.slots[id].previous) != 0 {
			return false
		}
	}
	return true
}

// IsDeterministic reports whether the automaton is standard and no state has
// two transitions with the same symbol.
func (v *view[T, V]) IsDeterministic() bool {
	if !v.IsStandard() {
		return false
	}
	for id := range v.states {
		e := &v.g.slots[id].follows
		for _, sym := range e.symbols {
			if len(v.visible(e.get(sym))) > 1 {
				return false
			}
		}
	}
	return true
}

// IsFullyDeterministic reports whether the automaton is standard and every
// state has exactly one transition per symbol of the alphabet.
func (v *view[T, V]) IsFullyDeterministic() bool {
	if !v.IsStandard() {
		return false
	}
	alphabet := v.Alphabet()
	for id := range v.states {
		e := &v.g.slots[id].follows
		for _, sym := range alphabet {
			if len(v.visible(e.get(sym))) != 1 {
				return false
			}
		}
	}
	return true
}

// IsHomogeneous reports whether all the transitions entering a state carry
// the same symbol.
func (v *view[T, V]) IsHomogeneous() bool {
	for id := range v.states {
		e := &v.g.slots[id].previous
		n := 0
		for _, sym := range e.symbols {
			if len(v.visible(e.get(sym))) > 0 {
				n++
			}
		}
		if n > 1 {
			return false
		}
	}
	return true
}

// IsAccessible reports whether every state can be reached from an initial
// state.
func (v *view[T, V]) IsAccessible() bool {
	return v.reachesAll(v.initials, false)
}

// IsCoaccessible reports whether a final state can be reached from every
// state.
func (v *view[T, V]) IsCoaccessible() bool {
	return v.reachesAll(v.finals, true)
}

// reachesAll runs a search rooted at start first, then at the other states.
// Every state is reachable from start when no other tree is started.
func (v *view[T, V]) reachesAll(start idSet, backward bool) bool {
	order := start.sorted()
	for _, id := range v.order() {
		if !start.has(id) {
			order = append(order, id)
		}
	}
	tr := v.dfs(order, backward)
	for _, id := range tr.prefix {
		if _, ok := tr.pred[id]; !ok && !start.has(id) {
			return false
		}
	}
	return true
}

// IsOrbit reports whether the automaton is strongly connected and holds a
// cycle: several states, or a single state with a loop.
func (v *view[T, V]) IsOrbit() bool {
	if !v.IsStronglyConnected() {
		return false
	}
	switch len(v.states) {
	case 0:
		return false
	case 1:
		for id := range v.states {
			return v.g.neighbours(id, false).has(id)
		}
	}
	return true
}

// IsMaximalOrbit reports whether the automaton is a homogeneous single
// strongly connected component in which every state has a transition to an
// initial state.
func (v *view[T, V]) IsMaximalOrbit() bool {
	if !v.IsHomogeneous() || len(v.components()) != 1 {
		return false
	}
	for id := range v.states {
		if !intersects(v.g.neighbours(id, false), v.initials) {
			return false
		}
	}
	return true
}

// doorSets splits the doors of the automaton into In and Out sets. A Both
// door belongs to both.
func (v *view[T, V]) doorSets() (in, out idSet) {
	in, out = idSet{}, idSet{}
	for id, t := range v.doorTypes(v.components()) {
		if t.IsIn() {
			in.add(id)
		}
		if t.IsOut() {
			out.add(id)
		}
	}
	return in, out
}

// IsStable reports whether every Out door has a transition to some In door
// and every In door is entered from some Out door.
func (v *view[T, V]) IsStable() bool {
	in, out := v.doorSets()
	for id := range out {
		if !intersects(v.g.neighbours(id, false), in) {
			return false
		}
	}
	for id := range in {
		if !intersects(v.g.neighbours(id, true), out) {
			return false
		}
	}
	return true
}

// IsTransverse reports whether all In doors have the same predecessors
// outside their component, and all Out doors the same successors outside
// their component.
func (v *view[T, V]) IsTransverse() bool {
	comps := v.components()
	member := make(map[stateID]int, len(v.states))
	for i, c := range comps {
		for _, id := range c {
			member[id] = i
		}
	}
	external := func(id stateID, backward bool) idSet {
		out := idSet{}
		for n := range v.g.neighbours(id, backward) {
			if m, ok := member[n]; !ok || m != member[id] {
				out.add(n)
			}
		}
		return out
	}

	var inRef, outRef idSet
	for id, t := range v.doorTypes(comps) {
		if t.IsIn() {
			ext := external(id, true)
			if inRef == nil {
				inRef = ext
			} else if !inRef.equal(ext) {
				return false
			}
		}
		if t.IsOut() {
			ext := external(id, false)
			if outRef == nil {
				outRef = ext
			} else if !outRef.equal(ext) {
				return false
			}
		}
	}
	return true
}

func intersects(a, b idSet) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for id := range a {
		if b.has(id) {
			return true
		}
	}
	return false
}
