package automata

// copyView builds an independent automaton holding the states of v and the
// transitions between them. With mirror set, transitions are reversed and
// initial and final states swapped.
func (v *view[T, V]) copyView(mirror bool) *Automaton[T, V] {
	out := New[T, V](WithDoorPolicy(v.policy))
	order := v.order()
	for _, id := range order {
		out.AddState(v.g.label(id))
	}
	for _, id := range order {
		from := v.g.label(id)
		s := v.g.slots[id]
		for _, sym := range s.follows.symbols {
			for _, to := range s.follows.get(sym).sorted() {
				if !v.states.has(to) {
					continue
				}
				fid, _ := out.g.lookup(from)
				tid, _ := out.g.lookup(v.g.label(to))
				if mirror {
					fid, tid = tid, fid
				}
				out.g.link(fid, tid, sym)
			}
		}
	}
	initials, finals := v.initials, v.finals
	if mirror {
		initials, finals = finals, initials
	}
	for _, id := range initials.sorted() {
		nid, _ := out.g.lookup(v.g.label(id))
		out.initials.add(nid)
	}
	for _, id := range finals.sorted() {
		nid, _ := out.g.lookup(v.g.label(id))
		out.finals.add(nid)
	}
	return out
}

// Clone returns an untracked copy of the automaton.
func (v *view[T, V]) Clone() *Automaton[T, V] { return v.copyView(false) }

// Mirror returns the reverse automaton: every transition is inverted and
// initial and final states are swapped. It recognises the mirror language.
func (v *view[T, V]) Mirror() *Automaton[T, V] { return v.copyView(true) }
