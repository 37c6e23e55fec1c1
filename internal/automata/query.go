package automata

// visible keeps the ids of set that belong to the view, in insertion order.
func (v *view[T, V]) visible(set idSet) []stateID {
	var out []stateID
	for _, id := range set.sorted() {
		if v.states.has(id) {
			out = append(out, id)
		}
	}
	return out
}

// Follows returns the states reached from label by sym.
func (v *view[T, V]) Follows(label V, sym T) ([]V, error) {
	id, err := v.resolve(label, ErrUnknownState)
	if err != nil {
		return nil, err
	}
	return v.g.labels(v.visible(v.g.slots[id].follows.get(sym))), nil
}

// Previous returns the states reaching label by sym.
func (v *view[T, V]) Previous(label V, sym T) ([]V, error) {
	id, err := v.resolve(label, ErrUnknownState)
	if err != nil {
		return nil, err
	}
	return v.g.labels(v.visible(v.g.slots[id].previous.get(sym))), nil
}

// Transitions returns the symbols labelling a transition from -> to.
func (v *view[T, V]) Transitions(from, to V) ([]T, error) {
	tid, err := v.resolve(to, ErrUnknownStateTo)
	if err != nil {
		return nil, err
	}
	fid, err := v.resolve(from, ErrUnknownStateFrom)
	if err != nil {
		return nil, err
	}
	var out []T
	e := &v.g.slots[fid].follows
	for _, sym := range e.symbols {
		if e.get(sym).has(tid) {
			out = append(out, sym)
		}
	}
	return out, nil
}

// TransitionsOutCount counts the transitions leaving label inside the view.
func (v *view[T, V]) TransitionsOutCount(label V) (int, error) {
	id, err := v.resolve(label, ErrUnknownState)
	if err != nil {
		return 0, err
	}
	return v.count(&v.g.slots[id].follows), nil
}

// TransitionsInCount counts the transitions entering label inside the view.
func (v *view[T, V]) TransitionsInCount(label V) (int, error) {
	id, err := v.resolve(label, ErrUnknownState)
	if err != nil {
		return 0, err
	}
	return v.count(&v.g.slots[id].previous), nil
}

func (v *view[T, V]) count(e *edges[T]) int {
	n := 0
	for _, set := range e.dest {
		for id := range set {
			if v.states.has(id) {
				n++
			}
		}
	}
	return n
}

// Alphabet returns the symbols used by transitions inside the view, in the
// order they are first met walking the states in insertion order.
func (v *view[T, V]) Alphabet() []T {
	seen := map[T]struct{}{}
	var out []T
	for _, id := range v.order() {
		e := &v.g.slots[id].follows
		for _, sym := range e.symbols {
			if _, ok := seen[sym]; ok {
				continue
			}
			if len(v.visible(e.get(sym))) == 0 {
				continue
			}
			seen[sym] = struct{}{}
			out = append(out, sym)
		}
	}
	return out
}

// Transition is a labelled edge between two states.
type Transition[T, V comparable] struct {
	From   V
	Symbol T
	To     V
}

// AllTransitions lists the transitions inside the view, grouped by source
// state in insertion order.
func (v *view[T, V]) AllTransitions() []Transition[T, V] {
	var out []Transition[T, V]
	for _, id := range v.order() {
		e := &v.g.slots[id].follows
		for _, sym := range e.symbols {
			for _, to := range v.visible(e.get(sym)) {
				out = append(out, Transition[T, V]{
					From:   v.g.label(id),
					Symbol: sym,
					To:     v.g.label(to),
				})
			}
		}
	}
	return out
}
