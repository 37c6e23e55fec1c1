package automata

// ExtractSCC returns one tracked sub-automaton per strongly connected
// component, in the order of Kosaraju. The initial states of a component are
// its In doors, its final states its Out doors.
func (v *view[T, V]) ExtractSCC() []*SubAutomaton[T, V] {
	comps := v.components()
	types := v.doorTypes(comps)
	out := make([]*SubAutomaton[T, V], len(comps))
	for i, c := range comps {
		states, initials, finals := idSet{}, idSet{}, idSet{}
		for _, id := range c {
			states.add(id)
			if types[id].IsIn() {
				initials.add(id)
			}
			if types[id].IsOut() {
				finals.add(id)
			}
		}
		out[i] = v.root.track(states, initials, finals)
	}
	return out
}

// SubAutomata returns a tracked sub-automaton over states, with inputs as
// initial states and outputs as final states. Every label must be a state of
// the receiver and inputs and outputs must be among states.
func (v *view[T, V]) SubAutomata(states, inputs, outputs []V) (*SubAutomaton[T, V], error) {
	set := make(idSet, len(states))
	for _, label := range states {
		id, err := v.resolve(label, ErrUnknownState)
		if err != nil {
			return nil, err
		}
		if !set.add(id) {
			return nil, stateErr(ErrDuplicateState, label)
		}
	}
	initials, err := v.subset(set, inputs, ErrInputStateIsNotInStates)
	if err != nil {
		return nil, err
	}
	finals, err := v.subset(set, outputs, ErrOutputStateIsNotInStates)
	if err != nil {
		return nil, err
	}
	return v.root.track(set, initials, finals), nil
}

func (v *view[T, V]) subset(states idSet, labels []V, kind error) (idSet, error) {
	out := make(idSet, len(labels))
	for _, label := range labels {
		id, err := v.resolve(label, ErrUnknownState)
		if err != nil {
			return nil, err
		}
		if !states.has(id) {
			return nil, stateErr(kind, label)
		}
		out.add(id)
	}
	return out, nil
}
