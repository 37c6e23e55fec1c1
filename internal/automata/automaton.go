// Package automata implements finite automata over a shared state arena,
// Glushkov construction from regular expressions and structural analysis:
// depth first search, strongly connected components, doors and properties.
//
// An Automaton owns its arena. A SubAutomaton is a view over a subset of the
// states of its parent; removing a state from the parent removes it from every
// live sub-automaton too.
package automata

import (
	"weak"
)

// DoorPolicy selects which states count as doors of their strongly connected
// component besides those with a crossing transition.
type DoorPolicy int

const (
	// DoorsFromEdges classifies doors from crossing transitions only.
	DoorsFromEdges DoorPolicy = iota
	// DoorsFromEdgesAndEnds also marks initial states as In and final states as Out.
	DoorsFromEdgesAndEnds
)

type Option func(*options)

type options struct {
	policy DoorPolicy
}

// WithDoorPolicy sets the door policy of a new automaton. Sub-automata
// inherit the policy of their parent.
func WithDoorPolicy(p DoorPolicy) Option {
	return func(o *options) { o.policy = p }
}

// view is the part shared by automata and sub-automata: a set of visible
// states over an arena, with its own initial and final states.
type view[T, V comparable] struct {
	g        *graph[T, V]
	root     *Automaton[T, V]
	states   idSet
	initials idSet
	finals   idSet
	policy   DoorPolicy
}

// Automaton is a nondeterministic finite automaton with symbols of type T and
// states labelled by values of type V. Call New; the zero value only becomes
// usable through UnmarshalJSON.
type Automaton[T, V comparable] struct {
	view[T, V]
	children []weak.Pointer[SubAutomaton[T, V]]
}

// SubAutomaton is a tracked restriction of an Automaton to a subset of its
// states. Its transitions are those of the parent with both ends inside.
type SubAutomaton[T, V comparable] struct {
	view[T, V]
}

// New creates an empty automaton.
func New[T, V comparable](opts ...Option) *Automaton[T, V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	a := &Automaton[T, V]{view: view[T, V]{
		g:        newGraph[T, V](),
		states:   idSet{},
		initials: idSet{},
		finals:   idSet{},
		policy:   o.policy,
	}}
	a.root = a
	return a
}

// DoorPolicy returns the policy used by Doors and the door based properties.
func (v *view[T, V]) DoorPolicy() DoorPolicy { return v.policy }

// SetDoorPolicy changes the door policy of this automaton only.
func (v *view[T, V]) SetDoorPolicy(p DoorPolicy) { v.policy = p }

// id resolves a label visible in this view.
func (v *view[T, V]) id(label V) (stateID, bool) {
	id, ok := v.g.lookup(label)
	if !ok || !v.states.has(id) {
		return 0, false
	}
	return id, true
}

func (v *view[T, V]) resolve(label V, kind error) (stateID, error) {
	id, ok := v.id(label)
	if !ok {
		return 0, stateErr(kind, label)
	}
	return id, nil
}

// order returns the visible states in arena insertion order.
func (v *view[T, V]) order() []stateID { return v.states.sorted() }

func (v *view[T, V]) StatesCount() int { return len(v.states) }

func (v *view[T, V]) InitialsCount() int { return len(v.initials) }

func (v *view[T, V]) FinalsCount() int { return len(v.finals) }

// States returns the labels of the states in insertion order.
func (v *view[T, V]) States() []V { return v.g.labels(v.order()) }

func (v *view[T, V]) Initials() []V { return v.g.labels(v.initials.sorted()) }

func (v *view[T, V]) Finals() []V { return v.g.labels(v.finals.sorted()) }

func (v *view[T, V]) HasState(label V) bool {
	_, ok := v.id(label)
	return ok
}

func (v *view[T, V]) IsInitial(label V) bool {
	id, ok := v.id(label)
	return ok && v.initials.has(id)
}

func (v *view[T, V]) IsFinal(label V) bool {
	id, ok := v.id(label)
	return ok && v.finals.has(id)
}

// AddInitial marks a state as initial and reports whether it was not already.
func (v *view[T, V]) AddInitial(label V) (bool, error) {
	id, err := v.resolve(label, ErrUnknownState)
	if err != nil {
		return false, err
	}
	return v.initials.add(id), nil
}

// AddFinal marks a state as final and reports whether it was not already.
func (v *view[T, V]) AddFinal(label V) (bool, error) {
	id, err := v.resolve(label, ErrUnknownState)
	if err != nil {
		return false, err
	}
	return v.finals.add(id), nil
}

// RemoveInitial unmarks an initial state and reports whether it was marked.
func (v *view[T, V]) RemoveInitial(label V) (bool, error) {
	id, err := v.resolve(label, ErrUnknownState)
	if err != nil {
		return false, err
	}
	return v.initials.remove(id), nil
}

// RemoveFinal unmarks a final state and reports whether it was marked.
func (v *view[T, V]) RemoveFinal(label V) (bool, error) {
	id, err := v.resolve(label, ErrUnknownState)
	if err != nil {
		return false, err
	}
	return v.finals.remove(id), nil
}

// AddTransition adds from -sym-> to and reports whether it is new. The
// transition is stored in the shared arena, so it is also visible from the
// parent of a sub-automaton.
func (v *view[T, V]) AddTransition(from, to V, sym T) (bool, error) {
	tid, err := v.resolve(to, ErrUnknownStateTo)
	if err != nil {
		return false, err
	}
	fid, err := v.resolve(from, ErrUnknownStateFrom)
	if err != nil {
		return false, err
	}
	return v.g.link(fid, tid, sym), nil
}

// RemoveTransition removes from -sym-> to and reports whether it existed.
func (v *view[T, V]) RemoveTransition(from, to V, sym T) (bool, error) {
	tid, err := v.resolve(to, ErrUnknownStateTo)
	if err != nil {
		return false, err
	}
	fid, err := v.resolve(from, ErrUnknownStateFrom)
	if err != nil {
		return false, err
	}
	return v.g.unlink(fid, tid, sym), nil
}

// dropState forgets id in this view without touching the arena.
func (v *view[T, V]) dropState(id stateID) bool {
	v.initials.remove(id)
	v.finals.remove(id)
	return v.states.remove(id)
}

// AddState adds a state and reports whether the label was new.
func (a *Automaton[T, V]) AddState(label V) bool {
	id, created := a.g.add(label)
	if created {
		a.states.add(id)
	}
	return created
}

// RemoveState deletes a state with its transitions, from this automaton and
// from every sub-automaton still tracking it.
func (a *Automaton[T, V]) RemoveState(label V) error {
	id, err := a.resolve(label, ErrUnknownState)
	if err != nil {
		return err
	}
	for _, c := range a.liveChildren() {
		c.dropState(id)
	}
	a.dropState(id)
	a.g.remove(id)
	return nil
}

// Children returns the sub-automata still tracked by the automaton.
func (a *Automaton[T, V]) Children() []*SubAutomaton[T, V] { return a.liveChildren() }

// liveChildren prunes registry entries whose sub-automaton has been collected.
func (a *Automaton[T, V]) liveChildren() []*SubAutomaton[T, V] {
	var out []*SubAutomaton[T, V]
	kept := a.children[:0]
	for _, w := range a.children {
		if c := w.Value(); c != nil {
			kept = append(kept, w)
			out = append(out, c)
		}
	}
	for i := len(kept); i < len(a.children); i++ {
		a.children[i] = weak.Pointer[SubAutomaton[T, V]]{}
	}
	a.children = kept
	return out
}

func (a *Automaton[T, V]) track(states, initials, finals idSet) *SubAutomaton[T, V] {
	c := &SubAutomaton[T, V]{view: view[T, V]{
		g:        a.g,
		root:     a,
		states:   states,
		initials: initials,
		finals:   finals,
		policy:   a.policy,
	}}
	a.children = append(a.children, weak.Make(c))
	return c
}

// Parent returns the automaton owning the states of the sub-automaton.
func (s *SubAutomaton[T, V]) Parent() *Automaton[T, V] { return s.root }

// AddState adds a state to the sub-automaton. A label unknown to the parent
// is added to the parent as well; sibling sub-automata are not affected.
func (s *SubAutomaton[T, V]) AddState(label V) bool {
	id, created := s.g.add(label)
	if created {
		s.root.states.add(id)
	}
	return s.states.add(id)
}

// RemoveState removes a state from the sub-automaton only. The parent and its
// transitions are left untouched.
func (s *SubAutomaton[T, V]) RemoveState(label V) error {
	id, err := s.resolve(label, ErrUnknownState)
	if err != nil {
		return err
	}
	s.dropState(id)
	return nil
}
