package automata

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Schema is the persisted form of an automaton.
type Schema[T, V comparable] struct {
	States   []V            `json:"states" cbor:"states"`
	Initials []V            `json:"initials" cbor:"initials"`
	Finals   []V            `json:"finals" cbor:"finals"`
	Follows  []Follow[T, V] `json:"follows" cbor:"follows"`
}

// Follow is a transition, encoded as the array [from, symbol, to].
type Follow[T, V comparable] struct {
	_      struct{} `cbor:",toarray"`
	From   V
	Symbol T
	To     V
}

func (f Follow[T, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{f.From, f.Symbol, f.To})
}

func (f *Follow[T, V]) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("follow: want [from, symbol, to], got %d elements", len(raw))
	}
	if err := json.Unmarshal(raw[0], &f.From); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &f.Symbol); err != nil {
		return err
	}
	return json.Unmarshal(raw[2], &f.To)
}

// Schema returns the persisted form of the automaton, states in insertion
// order.
func (v *view[T, V]) Schema() Schema[T, V] {
	s := Schema[T, V]{
		States:   v.States(),
		Initials: v.Initials(),
		Finals:   v.Finals(),
		Follows:  []Follow[T, V]{},
	}
	for _, t := range v.AllTransitions() {
		s.Follows = append(s.Follows, Follow[T, V]{From: t.From, Symbol: t.Symbol, To: t.To})
	}
	return s
}

// FromSchema builds an automaton from its persisted form. Errors wrap
// ErrInvalidSchema and the cause.
func FromSchema[T, V comparable](s Schema[T, V], opts ...Option) (*Automaton[T, V], error) {
	a := New[T, V](opts...)
	for _, label := range s.States {
		if !a.AddState(label) {
			return nil, invalid(stateErr(ErrDuplicateState, label))
		}
	}
	for _, label := range s.Initials {
		if _, err := a.AddInitial(label); err != nil {
			return nil, invalid(err)
		}
	}
	for _, label := range s.Finals {
		if _, err := a.AddFinal(label); err != nil {
			return nil, invalid(err)
		}
	}
	for _, f := range s.Follows {
		if _, err := a.AddTransition(f.From, f.To, f.Symbol); err != nil {
			return nil, invalid(err)
		}
	}
	return a, nil
}

func invalid(err error) error { return fmt.Errorf("%w: %w", ErrInvalidSchema, err) }

func (a *Automaton[T, V]) MarshalJSON() ([]byte, error) { return json.Marshal(a.Schema()) }

// UnmarshalJSON replaces the automaton with the decoded one. Tracked
// sub-automata stay tracked but lose all their states. A zero Automaton is
// turned into an empty one first, so it is usable even if decoding fails.
func (a *Automaton[T, V]) UnmarshalJSON(b []byte) error {
	if a.g == nil {
		*a = *New[T, V](WithDoorPolicy(a.policy))
		a.root = a
	}
	var s Schema[T, V]
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return a.load(s)
}

// load swaps the content of the arena in place, so sub-automata keep sharing
// it with the automaton.
func (a *Automaton[T, V]) load(s Schema[T, V]) error {
	built, err := FromSchema(s, WithDoorPolicy(a.policy))
	if err != nil {
		return err
	}
	for _, c := range a.liveChildren() {
		c.states, c.initials, c.finals = idSet{}, idSet{}, idSet{}
	}
	*a.g = *built.g
	a.states, a.initials, a.finals = built.states, built.initials, built.finals
	return nil
}

// EncodeCBOR writes the persisted form of the automaton to w.
func (v *view[T, V]) EncodeCBOR(w io.Writer) error {
	return cbor.NewEncoder(w).Encode(v.Schema())
}

// DecodeCBOR reads an automaton written by EncodeCBOR.
func DecodeCBOR[T, V comparable](r io.Reader, opts ...Option) (*Automaton[T, V], error) {
	var s Schema[T, V]
	if err := cbor.NewDecoder(r).Decode(&s); err != nil {
		return nil, err
	}
	return FromSchema(s, opts...)
}
