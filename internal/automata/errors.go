package automata

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownState indicates a referenced state is not in the automaton.
	ErrUnknownState = errors.New("unknown state")
	// ErrUnknownStateFrom indicates the source of a transition is unknown.
	ErrUnknownStateFrom = errors.New("unknown state 'from'")
	// ErrUnknownStateTo indicates the destination of a transition is unknown.
	ErrUnknownStateTo = errors.New("unknown state 'to'")
	// ErrDuplicateState indicates a state appears twice in an input set.
	ErrDuplicateState = errors.New("duplicate state")
	// ErrNotEnoughState indicates a DFS order is not a permutation of the states.
	ErrNotEnoughState = errors.New("not enough state given")
	// ErrInputStateIsNotInStates indicates a sub-automaton input outside its states.
	ErrInputStateIsNotInStates = errors.New("input state is not in states")
	// ErrOutputStateIsNotInStates indicates a sub-automaton output outside its states.
	ErrOutputStateIsNotInStates = errors.New("output state is not in states")
	// ErrInvalidSchema indicates a persisted automaton failed validation.
	ErrInvalidSchema = errors.New("invalid automaton schema")
)

func stateErr[V any](kind error, v V) error {
	return fmt.Errorf("%w: %v", kind, v)
}
