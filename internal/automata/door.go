package automata

import "fmt"

// DoorType tells how a state connects its strongly connected component to
// the rest of the automaton. In and Out combine into Both.
type DoorType uint8

const (
	DoorNone DoorType = 0
	DoorIn   DoorType = 1 << 0
	DoorOut  DoorType = 1 << 1
	DoorBoth          = DoorIn | DoorOut
)

// Add combines two door types.
func (d DoorType) Add(o DoorType) DoorType { return d | o }

func (d DoorType) IsIn() bool  { return d&DoorIn != 0 }
func (d DoorType) IsOut() bool { return d&DoorOut != 0 }

func (d DoorType) String() string {
	switch d {
	case DoorNone:
		return "None"
	case DoorIn:
		return "In"
	case DoorOut:
		return "Out"
	case DoorBoth:
		return "Both"
	default:
		return fmt.Sprintf("DoorType(%d)", uint8(d))
	}
}

// Door is a state together with its door type.
type Door[V comparable] struct {
	State V
	Type  DoorType
}

// Doors classifies every state, grouped by strongly connected component in
// the order of Kosaraju. Crossing transitions are looked up in the whole
// arena, so a sub-automaton sees the transitions that leave it as doors.
func (v *view[T, V]) Doors() [][]Door[V] {
	comps := v.components()
	types := v.doorTypes(comps)
	out := make([][]Door[V], len(comps))
	for i, c := range comps {
		out[i] = make([]Door[V], len(c))
		for j, id := range c {
			out[i][j] = Door[V]{State: v.g.label(id), Type: types[id]}
		}
	}
	return out
}

func (v *view[T, V]) doorTypes(comps [][]stateID) map[stateID]DoorType {
	member := make(map[stateID]int, len(v.states))
	for i, c := range comps {
		for _, id := range c {
			member[id] = i
		}
	}
	crosses := func(c int, n stateID) bool {
		m, ok := member[n]
		return !ok || m != c
	}
	types := make(map[stateID]DoorType, len(v.states))
	for i, c := range comps {
		for _, id := range c {
			var t DoorType
			for n := range v.g.neighbours(id, true) {
				if crosses(i, n) {
					t = t.Add(DoorIn)
					break
				}
			}
			for n := range v.g.neighbours(id, false) {
				if crosses(i, n) {
					t = t.Add(DoorOut)
					break
				}
			}
			if v.policy == DoorsFromEdgesAndEnds {
				if v.initials.has(id) {
					t = t.Add(DoorIn)
				}
				if v.finals.has(id) {
					t = t.Add(DoorOut)
				}
			}
			types[id] = t
		}
	}
	return types
}
