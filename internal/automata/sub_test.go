package automata

import (
	"errors"
	"fmt"
	"runtime"
	"testing"
	"weak"

	"github.com/Lurgrid/Glushkovizer/internal/regexp"
)

// ------------------------------------------------------------------- Doors

func doorString[V comparable](doors [][]Door[V]) string {
	var s string
	for _, c := range doors {
		s += "["
		for i, d := range c {
			if i > 0 {
				s += " "
			}
			s += fmt.Sprintf("%v:%v", d.State, d.Type)
		}
		s += "]"
	}
	return s
}

func TestDoorsFromEdges(t *testing.T) {
	got := doorString(orbits().Doors())
	want := "[0:Out][2:Both][1:Both][3:Both][4:Both][5:In 6:In]"
	if got != want {
		t.Fatalf("doors\nwant %s\ngot  %s", want, got)
	}
}

func TestDoorsFromEdgesAndEnds(t *testing.T) {
	a := FromRegexp(regexp.MustParse("(a+b).a*.b*.(a+b)*"), WithDoorPolicy(DoorsFromEdgesAndEnds))
	got := doorString(a.Doors())
	want := "[0:Both][2:Both][1:Both][3:Both][4:Both][5:Both 6:Both]"
	if got != want {
		t.Fatalf("doors\nwant %s\ngot  %s", want, got)
	}
}

func TestDoorTypeAdd(t *testing.T) {
	if DoorIn.Add(DoorOut) != DoorBoth || DoorNone.Add(DoorIn) != DoorIn || DoorBoth.Add(DoorIn) != DoorBoth {
		t.Fatalf("door type combination")
	}
}

// ------------------------------------------------------------------- ExtractSCC

func TestExtractSCCPartition(t *testing.T) {
	for _, expr := range []string{"(a+b).a*.b*.(a+b)*", "a.a", "(a.b)*.c", "$", "(a+b)*"} {
		a := FromRegexp(regexp.MustParse(expr))
		subs := a.ExtractSCC()
		seen := map[int]int{}
		total := 0
		for _, s := range subs {
			total += s.StatesCount()
			for _, st := range s.States() {
				seen[st]++
			}
		}
		if total != a.StatesCount() {
			t.Fatalf("%q: %d states in components, %d in automaton", expr, total, a.StatesCount())
		}
		for _, st := range a.States() {
			if seen[st] != 1 {
				t.Fatalf("%q: state %d in %d components", expr, st, seen[st])
			}
		}
	}
}

func TestExtractSCCOrbits(t *testing.T) {
	subs := orbits().ExtractSCC()
	if len(subs) != 6 {
		t.Fatalf("want 6 components got %d", len(subs))
	}
	for i, want := range []bool{false, false, false, true, true, true} {
		if got := subs[i].IsOrbit(); got != want {
			t.Fatalf("component %d %v: want orbit=%v", i, subs[i].States(), want)
		}
	}

	last := subs[5]
	if got := fmt.Sprint(last.Initials(), last.Finals()); got != "[5 6] []" {
		t.Fatalf("doors of last component: %s", got)
	}
	if n, _ := last.TransitionsInCount(5); n != 2 {
		t.Fatalf("5 is entered from 5 and 6 inside the component, got %d", n)
	}
	if last.Parent() == nil || len(last.Parent().Children()) != 6 {
		t.Fatalf("components must be tracked by the parent")
	}
}

// ------------------------------------------------------------------- Parent / child

func TestRemoveStatePropagates(t *testing.T) {
	a := orbits()
	subs := a.ExtractSCC()
	if err := a.RemoveState(6); err != nil {
		t.Fatalf("remove: %v", err)
	}
	last := subs[5]
	if last.HasState(6) || last.IsInitial(6) || last.StatesCount() != 1 {
		t.Fatalf("state 6 must be gone from the component, got %v", last.States())
	}
	if n, _ := last.TransitionsInCount(5); n != 1 {
		t.Fatalf("only the loop on 5 must remain, got %d", n)
	}
	if next, _ := a.Follows(3, 'b'); fmt.Sprint(next) != "[4]" {
		t.Fatalf("transition 3 -b-> 6 must be gone, got %v", next)
	}
	if !last.IsOrbit() {
		t.Fatalf("5 keeps its loop")
	}
	if _, err := last.AddInitial(6); !errors.Is(err, ErrUnknownState) {
		t.Fatalf("want ErrUnknownState got %v", err)
	}
}

func TestSubRemoveStateIsLocal(t *testing.T) {
	a := orbits()
	sub, err := a.SubAutomata([]int{5, 6}, []int{5}, []int{6})
	if err != nil {
		t.Fatalf("sub: %v", err)
	}
	if err := sub.RemoveState(6); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !a.HasState(6) || !a.Accept(regexp.Letters("ab")) {
		t.Fatalf("parent must be unchanged")
	}
	if sub.FinalsCount() != 0 {
		t.Fatalf("final 6 must be dropped from the view")
	}
}

func TestSubAddState(t *testing.T) {
	a := orbits()
	sub, _ := a.SubAutomata([]int{5}, nil, nil)
	sibling, _ := a.SubAutomata([]int{4}, nil, nil)
	if !sub.AddState(42) {
		t.Fatalf("42 is new to the view")
	}
	if !a.HasState(42) {
		t.Fatalf("a new label must reach the parent")
	}
	if sibling.HasState(42) {
		t.Fatalf("siblings must not see 42")
	}
	if !sub.AddState(4) || !a.HasState(4) || a.StatesCount() != 8 {
		t.Fatalf("adding a known parent state to the view")
	}
	if _, err := sub.AddTransition(4, 42, 'z'); err != nil {
		t.Fatalf("transition: %v", err)
	}
	if next, _ := a.Follows(4, 'z'); fmt.Sprint(next) != "[42]" {
		t.Fatalf("transitions are shared with the parent, got %v", next)
	}
}

func TestSubAutomataErrors(t *testing.T) {
	a := orbits()
	tests := []struct {
		states, inputs, outputs []int
		want                    error
	}{
		{[]int{1, 9}, nil, nil, ErrUnknownState},
		{[]int{1, 1}, nil, nil, ErrDuplicateState},
		{[]int{1, 2}, []int{3}, nil, ErrInputStateIsNotInStates},
		{[]int{1, 2}, []int{1}, []int{4}, ErrOutputStateIsNotInStates},
		{[]int{1, 2}, []int{9}, nil, ErrUnknownState},
	}
	for _, tt := range tests {
		if _, err := a.SubAutomata(tt.states, tt.inputs, tt.outputs); !errors.Is(err, tt.want) {
			t.Fatalf("%v %v %v: want %v got %v", tt.states, tt.inputs, tt.outputs, tt.want, err)
		}
	}
}

func TestSubOfSub(t *testing.T) {
	a := orbits()
	outer, _ := a.SubAutomata([]int{3, 4, 5, 6}, []int{3}, []int{6})
	if _, err := outer.SubAutomata([]int{1}, nil, nil); !errors.Is(err, ErrUnknownState) {
		t.Fatalf("labels must be checked against the sub-automaton, got %v", err)
	}
	inner, err := outer.SubAutomata([]int{5, 6}, []int{5}, nil)
	if err != nil {
		t.Fatalf("inner: %v", err)
	}
	if inner.Parent() != a {
		t.Fatalf("inner must be tracked by the root")
	}
	if err := a.RemoveState(5); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if inner.HasState(5) || outer.HasState(5) {
		t.Fatalf("removal must reach every tracked view")
	}
}

func TestChildrenPruned(t *testing.T) {
	a := orbits()
	kept := func() *SubAutomaton[regexp.Letter, int] { return a.ExtractSCC()[5] }()
	func() {
		for _, s := range a.ExtractSCC() {
			_ = s.StatesCount()
		}
	}()
	for i := 0; i < 20 && len(a.Children()) != 1; i++ {
		runtime.GC()
	}
	children := a.Children()
	if len(children) != 1 || children[0] != kept {
		t.Fatalf("want only the referenced component tracked, got %d", len(children))
	}
	for _, w := range a.children[len(a.children):cap(a.children)] {
		if w != (weak.Pointer[SubAutomaton[regexp.Letter, int]]{}) {
			t.Fatalf("pruned entries must be cleared")
		}
	}

	if err := a.RemoveState(6); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if kept.HasState(6) || a.HasState(6) {
		t.Fatalf("removal must still reach the remaining component")
	}
	runtime.KeepAlive(kept)
}
