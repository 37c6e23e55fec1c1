package automata

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// WriteDOT prints the Graphviz representation of the automaton to w.
//
// Final states are drawn with two peripheries, initial states as diamonds,
// and doors in red (In), blue (Out) or purple (Both). Every strongly
// connected component is a cluster. With inverse set, strokes and text are
// white for dark backgrounds.
func (v *view[T, V]) WriteDOT(w io.Writer, inverse bool) error {
	var b bytes.Buffer
	fmt.Fprintln(&b, "digraph G {")
	fmt.Fprintln(&b, "    rankdir=LR;")
	fmt.Fprintln(&b, "    bgcolor=transparent;")
	if inverse {
		fmt.Fprintln(&b, "    color=white;")
		fmt.Fprintln(&b, "    node [color=white, fontcolor=white];")
		fmt.Fprintln(&b, "    edge [color=white, fontcolor=white];")
	}

	order := v.order()
	node := make(map[stateID]int, len(order))
	for i, id := range order {
		node[id] = i
	}
	comps := v.components()
	types := v.doorTypes(comps)

	//------------------------------------------------------------------ states
	for _, id := range order {
		var attr []string
		if v.finals.has(id) {
			attr = append(attr, "peripheries=2")
		}
		if v.initials.has(id) {
			attr = append(attr, "shape=diamond")
		}
		switch types[id] {
		case DoorIn:
			attr = append(attr, "color=red")
		case DoorOut:
			attr = append(attr, "color=blue")
		case DoorBoth:
			attr = append(attr, "color=purple")
		}
		label := fmt.Sprintf("label=%q", fmt.Sprint(v.g.label(id)))
		fmt.Fprintf(&b, "    s%d [%s];\n", node[id], strings.Join(append([]string{label}, attr...), ", "))
	}

	//------------------------------------------------------------------ components
	for i, c := range comps {
		fmt.Fprintf(&b, "    subgraph cluster%d {\n", i)
		for _, id := range c {
			fmt.Fprintf(&b, "        s%d;\n", node[id])
		}
		fmt.Fprintln(&b, "    }")
	}

	//------------------------------------------------------------------ transitions
	for _, id := range order {
		e := &v.g.slots[id].follows
		for _, sym := range e.symbols {
			for _, to := range v.visible(e.get(sym)) {
				fmt.Fprintf(&b, "    s%d -> s%d [label=%q];\n", node[id], node[to], fmt.Sprint(sym))
			}
		}
	}
	fmt.Fprintln(&b, "}")

	_, err := w.Write(b.Bytes())
	return err
}

// ToDOT returns the Graphviz representation of the automaton.
func (v *view[T, V]) ToDOT(inverse bool) string {
	var b strings.Builder
	_ = v.WriteDOT(&b, inverse)
	return b.String()
}
