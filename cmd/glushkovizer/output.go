package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/Lurgrid/Glushkovizer/internal/automata"
	"github.com/Lurgrid/Glushkovizer/internal/regexp"
)

// properties is the part of an automaton the report looks at. Automata and
// sub-automata both implement it.
type properties interface {
	StatesCount() int
	InitialsCount() int
	FinalsCount() int
	IsStandard() bool
	IsDeterministic() bool
	IsFullyDeterministic() bool
	IsHomogeneous() bool
	IsAccessible() bool
	IsCoaccessible() bool
	IsStronglyConnected() bool
	IsOrbit() bool
	IsStable() bool
	IsTransverse() bool
}

func decode[V comparable](name string, b []byte, opts []automata.Option) (*automata.Automaton[regexp.Letter, V], error) {
	if filepath.Ext(name) == ".cbor" {
		return automata.DecodeCBOR[regexp.Letter, V](bytes.NewReader(b), opts...)
	}
	a := automata.New[regexp.Letter, V](opts...)
	if err := json.Unmarshal(b, a); err != nil {
		return nil, err
	}
	return a, nil
}

func process[V comparable](w io.Writer, a *automata.Automaton[regexp.Letter, V], cfg *config, logger *slog.Logger) error {
	logger.Debug("automaton ready",
		"states", a.StatesCount(),
		"initials", a.InitialsCount(),
		"finals", a.FinalsCount(),
	)
	for _, word := range cfg.accept {
		verdict := "rejected"
		if a.Accept(regexp.Letters(word)) {
			verdict = "accepted"
		}
		fmt.Fprintf(w, "%q: %s\n", word, verdict)
	}
	if cfg.report {
		report(w, a)
	}
	if cfg.out != "" {
		if err := writeDOT(a, cfg.out, cfg.inverse, logger); err != nil {
			return err
		}
	}
	if cfg.json != "" {
		b, err := json.MarshalIndent(a, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.json, append(b, '\n'), 0o644); err != nil {
			return err
		}
		logger.Info("JSON written", "file", cfg.json)
	}
	if cfg.cbor != "" {
		var buf bytes.Buffer
		if err := a.EncodeCBOR(&buf); err != nil {
			return err
		}
		if err := os.WriteFile(cfg.cbor, buf.Bytes(), 0o644); err != nil {
			return err
		}
		logger.Info("CBOR written", "file", cfg.cbor)
	}
	if len(cfg.accept) == 0 && !cfg.report && cfg.out == "" && cfg.json == "" && cfg.cbor == "" {
		return a.WriteDOT(w, cfg.inverse)
	}
	return nil
}

// writeDOT writes <prefix>.dot and one <prefix><i>.dot per orbit, i being the
// index of the component.
func writeDOT[V comparable](a *automata.Automaton[regexp.Letter, V], prefix string, inverse bool, logger *slog.Logger) error {
	if err := writeFile(prefix+".dot", func(w io.Writer) error { return a.WriteDOT(w, inverse) }); err != nil {
		return err
	}
	logger.Info("DOT written", "file", prefix+".dot")
	for i, sub := range a.ExtractSCC() {
		if !sub.IsOrbit() {
			continue
		}
		name := prefix + strconv.Itoa(i) + ".dot"
		if err := writeFile(name, func(w io.Writer) error { return sub.WriteDOT(w, inverse) }); err != nil {
			return err
		}
		logger.Info("orbit DOT written", "file", name, "states", sub.StatesCount())
	}
	return nil
}

func writeFile(name string, fn func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("cannot create %s: %w", name, err)
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func propertyRows(p properties) [][]string {
	return [][]string{
		{"states", strconv.Itoa(p.StatesCount())},
		{"initials", strconv.Itoa(p.InitialsCount())},
		{"finals", strconv.Itoa(p.FinalsCount())},
		{"standard", yesNo(p.IsStandard())},
		{"deterministic", yesNo(p.IsDeterministic())},
		{"fully deterministic", yesNo(p.IsFullyDeterministic())},
		{"homogeneous", yesNo(p.IsHomogeneous())},
		{"accessible", yesNo(p.IsAccessible())},
		{"coaccessible", yesNo(p.IsCoaccessible())},
		{"strongly connected", yesNo(p.IsStronglyConnected())},
	}
}

// report prints the properties of a then one row per strongly connected
// component.
func report[V comparable](w io.Writer, a *automata.Automaton[regexp.Letter, V]) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Property", "Value"})
	table.AppendBulk(propertyRows(a))
	table.Render()

	comps := tablewriter.NewWriter(w)
	comps.SetHeader([]string{"Component", "States", "Doors", "Orbit", "Maximal", "Stable", "Transverse"})
	doors := a.Doors()
	for i, sub := range a.ExtractSCC() {
		var ds []string
		for _, d := range doors[i] {
			if d.Type != automata.DoorNone {
				ds = append(ds, fmt.Sprintf("%v:%v", d.State, d.Type))
			}
		}
		orbit := sub.IsOrbit()
		maximal, stable, transverse := "-", "-", "-"
		if orbit {
			maximal, stable, transverse = yesNo(sub.IsMaximalOrbit()), yesNo(sub.IsStable()), yesNo(sub.IsTransverse())
		}
		comps.Append([]string{
			strconv.Itoa(i),
			fmt.Sprint(sub.States()),
			fmt.Sprint(ds),
			yesNo(orbit),
			maximal,
			stable,
			transverse,
		})
	}
	comps.Render()
}
