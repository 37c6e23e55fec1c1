// Package autfile reads automata written by hand in a line oriented format:
//
//	# comment
//	states 1 2 3
//	initials 1
//	finals 3
//	1 -a-> 2
//	2 -a-> 3
//
// States must be declared before they are used.
package autfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/Lurgrid/Glushkovizer/internal/automata"
	"github.com/Lurgrid/Glushkovizer/internal/regexp"
)

// Automaton is the kind of automaton described by the format.
type Automaton = automata.Automaton[regexp.Letter, string]

// Error is a syntax or semantic error located in the input.
type Error struct {
	Message string
	Line    int
	Column  int
	Err     error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("autfile: error at line %d:%d: %s", e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("autfile: %s", e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

type parser struct {
	sc  *scanner
	tok token
	aut *Automaton
}

// Parse reads an automaton from input.
func Parse(input []byte, opts ...automata.Option) (*Automaton, error) {
	sc, err := newScanner(input)
	if err != nil {
		return nil, err
	}
	p := &parser{sc: sc, aut: automata.New[regexp.Letter, string](opts...)}
	p.advance()
	for p.tok.Type != tokenEOF {
		if err := p.line(); err != nil {
			return nil, err
		}
	}
	return p.aut, nil
}

// ParseFile reads an automaton from the file at path.
func ParseFile(path string, opts ...automata.Option) (*Automaton, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	a, err := Parse(b, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

func (p *parser) advance() { p.tok = p.sc.next() }

func (p *parser) errorf(tok token, cause error, format string, args ...any) error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Line:    tok.Line,
		Column:  tok.Column,
		Err:     cause,
	}
}

func (p *parser) unexpected(want string) error {
	if p.tok.Type == tokenIllegal {
		return p.errorf(p.tok, nil, "illegal input: %s", p.tok.Literal)
	}
	return p.errorf(p.tok, nil, "expected %s, got %s", want, p.tok.Type)
}

// line parses one declaration or transition with its end of line.
func (p *parser) line() error {
	var err error
	switch p.tok.Type {
	case tokenNewline:
	case tokenStates:
		err = p.declaration(func(tok token) error {
			if !p.aut.AddState(tok.Literal) {
				return p.errorf(tok, automata.ErrDuplicateState, "state %s declared twice", tok.Literal)
			}
			return nil
		})
	case tokenInitials:
		err = p.declaration(p.mark(p.aut.AddInitial))
	case tokenFinals:
		err = p.declaration(p.mark(p.aut.AddFinal))
	case tokenName:
		err = p.transition()
	default:
		return p.unexpected("a declaration or a transition")
	}
	if err != nil {
		return err
	}
	return p.endOfLine()
}

func (p *parser) endOfLine() error {
	switch p.tok.Type {
	case tokenNewline:
		p.advance()
		return nil
	case tokenEOF:
		return nil
	default:
		return p.unexpected("end of line")
	}
}

// declaration applies fn to every name following the keyword.
func (p *parser) declaration(fn func(token) error) error {
	p.advance()
	for p.tok.Type == tokenName {
		if err := fn(p.tok); err != nil {
			return err
		}
		p.advance()
	}
	return nil
}

func (p *parser) mark(add func(string) (bool, error)) func(token) error {
	return func(tok token) error {
		if _, err := add(tok.Literal); err != nil {
			return p.errorf(tok, err, "undeclared state %s", tok.Literal)
		}
		return nil
	}
}

func (p *parser) transition() error {
	from := p.tok
	p.advance()
	if p.tok.Type != tokenArrow {
		return p.unexpected("transition arrow")
	}
	arrow := p.tok
	p.advance()
	if p.tok.Type != tokenName {
		return p.unexpected("state")
	}
	to := p.tok
	p.advance()

	// -a->
	sym := regexp.Letter(arrow.Literal[1])
	if _, err := p.aut.AddTransition(from.Literal, to.Literal, sym); err != nil {
		tok := from
		if errors.Is(err, automata.ErrUnknownStateTo) {
			tok = to
		}
		return p.errorf(tok, err, "undeclared state %s", tok.Literal)
	}
	return nil
}
