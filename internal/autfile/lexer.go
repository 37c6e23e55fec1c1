package autfile

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

type tokenType int

const (
	tokenEOF tokenType = iota
	tokenIllegal
	tokenNewline
	tokenStates
	tokenInitials
	tokenFinals
	tokenName
	tokenArrow
)

func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "end of input"
	case tokenIllegal:
		return "illegal"
	case tokenNewline:
		return "end of line"
	case tokenStates:
		return "'states'"
	case tokenInitials:
		return "'initials'"
	case tokenFinals:
		return "'finals'"
	case tokenName:
		return "state"
	case tokenArrow:
		return "transition arrow"
	default:
		return fmt.Sprintf("tokenType(%d)", int(t))
	}
}

type token struct {
	Type    tokenType
	Literal string
	Line    int
	Column  int
}

var lexer = newLexer()

func newLexer() *lexmachine.Lexer {
	l := lexmachine.NewLexer()
	l.Add([]byte(`[ \t\r]+`), skip)
	l.Add([]byte(`#[^\n]*`), skip)
	l.Add([]byte(`[\n]`), tokAction(tokenNewline))
	l.Add([]byte(`states`), tokAction(tokenStates))
	l.Add([]byte(`initials`), tokAction(tokenInitials))
	l.Add([]byte(`finals`), tokAction(tokenFinals))
	l.Add([]byte(`-[a-zA-Z]->`), tokAction(tokenArrow))
	l.Add([]byte(`[a-zA-Z0-9_]+`), tokAction(tokenName))
	if err := l.Compile(); err != nil {
		panic(err)
	}
	return l
}

// scanner yields the tokens of one input. After the first error or the end
// of input it keeps returning the same token.
type scanner struct {
	s    *lexmachine.Scanner
	last token
	done bool
}

func newScanner(input []byte) (*scanner, error) {
	s, err := lexer.Scanner(input)
	if err != nil {
		return nil, err
	}
	return &scanner{s: s}, nil
}

func (sc *scanner) next() token {
	if sc.done {
		return sc.last
	}
	tok, err, eof := sc.s.Next()
	switch {
	case eof:
		sc.last, sc.done = token{Type: tokenEOF, Line: sc.last.Line, Column: sc.last.Column}, true
	case err != nil:
		t := token{Type: tokenIllegal, Literal: err.Error()}
		if ui, ok := err.(*machines.UnconsumedInput); ok {
			t.Line, t.Column = ui.FailLine, ui.FailColumn
		}
		sc.last, sc.done = t, true
	default:
		sc.last = tok.(token)
	}
	return sc.last
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokAction(tokenType tokenType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return token{
			Type:    tokenType,
			Literal: string(m.Bytes),
			Line:    m.StartLine,
			Column:  m.StartColumn,
		}, nil
	}
}
