package script

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

const (
	tokenOperand = iota
	tokenArith
	tokenCompare
	tokenAnd
	tokenOr
)

type token struct {
	kind int
	text string
}

var lexer *lexmachine.Lexer

// The lexer is a longest-match DFA, so "<=" always wins over "<" no matter
// the order the patterns are added in. Keywords are added before operands
// and win ties of equal length.
func init() {
	lexer = lexmachine.NewLexer()
	lexer.Add([]byte(`AND`), getToken(tokenAnd))
	lexer.Add([]byte(`OR`), getToken(tokenOr))
	for _, op := range []string{"==", "!=", "<=", ">=", "<", ">"} {
		lexer.Add([]byte(op), getToken(tokenCompare))
	}
	lexer.Add([]byte(`[\+\-]`), getToken(tokenArith))
	lexer.Add([]byte(`[a-zA-Z0-9_]+`), getToken(tokenOperand))
	lexer.Add([]byte(`\s+`), skip)
	if err := lexer.Compile(); err != nil {
		panic(err)
	}
}

func getToken(tokenType int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(tokenType, string(m.Bytes), m), nil
	}
}

func skip(scan *lexmachine.Scanner, match *machines.Match) (interface{}, error) {
	return nil, nil
}

func tokenize(text string) ([]token, error) {
	scanner, err := lexer.Scanner([]byte(text))
	if err != nil {
		return nil, errors.Wrapf(err, "create scanner for %q", text)
	}

	out := make([]token, 0, 8)
	for tok, err, eos := scanner.Next(); !eos; tok, err, eos = scanner.Next() {
		if err != nil {
			return nil, errors.Wrapf(err, "tokenize %q", text)
		}
		t := tok.(*lexmachine.Token)
		out = append(out, token{kind: t.Type, text: string(t.Lexeme)})
	}
	return out, nil
}

func joinTokens(toks []token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.text)
	}
	return sb.String()
}
