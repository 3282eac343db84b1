package script

import "fmt"

// Kind classifies a fatal script error.
type Kind int

const (
	KindUnterminatedBlock Kind = iota + 1
	KindInvalidExpression
	KindInvalidCondition
	KindInvalidStatement
)

func (k Kind) String() string {
	switch k {
	case KindUnterminatedBlock:
		return "unterminated block"
	case KindInvalidExpression:
		return "invalid expression"
	case KindInvalidCondition:
		return "invalid condition"
	case KindInvalidStatement:
		return "invalid statement"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is returned for every fatal script error. Line is 1-based and zero
// when the error did not come from a specific script line.
type Error struct {
	Kind   Kind
	Line   int
	Text   string
	Detail string
	Err    error
}

var (
	ErrUnterminatedBlock = &Error{Kind: KindUnterminatedBlock}
	ErrInvalidExpression = &Error{Kind: KindInvalidExpression}
	ErrInvalidCondition  = &Error{Kind: KindInvalidCondition}
	ErrInvalidStatement  = &Error{Kind: KindInvalidStatement}
)

func (e *Error) Error() string {
	msg := "script: " + e.Kind.String()
	if e.Line > 0 {
		msg = fmt.Sprintf("script: line %d: %s", e.Line, e.Kind)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Text != "" {
		msg += fmt.Sprintf(" (%q)", e.Text)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so callers can compare against the
// package sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newError(kind Kind, detail string, args ...any) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(detail, args...)}
}

// atLine attaches script position to err when it is a script error without one.
func atLine(err error, idx int, text string) error {
	se, ok := err.(*Error)
	if !ok || se.Line > 0 {
		return err
	}
	se.Line = idx + 1
	se.Text = text
	return se
}
