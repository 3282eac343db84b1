package script

import (
	"strconv"
	"strings"
)

// Resolve turns a token into an integer. In priority order a token is a
// variable name, an integer literal, a signed operand such as "-A", or a
// single binary "A+B" / "A-B" whose operands are themselves variables or
// literals. Chained operations such as "A+B-C" are rejected.
func (v *Vars) Resolve(expr string) (int, error) {
	expr = strings.TrimSpace(expr)
	if val, ok := v.Get(expr); ok {
		return val, nil
	}
	if n, err := strconv.Atoi(expr); err == nil {
		return n, nil
	}
	if expr == "" {
		return 0, newError(KindInvalidExpression, "empty expression")
	}

	toks, err := tokenize(expr)
	if err != nil {
		return 0, &Error{Kind: KindInvalidExpression, Detail: expr, Err: err}
	}

	lhs, rest, ok := splitOperand(toks)
	if ok && len(rest) == 0 && toks[0].kind == tokenArith {
		n, err := v.Resolve(toks[1].text)
		if err != nil {
			return 0, err
		}
		if toks[0].text == "-" {
			return -n, nil
		}
		return n, nil
	}
	if !ok || len(rest) == 0 || rest[0].kind != tokenArith {
		return 0, newError(KindInvalidExpression, "unrecognized token %q", expr)
	}
	op := rest[0].text
	rhs, tail, ok := splitOperand(rest[1:])
	if !ok || len(tail) != 0 {
		return 0, newError(KindInvalidExpression, "only one operator is supported in %q", expr)
	}

	a, err := v.Resolve(lhs)
	if err != nil {
		return 0, err
	}
	b, err := v.Resolve(rhs)
	if err != nil {
		return 0, err
	}
	if op == "-" {
		return a - b, nil
	}
	return a + b, nil
}

// splitOperand takes one operand (with an optional leading sign) off toks.
func splitOperand(toks []token) (string, []token, bool) {
	if len(toks) == 0 {
		return "", nil, false
	}
	sign := ""
	if toks[0].kind == tokenArith {
		sign = toks[0].text
		toks = toks[1:]
		if len(toks) == 0 {
			return "", nil, false
		}
	}
	if toks[0].kind != tokenOperand {
		return "", nil, false
	}
	return sign + toks[0].text, toks[1:], true
}
