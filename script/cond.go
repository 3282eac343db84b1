package script

import "strings"

// Evaluate reports whether a condition holds. Clauses joined by OR are true
// when any of them is; each clause is a list of comparisons joined by AND.
// Every comparison is "lhs op rhs" with op one of == != <= >= < > and both
// sides passed to Resolve.
func (v *Vars) Evaluate(cond string) (bool, error) {
	cond = strings.TrimSpace(cond)
	if cond == "" {
		return false, newError(KindInvalidCondition, "empty condition")
	}

	toks, err := tokenize(cond)
	if err != nil {
		return false, &Error{Kind: KindInvalidCondition, Detail: cond, Err: err}
	}

	result := false
	for _, clause := range splitTokens(toks, tokenOr) {
		all := true
		for _, leaf := range splitTokens(clause, tokenAnd) {
			ok, err := v.compare(leaf)
			if err != nil {
				return false, err
			}
			all = all && ok
		}
		result = result || all
	}
	return result, nil
}

func (v *Vars) compare(leaf []token) (bool, error) {
	opIdx := -1
	for i, t := range leaf {
		if t.kind != tokenCompare {
			continue
		}
		if opIdx >= 0 {
			return false, newError(KindInvalidCondition, "more than one comparison in %q", joinTokens(leaf))
		}
		opIdx = i
	}
	if opIdx <= 0 || opIdx == len(leaf)-1 {
		return false, newError(KindInvalidCondition, "expected comparison, got %q", joinTokens(leaf))
	}

	a, err := v.Resolve(joinTokens(leaf[:opIdx]))
	if err != nil {
		return false, err
	}
	b, err := v.Resolve(joinTokens(leaf[opIdx+1:]))
	if err != nil {
		return false, err
	}

	switch leaf[opIdx].text {
	case "==":
		return a == b, nil
	case "!=":
		return a != b, nil
	case "<=":
		return a <= b, nil
	case ">=":
		return a >= b, nil
	case "<":
		return a < b, nil
	case ">":
		return a > b, nil
	}
	return false, newError(KindInvalidCondition, "unknown operator %q", leaf[opIdx].text)
}

// splitTokens splits toks on every token of kind sep. Empty groups are kept
// so that "X > 1 AND" fails as a malformed comparison.
func splitTokens(toks []token, sep int) [][]token {
	groups := [][]token{{}}
	for _, t := range toks {
		if t.kind == sep {
			groups = append(groups, []token{})
			continue
		}
		groups[len(groups)-1] = append(groups[len(groups)-1], t)
	}
	return groups
}
