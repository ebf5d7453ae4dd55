package boolean

import "github.com/go-ir/lexicon/internal/errors"

// ValidateExpr runs the same shunting-yard pass Evaluate uses and
// reports the two Malformed-input cases spec.md §9 open question (b)
// allows implementers to surface: unbalanced parentheses and a
// dangling operator with no operand to apply to. Evaluate itself stays
// lenient (returns an empty result) per the spec's default; this
// function exists only for the api/ facade's optional diagnostic
// channel, which returns 400 rather than 200-with-empty-results.
func ValidateExpr(expr string) error {
	depth := 0
	for _, tok := range lex(expr) {
		switch classify(tok) {
		case tokLParen:
			depth++
		case tokRParen:
			depth--
			if depth < 0 {
				return errors.ErrUnbalancedParens
			}
		}
	}
	if depth != 0 {
		return errors.ErrUnbalancedParens
	}

	rpn := toRPN(expr, func(s string) string { return s })

	size := 0
	for _, tok := range rpn {
		switch tok.kind {
		case tokOperand:
			size++
		case tokNot:
			if size < 1 {
				return errors.ErrDanglingOperator
			}
		case tokAnd, tokOr:
			if size < 2 {
				return errors.ErrDanglingOperator
			}
			size--
		}
	}
	if size != 1 {
		return errors.ErrDanglingOperator
	}
	return nil
}
