package boolean

// PostingLookup resolves a normalized term to its posting list, as
// index.Index.PostingList does. DocumentCount returns the current
// document count N, used as the universe size for Complement.
type PostingLookup interface {
	PostingList(term string) []uint32
	DocumentCount() int
}

// Evaluate parses and evaluates a Boolean expression against idx,
// normalizing every operand through normalize before it is looked up.
// A malformed expression yields an empty result rather than an error,
// per spec.md §4.6/§7.
func Evaluate(expr string, idx PostingLookup, normalize func(string) string) []uint32 {
	rpn := toRPN(expr, normalize)
	n := idx.DocumentCount()

	var stack [][]uint32
	pop := func() ([]uint32, bool) {
		if len(stack) == 0 {
			return nil, false
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top, true
	}

	for _, tok := range rpn {
		switch tok.kind {
		case tokOperand:
			stack = append(stack, idx.PostingList(tok.operand))

		case tokNot:
			a, ok := pop()
			if !ok {
				return nil
			}
			stack = append(stack, Complement(a, n))

		case tokAnd:
			b, ok1 := pop()
			a, ok2 := pop()
			if !ok1 || !ok2 {
				return nil
			}
			stack = append(stack, Intersect(a, b))

		case tokOr:
			b, ok1 := pop()
			a, ok2 := pop()
			if !ok1 || !ok2 {
				return nil
			}
			stack = append(stack, Union(a, b))
		}
	}

	if len(stack) != 1 {
		return nil
	}
	return stack[0]
}
