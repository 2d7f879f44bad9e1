package deskcalc

// ToPostfix converts an infix token sequence to postfix (RPN) order using
// the shunting-yard algorithm, restricted to binary left-associative
// operators. The result evaluates left to right with no precedence lookups.
//
// ToPostfix is a pure function and accepts any finite token sequence;
// well-formedness is the caller's responsibility, and EvalPostfix reports
// sequences that do not reduce.
func ToPostfix(tokens []Token) []Token {
	out := make([]Token, 0, len(tokens))
	var ops []Token // operator stack; the top is the last element
	for _, t := range tokens {
		if t.kind != tokenOp {
			out = append(out, t)
			continue
		}
		// Left associativity: equal precedence already on the stack
		// evaluates first, so equal precedence pops.
		for len(ops) > 0 && ops[len(ops)-1].op.Precedence() >= t.op.Precedence() {
			out = append(out, ops[len(ops)-1])
			ops = ops[:len(ops)-1]
		}
		ops = append(ops, t)
	}
	for i := len(ops) - 1; i >= 0; i-- {
		out = append(out, ops[i])
	}
	return out
}
