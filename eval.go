package deskcalc

// EvalPostfix reduces a postfix token sequence to a single value using a
// value stack: numbers push, operators pop their right then left operand
// and push the result.
//
// Failure is data, not a panic: dividing by exactly zero returns a
// *DivisionByZeroError, and a sequence that underflows the stack or leaves
// anything but one value on it returns a *MalformedError. Overflow to an
// infinity is not an error; it flows through as a value and FormatNumber
// renders it as "Error".
func EvalPostfix(rpn []Token) (float64, error) {
	stack := make([]float64, 0, 4)
	for i, t := range rpn {
		if t.kind != tokenOp {
			stack = append(stack, t.num)
			continue
		}
		if len(stack) < 2 {
			return 0, &MalformedError{Index: i, Stack: len(stack)}
		}
		b := stack[len(stack)-1]
		a := stack[len(stack)-2]
		stack = stack[:len(stack)-1]
		var r float64
		switch t.op {
		case OpAdd:
			r = a + b
		case OpSub:
			r = a - b
		case OpMul:
			r = a * b
		case OpDiv:
			if b == 0 {
				return 0, &DivisionByZeroError{Dividend: a}
			}
			r = a / b
		default:
			panic("deskcalc: invalid operator " + t.op.String())
		}
		stack[len(stack)-1] = r
	}
	if len(stack) != 1 {
		return 0, &MalformedError{Index: -1, Stack: len(stack)}
	}
	return stack[0], nil
}
