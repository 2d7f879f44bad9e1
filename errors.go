package deskcalc

import "strconv"

// DivisionByZeroError is an error from dividing a value by exactly zero.
type DivisionByZeroError struct {
	// Dividend is the left operand of the offending division.
	Dividend float64
}

func (err *DivisionByZeroError) Error() string {
	return "division of " + strconv.FormatFloat(err.Dividend, 'g', -1, 64) + " by zero"
}

// MalformedError is an error from a postfix sequence that does not reduce
// to exactly one value: an operator arrived with fewer than two operands,
// or values were left over after the last token.
type MalformedError struct {
	// Index is the position of the operator token that lacked operands, or
	// -1 if the sequence was exhausted with the wrong number of values.
	Index int
	// Stack is the number of values that were available at the failure.
	Stack int
}

func (err *MalformedError) Error() string {
	if err.Index >= 0 {
		return "malformed postfix sequence: operator at " + strconv.Itoa(err.Index) + " with " + strconv.Itoa(err.Stack) + " operands"
	}
	return "malformed postfix sequence: " + strconv.Itoa(err.Stack) + " values remain"
}

// InputError is an error with position information. Every error resulting
// from invalid written input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to
	// and including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ error      = (*DivisionByZeroError)(nil)
	_ error      = (*MalformedError)(nil)
)
