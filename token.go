package deskcalc

import "strconv"

// Op is a binary arithmetic operator. The set is closed: the precedence
// table and the evaluator both switch over exactly these four values.
type Op int8

const (
	OpAdd Op = iota + 1
	OpSub
	OpMul
	OpDiv
)

// Precedence returns the operator's binding strength. Multiplicative
// operators strictly outrank additive ones, and operators of equal rank
// associate to the left.
func (op Op) Precedence() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	default:
		panic("deskcalc: invalid operator " + strconv.Itoa(int(op)))
	}
}

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a numeric literal.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
)

func (k tokenKind) String() string {
	switch k {
	case tokenNum:
		return "num"
	case tokenOp:
		return "op"
	default:
		return "none"
	}
}

// Token is one element of a written expression: either a numeric literal or
// a binary operator. Tokens are immutable, and a slice of them reads left
// to right.
type Token struct {
	kind tokenKind
	num  float64
	op   Op
}

// Number returns a numeric token holding v.
func Number(v float64) Token {
	return Token{kind: tokenNum, num: v}
}

// Operator returns an operator token holding op.
func Operator(op Op) Token {
	return Token{kind: tokenOp, op: op}
}

func (t Token) String() string {
	switch t.kind {
	case tokenNum:
		return strconv.FormatFloat(t.num, 'g', -1, 64)
	case tokenOp:
		return t.op.String()
	default:
		return "<none>"
	}
}
