package deskcalc

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		src  string
		want []Token
		err  bool
	}{
		// spaces
		{"", nil, false},
		{" \t \r\n ", nil, false},
		// numbers
		{"0", []Token{Number(0)}, false},
		{"9876543210", []Token{Number(9876543210)}, false},
		{"1.5", []Token{Number(1.5)}, false},
		{".5", []Token{Number(.5)}, false},
		{"-1", []Token{Number(-1)}, false},
		{"-.5", []Token{Number(-.5)}, false},
		{"1e3", []Token{Number(1000)}, false},
		{"1e+3", []Token{Number(1000)}, false},
		{"1e-3", []Token{Number(.001)}, false},
		{"1.25e2", []Token{Number(125)}, false},
		// operators
		{"2+3", []Token{Number(2), Operator(OpAdd), Number(3)}, false},
		{"2 + 3", []Token{Number(2), Operator(OpAdd), Number(3)}, false},
		{"2-3", []Token{Number(2), Operator(OpSub), Number(3)}, false},
		{"2*3", []Token{Number(2), Operator(OpMul), Number(3)}, false},
		{"2/3", []Token{Number(2), Operator(OpDiv), Number(3)}, false},
		{"2×3", []Token{Number(2), Operator(OpMul), Number(3)}, false},
		{"2x3", []Token{Number(2), Operator(OpMul), Number(3)}, false},
		{"2X3", []Token{Number(2), Operator(OpMul), Number(3)}, false},
		{"8÷4", []Token{Number(8), Operator(OpDiv), Number(4)}, false},
		// a '-' after an operator is the next number's sign
		{"2+-3", []Token{Number(2), Operator(OpAdd), Number(-3)}, false},
		{"2--3", []Token{Number(2), Operator(OpSub), Number(-3)}, false},
		// alternation is the consumer's concern, not the lexer's
		{"2 2", []Token{Number(2), Number(2)}, false},
		{"2+3*", []Token{Number(2), Operator(OpAdd), Number(3), Operator(OpMul)}, false},
		// errors
		{"1.2.3", nil, true},
		{"5e", nil, true},
		{"5e+", nil, true},
		{"-", nil, true},
		{".", nil, true},
		{"a", nil, true},
		{"+5", nil, true},
		{"x", nil, true},
		{"2+$", nil, true},
	}
	for _, c := range cases {
		got, err := Tokenize(c.src)
		if c.err {
			if err == nil {
				t.Errorf("Tokenize(%q): expected error, got %v", c.src, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Tokenize(%q): unexpected error: %v", c.src, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Tokenize(%q): want %v, got %v", c.src, c.want, got)
		}
	}
}

func TestTokenizeErrorPos(t *testing.T) {
	cases := []struct {
		src string
		col int
	}{
		{"@", 1},
		{"2+@", 3},
		{"2 + @", 5},
		{"1.2.3", 1},
	}
	for _, c := range cases {
		_, err := Tokenize(c.src)
		if err == nil {
			t.Errorf("Tokenize(%q): expected error", c.src)
			continue
		}
		le, ok := err.(*LexError)
		if !ok {
			t.Errorf("Tokenize(%q): error is %#v, not *LexError", c.src, err)
			continue
		}
		if le.Pos() != c.col {
			t.Errorf("Tokenize(%q): error at column %d, want %d: %v", c.src, le.Pos(), c.col, err)
		}
	}
}
