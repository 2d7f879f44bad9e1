package deskcalc

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Tokenize scans a written expression such as "2+3*4" into its token
// sequence. A number may carry one decimal point and an e/E exponent, and a
// '-' where a number is expected is read as the number's sign. The
// multiplication aliases 'x', 'X' and '×' and the division alias '÷' are
// accepted, and whitespace between tokens is ignored.
//
// Tokenize does not check that numbers and operators alternate; ToPostfix
// and EvalPostfix surface malformed sequences.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	col := 1
	num := true // a number is expected next
	for i := 0; i < len(src); {
		r, sz := utf8.DecodeRuneInString(src[i:])
		if unicode.IsSpace(r) {
			i += sz
			col++
			continue
		}
		if '0' <= r && r <= '9' || r == '.' || num && r == '-' {
			n, ok := scanNum(src[i:])
			text := src[i : i+n]
			if !ok {
				return nil, &LexError{Text: text, Kind: "number", Col: col}
			}
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &LexError{Text: text, Kind: "number", Col: col}
			}
			toks = append(toks, Number(v))
			i += n
			col += n
			num = false
			continue
		}
		if op, ok := opRune(r); ok && !num {
			toks = append(toks, Operator(op))
			i += sz
			col++
			num = true
			continue
		}
		return nil, &LexError{Text: string(r), Col: col}
	}
	return toks, nil
}

// scanNum scans a numeric literal at the start of s and returns the number
// of bytes it spans. The flags follow the states of the number automaton: a
// mantissa digit seen, a dot seen, an exponent marker seen, an exponent
// sign still legal, an exponent digit seen.
func scanNum(s string) (n int, ok bool) {
	var dig, dot, e, le, ed bool
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
scan:
	for i < len(s) {
		c := s[i]
		switch {
		case c == '.':
			if dot || e {
				return i + 1, false
			}
			dot = true
			le = false
		case c == 'e' || c == 'E':
			if !dig || e {
				return i + 1, false
			}
			e, le = true, true
		case c == '+' || c == '-':
			// A sign anywhere other than immediately following an exponent
			// marker belongs to the next token.
			if !le {
				break scan
			}
			le = false
		case '0' <= c && c <= '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			break scan
		}
		i++
	}
	if !dig || e && !ed {
		return i, false
	}
	return i, true
}

// opRune maps an operator rune, including the keyboard and unicode aliases,
// to its operator.
func opRune(r rune) (Op, bool) {
	switch r {
	case '+':
		return OpAdd, true
	case '-':
		return OpSub, true
	case '*', 'x', 'X', '×':
		return OpMul, true
	case '/', '÷':
		return OpDiv, true
	}
	return 0, false
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the text the lexer was scanning when it gave up, including
	// the offending character.
	Text string
	// Kind is the type of token the lexer was scanning. This may be
	// "number" or the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the number of runes scanned up to the start of the token.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + strconv.Quote(err.Text)
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}
