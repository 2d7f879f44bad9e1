package deskcalc

import (
	"strconv"
	"strings"
)

// Session is the interaction state of the calculator: the number being
// typed, the expression accumulated so far, and whether the display is
// showing a completed result. The zero-like initial state comes from
// NewSession.
//
// Editing operations are pure reducers: each takes the session by value and
// returns its successor, so sessions can be copied, replayed, and tested
// without any rendering surface.
type Session struct {
	buf       string  // number under construction; what the display shows
	pending   []Token // expression so far, excluding buf
	evaluated bool    // the display shows a completed result
}

// NewSession returns the initial state: "0" on the display and nothing
// pending.
func NewSession() Session {
	return Session{buf: "0"}
}

// Display returns the string the presentation layer renders.
func (s Session) Display() string {
	return s.buf
}

// InputDigit appends the digit d, '0' through '9', to the number being
// typed. On a fresh result it starts a new number instead, and a lone zero
// is replaced rather than extended. Other bytes are ignored.
func (s Session) InputDigit(d byte) Session {
	if d < '0' || d > '9' {
		return s
	}
	switch {
	case s.evaluated:
		s.buf = string(d)
		s.evaluated = false
	case s.buf == "0":
		s.buf = string(d)
	case s.buf == "-0":
		s.buf = "-" + string(d)
	default:
		s.buf += string(d)
	}
	return s
}

// InputDecimal appends the decimal point. A number carries at most one, so
// repeated presses are no-ops. On a fresh result it starts the number "0.".
func (s Session) InputDecimal() Session {
	if s.evaluated {
		s.buf = "0."
		s.evaluated = false
		return s
	}
	if !strings.Contains(s.buf, ".") {
		s.buf += "."
	}
	return s
}

// Backspace removes the last typed character. A completed result is
// dismissed whole rather than edited, and an emptied buffer returns to "0".
func (s Session) Backspace() Session {
	if s.evaluated {
		s.buf = "0"
		s.evaluated = false
		return s
	}
	s.buf = s.buf[:len(s.buf)-1]
	if s.buf == "" || s.buf == "-" {
		s.buf = "0"
	}
	return s
}

// ToggleSign flips the sign of the number being typed. A bare zero stays
// unsigned.
func (s Session) ToggleSign() Session {
	switch {
	case strings.HasPrefix(s.buf, "-"):
		s.buf = s.buf[1:]
	case s.buf == "0":
		// no sign on zero
	default:
		s.buf = "-" + s.buf
	}
	return s
}

// Percent divides the displayed value by 100 in place. It does not consult
// the pending expression, and a buffer that does not parse is left alone.
func (s Session) Percent() Session {
	v, ok := parseBuf(s.buf)
	if !ok {
		return s
	}
	s.buf = strconv.FormatFloat(v/100, 'f', -1, 64)
	return s
}

// InputOperator extends the pending expression with op. If the expression
// already ends in an operator, op replaces it and the buffer and result
// flag are left untouched, so changing your mind about the operator costs
// nothing. Otherwise the number being typed is flushed as an operand, op is
// appended after it, and the buffer resets to "0".
func (s Session) InputOperator(op Op) Session {
	if n := len(s.pending); n > 0 && s.pending[n-1].kind == tokenOp {
		p := append([]Token{}, s.pending...)
		p[n-1] = Operator(op)
		s.pending = p
		return s
	}
	p := append([]Token{}, s.pending...)
	if v, ok := parseBuf(s.buf); ok {
		p = append(p, Number(v))
	}
	s.pending = append(p, Operator(op))
	s.buf = "0"
	s.evaluated = false
	return s
}

// Evaluate reduces the pending expression together with the number being
// typed and shows the result. A trailing operator with no right operand is
// dropped. Evaluating with nothing accumulated only marks the display as a
// result, which lets the next operator chain from it. Any evaluation
// failure displays as "Error".
func (s Session) Evaluate() Session {
	toks := append([]Token{}, s.pending...)
	if v, ok := parseBuf(s.buf); ok {
		toks = append(toks, Number(v))
	}
	if n := len(toks); n > 0 && toks[n-1].kind == tokenOp {
		toks = toks[:n-1]
	}
	if len(toks) == 0 {
		s.evaluated = true
		return s
	}
	v, err := EvalPostfix(ToPostfix(toks))
	if err != nil {
		s.buf = "Error"
	} else {
		s.buf = FormatNumber(v)
	}
	s.pending = nil
	s.evaluated = true
	return s
}

// Clear resets the session to its initial state.
func (s Session) Clear() Session {
	return NewSession()
}

// parseBuf parses the display buffer as a number. Formatted results carry
// digit grouping, which ParseFloat does not accept, so separators are
// stripped first. A buffer showing "Error" does not parse, which makes the
// operations that would consume it no-ops.
func parseBuf(buf string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(buf, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
