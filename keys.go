package deskcalc

// Key applies one keyboard rune to the session. Pointer-activated controls
// and keyboard keys funnel into the same editing operations, so the two
// modalities behave identically. The mapping is:
//
//	'0'–'9'            InputDigit
//	'.'                InputDecimal
//	'+'                InputOperator(OpAdd)
//	'-'                InputOperator(OpSub)
//	'*', 'x', 'X', '×' InputOperator(OpMul)
//	'/', '÷'           InputOperator(OpDiv)
//	'=', CR, LF        Evaluate
//	BS, DEL            Backspace
//	ESC, 'c', 'C'      Clear
//
// ToggleSign and Percent have no key; they are pointer-only. Unknown runes
// are no-ops.
func (s Session) Key(r rune) Session {
	if '0' <= r && r <= '9' {
		return s.InputDigit(byte(r))
	}
	switch r {
	case '.':
		return s.InputDecimal()
	case '+':
		return s.InputOperator(OpAdd)
	case '-':
		return s.InputOperator(OpSub)
	case '*', 'x', 'X', '×':
		return s.InputOperator(OpMul)
	case '/', '÷':
		return s.InputOperator(OpDiv)
	case '=', '\r', '\n':
		return s.Evaluate()
	case '\b', 0x7f:
		return s.Backspace()
	case 0x1b, 'c', 'C':
		return s.Clear()
	default:
		return s
	}
}
