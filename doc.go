// Package deskcalc implements the expression engine of an interactive
// arithmetic calculator.
//
// Editing operations build a Session: digits and the decimal point grow the
// number shown on the display, and entering an operator flushes it into a
// pending token sequence. Evaluating converts the accumulated infix sequence
// to postfix order with ToPostfix, reduces it with EvalPostfix, and renders
// the result with FormatNumber. Every operation is a pure function from one
// Session to the next, so a front end only has to forward key and pointer
// events and re-render Display.
//
package deskcalc
