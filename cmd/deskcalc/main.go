// Command deskcalc opens a desktop calculator window with a clickable
// keypad. Keys may also be pressed on the keyboard; pointer and keyboard
// input drive the same session.
//
// With arguments, deskcalc instead evaluates each argument as an expression
// and prints the result, or with -keys feeds each argument through the
// calculator's key mapping and prints the final display.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"deskcalc"
)

const (
	cols = 4
	rows = 5

	keyW  = 76
	keyH  = 56
	gap   = 8
	dispH = 64

	screenW = cols*keyW + (cols+1)*gap
	screenH = dispH + rows*keyH + (rows+2)*gap
)

var (
	bgColor   = color.RGBA{0x20, 0x20, 0x24, 0xff}
	keyColor  = color.RGBA{0x3a, 0x3a, 0x40, 0xff}
	downColor = color.RGBA{0x55, 0x55, 0x5e, 0xff}
	dispColor = color.RGBA{0x14, 0x14, 0x16, 0xff}
)

func main() {
	log.SetFlags(0)
	var (
		keys  bool
		scale int
	)
	flag.BoolVar(&keys, "keys", false, "treat each argument as raw key presses instead of an expression")
	flag.IntVar(&scale, "scale", 2, "window scale factor")
	flag.Parse()
	if scale < 1 {
		log.Fatalf("scale (%d) must be positive", scale)
	}

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			out, err := run(arg, keys)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(out)
		}
		return
	}

	g := &game{s: deskcalc.NewSession(), keys: keypad()}
	ebiten.SetWindowTitle("deskcalc")
	ebiten.SetWindowSize(screenW*scale, screenH*scale)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

// run evaluates one argument headlessly.
func run(arg string, keys bool) (string, error) {
	if keys {
		s := deskcalc.NewSession()
		for _, r := range arg {
			s = s.Key(r)
		}
		return s.Display(), nil
	}
	toks, err := deskcalc.Tokenize(arg)
	if err != nil {
		return "", err
	}
	v, err := deskcalc.EvalPostfix(deskcalc.ToPostfix(toks))
	if err != nil {
		return "", err
	}
	return deskcalc.FormatNumber(v), nil
}

// key is one pointer-activatable control on the keypad.
type key struct {
	label      string
	x, y, w, h int
	press      func(deskcalc.Session) deskcalc.Session
}

func (k *key) hit(x, y int) bool {
	return x >= k.x && x < k.x+k.w && y >= k.y && y < k.y+k.h
}

// keypad lays out the keys. Every engine action has a control here,
// including the two with no keyboard mapping (sign toggle and percent).
func keypad() []key {
	digit := func(d byte) func(deskcalc.Session) deskcalc.Session {
		return func(s deskcalc.Session) deskcalc.Session { return s.InputDigit(d) }
	}
	op := func(o deskcalc.Op) func(deskcalc.Session) deskcalc.Session {
		return func(s deskcalc.Session) deskcalc.Session { return s.InputOperator(o) }
	}
	type cell struct {
		label string
		press func(deskcalc.Session) deskcalc.Session
	}
	grid := [rows][cols]cell{
		{
			{"C", deskcalc.Session.Clear},
			{"DEL", deskcalc.Session.Backspace},
			{"%", deskcalc.Session.Percent},
			{"/", op(deskcalc.OpDiv)},
		},
		{
			{"7", digit('7')}, {"8", digit('8')}, {"9", digit('9')},
			{"*", op(deskcalc.OpMul)},
		},
		{
			{"4", digit('4')}, {"5", digit('5')}, {"6", digit('6')},
			{"-", op(deskcalc.OpSub)},
		},
		{
			{"1", digit('1')}, {"2", digit('2')}, {"3", digit('3')},
			{"+", op(deskcalc.OpAdd)},
		},
		{
			{"+/-", deskcalc.Session.ToggleSign},
			{"0", digit('0')},
			{".", deskcalc.Session.InputDecimal},
			{"=", deskcalc.Session.Evaluate},
		},
	}
	ks := make([]key, 0, rows*cols)
	for r, row := range grid {
		for c, cl := range row {
			ks = append(ks, key{
				label: cl.label,
				x:     gap + c*(keyW+gap),
				y:     dispH + 2*gap + r*(keyH+gap),
				w:     keyW,
				h:     keyH,
				press: cl.press,
			})
		}
	}
	return ks
}

type game struct {
	s    deskcalc.Session
	keys []key
}

func (g *game) Update() error {
	for _, r := range ebiten.AppendInputChars(nil) {
		g.s = g.s.Key(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.s = g.s.Evaluate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.s = g.s.Backspace()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.s = g.s.Clear()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.click(ebiten.CursorPosition())
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		g.click(ebiten.TouchPosition(id))
	}
	return nil
}

func (g *game) click(x, y int) {
	for i := range g.keys {
		if g.keys[i].hit(x, y) {
			g.s = g.keys[i].press(g.s)
			return
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(bgColor)

	vector.DrawFilledRect(screen, gap, gap, screenW-2*gap, dispH, dispColor, false)
	d := g.s.Display()
	// The debug font advances 6px per glyph and is 16px tall.
	ebitenutil.DebugPrintAt(screen, d, screenW-2*gap-6*len(d), gap+dispH/2-8)

	mx, my := ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	for i := range g.keys {
		k := &g.keys[i]
		c := keyColor
		if down && k.hit(mx, my) {
			c = downColor
		}
		vector.DrawFilledRect(screen, float32(k.x), float32(k.y), float32(k.w), float32(k.h), c, false)
		lw := 6 * utf8.RuneCountInString(k.label)
		ebitenutil.DebugPrintAt(screen, k.label, k.x+(k.w-lw)/2, k.y+k.h/2-8)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}
