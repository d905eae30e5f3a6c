package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/box2/vmath"
)

// statusRows is the number of bottom rows reserved for the status area
const statusRows = 3

var (
	styleBox    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleLast   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleAnchor = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// cellSpan is an inclusive rectangle of terminal cells
type cellSpan struct {
	x0, y0, x1, y1 int
}

// spanOf derives the covered cells of a possibly signed box
// Returns false for boxes with non-finite corners
func spanOf(b vmath.Box2) (cellSpan, bool) {
	far := vmath.V2Add(b.Position, b.Size)
	lo := vmath.V2Min(b.Position, far)
	hi := vmath.V2Max(b.Position, far)
	if !finite(lo.X) || !finite(lo.Y) || !finite(hi.X) || !finite(hi.Y) {
		return cellSpan{}, false
	}
	return cellSpan{
		x0: int(math.Floor(float64(lo.X))),
		y0: int(math.Floor(float64(lo.Y))),
		x1: int(math.Floor(float64(hi.X))),
		y1: int(math.Floor(float64(hi.Y))),
	}, true
}

func finite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// cellVec maps a terminal cell to box space
func cellVec(x, y int) vmath.Vec2 {
	return vmath.V2(float32(x), float32(y))
}

// drawBox outlines a box clipped to the drawable area above the status rows
func drawBox(screen tcell.Screen, b vmath.Box2, style tcell.Style) {
	span, ok := spanOf(b)
	if !ok {
		return
	}
	w, h := screen.Size()
	h -= statusRows

	put := func(x, y int, r rune) {
		if x >= 0 && x < w && y >= 0 && y < h {
			screen.SetContent(x, y, r, nil, style)
		}
	}

	switch {
	case span.x0 == span.x1 && span.y0 == span.y1:
		put(span.x0, span.y0, '+')
		return
	case span.y0 == span.y1:
		for x := max(span.x0, 0); x <= min(span.x1, w-1); x++ {
			put(x, span.y0, '─')
		}
		return
	case span.x0 == span.x1:
		for y := max(span.y0, 0); y <= min(span.y1, h-1); y++ {
			put(span.x0, y, '│')
		}
		return
	}

	for x := max(span.x0+1, 0); x <= min(span.x1-1, w-1); x++ {
		put(x, span.y0, '─')
		put(x, span.y1, '─')
	}
	for y := max(span.y0+1, 0); y <= min(span.y1-1, h-1); y++ {
		put(span.x0, y, '│')
		put(span.x1, y, '│')
	}
	put(span.x0, span.y0, '┌')
	put(span.x1, span.y0, '┐')
	put(span.x0, span.y1, '└')
	put(span.x1, span.y1, '┘')
}

// drawText writes a single line starting at x, y and truncates at the screen edge
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	w, _ := screen.Size()
	for _, r := range text {
		if x >= w {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// statusLines renders the box debug string followed by its hash
func statusLines(b vmath.Box2, count int) []string {
	lines := strings.Split(b.String(), "\n")
	lines[0] = "pos  " + lines[0]
	if len(lines) > 1 {
		lines[1] = "size " + lines[1]
	}
	return append(lines, fmt.Sprintf("hash %016x  boxes %d", b.Hash(), count))
}
