package main

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/box2/vmath"
)

// sandbox holds committed boxes and the in-progress drag
type sandbox struct {
	screen tcell.Screen
	logger *log.Logger
	chime  *chime

	boxes []vmath.Box2
	index map[uint64][]int // Box2.Hash -> positions in boxes

	dragging bool
	anchor   vmath.Vec2
	cursor   vmath.Vec2
}

func newSandbox(screen tcell.Screen, logger *log.Logger, ch *chime) *sandbox {
	return &sandbox{
		screen: screen,
		logger: logger,
		chime:  ch,
		index:  make(map[uint64][]int),
	}
}

// contains checks the hash bucket, confirming with Equals
func (s *sandbox) contains(b vmath.Box2) bool {
	for _, i := range s.index[b.Hash()] {
		if s.boxes[i].Equals(b) {
			return true
		}
	}
	return false
}

// add appends b unless an equal box is already present
func (s *sandbox) add(b vmath.Box2) bool {
	if s.contains(b) {
		return false
	}
	h := b.Hash()
	s.index[h] = append(s.index[h], len(s.boxes))
	s.boxes = append(s.boxes, b)
	return true
}

func (s *sandbox) reindex() {
	s.index = make(map[uint64][]int, len(s.boxes))
	for i, b := range s.boxes {
		h := b.Hash()
		s.index[h] = append(s.index[h], i)
	}
}

func (s *sandbox) undo() {
	if len(s.boxes) == 0 {
		return
	}
	last := s.boxes[len(s.boxes)-1]
	s.boxes = s.boxes[:len(s.boxes)-1]
	s.reindex()
	s.logger.Debug("undo", "box", last)
}

// flip re-anchors the last box at its opposite corner with the size negated
// Covers the same cells but compares unequal, since signed sizes are kept
func (s *sandbox) flip() {
	if len(s.boxes) == 0 {
		return
	}
	i := len(s.boxes) - 1
	b := s.boxes[i]
	flipped := vmath.NewBox2(vmath.V2Add(b.Position, b.Size), vmath.V2Neg(b.Size))
	if s.contains(flipped) {
		s.logger.Debug("flip skipped, duplicate", "box", flipped)
		return
	}
	s.boxes[i] = flipped
	s.reindex()
	s.logger.Debug("flip", "from", b, "to", flipped)
}

func (s *sandbox) clear() {
	s.boxes = s.boxes[:0]
	s.index = make(map[uint64][]int)
	s.dragging = false
}

// commit encloses the anchor and release cell into a new box
func (s *sandbox) commit(release vmath.Vec2) {
	b := vmath.Enclose(s.anchor, release)
	if !s.add(b) {
		s.logger.Debug("duplicate box ignored", "box", b)
		return
	}
	s.logger.Info("box committed", "anchor", s.anchor, "release", release, "box", b, "hash", b.Hash())
	s.chime.play()
}

// handleEvent applies one input event, returning false to quit
func (s *sandbox) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'u':
				s.undo()
			case 'f':
				s.flip()
			case 'c':
				s.clear()
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		p := cellVec(x, y)
		pressed := ev.Buttons()&tcell.Button1 != 0
		switch {
		case pressed && !s.dragging:
			s.dragging = true
			s.anchor = p
			s.cursor = p
		case pressed:
			s.cursor = p
		case s.dragging:
			s.dragging = false
			s.commit(p)
		}

	case *tcell.EventResize:
		s.screen.Sync()
	}

	return true
}

func (s *sandbox) draw() {
	s.screen.Clear()

	for i, b := range s.boxes {
		style := styleBox
		if i == len(s.boxes)-1 {
			style = styleLast
		}
		drawBox(s.screen, b, style)
	}

	if s.dragging {
		drawBox(s.screen, vmath.Enclose(s.anchor, s.cursor), styleLast)
		x, y := int(s.anchor.X), int(s.anchor.Y)
		s.screen.SetContent(x, y, '+', nil, styleAnchor)
	}

	_, h := s.screen.Size()
	top := h - statusRows
	if len(s.boxes) > 0 {
		for i, line := range statusLines(s.boxes[len(s.boxes)-1], len(s.boxes)) {
			drawText(s.screen, 0, top+i, line, styleStatus)
		}
	} else {
		drawText(s.screen, 0, top, "drag to enclose two points, q to quit", styleStatus)
	}

	s.screen.Show()
}

// run polls input until quit or ctx is cancelled
func (s *sandbox) run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	s.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !s.handleEvent(ev) {
				s.logger.Info("sandbox stopped", "boxes", len(s.boxes))
				return nil
			}
			s.draw()
		}
	}
}
