// Package paneltest provides an in-memory panel.System for tests: panels
// record their content and geometry and support simulated interactive
// moves.
package paneltest

import (
	"github.com/shelfhq/shelf/internal/panel"
)

// System records every panel it creates.
type System struct {
	Panels     []*Panel
	NotePanels []*NotePanel
}

// Create implements panel.System.
func (s *System) Create(cfg panel.Config) panel.Panel {
	p := &Panel{X: cfg.X, Y: cfg.Y, W: cfg.Width, H: cfg.Height}
	s.Panels = append(s.Panels, p)
	return p
}

// CreateNote implements panel.System.
func (s *System) CreateNote(cfg panel.Config) panel.NotePanel {
	p := &NotePanel{W: cfg.Width, H: cfg.Height}
	s.NotePanels = append(s.NotePanels, p)
	return p
}

// Open returns the created shelf panels that are still on screen.
func (s *System) Open() []*Panel {
	var out []*Panel
	for _, p := range s.Panels {
		if !p.Closed {
			out = append(out, p)
		}
	}
	return out
}

// Panel is a recorded shelf panel.
type Panel struct {
	X, Y, W, H float64
	Content    panel.Content
	Closed     bool
	Fronted    int
	moveFn     func(x, y float64)
}

func (p *Panel) SetContent(c panel.Content) { p.Content = c }

func (p *Panel) SetFrame(x, y, w, h float64) {
	p.X, p.Y, p.W, p.H = x, y, w, h
}

func (p *Panel) Origin() (float64, float64) { return p.X, p.Y }

func (p *Panel) Front() { p.Fronted++ }

func (p *Panel) Close() { p.Closed = true }

func (p *Panel) OnMove(fn func(x, y float64)) { p.moveFn = fn }

// Drag simulates the user dragging the panel to a new origin, firing the
// move observer if one is attached.
func (p *Panel) Drag(x, y float64) {
	p.X, p.Y = x, y
	if p.moveFn != nil {
		p.moveFn(x, y)
	}
}

// MoveSilently changes the origin without firing the observer, like a
// programmatic move.
func (p *Panel) MoveSilently(x, y float64) {
	p.X, p.Y = x, y
}

// NotePanel is a recorded sticky-note panel.
type NotePanel struct {
	W, H    float64
	Content panel.NoteContent
	Closed  bool
	Fronted int
}

func (p *NotePanel) SetContent(c panel.NoteContent) { p.Content = c }

func (p *NotePanel) Front() { p.Fronted++ }

func (p *NotePanel) Close() { p.Closed = true }
