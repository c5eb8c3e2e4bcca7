// Package tui renders shelves in the terminal: every visible shelf is a
// bordered box, sticky notes are editable textareas. It implements
// panel.System, so the orchestrator drives it exactly like a native window
// backend.
package tui

import "github.com/shelfhq/shelf/internal/panel"

// System is the terminal panel backend. Panels keep their pixel-space
// geometry as model state; the view projects them into rows of boxes.
type System struct {
	shelves []*shelfPanel
	notes   []*notePanel
}

// NewSystem returns an empty backend.
func NewSystem() *System {
	return &System{}
}

// Create implements panel.System.
func (s *System) Create(cfg panel.Config) panel.Panel {
	p := &shelfPanel{x: cfg.X, y: cfg.Y, w: cfg.Width, h: cfg.Height}
	s.shelves = append(s.shelves, p)
	return p
}

// CreateNote implements panel.System.
func (s *System) CreateNote(cfg panel.Config) panel.NotePanel {
	p := &notePanel{w: cfg.Width, h: cfg.Height}
	s.notes = append(s.notes, p)
	return p
}

// openShelves returns the live shelf panels in creation order.
func (s *System) openShelves() []*shelfPanel {
	var out []*shelfPanel
	for _, p := range s.shelves {
		if !p.closed {
			out = append(out, p)
		}
	}
	return out
}

// openNotes returns the live note panels in creation order.
func (s *System) openNotes() []*notePanel {
	var out []*notePanel
	for _, p := range s.notes {
		if !p.closed {
			out = append(out, p)
		}
	}
	return out
}

type shelfPanel struct {
	x, y, w, h float64
	content    panel.Content
	closed     bool
	raised     bool
	moveFn     func(x, y float64)
}

func (p *shelfPanel) SetContent(c panel.Content) { p.content = c }

func (p *shelfPanel) SetFrame(x, y, w, h float64) {
	p.x, p.y, p.w, p.h = x, y, w, h
}

func (p *shelfPanel) Origin() (float64, float64) { return p.x, p.y }

func (p *shelfPanel) Front() { p.raised = true }

func (p *shelfPanel) Close() { p.closed = true }

func (p *shelfPanel) OnMove(fn func(x, y float64)) { p.moveFn = fn }

// move reports a user-driven reposition through the move observer, like a
// window drag.
func (p *shelfPanel) move(dx, dy float64) {
	p.x += dx
	p.y += dy
	if p.moveFn != nil {
		p.moveFn(p.x, p.y)
	}
}

type notePanel struct {
	w, h    float64
	content panel.NoteContent
	closed  bool
}

func (p *notePanel) SetContent(c panel.NoteContent) { p.content = c }

func (p *notePanel) Front() {}

func (p *notePanel) Close() { p.closed = true }
