package panel

import (
	"log/slog"

	"github.com/shelfhq/shelf/internal/classify"
	"github.com/shelfhq/shelf/internal/store"
	"github.com/shelfhq/shelf/pkg/types"
)

// Orchestrator owns one live panel per visible shelf. It is confined to
// the dispatch loop like the store; RefreshAll is the reconciliation
// authority that keeps the live panel set a strict subset of store state.
type Orchestrator struct {
	store  *store.Store
	system System
	log    *slog.Logger

	panels map[string]Panel
}

// NewOrchestrator creates an orchestrator over the given backend. It does
// not subscribe itself; the caller wires store.Subscribe(o.RefreshAll).
func NewOrchestrator(st *store.Store, system System, log *slog.Logger) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		store:  st,
		system: system,
		log:    log,
		panels: make(map[string]Panel),
	}
}

// Show creates a panel for the shelf, positioned at its persisted origin
// and sized by SizeFor. If a panel already exists it is raised instead;
// Show is idempotent.
func (o *Orchestrator) Show(shelf types.Shelf) {
	if existing, ok := o.panels[shelf.ID]; ok {
		existing.Front()
		return
	}

	w, h := SizeFor(shelf)
	p := o.system.Create(Config{X: shelf.PositionX, Y: shelf.PositionY, Width: w, Height: h})
	o.panels[shelf.ID] = p

	p.SetContent(Content{Shelf: shelf.Clone()})

	// Every interactive move writes straight through to the store.
	shelfID := shelf.ID
	p.OnMove(func(x, y float64) {
		o.store.UpdateShelfPosition(shelfID, x, y)
	})
	p.Front()
}

// Hide removes and discards the shelf's panel, detaching its move
// observer. No-op if no panel exists.
func (o *Orchestrator) Hide(shelfID string) {
	p, ok := o.panels[shelfID]
	if !ok {
		return
	}
	p.OnMove(nil)
	p.Close()
	delete(o.panels, shelfID)
}

// Update replaces the panel's content and recomputes its geometry. When no
// panel exists and the shelf is visible, Update behaves as Show.
func (o *Orchestrator) Update(shelf types.Shelf) {
	p, ok := o.panels[shelf.ID]
	if !ok {
		if shelf.Visible {
			o.Show(shelf)
		}
		return
	}

	p.SetContent(Content{Shelf: shelf.Clone()})
	x, y := p.Origin()
	w, h := SizeFor(shelf)
	p.SetFrame(x, y, w, h)
}

// RefreshAll reconciles the live panel set against the store: panels whose
// shelf vanished are hidden, every visible shelf is updated (showing it if
// needed), and shelves turned invisible lose their panels. Safe to call at
// any time; calling it twice changes nothing the second time.
func (o *Orchestrator) RefreshAll() {
	shelves := o.store.Shelves()

	want := make(map[string]bool, len(shelves))
	for _, shelf := range shelves {
		want[shelf.ID] = shelf.Visible
	}

	for id := range o.panels {
		if !want[id] {
			o.Hide(id)
		}
	}

	for _, shelf := range shelves {
		if shelf.Visible {
			o.Update(shelf)
		}
	}
}

// SaveAllPositions writes every live panel's current origin into the
// store. Called on shutdown to cover moves the per-move observer never
// saw.
func (o *Orchestrator) SaveAllPositions() {
	for id, p := range o.panels {
		x, y := p.Origin()
		o.store.UpdateShelfPosition(id, x, y)
	}
}

// LivePanels reports the shelf ids that currently have a panel.
func (o *Orchestrator) LivePanels() []string {
	ids := make([]string, 0, len(o.panels))
	for id := range o.panels {
		ids = append(ids, id)
	}
	return ids
}

// HandleDrop classifies a drag payload and routes the resulting entries
// into the shelf. Unhandled payloads are silently ignored.
func (o *Orchestrator) HandleDrop(shelfID string, payload classify.Payload) {
	res := classify.Classify(payload)
	if !res.Handled {
		o.log.Debug("drop not handled", "shelf", shelfID)
		return
	}
	o.routeEntries(shelfID, res.Entries)
}

// HandlePaste classifies a clipboard payload (file-path step skipped) and
// routes the results into the shelf.
func (o *Orchestrator) HandlePaste(shelfID string, payload classify.Payload) {
	res := classify.ClassifyClipboard(payload)
	if !res.Handled {
		return
	}
	o.routeEntries(shelfID, res.Entries)
}

// routeEntries dispatches classified entries through the store operation
// matching their kind, so links get their async icon backfill.
func (o *Orchestrator) routeEntries(shelfID string, entries []types.Entry) {
	for _, e := range entries {
		switch e.Kind {
		case types.KindLink:
			o.store.AddLink(shelfID, e.URL, e.Name)
		case types.KindSnippet:
			o.store.AddSnippet(shelfID, e.Name, e.Content)
		default:
			o.store.AddEntry(shelfID, e)
		}
	}
}
