package tui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shelfhq/shelf/internal/panel"
	"github.com/shelfhq/shelf/internal/store"
)

// Session owns one interactive run: it binds the executor to the program,
// subscribes the orchestrator to the store, and optionally watches the
// document for external edits.
type Session struct {
	Store        *store.Store
	Orchestrator *panel.Orchestrator
	Notes        *panel.Notes
	System       *System
	Executor     *Executor
	Log          *slog.Logger
	NoteLimit    int
	Watch        bool
}

// Run blocks until the user quits or ctx is canceled.
func (s *Session) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(s.Store, s.Orchestrator, s.Notes, s.System, s.NoteLimit)
	program := tea.NewProgram(model, tea.WithContext(ctx))
	s.Executor.Attach(program)

	unsubPanels := s.Store.Subscribe(s.Orchestrator.RefreshAll)
	defer unsubPanels()
	unsubNotes := s.Store.Subscribe(s.Notes.RefreshAll)
	defer unsubNotes()
	s.Orchestrator.RefreshAll()

	if s.Watch {
		if err := s.Store.Watch(ctx); err != nil {
			s.Log.Warn("document watcher unavailable", "error", err)
		}
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running session: %w", err)
	}
	return nil
}
