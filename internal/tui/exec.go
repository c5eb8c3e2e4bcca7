package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// execMsg carries a deferred function into Update. Running it there keeps
// every store mutation on the bubbletea goroutine.
type execMsg struct {
	fn func()
}

// Executor posts functions onto the program's update loop. It satisfies
// dispatch.Executor, so async completions (icon fetches, note save timers,
// document reloads) land on the same goroutine that handles key events.
//
// The store needs its executor before the program exists, so posts made
// before Attach are buffered and flushed once the program is bound.
type Executor struct {
	mu      sync.Mutex
	program *tea.Program
	backlog []func()
}

// NewExecutor returns an unbound executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Attach binds the executor to p and flushes any buffered posts.
func (e *Executor) Attach(p *tea.Program) {
	e.mu.Lock()
	e.program = p
	backlog := e.backlog
	e.backlog = nil
	e.mu.Unlock()
	for _, fn := range backlog {
		p.Send(execMsg{fn: fn})
	}
}

// Post implements dispatch.Executor.
func (e *Executor) Post(fn func()) {
	e.mu.Lock()
	p := e.program
	if p == nil {
		e.backlog = append(e.backlog, fn)
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()
	p.Send(execMsg{fn: fn})
}
