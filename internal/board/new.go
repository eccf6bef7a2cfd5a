package board

import (
	"sync"

	pkgLog "taskboard/pkg/log"
)

// Manager hands out one Board per owner.
type Manager struct {
	l       pkgLog.Logger
	persist Persister

	mu     sync.Mutex
	boards map[string]*Board
}

// NewManager creates a board manager backed by the given persister.
func NewManager(l pkgLog.Logger, persist Persister) *Manager {
	return &Manager{
		l:       l,
		persist: persist,
		boards:  make(map[string]*Board),
	}
}

// Board returns the owner's board, creating it on first use.
func (m *Manager) Board(ownerID string) *Board {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.boards[ownerID]
	if !ok {
		b = &Board{
			l:       m.l,
			ownerID: ownerID,
			persist: m.persist,
			slots:   make(map[string]*slot),
		}
		m.boards[ownerID] = b
	}
	return b
}
