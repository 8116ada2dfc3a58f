// Package memory guarda las sesiones de trabajo en memoria del proceso.
// El estado no sobrevive a un reinicio.
package memory

import (
	"context"
	"fmt"
	"sync"

	appinventory "github.com/jhoicas/Barkeeper-api/internal/application/inventory"
	"github.com/jhoicas/Barkeeper-api/internal/domain"
)

type entry struct {
	mu      sync.Mutex // serializa las actualizaciones de una misma sesión
	state   *appinventory.BarState
	deleted bool
}

// SessionStore implementa inventory.SessionStore con un mapa protegido por RWMutex.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

// NewSessionStore crea un store vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*entry)}
}

// Create registra una sesión nueva. Un ID repetido devuelve domain.ErrConflict.
func (s *SessionStore) Create(ctx context.Context, id string, state *appinventory.BarState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if id == "" || state == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; ok {
		return fmt.Errorf("%w: la sesión %s ya existe", domain.ErrConflict, id)
	}
	s.sessions[id] = &entry{state: state}
	return nil
}

// Get devuelve el estado actual de la sesión.
func (s *SessionStore) Get(ctx context.Context, id string) (*appinventory.BarState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return nil, domain.ErrSessionNotFound
	}
	return e.state, nil
}

// Update aplica fn bajo el lock de la sesión y guarda el estado devuelto.
func (s *SessionStore) Update(
	ctx context.Context,
	id string,
	fn func(current *appinventory.BarState) (*appinventory.BarState, error),
) (*appinventory.BarState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deleted {
		return nil, domain.ErrSessionNotFound
	}
	next, err := fn(e.state)
	if err != nil {
		return nil, err
	}
	if next == nil {
		return nil, fmt.Errorf("memory: update de la sesión %s devolvió un estado nil", id)
	}
	e.state = next
	return next, nil
}

// Delete elimina la sesión.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	e, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	if !ok {
		return domain.ErrSessionNotFound
	}
	e.mu.Lock()
	e.deleted = true
	e.mu.Unlock()
	return nil
}

// Len número de sesiones abiertas.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *SessionStore) lookup(id string) (*entry, error) {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return e, nil
}
