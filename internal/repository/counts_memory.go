package repository

import (
	"context"
	"sync"

	"github.com/guttosm/menu-service/internal/domain/model"
)

// MemoryCountRepository is an in-process store of count sessions and their
// attachments, used by the count report generator.
type MemoryCountRepository struct {
	mu         sync.RWMutex
	sessions   map[string]model.CountSession
	lines      map[string][]model.CountLine
	invoices   map[string][]model.Invoice
	exceptions map[string][]model.MappingException
}

// NewMemoryCountRepository creates an empty in-memory count repository.
func NewMemoryCountRepository() *MemoryCountRepository {
	return &MemoryCountRepository{
		sessions:   make(map[string]model.CountSession),
		lines:      make(map[string][]model.CountLine),
		invoices:   make(map[string][]model.Invoice),
		exceptions: make(map[string][]model.MappingException),
	}
}

// PutSession stores a count session header.
func (r *MemoryCountRepository) PutSession(session model.CountSession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
}

// AddLine appends a count line to its session.
func (r *MemoryCountRepository) AddLine(line model.CountLine) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines[line.SessionID] = append(r.lines[line.SessionID], line)
}

// AddInvoice attaches an invoice to its session.
func (r *MemoryCountRepository) AddInvoice(inv model.Invoice) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices[inv.SessionID] = append(r.invoices[inv.SessionID], inv)
}

// AddException records an unresolved item mapping for its session.
func (r *MemoryCountRepository) AddException(exc model.MappingException) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exceptions[exc.SessionID] = append(r.exceptions[exc.SessionID], exc)
}

// GetSession returns the session header, or (nil, nil) if absent.
func (r *MemoryCountRepository) GetSession(_ context.Context, id string) (*model.CountSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

// ListLines returns the count lines for a session in insertion order.
func (r *MemoryCountRepository) ListLines(_ context.Context, sessionID string) ([]model.CountLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.CountLine(nil), r.lines[sessionID]...), nil
}

// ListInvoices returns the invoices attached to a session.
func (r *MemoryCountRepository) ListInvoices(_ context.Context, sessionID string) ([]model.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.Invoice(nil), r.invoices[sessionID]...), nil
}

// ListExceptions returns the unresolved item mappings for a session.
func (r *MemoryCountRepository) ListExceptions(_ context.Context, sessionID string) ([]model.MappingException, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.MappingException(nil), r.exceptions[sessionID]...), nil
}
