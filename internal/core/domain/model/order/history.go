package order

import (
	"errors"
	"time"

	"cargotrack/internal/core/domain/model/kernel"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created through NewHistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry constructor")

// HistoryEntry is an immutable, append-only record of one committed status
// transition. Entries are created once per transition and never mutated or
// deleted; the ordered sequence for an order reconstructs its path through
// the transition graph (mod the problem escape hatch).
type HistoryEntry struct {
	orderID   kernel.UUID
	status    Status
	changedBy kernel.UUID
	note      string
	changedAt time.Time

	isConstructed bool
}

// NewHistoryEntry creates a history record for a transition to status,
// performed by the given employee. The note is optional free text; the
// timestamp is captured at construction.
func NewHistoryEntry(orderID kernel.UUID, status Status, changedBy kernel.UUID, note string) (HistoryEntry, error) {
	if err := orderID.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if err := status.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if err := changedBy.Validate(); err != nil {
		return HistoryEntry{}, err
	}

	return HistoryEntry{
		orderID:       orderID,
		status:        status,
		changedBy:     changedBy,
		note:          note,
		changedAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreHistoryEntry rehydrates a history record from persistence.
func RestoreHistoryEntry(
	orderID kernel.UUID,
	status Status,
	changedBy kernel.UUID,
	note string,
	changedAt time.Time,
) (HistoryEntry, error) {
	entry, err := NewHistoryEntry(orderID, status, changedBy, note)
	if err != nil {
		return HistoryEntry{}, err
	}
	entry.changedAt = changedAt
	return entry, nil
}

// Validate ensures the entry was created through NewHistoryEntry.
func (h HistoryEntry) Validate() error {
	if !h.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// OrderID returns the order this entry belongs to.
func (h HistoryEntry) OrderID() kernel.UUID {
	return h.orderID
}

// Status returns the status transitioned to.
func (h HistoryEntry) Status() Status {
	return h.status
}

// ChangedBy returns the acting employee's identifier.
func (h HistoryEntry) ChangedBy() kernel.UUID {
	return h.changedBy
}

// Note returns the optional free-text note, empty when absent.
func (h HistoryEntry) Note() string {
	return h.note
}

// ChangedAt returns the transition timestamp.
func (h HistoryEntry) ChangedAt() time.Time {
	return h.changedAt
}
