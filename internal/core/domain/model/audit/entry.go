// Package audit contains the append-only audit-log record for privileged
// actions. Entries record behavior for traceability; nothing reads them to
// drive decisions.
package audit

import (
	"errors"
	"time"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// NewEntry.
var ErrEntryIsNotConstructed = errors.New("audit Entry must be created via NewEntry constructor")

// Action names recorded by the application layer.
const (
	ActionOrderCreated      = "order_created"
	ActionOrderStatusUpdate = "order_status_update"
	ActionStuckOrderReport  = "stuck_order_report"
)

// Entry is one immutable audit-log record: a privileged action with an
// arbitrary JSON-serializable payload.
type Entry struct {
	actorID    kernel.UUID
	action     string
	payload    map[string]any
	occurredAt time.Time

	isConstructed bool
}

// NewEntry creates an audit record for action performed by actorID.
// The payload may be nil; it is persisted as JSON.
func NewEntry(actorID kernel.UUID, action string, payload map[string]any) (Entry, error) {
	if err := actorID.Validate(); err != nil {
		return Entry{}, err
	}
	if action == "" {
		return Entry{}, errs.NewValueIsRequiredError("action")
	}

	return Entry{
		actorID:       actorID,
		action:        action,
		payload:       payload,
		occurredAt:    time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was created through NewEntry.
func (e Entry) Validate() error {
	if !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ActorID returns the acting employee's identifier.
func (e Entry) ActorID() kernel.UUID {
	return e.actorID
}

// Action returns the recorded action name.
func (e Entry) Action() string {
	return e.action
}

// Payload returns the structured action details, possibly nil.
func (e Entry) Payload() map[string]any {
	return e.payload
}

// OccurredAt returns the action timestamp.
func (e Entry) OccurredAt() time.Time {
	return e.occurredAt
}
