package ports

import (
	"context"
	"time"
)

// OrderStatusChangedEvent is the integration event emitted after a status
// transition commits.
type OrderStatusChangedEvent struct {
	OrderID     string    `json:"order_id"`
	TrackNumber string    `json:"track_number"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	ActorID     string    `json:"actor_id"`
	BranchID    string    `json:"branch_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// OrderEventPublisher publishes order integration events to the message
// broker. Publishing is best-effort: a failure is logged by the caller and
// never unwinds the committed transition.
type OrderEventPublisher interface {
	PublishStatusChanged(ctx context.Context, event OrderStatusChangedEvent) error
}
