package queries

import (
	"errors"
	"time"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/pkg/guard"
)

var ErrGetOrderByTrackNumberQueryIsNotConstructed = errors.New(
	"GetOrderByTrackNumberQuery must be created via NewGetOrderByTrackNumberQuery constructor",
)

// GetOrderByTrackNumberQuery retrieves a single order with its full status
// history. The raw track number is normalized the same way order creation
// normalizes it, so lookups match regardless of input casing.
type GetOrderByTrackNumberQuery struct {
	actor       employee.Actor
	trackNumber order.TrackNumber

	guard guard.ConstructorGuard
}

// NewGetOrderByTrackNumberQuery creates a validated order-detail query.
func NewGetOrderByTrackNumberQuery(actor employee.Actor, rawTrackNumber string) (GetOrderByTrackNumberQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderByTrackNumberQuery{}, err
	}

	trackNumber, err := order.NewTrackNumber(rawTrackNumber)
	if err != nil {
		return GetOrderByTrackNumberQuery{}, err
	}

	return GetOrderByTrackNumberQuery{
		actor:       actor,
		trackNumber: trackNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByTrackNumberQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByTrackNumberQueryIsNotConstructed)
}

// Actor returns the requesting employee context.
func (q GetOrderByTrackNumberQuery) Actor() employee.Actor { return q.actor }

// TrackNumber returns the normalized track number.
func (q GetOrderByTrackNumberQuery) TrackNumber() order.TrackNumber { return q.trackNumber }

// OrderDetail is the full read model of one order: the summary row plus its
// history, newest entry first.
type OrderDetail struct {
	OrderSummary
	CreatedBy *kernel.UUID
	History   []HistoryRow
}

// HistoryRow is one status change in an order's history.
type HistoryRow struct {
	Status            order.Status
	StatusDisplayName string
	ChangedBy         kernel.UUID
	ChangedByName     string
	Note              string
	ChangedAt         time.Time
}
