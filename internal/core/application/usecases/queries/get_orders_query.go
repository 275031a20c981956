// Package queries contains read-side operations of the CQRS split. Handlers
// read directly from the database with raw SQL, bypassing the aggregates, and
// return flat read models shaped for the HTTP layer.
package queries

import (
	"errors"
	"strings"
	"time"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/pkg/errs"
	"cargotrack/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// Listing page size bounds.
const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// GetOrdersQuery retrieves a page of orders for the back-office listing.
// Branch workers are scoped to their own branch regardless of the filters
// they pass; other roles see everything.
type GetOrdersQuery struct {
	actor        employee.Actor
	statusFilter *order.Status
	search       string
	limit        int
	offset       int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a validated order-listing query. statusFilter may
// be nil for no filtering; search matches track numbers as a case-insensitive
// substring; limit falls back to the default page size when zero.
func NewGetOrdersQuery(
	actor employee.Actor,
	statusFilter *order.Status,
	search string,
	limit int,
	offset int,
) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if statusFilter != nil {
		if err := statusFilter.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	if limit < 0 || limit > maxPageSize {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageSize)
	}
	if offset < 0 {
		return GetOrdersQuery{}, errs.NewValueIsInvalidError("offset")
	}

	return GetOrdersQuery{
		actor:        actor,
		statusFilter: statusFilter,
		search:       strings.TrimSpace(search),
		limit:        limit,
		offset:       offset,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the requesting employee context.
func (q GetOrdersQuery) Actor() employee.Actor { return q.actor }

// StatusFilter returns the optional status filter.
func (q GetOrdersQuery) StatusFilter() *order.Status { return q.statusFilter }

// Search returns the trimmed track-number search term, empty when absent.
func (q GetOrdersQuery) Search() string { return q.search }

// Limit returns the page size.
func (q GetOrdersQuery) Limit() int { return q.limit }

// Offset returns the page offset.
func (q GetOrdersQuery) Offset() int { return q.offset }

// OrderSummary is one row of the order listing.
type OrderSummary struct {
	ID                kernel.UUID
	TrackNumber       string
	Status            order.Status
	StatusDisplayName string
	BranchID          *kernel.UUID
	BranchName        string
	ClientID          *int64
	Version           int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
