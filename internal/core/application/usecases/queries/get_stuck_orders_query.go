package queries

import (
	"errors"
	"time"

	"cargotrack/internal/pkg/errs"
	"cargotrack/internal/pkg/guard"
)

var ErrGetStuckOrdersQueryIsNotConstructed = errors.New(
	"GetStuckOrdersQuery must be created via NewGetStuckOrdersQuery constructor",
)

// GetStuckOrdersQuery finds orders that have sat in a non-terminal status for
// longer than the given threshold. Used by the periodic monitoring job and by
// the dashboard.
type GetStuckOrdersQuery struct {
	threshold time.Duration

	guard guard.ConstructorGuard
}

// NewGetStuckOrdersQuery creates a validated stuck-order query.
func NewGetStuckOrdersQuery(threshold time.Duration) (GetStuckOrdersQuery, error) {
	if threshold <= 0 {
		return GetStuckOrdersQuery{}, errs.NewValueIsRequiredError("threshold")
	}
	return GetStuckOrdersQuery{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStuckOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStuckOrdersQueryIsNotConstructed)
}

// Threshold returns how long an order may stay untouched before it counts as
// stuck.
func (q GetStuckOrdersQuery) Threshold() time.Duration {
	return q.threshold
}

// StuckOrder is one order that has not moved within the threshold.
type StuckOrder struct {
	OrderSummary
	StuckFor time.Duration
}
