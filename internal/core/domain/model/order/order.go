package order

import (
	"errors"
	"time"

	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrDuplicateTrackNumber is returned when persisting an order whose
	// track number already exists. Surfaced at order-creation time; the
	// caller must pick a different track number.
	ErrDuplicateTrackNumber = errors.New("track number already exists")

	// ErrStaleVersion is the optimistic-concurrency conflict: another writer
	// advanced the order's version after it was read. Recoverable only by
	// re-fetching the order and re-attempting the whole authorization+commit
	// sequence; never retried blindly.
	ErrStaleVersion = errors.New("order version is stale")
)

// initialVersion is assigned at creation; every committed status change
// increments the version by exactly 1.
const initialVersion = 1

// Order is the aggregate root for one shipped parcel.
//
// Invariants:
//   - the track number is unique and normalized (see TrackNumber)
//   - status is always a member of the closed ten-value set
//   - version increases by exactly 1 on every successful status change, so
//     (status, version) always matches the most recently committed history entry
type Order struct {
	id          kernel.UUID
	trackNumber TrackNumber
	status      Status
	branchID    *kernel.UUID
	clientID    *int64
	createdBy   *kernel.UUID
	version     int
	createdAt   time.Time
	updatedAt   time.Time

	isConstructed bool
}

// NewOrder creates a new order in the created status with version 1.
// branchID, clientID, and createdBy are optional associations.
func NewOrder(
	id kernel.UUID,
	trackNumber TrackNumber,
	branchID *kernel.UUID,
	clientID *int64,
	createdBy *kernel.UUID,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:        Created,
		version:       initialVersion,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setTrackNumber(trackNumber),
		order.setBranchID(branchID),
		order.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}
	order.clientID = clientID

	return order, nil
}

// RestoreOrder rehydrates an order from persistence without resetting its
// lifecycle fields.
func RestoreOrder(
	id kernel.UUID,
	trackNumber TrackNumber,
	status Status,
	branchID *kernel.UUID,
	clientID *int64,
	createdBy *kernel.UUID,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	order, err := NewOrder(id, trackNumber, branchID, clientID, createdBy)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if version < initialVersion {
		return nil, errs.NewVersionIsInvalidError("order version")
	}

	order.status = status
	order.version = version
	order.createdAt = createdAt
	order.updatedAt = updatedAt
	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TrackNumber returns the order's normalized track number.
func (o *Order) TrackNumber() TrackNumber {
	return o.trackNumber
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// BranchID returns the destination branch, nil while the parcel has not been
// routed to one.
func (o *Order) BranchID() *kernel.UUID {
	return o.branchID
}

// ClientID returns the associated client identifier, nil when unknown.
func (o *Order) ClientID() *int64 {
	return o.clientID
}

// CreatedBy returns the creating employee's identifier, nil when unknown.
func (o *Order) CreatedBy() *kernel.UUID {
	return o.createdBy
}

// Version returns the optimistic-concurrency version.
func (o *Order) Version() int {
	return o.version
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ApplyTransition moves the order to target and bumps the version by 1.
//
// It validates the target against the closed status set but deliberately does
// NOT consult the transition table: authorization (including the admin
// override that may leave problem or skip pipeline steps) is the
// TransitionPolicy's responsibility and must run before this call.
//
// When target is arrived_branch the resolved destination branch is required
// and recorded on the order; for every other target the branch is unchanged.
func (o *Order) ApplyTransition(target Status, branchID *kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if target == ArrivedBranch {
		if branchID == nil {
			return errs.NewValueIsRequiredError("branchId")
		}
		if err := branchID.Validate(); err != nil {
			return err
		}
		o.branchID = branchID
	}

	o.status = target
	o.version++
	o.updatedAt = time.Now().UTC()
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTrackNumber(trackNumber TrackNumber) error {
	if err := trackNumber.Validate(); err != nil {
		return err
	}
	o.trackNumber = trackNumber
	return nil
}

func (o *Order) setBranchID(branchID *kernel.UUID) error {
	if branchID == nil {
		return nil
	}
	if err := branchID.Validate(); err != nil {
		return err
	}
	o.branchID = branchID
	return nil
}

func (o *Order) setCreatedBy(createdBy *kernel.UUID) error {
	if createdBy == nil {
		return nil
	}
	if err := createdBy.Validate(); err != nil {
		return err
	}
	o.createdBy = createdBy
	return nil
}
