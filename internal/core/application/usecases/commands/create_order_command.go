package commands

import (
	"errors"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new parcel order.
// The raw track number is normalized and validated at construction; branch
// and client associations are optional.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	trackNumber order.TrackNumber
	branchID    *kernel.UUID
	clientID    *int64
	actor       employee.Actor

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated order-creation command.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	rawTrackNumber string,
	branchID *kernel.UUID,
	clientID *int64,
	actor employee.Actor,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		clientID: clientID,
		guard:    guard.NewConstructorGuard(),
	}

	trackNumber, err := order.NewTrackNumber(rawTrackNumber)
	if err != nil {
		return CreateOrderCommand{}, err
	}
	cmd.trackNumber = trackNumber

	if err = errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBranchID(branchID),
		cmd.setActor(actor),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TrackNumber returns the normalized track number.
func (c CreateOrderCommand) TrackNumber() order.TrackNumber {
	return c.trackNumber
}

// BranchID returns the optional destination branch.
func (c CreateOrderCommand) BranchID() *kernel.UUID {
	return c.branchID
}

// ClientID returns the optional client association.
func (c CreateOrderCommand) ClientID() *int64 {
	return c.clientID
}

// Actor returns the creating employee context.
func (c CreateOrderCommand) Actor() employee.Actor {
	return c.actor
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setBranchID(branchID *kernel.UUID) error {
	if branchID == nil {
		return nil
	}
	if err := branchID.Validate(); err != nil {
		return err
	}
	c.branchID = branchID
	return nil
}

func (c *CreateOrderCommand) setActor(actor employee.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
