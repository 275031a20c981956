package commands

import (
	"errors"
	"strings"

	"cargotrack/internal/core/domain/model/employee"
	"cargotrack/internal/core/domain/model/kernel"
	"cargotrack/internal/core/domain/model/order"
	"cargotrack/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)

	// ErrProblemReasonRequired is returned when a transition to problem
	// carries no free-text reason. Recoverable by prompting the actor.
	ErrProblemReasonRequired = errors.New("a reason note is required to flag a problem")

	// ErrBranchRequired is returned when a transition to arrived_branch has
	// no resolvable destination branch. Recoverable by prompting the actor.
	ErrBranchRequired = errors.New("a destination branch is required for branch arrival")
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// status on behalf of an authenticated actor. The optional note becomes part
// of the history entry; the optional branch choice resolves the destination
// for arrived_branch transitions.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	targetStatus order.Status
	actor        employee.Actor
	note         string
	branchID     *kernel.UUID

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a validated status-change command.
// The note is trimmed; branchID may be nil when the target does not need one
// or when the acting branch worker's own branch should be used.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	targetStatus order.Status,
	actor employee.Actor,
	note string,
	branchID *kernel.UUID,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		note:  strings.TrimSpace(note),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTargetStatus(targetStatus),
		cmd.setActor(actor),
		cmd.setBranchID(branchID),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetStatus returns the requested target status.
func (c ChangeOrderStatusCommand) TargetStatus() order.Status {
	return c.targetStatus
}

// Actor returns the acting employee context.
func (c ChangeOrderStatusCommand) Actor() employee.Actor {
	return c.actor
}

// Note returns the trimmed free-text note, empty when absent.
func (c ChangeOrderStatusCommand) Note() string {
	return c.note
}

// BranchID returns the explicitly chosen destination branch, nil when none.
func (c ChangeOrderStatusCommand) BranchID() *kernel.UUID {
	return c.branchID
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTargetStatus(targetStatus order.Status) error {
	if err := targetStatus.Validate(); err != nil {
		return err
	}
	c.targetStatus = targetStatus
	return nil
}

func (c *ChangeOrderStatusCommand) setActor(actor employee.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *ChangeOrderStatusCommand) setBranchID(branchID *kernel.UUID) error {
	if branchID == nil {
		return nil
	}
	if err := branchID.Validate(); err != nil {
		return err
	}
	c.branchID = branchID
	return nil
}
