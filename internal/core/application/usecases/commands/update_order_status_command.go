package commands

import (
	"errors"
	"strings"
	"time"

	"ordertracking/internal/core/domain/model/order"
	"ordertracking/internal/pkg/errs"
	"ordertracking/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a request to advance an order along its
// lifecycle. The target status is validated at construction; whether the
// transition itself is allowed is decided by the aggregate.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID string
	target  order.Status
	note    string
	at      time.Time

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// The raw status is normalized and validated against the enum, the note must
// be non-blank, and the transition instant must be set.
func NewUpdateOrderStatusCommand(orderID string, rawStatus string, note string, at time.Time) (UpdateOrderStatusCommand, error) {
	command := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(rawStatus),
		command.setNote(note),
		command.setAt(at),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() string {
	return c.orderID
}

// Target returns the validated destination status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

// Note returns the annotation recorded with the transition.
func (c UpdateOrderStatusCommand) Note() string {
	return c.note
}

// At returns the transition instant.
func (c UpdateOrderStatusCommand) At() time.Time {
	return c.at
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID string) error {
	trimmed := strings.TrimSpace(orderID)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = trimmed
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(rawStatus string) error {
	if strings.TrimSpace(rawStatus) == "" {
		return errs.NewValueIsRequiredError("status")
	}

	target, err := order.StatusFromString(rawStatus)
	if err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *UpdateOrderStatusCommand) setNote(note string) error {
	trimmed := strings.TrimSpace(note)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("note")
	}
	c.note = trimmed
	return nil
}

func (c *UpdateOrderStatusCommand) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("at")
	}
	c.at = at
	return nil
}
