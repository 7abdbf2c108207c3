package commands

import (
	"errors"
	"strings"
	"time"

	"ordertracking/internal/pkg/errs"
	"ordertracking/internal/pkg/guard"
)

var (
	ErrRegisterOrderCommandIsNotConstructed = errors.New(
		"RegisterOrderCommand must be created via NewRegisterOrderCommand constructor",
	)
)

// RegisterOrderCommand represents a request to register a new purchase order
// for tracking. The order id is externally assigned and must be unique.
//
// Example:
//
//	cmd, err := NewRegisterOrderCommand("o-1001", "c-42", time.Now().UTC())
//	if err != nil {
//	    return fmt.Errorf("invalid registration: %w", err)
//	}
//
//	handler := NewRegisterOrderCommandHandler(repo, publisher, logger)
//	registered, err := handler.Handle(ctx, cmd)
type RegisterOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	customerID string
	now        time.Time

	guard guard.ConstructorGuard
}

// NewRegisterOrderCommand creates a command to register a new order.
// Both identifiers must be non-blank and the registration instant must be set.
func NewRegisterOrderCommand(orderID string, customerID string, now time.Time) (RegisterOrderCommand, error) {
	command := RegisterOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCustomerID(customerID),
		command.setNow(now),
	); err != nil {
		return RegisterOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterOrderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterOrderCommandIsNotConstructed)
}

// OrderID returns the externally assigned order identifier.
func (c RegisterOrderCommand) OrderID() string {
	return c.orderID
}

// CustomerID returns the identifier of the owning customer.
func (c RegisterOrderCommand) CustomerID() string {
	return c.customerID
}

// Now returns the registration instant.
func (c RegisterOrderCommand) Now() time.Time {
	return c.now
}

func (c *RegisterOrderCommand) setOrderID(orderID string) error {
	trimmed := strings.TrimSpace(orderID)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = trimmed
	return nil
}

func (c *RegisterOrderCommand) setCustomerID(customerID string) error {
	trimmed := strings.TrimSpace(customerID)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	c.customerID = trimmed
	return nil
}

func (c *RegisterOrderCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}
	c.now = now
	return nil
}
