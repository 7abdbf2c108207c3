package commands

import (
	"errors"
	"time"

	"ordertracking/internal/pkg/errs"
	"ordertracking/internal/pkg/guard"
)

var (
	ErrCompleteStaleOrdersCommandIsNotConstructed = errors.New(
		"CompleteStaleOrdersCommand must be created via NewCompleteStaleOrdersCommand constructor",
	)
)

// DefaultStaleness is how long a shipped order may sit without an update
// before the batch job assumes it was delivered.
const DefaultStaleness = 7 * 24 * time.Hour

// CompleteStaleOrdersCommand represents a batch request to auto-complete
// shipped orders that have not been updated for the staleness window.
type CompleteStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	now       time.Time
	staleness time.Duration

	guard guard.ConstructorGuard
}

// NewCompleteStaleOrdersCommand creates a batch completion command.
// The reference instant must be set and the staleness window positive.
func NewCompleteStaleOrdersCommand(now time.Time, staleness time.Duration) (CompleteStaleOrdersCommand, error) {
	command := CompleteStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setNow(now),
		command.setStaleness(staleness),
	); err != nil {
		return CompleteStaleOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCompleteStaleOrdersCommandIsNotConstructed)
}

// Now returns the reference instant used for both the threshold and the
// delivery timestamps written by the batch.
func (c CompleteStaleOrdersCommand) Now() time.Time {
	return c.now
}

// Staleness returns the inactivity window.
func (c CompleteStaleOrdersCommand) Staleness() time.Duration {
	return c.staleness
}

// Threshold returns the cutoff instant: shipped orders last updated strictly
// before it are considered stale.
func (c CompleteStaleOrdersCommand) Threshold() time.Time {
	return c.now.Add(-c.staleness)
}

func (c *CompleteStaleOrdersCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}
	c.now = now
	return nil
}

func (c *CompleteStaleOrdersCommand) setStaleness(staleness time.Duration) error {
	if staleness <= 0 {
		return errs.NewValueIsInvalidError("staleness")
	}
	c.staleness = staleness
	return nil
}
