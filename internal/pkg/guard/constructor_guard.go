// Package guard provides the constructor guard used by commands, queries and
// domain objects to reject zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation
// error is passed for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects created through their designated
// constructor from zero-value instances. Embed it as a private field and set it
// with NewConstructorGuard inside the constructor; a zero-value struct then
// fails Validate.
//
// Example:
//
//	type RegisterOrderCommand struct {
//	    orderID string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewRegisterOrderCommand(orderID string) (RegisterOrderCommand, error) {
//	    ...
//	    return RegisterOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c RegisterOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrRegisterOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero-value
// instances it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
