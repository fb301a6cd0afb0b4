// Package guard provides a small helper for enforcing constructor usage on
// value objects, commands, and queries. A ConstructorGuard embedded in a struct
// distinguishes instances built through the type's constructor from zero
// values, so Validate methods can reject uninitialized instances.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guarded object
// is a zero value and the caller did not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// invalid; only NewConstructorGuard produces a valid guard.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard in the constructed state. Call it from
// the owning type's constructor and store the result in a private field.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil when the guard was created via NewConstructorGuard.
// For a zero-value guard it returns notConstructedErr, falling back to
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrDefaultConstructorGuard
}
