// Package order implements the order aggregate and its menu item entities.
//
// An Order is a named customer ticket owned by exactly one department. It
// contains one or more MenuItems, each of which moves through a forward-only
// cooking lifecycle (not-started -> on-their-way -> finished) and an
// independent, subsequent delivery sub-lifecycle (waiter assigned ->
// in transit -> delivered).
//
// All state transitions are enforced by ItemStatus, a value object state
// machine. Invalid transitions return typed errors; the application layer
// decides whether to surface or swallow them.
//
// Derived timer fields (elapsed cooking seconds, elapsed delivery seconds)
// are recomputed via RefreshTimers from a caller-supplied clock reading, so
// that a periodic driver can refresh every in-flight item from one consistent
// instant.
package order
