// Package repository implements the per-entity services over the shared
// single-table store.  Sentinel errors let handlers map failures onto HTTP
// statuses without inspecting messages.
package repository

import "errors"

// ErrNotFound is returned when an id has no matching item of the expected
// entity type.  Handlers translate this into a 404.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned when a user create or update would duplicate
// an email address.  Handlers translate this into a 409.
var ErrEmailExists = errors.New("email already registered")

// ErrMobileExists is returned when a user create or update would duplicate
// a mobile number.  Handlers translate this into a 409.
var ErrMobileExists = errors.New("mobile number already registered")

// ErrBootstrapClosed is returned when bootstrap is attempted after at least
// one user exists.  Handlers translate this into a 403.
var ErrBootstrapClosed = errors.New("bootstrap is only allowed when no users exist")
