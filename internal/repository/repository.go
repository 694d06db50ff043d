package repository

import (
	"context"
	"errors"
)

// ErrNotFound indicates that the requested record does not exist. Ids that
// cannot be parsed by a backend are reported the same way.
var ErrNotFound = errors.New("record not found")

// Transactor runs fn as a single unit of work where the backend supports it.
// Repository calls made with the context passed to fn join that unit.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// TransactorFunc adapts a function to the Transactor interface.
type TransactorFunc func(ctx context.Context, fn func(ctx context.Context) error) error

func (f TransactorFunc) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return f(ctx, fn)
}

type noTransaction struct{}

func (noTransaction) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// NoTransaction runs fn directly. Each write inside it commits on its own.
var NoTransaction Transactor = noTransaction{}

// Store bundles the repositories of one backend.
type Store struct {
	Users   UserRepository
	Hobbies HobbyRepository
	Tx      Transactor
	Close   func(ctx context.Context) error
}
