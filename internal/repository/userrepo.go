// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/and161185/carder/internal/model"
)

// UserRepository provides access to user accounts.
type UserRepository interface {
	// Create inserts a new user. A taken email yields errs.ErrAlreadyExists.
	Create(ctx context.Context, u *model.User) error
	// GetByID loads a user by ID.
	GetByID(ctx context.Context, id string) (*model.User, error)
	// GetByEmail loads a user by email (login handle).
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	// SetStatus moves a user from one account status to another.
	SetStatus(ctx context.Context, id string, from, to model.AccountStatus) error
}
