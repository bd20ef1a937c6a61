package postgres

import (
	"context"
	"fmt"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user row.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (id, full_name, email, pwd_hash, salt_auth, account_status)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Pool.Exec(ctx, q, u.ID, u.FullName, u.Email, u.PwdHash, u.SaltAuth, string(u.AccountStatus))
	if isUniqueViolation(err) {
		return fmt.Errorf("user %s: %w", u.Email, errs.ErrAlreadyExists)
	}
	return err
}

const selectUser = `
SELECT id, full_name, email, pwd_hash, salt_auth, account_status, created_at
FROM users`

func (r *UserRepo) getOne(ctx context.Context, where string, arg any) (*model.User, error) {
	row := r.db.Pool.QueryRow(ctx, selectUser+" WHERE "+where, arg)
	var (
		u      model.User
		status string
	)
	if err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PwdHash, &u.SaltAuth, &status, &u.CreatedAt); err != nil {
		return nil, notFound(err, "user")
	}
	u.AccountStatus = model.AccountStatus(status)
	return &u, nil
}

// GetByID selects a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.getOne(ctx, "id=$1", id)
}

// GetByEmail selects a user by email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, "email=$1", email)
}

// SetStatus updates account_status only if it currently equals from.
func (r *UserRepo) SetStatus(ctx context.Context, id string, from, to model.AccountStatus) error {
	const q = `UPDATE users SET account_status=$3 WHERE id=$1 AND account_status=$2`
	tag, err := r.db.Pool.Exec(ctx, q, id, string(from), string(to))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s in status %s: %w", id, from, errs.ErrNotFound)
	}
	return nil
}
