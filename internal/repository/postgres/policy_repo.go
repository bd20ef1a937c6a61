package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/ids"
	"github.com/and161185/carder/internal/model"
)

// PolicyRepo implements PolicyRepository using PostgreSQL.
type PolicyRepo struct{ db *DB }

// NewPolicyRepo constructs a policy repository.
func NewPolicyRepo(db *DB) *PolicyRepo { return &PolicyRepo{db: db} }

const selectPolicy = `
SELECT id, principal_kind, user_id, role_id, resource_kind, resource_id, action, effect
FROM policies`

// MatchPolicies resolves the user's roles and returns every statement that names
// the user or one of those roles for res and any of actions.
func (r *PolicyRepo) MatchPolicies(ctx context.Context, userID string, res model.ResourceRef, actions []string) ([]model.Policy, error) {
	const q = selectPolicy + `
WHERE resource_kind=$1 AND resource_id=$2 AND action = ANY($3)
  AND (user_id=$4 OR role_id IN (SELECT role_id FROM role_assignments WHERE user_id=$4))`
	rows, err := r.db.Pool.Query(ctx, q, res.Kind, res.ID, actions, userID)
	if err != nil {
		return nil, err
	}
	return scanPolicies(rows)
}

// Create inserts a policy, assigning an ID when empty.
func (r *PolicyRepo) Create(ctx context.Context, p *model.Policy) error {
	if p.ID == "" {
		p.ID = ids.New()
	}
	return insertPolicy(ctx, r.db.Pool, p)
}

func insertPolicy(ctx context.Context, ex execer, p *model.Policy) error {
	const q = `
INSERT INTO policies (id, principal_kind, user_id, role_id, resource_kind, resource_id, action, effect)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	var userID, roleID *string
	if p.Principal.Kind == model.PrincipalRole {
		roleID = nullIfEmpty(p.Principal.ID)
	} else {
		userID = nullIfEmpty(p.Principal.ID)
	}
	_, err := ex.Exec(ctx, q, p.ID, string(p.Principal.Kind), userID, roleID, p.Resource.Kind, p.Resource.ID, p.Action, string(p.Effect))
	if isForeignKeyViolation(err) {
		return fmt.Errorf("policy principal %s:%s: %w", p.Principal.Kind, p.Principal.ID, errs.ErrNotFound)
	}
	return err
}

// Get selects a policy by ID.
func (r *PolicyRepo) Get(ctx context.Context, id string) (*model.Policy, error) {
	rows, err := r.db.Pool.Query(ctx, selectPolicy+" WHERE id=$1", id)
	if err != nil {
		return nil, err
	}
	ps, err := scanPolicies(rows)
	if err != nil {
		return nil, err
	}
	if len(ps) == 0 {
		return nil, fmt.Errorf("policy %s: %w", id, errs.ErrNotFound)
	}
	return &ps[0], nil
}

// Delete removes a policy by ID.
func (r *PolicyRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM policies WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("policy %s: %w", id, errs.ErrNotFound)
	}
	return nil
}

// ListForResource returns all statements about res.
func (r *PolicyRepo) ListForResource(ctx context.Context, res model.ResourceRef) ([]model.Policy, error) {
	rows, err := r.db.Pool.Query(ctx, selectPolicy+" WHERE resource_kind=$1 AND resource_id=$2 ORDER BY id", res.Kind, res.ID)
	if err != nil {
		return nil, err
	}
	return scanPolicies(rows)
}

func scanPolicies(rows pgx.Rows) ([]model.Policy, error) {
	defer rows.Close()
	var out []model.Policy
	for rows.Next() {
		var (
			p              model.Policy
			kind, effect   string
			userID, roleID *string
		)
		if err := rows.Scan(&p.ID, &kind, &userID, &roleID, &p.Resource.Kind, &p.Resource.ID, &p.Action, &effect); err != nil {
			return nil, err
		}
		p.Principal.Kind = model.PrincipalKind(kind)
		if p.Principal.Kind == model.PrincipalRole {
			p.Principal.ID = deref(roleID)
		} else {
			p.Principal.ID = deref(userID)
		}
		p.Effect = model.Effect(effect)
		out = append(out, p)
	}
	return out, rows.Err()
}
