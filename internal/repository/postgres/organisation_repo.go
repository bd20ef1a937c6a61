package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/ids"
	"github.com/and161185/carder/internal/model"
)

// OrganisationRepo implements OrganisationRepository using PostgreSQL.
type OrganisationRepo struct{ db *DB }

// NewOrganisationRepo constructs an organisation repository.
func NewOrganisationRepo(db *DB) *OrganisationRepo { return &OrganisationRepo{db: db} }

const ownerRoleName = "owner"

// CreateWithOwner inserts org, an owner role assigned to ownerUserID and the
// default policies in one transaction.
func (r *OrganisationRepo) CreateWithOwner(ctx context.Context, org *model.Organisation, ownerUserID string) (*model.Role, error) {
	if org.ID == "" {
		org.ID = ids.New()
	}
	role := &model.Role{ID: ids.New(), OrganisationID: org.ID, Name: ownerRoleName}
	res := model.OrganisationRef(org.ID)
	policies := []model.Policy{
		{Principal: model.RolePrincipal(role.ID), Resource: res, Action: model.ActionManageOrganisation, Effect: model.EffectAllow},
		{Principal: model.RolePrincipal(role.ID), Resource: res, Action: model.ActionManageLicenses, Effect: model.EffectAllow},
		{Principal: model.UserPrincipal(ownerUserID), Resource: res, Action: model.ActionBelongToOrganisation, Effect: model.EffectAllow},
	}

	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `INSERT INTO organisations (id, key, name) VALUES ($1, $2, $3)`, org.ID, org.Key, org.Name); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("organisation %s: %w", org.Key, errs.ErrAlreadyExists)
			}
			return err
		}
		if err := insertRoleWithMember(ctx, tx, role, ownerUserID); err != nil {
			return err
		}
		for i := range policies {
			policies[i].ID = ids.New()
			if err := insertPolicy(ctx, tx, &policies[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

func insertRoleWithMember(ctx context.Context, tx pgx.Tx, role *model.Role, userID string) error {
	if _, err := tx.Exec(ctx, `INSERT INTO roles (id, organisation_id, name) VALUES ($1, $2, $3)`,
		role.ID, role.OrganisationID, role.Name); err != nil {
		return err
	}
	_, err := tx.Exec(ctx, `INSERT INTO role_assignments (id, user_id, role_id) VALUES ($1, $2, $3)`,
		ids.New(), userID, role.ID)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("user %s: %w", userID, errs.ErrNotFound)
	}
	return err
}

// Get selects an organisation by ID.
func (r *OrganisationRepo) Get(ctx context.Context, id string) (*model.Organisation, error) {
	var o model.Organisation
	err := r.db.Pool.QueryRow(ctx, `SELECT id, key, name FROM organisations WHERE id=$1`, id).
		Scan(&o.ID, &o.Key, &o.Name)
	if err != nil {
		return nil, notFound(err, "organisation "+id)
	}
	return &o, nil
}

// ListForMember returns the organisations the user belongs to: those with a
// belong_to_organisation statement naming the user or one of its roles and no
// deny among them.
func (r *OrganisationRepo) ListForMember(ctx context.Context, userID string) ([]model.Organisation, error) {
	const q = `
SELECT o.id, o.key, o.name
FROM organisations o
JOIN policies p ON p.resource_kind='organisation' AND p.resource_id=o.id
WHERE p.action=$2
  AND (p.user_id=$1 OR p.role_id IN (SELECT role_id FROM role_assignments WHERE user_id=$1))
GROUP BY o.id, o.key, o.name
HAVING bool_and(p.effect='allow')
ORDER BY o.name, o.id`
	rows, err := r.db.Pool.Query(ctx, q, userID, model.ActionBelongToOrganisation)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Organisation{}
	for rows.Next() {
		var o model.Organisation
		if err = rows.Scan(&o.ID, &o.Key, &o.Name); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
