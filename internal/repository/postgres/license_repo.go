package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/ids"
	"github.com/and161185/carder/internal/model"
)

// LicenseRepo implements LicenseRepository using PostgreSQL.
type LicenseRepo struct{ db *DB }

// NewLicenseRepo constructs a license repository.
func NewLicenseRepo(db *DB) *LicenseRepo { return &LicenseRepo{db: db} }

const selectLicense = `
SELECT id, type, organisation_id, purchase_order_id, sku_id, status
FROM licenses`

func scanLicense(row pgx.Row) (*model.License, error) {
	var (
		l      model.License
		po     *string
		status string
	)
	if err := row.Scan(&l.ID, &l.Type, &l.OrganisationID, &po, &l.SkuID, &status); err != nil {
		return nil, err
	}
	l.PurchaseOrderID = deref(po)
	l.Status = model.LicenseStatus(status)
	return &l, nil
}

func (r *LicenseRepo) list(ctx context.Context, where string, arg any) ([]model.License, error) {
	rows, err := r.db.Pool.Query(ctx, selectLicense+" WHERE "+where+" ORDER BY id", arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.License
	for rows.Next() {
		l, err := scanLicense(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

// Get selects a license by ID.
func (r *LicenseRepo) Get(ctx context.Context, id string) (*model.License, error) {
	l, err := scanLicense(r.db.Pool.QueryRow(ctx, selectLicense+" WHERE id=$1", id))
	if err != nil {
		return nil, notFound(err, "license "+id)
	}
	return l, nil
}

// ListByOrganisation returns the organisation's licenses.
func (r *LicenseRepo) ListByOrganisation(ctx context.Context, organisationID string) ([]model.License, error) {
	return r.list(ctx, "organisation_id=$1", organisationID)
}

// ListByPurchaseOrder returns the licenses provisioned for an order.
func (r *LicenseRepo) ListByPurchaseOrder(ctx context.Context, purchaseOrderID string) ([]model.License, error) {
	return r.list(ctx, "purchase_order_id=$1", purchaseOrderID)
}

// ListAssignedTo returns licenses currently assigned to the target.
func (r *LicenseRepo) ListAssignedTo(ctx context.Context, targetKind, targetID string) ([]model.AssignedLicense, error) {
	const q = `
SELECT l.id, l.type, l.organisation_id, l.purchase_order_id, l.sku_id, l.status,
       a.id, a.target_kind, a.target_id
FROM license_assignments a JOIN licenses l ON l.id = a.license_id
WHERE a.target_kind=$1 AND a.target_id=$2
ORDER BY l.id`
	rows, err := r.db.Pool.Query(ctx, q, targetKind, targetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.AssignedLicense
	for rows.Next() {
		var (
			al     model.AssignedLicense
			po     *string
			status string
		)
		if err = rows.Scan(&al.License.ID, &al.License.Type, &al.License.OrganisationID, &po, &al.License.SkuID, &status,
			&al.Assignment.ID, &al.Assignment.TargetKind, &al.Assignment.TargetID); err != nil {
			return nil, err
		}
		al.License.PurchaseOrderID = deref(po)
		al.License.Status = model.LicenseStatus(status)
		al.Assignment.LicenseID = al.License.ID
		out = append(out, al)
	}
	return out, rows.Err()
}

// Assign reads the license under a shared lock, requires it to be available
// and belong to organisationID, then records the assignment and flips the
// status to assigned. Two assignments racing on the same license deadlock on
// the upgrade; the aborted one is reported as LicenseNotAvailable.
func (r *LicenseRepo) Assign(ctx context.Context, organisationID string, a *model.LicenseAssignment) error {
	if a.ID == "" {
		a.ID = ids.New()
	}
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		l, err := scanLicense(tx.QueryRow(ctx, selectLicense+" WHERE id=$1 AND organisation_id=$2 FOR SHARE", a.LicenseID, organisationID))
		if err != nil {
			return notFound(err, "license "+a.LicenseID)
		}
		if l.Status != model.LicenseAvailable {
			return errs.New(errs.KindLicensing, "LicenseNotAvailable", "license is not available").
				With("licenseId", l.ID).
				With("status", string(l.Status))
		}
		const ins = `INSERT INTO license_assignments (id, license_id, target_kind, target_id) VALUES ($1, $2, $3, $4)`
		if _, err = tx.Exec(ctx, ins, a.ID, a.LicenseID, a.TargetKind, a.TargetID); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `UPDATE licenses SET status='assigned' WHERE id=$1 AND status='available'`, a.LicenseID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return errs.New(errs.KindLicensing, "LicenseNotAvailable", "license was assigned concurrently").
				With("licenseId", a.LicenseID)
		}
		return nil
	})
	if isLockConflict(err) {
		return errs.Wrap(errs.KindLicensing, "LicenseNotAvailable", "license was assigned concurrently", err).
			With("licenseId", a.LicenseID)
	}
	return err
}

// Unassign removes the target's assignment and returns the license to
// available. Consumed licenses stay consumed.
func (r *LicenseRepo) Unassign(ctx context.Context, licenseID, targetKind, targetID string) error {
	return r.db.inTx(ctx, func(tx pgx.Tx) error {
		l, err := scanLicense(tx.QueryRow(ctx, selectLicense+" WHERE id=$1 FOR UPDATE", licenseID))
		if err != nil {
			return notFound(err, "license "+licenseID)
		}
		switch l.Status {
		case model.LicenseAssigned:
		case model.LicenseConsumed:
			return errs.New(errs.KindLicensing, "LicenseAlreadyConsumed", "a consumed license cannot be unassigned").
				With("licenseId", l.ID)
		default:
			return errs.New(errs.KindLicensing, "LicenseNotAssigned", "license is not assigned").
				With("licenseId", l.ID).
				With("status", string(l.Status))
		}
		const del = `DELETE FROM license_assignments WHERE license_id=$1 AND target_kind=$2 AND target_id=$3`
		tag, err := tx.Exec(ctx, del, licenseID, targetKind, targetID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("assignment of license %s to %s %s: %w", licenseID, targetKind, targetID, errs.ErrNotFound)
		}
		_, err = tx.Exec(ctx, `UPDATE licenses SET status='available' WHERE id=$1`, licenseID)
		return err
	})
}
