package repository

import (
	"context"

	"github.com/and161185/carder/internal/model"
)

// LicenseRepository stores licenses and their assignments.
type LicenseRepository interface {
	// Get loads a license by ID.
	Get(ctx context.Context, id string) (*model.License, error)
	// ListByOrganisation returns the organisation's licenses.
	ListByOrganisation(ctx context.Context, organisationID string) ([]model.License, error)
	// ListByPurchaseOrder returns the licenses provisioned for an order.
	ListByPurchaseOrder(ctx context.Context, purchaseOrderID string) ([]model.License, error)
	// ListAssignedTo returns licenses currently assigned to the target.
	ListAssignedTo(ctx context.Context, targetKind, targetID string) ([]model.AssignedLicense, error)
	// Assign reads the license under a shared lock, requires it to be available,
	// records the assignment and flips the status to assigned.
	Assign(ctx context.Context, organisationID string, a *model.LicenseAssignment) error
	// Unassign removes the assignment and flips the license back to available.
	// A consumed license cannot be unassigned.
	Unassign(ctx context.Context, licenseID, targetKind, targetID string) error
}
