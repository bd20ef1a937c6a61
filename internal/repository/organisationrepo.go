package repository

import (
	"context"

	"github.com/and161185/carder/internal/model"
)

// OrganisationRepository provisions tenants.
type OrganisationRepository interface {
	// CreateWithOwner inserts the organisation together with its owner role,
	// the owner's role assignment and the default policies, atomically.
	CreateWithOwner(ctx context.Context, org *model.Organisation, ownerUserID string) (*model.Role, error)
	// Get loads an organisation by ID.
	Get(ctx context.Context, id string) (*model.Organisation, error)
	// ListForMember returns the organisations the user is allowed to belong to.
	ListForMember(ctx context.Context, userID string) ([]model.Organisation, error)
}
