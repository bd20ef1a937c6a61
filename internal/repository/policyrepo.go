package repository

import (
	"context"

	"github.com/and161185/carder/internal/model"
)

// PolicyRepository stores access-control statements.
type PolicyRepository interface {
	// MatchPolicies returns every policy on res whose action is in actions and whose
	// principal is the user or one of the user's roles.
	MatchPolicies(ctx context.Context, userID string, res model.ResourceRef, actions []string) ([]model.Policy, error)
	// Create inserts a policy. A missing principal yields errs.ErrNotFound.
	Create(ctx context.Context, p *model.Policy) error
	// Get loads a policy by ID.
	Get(ctx context.Context, id string) (*model.Policy, error)
	// Delete removes a policy.
	Delete(ctx context.Context, id string) error
	// ListForResource returns all statements about res.
	ListForResource(ctx context.Context, res model.ResourceRef) ([]model.Policy, error)
}
