package service

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/model"
	"github.com/and161185/carder/internal/policy"
	"github.com/and161185/carder/internal/repository"
)

var orgKeyRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,62}[a-z0-9]$`)

// OrganisationService provisions tenants.
type OrganisationService struct {
	orgs  repository.OrganisationRepository
	authz *policy.Authorizer
}

// NewOrganisationService constructs an OrganisationService.
func NewOrganisationService(orgs repository.OrganisationRepository, authz *policy.Authorizer) *OrganisationService {
	return &OrganisationService{orgs: orgs, authz: authz}
}

// Create provisions an organisation owned by the session user.
func (o *OrganisationService) Create(ctx context.Context, s *model.Session, key, name string) (*model.Organisation, error) {
	su, err := CurrentUser(s, true)
	if err != nil {
		return nil, err
	}
	key = strings.ToLower(strings.TrimSpace(key))
	name = strings.TrimSpace(name)
	if !orgKeyRe.MatchString(key) {
		return nil, errs.Validationf("organisation key must be 3-64 lowercase letters, digits or hyphens")
	}
	if name == "" {
		return nil, errs.Validationf("organisation name is required")
	}
	org := &model.Organisation{Key: key, Name: name}
	if _, err := o.orgs.CreateWithOwner(ctx, org, su.UserID); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return nil, errs.Wrap(errs.KindConflict, "OrganisationAlreadyExists", "organisation already exists", err).
				With("key", key)
		}
		return nil, err
	}
	return org, nil
}

// ListMine returns the organisations the session user belongs to.
func (o *OrganisationService) ListMine(ctx context.Context, s *model.Session) ([]model.Organisation, error) {
	su, err := CurrentUser(s, false)
	if err != nil {
		return nil, err
	}
	return o.orgs.ListForMember(ctx, su.UserID)
}

// Get returns an organisation to a member or manager.
func (o *OrganisationService) Get(ctx context.Context, s *model.Session, orgID string) (*model.Organisation, error) {
	su, err := CurrentUser(s, false)
	if err != nil {
		return nil, err
	}
	if err := o.authz.Require(ctx, su.UserID, model.OrganisationRef(orgID),
		model.ActionBelongToOrganisation, model.ActionManageOrganisation); err != nil {
		return nil, err
	}
	return o.orgs.Get(ctx, orgID)
}
