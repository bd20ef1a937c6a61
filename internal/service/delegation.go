package service

import (
	"context"
	"errors"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/model"
	"github.com/and161185/carder/internal/policy"
	"github.com/and161185/carder/internal/repository"
)

// PolicyService lets organisation managers grant and revoke statements.
type PolicyService struct {
	policies repository.PolicyRepository
	events   repository.EventRepository
	licenses repository.LicenseRepository
	authz    *policy.Authorizer
}

// NewPolicyService constructs a PolicyService.
func NewPolicyService(policies repository.PolicyRepository, events repository.EventRepository,
	licenses repository.LicenseRepository, authz *policy.Authorizer) *PolicyService {
	return &PolicyService{policies: policies, events: events, licenses: licenses, authz: authz}
}

// owner resolves the organisation that controls res.
func (p *PolicyService) owner(ctx context.Context, res model.ResourceRef) (string, error) {
	switch res.Kind {
	case model.ResourceOrganisation:
		return res.ID, nil
	case model.ResourceEvent:
		ev, err := p.events.GetEvent(ctx, res.ID)
		if err != nil {
			return "", err
		}
		return ev.OrganisationID, nil
	case model.ResourceLicense:
		l, err := p.licenses.Get(ctx, res.ID)
		if err != nil {
			return "", err
		}
		return l.OrganisationID, nil
	}
	return "", errs.New(errs.KindValidation, "UnsupportedResourceKind", "statements on this resource kind cannot be delegated").
		With("resourceKind", res.Kind)
}

func (p *PolicyService) requireManager(ctx context.Context, s *model.Session, res model.ResourceRef) error {
	su, err := CurrentUser(s, true)
	if err != nil {
		return err
	}
	orgID, err := p.owner(ctx, res)
	if err != nil {
		return err
	}
	return p.authz.Require(ctx, su.UserID, model.OrganisationRef(orgID), model.ActionManageOrganisation)
}

// Grant stores a statement on a resource of an organisation the caller manages.
func (p *PolicyService) Grant(ctx context.Context, s *model.Session, st model.Policy) (*model.Policy, error) {
	if err := st.Validate(); err != nil {
		return nil, errs.Validationf("%v", err)
	}
	if err := p.requireManager(ctx, s, st.Resource); err != nil {
		return nil, err
	}
	st.ID = ""
	if err := p.policies.Create(ctx, &st); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, errs.Wrap(errs.KindNotFound, "PrincipalNotFound", "principal does not exist", err).
				With("principal", string(st.Principal.Kind)+":"+st.Principal.ID)
		}
		return nil, err
	}
	return &st, nil
}

// Revoke deletes a statement.
func (p *PolicyService) Revoke(ctx context.Context, s *model.Session, policyID string) error {
	st, err := p.policies.Get(ctx, policyID)
	if err != nil {
		return err
	}
	if err := p.requireManager(ctx, s, st.Resource); err != nil {
		return err
	}
	return p.policies.Delete(ctx, policyID)
}

// List returns every statement about res.
func (p *PolicyService) List(ctx context.Context, s *model.Session, res model.ResourceRef) ([]model.Policy, error) {
	if err := p.requireManager(ctx, s, res); err != nil {
		return nil, err
	}
	return p.policies.ListForResource(ctx, res)
}
