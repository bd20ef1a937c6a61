package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/metrics"
	"github.com/and161185/carder/internal/model"
	"github.com/and161185/carder/internal/policy"
	"github.com/and161185/carder/internal/repository"
)

// LicensingService moves licenses between available and assigned.
type LicensingService struct {
	licenses repository.LicenseRepository
	events   repository.EventRepository
	authz    *policy.Authorizer
	metrics  *metrics.Metrics
}

// NewLicensingService constructs a LicensingService. m may be nil.
func NewLicensingService(licenses repository.LicenseRepository, events repository.EventRepository,
	authz *policy.Authorizer, m *metrics.Metrics) *LicensingService {
	return &LicensingService{licenses: licenses, events: events, authz: authz, metrics: m}
}

func (l *LicensingService) observe(transition string, err error) {
	if l.metrics != nil {
		l.metrics.LicenseTransitions.WithLabelValues(transition, metrics.Outcome(err)).Inc()
	}
}

// Assign gives an available license of orgID to an attendee. The caller must
// manage both the attendee's event and the organisation's licenses.
func (l *LicensingService) Assign(ctx context.Context, s *model.Session, orgID, attendeeID, licenseID string) (a *model.LicenseAssignment, err error) {
	defer func() { l.observe("assign", err) }()

	su, err := CurrentUser(s, true)
	if err != nil {
		return nil, err
	}
	att, err := l.events.GetAttendee(ctx, attendeeID)
	if err != nil {
		return nil, err
	}
	if att.OrganisationID != orgID {
		return nil, errs.New(errs.KindValidation, "OrganisationMismatch", "attendee does not belong to the organisation").
			With("attendeeProfileId", attendeeID).
			With("organisationId", orgID)
	}
	err = l.authz.RequireAll(ctx, su.UserID,
		policy.On(model.EventRef(att.EventID), model.ActionManageEvent),
		policy.On(model.OrganisationRef(orgID), model.ActionManageLicenses),
	)
	if err != nil {
		return nil, err
	}
	a = &model.LicenseAssignment{LicenseID: licenseID, TargetKind: model.TargetAttendeeProfile, TargetID: attendeeID}
	if err := l.licenses.Assign(ctx, orgID, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Unassign returns an attendee's license to the pool. Managing either the
// attendee's event or the license's organisation suffices.
func (l *LicensingService) Unassign(ctx context.Context, s *model.Session, attendeeID, licenseID string) (err error) {
	defer func() { l.observe("unassign", err) }()

	su, err := CurrentUser(s, true)
	if err != nil {
		return err
	}
	var (
		att *model.AttendeeProfile
		lic *model.License
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		att, err = l.events.GetAttendee(gctx, attendeeID)
		return err
	})
	g.Go(func() (err error) {
		lic, err = l.licenses.Get(gctx, licenseID)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	err = l.authz.RequireAny(ctx, su.UserID,
		policy.On(model.EventRef(att.EventID), model.ActionManageEvent),
		policy.On(model.OrganisationRef(lic.OrganisationID), model.ActionManageLicenses),
	)
	if err != nil {
		return err
	}
	return l.licenses.Unassign(ctx, licenseID, model.TargetAttendeeProfile, attendeeID)
}

// ListLicenses returns the organisation's licenses.
func (l *LicensingService) ListLicenses(ctx context.Context, s *model.Session, orgID string) ([]model.License, error) {
	su, err := CurrentUser(s, true)
	if err != nil {
		return nil, err
	}
	if err := l.authz.Require(ctx, su.UserID, model.OrganisationRef(orgID), model.ActionManageLicenses); err != nil {
		return nil, err
	}
	return l.licenses.ListByOrganisation(ctx, orgID)
}

// ListAttendeeLicenses returns the licenses assigned to an attendee.
func (l *LicensingService) ListAttendeeLicenses(ctx context.Context, s *model.Session, attendeeID string) ([]model.AssignedLicense, error) {
	su, err := CurrentUser(s, true)
	if err != nil {
		return nil, err
	}
	att, err := l.events.GetAttendee(ctx, attendeeID)
	if err != nil {
		return nil, err
	}
	err = l.authz.RequireAny(ctx, su.UserID,
		policy.On(model.EventRef(att.EventID), model.ActionManageEvent),
		policy.On(model.OrganisationRef(att.OrganisationID), model.ActionManageLicenses),
	)
	if err != nil {
		return nil, err
	}
	return l.licenses.ListAssignedTo(ctx, model.TargetAttendeeProfile, attendeeID)
}
