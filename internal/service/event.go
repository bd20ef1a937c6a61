package service

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/model"
	"github.com/and161185/carder/internal/policy"
	"github.com/and161185/carder/internal/repository"
)

// EventService manages events and attendee enrolment.
type EventService struct {
	events repository.EventRepository
	authz  *policy.Authorizer
}

// NewEventService constructs an EventService.
func NewEventService(events repository.EventRepository, authz *policy.Authorizer) *EventService {
	return &EventService{events: events, authz: authz}
}

func (e *EventService) requireEventsManager(ctx context.Context, s *model.Session, orgID string) (*model.SessionUser, error) {
	su, err := CurrentUser(s, true)
	if err != nil {
		return nil, err
	}
	err = e.authz.Require(ctx, su.UserID, model.OrganisationRef(orgID),
		model.ActionManageEvents, model.ActionManageOrganisation)
	return su, err
}

// CreateEvent creates an event in orgID and makes the caller its manager.
func (e *EventService) CreateEvent(ctx context.Context, s *model.Session, orgID, name string) (*model.Event, error) {
	su, err := e.requireEventsManager(ctx, s, orgID)
	if err != nil {
		return nil, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.Validationf("event name is required")
	}
	ev := &model.Event{OrganisationID: orgID, Name: name}
	if _, err := e.events.CreateWithManager(ctx, ev, su.UserID); err != nil {
		return nil, err
	}
	return ev, nil
}

// EnrolAttendee adds a person to an event of orgID.
func (e *EventService) EnrolAttendee(ctx context.Context, s *model.Session, orgID, eventID, fullName, email string) (*model.AttendeeProfile, error) {
	if _, err := e.requireEventsManager(ctx, s, orgID); err != nil {
		return nil, err
	}
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	if fullName == "" {
		return nil, errs.Validationf("attendee name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, errs.Validationf("invalid attendee email address")
	}
	ev, err := e.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.OrganisationID != orgID {
		return nil, errs.New(errs.KindNotFound, "EventNotFound", "event not found in organisation").
			With("eventId", eventID).
			With("organisationId", orgID)
	}
	a := &model.AttendeeProfile{EventID: eventID, OrganisationID: orgID, FullName: fullName, Email: email}
	if err := e.events.CreateAttendee(ctx, a); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return nil, errs.Wrap(errs.KindConflict, "AttendeeAlreadyEnrolled", "attendee is already enrolled", err).
				With("eventId", eventID)
		}
		return nil, err
	}
	return a, nil
}
