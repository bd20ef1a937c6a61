package repository

import (
	"context"

	"github.com/and161185/carder/internal/model"
)

// EventRepository stores events and their attendees.
type EventRepository interface {
	// CreateWithManager inserts the event together with an event-manager role
	// assigned to managerUserID and a manage_event policy, atomically.
	CreateWithManager(ctx context.Context, ev *model.Event, managerUserID string) (*model.Role, error)
	// GetEvent loads an event by ID.
	GetEvent(ctx context.Context, id string) (*model.Event, error)
	// CreateAttendee enrols an attendee. A duplicate email within the event yields errs.ErrAlreadyExists.
	CreateAttendee(ctx context.Context, a *model.AttendeeProfile) error
	// GetAttendee loads an attendee profile with its event's organisation.
	GetAttendee(ctx context.Context, id string) (*model.AttendeeProfile, error)
}
