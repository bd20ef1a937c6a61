package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/ids"
	"github.com/and161185/carder/internal/model"
)

// EventRepo implements EventRepository using PostgreSQL.
type EventRepo struct{ db *DB }

// NewEventRepo constructs an event repository.
func NewEventRepo(db *DB) *EventRepo { return &EventRepo{db: db} }

// CreateWithManager inserts ev, an "<eventId>_event-manager" role assigned to
// managerUserID and an allow manage_event policy for that role.
func (r *EventRepo) CreateWithManager(ctx context.Context, ev *model.Event, managerUserID string) (*model.Role, error) {
	if ev.ID == "" {
		ev.ID = ids.New()
	}
	if ev.Status == "" {
		ev.Status = "planned"
	}
	role := &model.Role{ID: ids.New(), OrganisationID: ev.OrganisationID, Name: ev.ID + "_event-manager"}
	p := &model.Policy{
		ID:        ids.New(),
		Principal: model.RolePrincipal(role.ID),
		Resource:  model.EventRef(ev.ID),
		Action:    model.ActionManageEvent,
		Effect:    model.EffectAllow,
	}

	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		const ins = `INSERT INTO events (id, organisation_id, name, status) VALUES ($1, $2, $3, $4)`
		if _, err := tx.Exec(ctx, ins, ev.ID, ev.OrganisationID, ev.Name, ev.Status); err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("organisation %s: %w", ev.OrganisationID, errs.ErrNotFound)
			}
			return err
		}
		if err := insertRoleWithMember(ctx, tx, role, managerUserID); err != nil {
			return err
		}
		return insertPolicy(ctx, tx, p)
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

// GetEvent selects an event by ID.
func (r *EventRepo) GetEvent(ctx context.Context, id string) (*model.Event, error) {
	var ev model.Event
	err := r.db.Pool.QueryRow(ctx, `SELECT id, organisation_id, name, status FROM events WHERE id=$1`, id).
		Scan(&ev.ID, &ev.OrganisationID, &ev.Name, &ev.Status)
	if err != nil {
		return nil, notFound(err, "event "+id)
	}
	return &ev, nil
}

// CreateAttendee enrols a person in an event once per email.
func (r *EventRepo) CreateAttendee(ctx context.Context, a *model.AttendeeProfile) error {
	if a.ID == "" {
		a.ID = ids.New()
	}
	const q = `INSERT INTO attendee_profiles (id, event_id, full_name, email) VALUES ($1, $2, $3, $4)`
	_, err := r.db.Pool.Exec(ctx, q, a.ID, a.EventID, a.FullName, a.Email)
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("attendee %s in event %s: %w", a.Email, a.EventID, errs.ErrAlreadyExists)
	case isForeignKeyViolation(err):
		return fmt.Errorf("event %s: %w", a.EventID, errs.ErrNotFound)
	}
	return err
}

// GetAttendee selects an attendee profile with its event's organisation.
func (r *EventRepo) GetAttendee(ctx context.Context, id string) (*model.AttendeeProfile, error) {
	const q = `
SELECT a.id, a.event_id, e.organisation_id, a.full_name, a.email
FROM attendee_profiles a JOIN events e ON e.id = a.event_id
WHERE a.id=$1`
	var a model.AttendeeProfile
	if err := r.db.Pool.QueryRow(ctx, q, id).Scan(&a.ID, &a.EventID, &a.OrganisationID, &a.FullName, &a.Email); err != nil {
		return nil, notFound(err, "attendee "+id)
	}
	return &a, nil
}
