package model

import (
	"fmt"
	"strings"
)

// PrincipalKind discriminates users from roles.
type PrincipalKind string

// Principal kinds.
const (
	PrincipalUser PrincipalKind = "user"
	PrincipalRole PrincipalKind = "role"
)

// Principal is a tagged reference to a user or a role.
type Principal struct {
	Kind PrincipalKind
	ID   string
}

// UserPrincipal returns a principal naming the user id.
func UserPrincipal(id string) Principal { return Principal{Kind: PrincipalUser, ID: id} }

// RolePrincipal returns a principal naming the role id.
func RolePrincipal(id string) Principal { return Principal{Kind: PrincipalRole, ID: id} }

// Resource kinds known at the boundary. Storage keeps the discriminator as an
// open string so new kinds need no migration.
const (
	ResourceOrganisation      = "organisation"
	ResourceEvent             = "event"
	ResourceLicense           = "license"
	ResourceLicenseAssignment = "licenseAssignment"
	ResourceDelegation        = "delegation"
)

var knownResourceKinds = map[string]struct{}{
	ResourceOrganisation:      {},
	ResourceEvent:             {},
	ResourceLicense:           {},
	ResourceLicenseAssignment: {},
	ResourceDelegation:        {},
}

// KnownResourceKind reports whether kind is accepted at the boundary.
func KnownResourceKind(kind string) bool {
	_, ok := knownResourceKinds[kind]
	return ok
}

// ResourceRef is a (kind, id) pair.
type ResourceRef struct {
	Kind string
	ID   string
}

// OrganisationRef returns a reference to an organisation.
func OrganisationRef(id string) ResourceRef { return ResourceRef{Kind: ResourceOrganisation, ID: id} }

// EventRef returns a reference to an event.
func EventRef(id string) ResourceRef { return ResourceRef{Kind: ResourceEvent, ID: id} }

func (r ResourceRef) String() string { return r.Kind + ":" + r.ID }

// Actions used by the back office.
const (
	ActionManageOrganisation   = "manage_organisation"
	ActionManageLicenses       = "manage_licenses"
	ActionBelongToOrganisation = "belong_to_organisation"
	ActionManageEvents         = "manage_events"
	ActionManageEvent          = "manage_event"
)

// Effect of a policy.
type Effect string

// Effects.
const (
	EffectAllow Effect = "allow"
	EffectDeny  Effect = "deny"
)

// Policy is an access-control statement.
type Policy struct {
	ID        string
	Principal Principal
	Resource  ResourceRef
	Action    string
	Effect    Effect
}

// Validate checks the statement is well formed: one principal, a known
// resource kind, an action and an allow/deny effect.
func (p Policy) Validate() error {
	switch p.Principal.Kind {
	case PrincipalUser, PrincipalRole:
	default:
		return fmt.Errorf("principal kind %q must be user or role", p.Principal.Kind)
	}
	if strings.TrimSpace(p.Principal.ID) == "" {
		return fmt.Errorf("principal id is required")
	}
	if !KnownResourceKind(p.Resource.Kind) {
		return fmt.Errorf("unknown resource kind %q", p.Resource.Kind)
	}
	if strings.TrimSpace(p.Resource.ID) == "" {
		return fmt.Errorf("resource id is required")
	}
	if strings.TrimSpace(p.Action) == "" {
		return fmt.Errorf("action is required")
	}
	switch p.Effect {
	case EffectAllow, EffectDeny:
	default:
		return fmt.Errorf("effect %q must be allow or deny", p.Effect)
	}
	return nil
}
