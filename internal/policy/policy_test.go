package policy

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/metrics"
	"github.com/and161185/carder/internal/model"
)

// memStore mirrors the SQL match: same resource, action in the set, principal
// is the user or one of the user's roles.
type memStore struct {
	roles    map[string][]string
	policies []model.Policy
	err      error
}

func (m *memStore) MatchPolicies(_ context.Context, userID string, res model.ResourceRef, actions []string) ([]model.Policy, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Policy
	for _, p := range m.policies {
		if p.Resource != res || !slices.Contains(actions, p.Action) {
			continue
		}
		switch p.Principal.Kind {
		case model.PrincipalUser:
			if p.Principal.ID == userID {
				out = append(out, p)
			}
		case model.PrincipalRole:
			if slices.Contains(m.roles[userID], p.Principal.ID) {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func allow(pr model.Principal, res model.ResourceRef, action string) model.Policy {
	return model.Policy{Principal: pr, Resource: res, Action: action, Effect: model.EffectAllow}
}

func deny(pr model.Principal, res model.ResourceRef, action string) model.Policy {
	return model.Policy{Principal: pr, Resource: res, Action: action, Effect: model.EffectDeny}
}

var (
	o1 = model.OrganisationRef("O1")
	u1 = model.UserPrincipal("U1")
	r1 = model.RolePrincipal("R1")
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		policies []model.Policy
		want     bool
	}{
		{"empty set denies", nil, false},
		{"single allow", []model.Policy{allow(u1, o1, "a")}, true},
		{"single deny", []model.Policy{deny(u1, o1, "a")}, false},
		{"deny first", []model.Policy{deny(u1, o1, "a"), allow(u1, o1, "a")}, false},
		{"deny last", []model.Policy{allow(u1, o1, "a"), allow(r1, o1, "a"), deny(r1, o1, "a")}, false},
		{"unknown effect ignored", []model.Policy{{Effect: "maybe"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Decide(tt.policies))
		})
	}
}

func TestDecide_DenyOverridesAnyNumberOfAllows(t *testing.T) {
	for allows := 0; allows < 8; allows++ {
		for pos := 0; pos <= allows; pos++ {
			set := make([]model.Policy, 0, allows+1)
			for range allows {
				set = append(set, allow(u1, o1, "a"))
			}
			set = slices.Insert(set, pos, deny(r1, o1, "a"))
			require.False(t, Decide(set), "allows=%d deny at %d", allows, pos)
		}
	}
}

func TestEvaluate_ActionSet(t *testing.T) {
	tests := []struct {
		name     string
		policies []model.Policy
		actions  []string
		want     bool
	}{
		{
			name:     "deny on one action denies the set",
			policies: []model.Policy{deny(u1, o1, model.ActionManageEvents), allow(u1, o1, model.ActionManageOrganisation)},
			actions:  []string{model.ActionManageEvents, model.ActionManageOrganisation},
			want:     false,
		},
		{
			name:     "allow on first action grants the set",
			policies: []model.Policy{allow(u1, o1, model.ActionManageEvents)},
			actions:  []string{model.ActionManageEvents, model.ActionManageOrganisation},
			want:     true,
		},
		{
			name:     "allow on second action grants the set",
			policies: []model.Policy{allow(r1, o1, model.ActionManageOrganisation)},
			actions:  []string{model.ActionManageEvents, model.ActionManageOrganisation},
			want:     true,
		},
		{
			name:     "deny outside the set is ignored",
			policies: []model.Policy{deny(u1, o1, model.ActionManageLicenses), allow(u1, o1, model.ActionManageEvents)},
			actions:  []string{model.ActionManageEvents, model.ActionManageOrganisation},
			want:     true,
		},
		{
			name:     "no statement for the set",
			policies: []model.Policy{allow(u1, o1, model.ActionManageOrganisation)},
			actions:  []string{model.ActionManageLicenses},
			want:     false,
		},
		{
			name:     "empty action set",
			policies: []model.Policy{allow(u1, o1, model.ActionManageOrganisation)},
			want:     false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Evaluate(tt.policies, tt.actions...))
		})
	}
}

func TestAuthorize_ActionSetDenyOverridesOtherAction(t *testing.T) {
	s := &memStore{
		roles: map[string][]string{"U1": {"R1"}},
		policies: []model.Policy{
			allow(u1, o1, model.ActionManageOrganisation),
			deny(r1, o1, model.ActionManageEvents),
		},
	}
	a, _ := newAuthorizer(t, s)

	ok, err := a.Authorize(context.Background(), "U1", o1, model.ActionManageEvents, model.ActionManageOrganisation)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = a.Authorize(context.Background(), "U1", o1, model.ActionManageOrganisation)
	require.NoError(t, err)
	require.True(t, ok)
}

func newAuthorizer(t *testing.T, s *memStore) (*Authorizer, *metrics.Metrics) {
	m := metrics.New()
	return NewAuthorizer(s, zaptest.NewLogger(t), m), m
}

func TestAuthorize_DirectAllow(t *testing.T) {
	s := &memStore{policies: []model.Policy{allow(u1, o1, model.ActionManageLicenses)}}
	a, m := newAuthorizer(t, s)

	ok, err := a.Authorize(context.Background(), "U1", o1, model.ActionManageLicenses)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1.0, testutil.ToFloat64(m.AuthzDecisions.WithLabelValues(model.ActionManageLicenses, "allow")))
}

func TestAuthorize_RoleDenyOverridesUserAllow(t *testing.T) {
	s := &memStore{
		roles: map[string][]string{"U1": {"R1"}},
		policies: []model.Policy{
			allow(u1, o1, model.ActionManageLicenses),
			deny(r1, o1, model.ActionManageLicenses),
		},
	}
	a, _ := newAuthorizer(t, s)

	ok, err := a.Authorize(context.Background(), "U1", o1, model.ActionManageLicenses)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAuthorize_DefaultDeny(t *testing.T) {
	a, _ := newAuthorizer(t, &memStore{})
	ok, err := a.Authorize(context.Background(), "U1", o1, model.ActionManageLicenses)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = a.Authorize(context.Background(), "", o1, model.ActionManageLicenses)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAuthorize_RoleInheritance(t *testing.T) {
	tests := []struct {
		name     string
		roles    []string
		policies []model.Policy
		want     bool
	}{
		{"member of allowed role", []string{"R1"}, []model.Policy{allow(r1, o1, "manage_licenses")}, true},
		{"not a member", nil, []model.Policy{allow(r1, o1, "manage_licenses")}, false},
		{"role allow, user deny", []string{"R1"}, []model.Policy{allow(r1, o1, "manage_licenses"), deny(u1, o1, "manage_licenses")}, false},
		{"role allow on other org", []string{"R1"}, []model.Policy{allow(r1, model.OrganisationRef("O2"), "manage_licenses")}, false},
		{"role allow other action", []string{"R1"}, []model.Policy{allow(r1, o1, "manage_organisation")}, false},
		{"deny on non-member role ignored", nil, []model.Policy{allow(u1, o1, "manage_licenses"), deny(r1, o1, "manage_licenses")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newAuthorizer(t, &memStore{roles: map[string][]string{"U1": tt.roles}, policies: tt.policies})
			ok, err := a.Authorize(context.Background(), "U1", o1, "manage_licenses")
			require.NoError(t, err)
			require.Equal(t, tt.want, ok)
		})
	}
}

func TestRequire_ErrorCarriesAuditDetails(t *testing.T) {
	a, _ := newAuthorizer(t, &memStore{})
	err := a.Require(context.Background(), "U1", o1, model.ActionManageEvents, model.ActionManageOrganisation)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
	require.True(t, IsDenied(err))

	var de *errs.Error
	require.ErrorAs(t, err, &de)
	require.Equal(t, errs.KindAuthorisation, de.Kind)
	require.Equal(t, "U1", de.Details["userId"])
	require.Equal(t, "organisation:O1", de.Details["resource"])
	require.Equal(t, "manage_events|manage_organisation", de.Details["action"])
}

func TestRequire_StoreErrorIsNotADenial(t *testing.T) {
	a, _ := newAuthorizer(t, &memStore{err: errors.New("db down")})
	err := a.Require(context.Background(), "U1", o1, model.ActionManageLicenses)
	require.Error(t, err)
	require.False(t, IsDenied(err))
}

func TestRequireAllAndAny(t *testing.T) {
	e1 := model.EventRef("E1")
	s := &memStore{policies: []model.Policy{allow(u1, o1, model.ActionManageLicenses)}}
	a, _ := newAuthorizer(t, s)
	ctx := context.Background()

	both := []Check{On(e1, model.ActionManageEvent), On(o1, model.ActionManageLicenses)}
	require.True(t, IsDenied(a.RequireAll(ctx, "U1", both...)))
	require.NoError(t, a.RequireAny(ctx, "U1", both...))

	s.policies = append(s.policies, allow(u1, e1, model.ActionManageEvent))
	require.NoError(t, a.RequireAll(ctx, "U1", both...))

	s.policies = nil
	require.True(t, IsDenied(a.RequireAny(ctx, "U1", both...)))
	require.True(t, IsDenied(a.RequireAny(ctx, "U1")))
}
