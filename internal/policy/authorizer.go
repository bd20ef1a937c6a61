package policy

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/metrics"
	"github.com/and161185/carder/internal/model"
)

// Matcher returns the statements naming the user (directly or through a role)
// for res and any of actions.
type Matcher interface {
	MatchPolicies(ctx context.Context, userID string, res model.ResourceRef, actions []string) ([]model.Policy, error)
}

// Check is one resource together with the actions that would satisfy it.
type Check struct {
	Resource model.ResourceRef
	Actions  []string
}

// On builds a Check.
func On(res model.ResourceRef, actions ...string) Check {
	return Check{Resource: res, Actions: actions}
}

// Authorizer evaluates stored policies for a user.
type Authorizer struct {
	store   Matcher
	log     *zap.Logger
	metrics *metrics.Metrics
}

// NewAuthorizer constructs an Authorizer. m may be nil.
func NewAuthorizer(store Matcher, log *zap.Logger, m *metrics.Metrics) *Authorizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Authorizer{store: store, log: log, metrics: m}
}

// Authorize reports whether userID may perform any of actions on res.
func (a *Authorizer) Authorize(ctx context.Context, userID string, res model.ResourceRef, actions ...string) (bool, error) {
	if userID == "" || len(actions) == 0 {
		return false, nil
	}
	matched, err := a.store.MatchPolicies(ctx, userID, res, actions)
	if err != nil {
		return false, err
	}
	ok := Evaluate(matched, actions...)
	a.observe(actions, ok)
	a.log.Debug("authorize",
		zap.String("user_id", userID),
		zap.Stringer("resource", res),
		zap.Strings("actions", actions),
		zap.Int("matched", len(matched)),
		zap.Bool("allowed", ok),
	)
	return ok, nil
}

// Require is Authorize returning an Authorisation error on deny.
func (a *Authorizer) Require(ctx context.Context, userID string, res model.ResourceRef, actions ...string) error {
	ok, err := a.Authorize(ctx, userID, res, actions...)
	if err != nil {
		return err
	}
	if !ok {
		return Denied(userID, res, actions...)
	}
	return nil
}

// RequireAll runs the checks concurrently and passes only when every one does.
func (a *Authorizer) RequireAll(ctx context.Context, userID string, checks ...Check) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range checks {
		g.Go(func() error {
			return a.Require(gctx, userID, c.Resource, c.Actions...)
		})
	}
	return g.Wait()
}

// RequireAny runs the checks concurrently and passes when at least one does.
// With no passing check the first denial is returned.
func (a *Authorizer) RequireAny(ctx context.Context, userID string, checks ...Check) error {
	if len(checks) == 0 {
		return Denied(userID, model.ResourceRef{})
	}
	results := make([]bool, len(checks))
	var g errgroup.Group
	for i, c := range checks {
		g.Go(func() error {
			ok, err := a.Authorize(ctx, userID, c.Resource, c.Actions...)
			results[i] = ok
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, ok := range results {
		if ok {
			return nil
		}
	}
	c := checks[0]
	return Denied(userID, c.Resource, c.Actions...)
}

// Denied builds the Authorisation error for a refused request.
func Denied(userID string, res model.ResourceRef, actions ...string) *errs.Error {
	return errs.New(errs.KindAuthorisation, "UnauthorisedRequest", "not allowed to perform this action").
		With("userId", userID).
		With("resource", res.String()).
		With("action", strings.Join(actions, "|"))
}

// IsDenied reports whether err is an authorization refusal.
func IsDenied(err error) bool {
	return errors.Is(err, errs.ErrUnauthorized)
}

func (a *Authorizer) observe(actions []string, ok bool) {
	if a.metrics == nil {
		return
	}
	decision := "deny"
	if ok {
		decision = "allow"
	}
	a.metrics.AuthzDecisions.WithLabelValues(strings.Join(actions, "|"), decision).Inc()
}
