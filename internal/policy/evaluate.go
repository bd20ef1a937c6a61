// Package policy decides whether a principal may perform an action on a resource.
package policy

import (
	"slices"

	"github.com/and161185/carder/internal/model"
)

// Decide applies deny-overrides and default-deny to the statements matching a
// single action: any deny wins, otherwise any allow grants, otherwise deny.
func Decide(matched []model.Policy) bool {
	allowed := false
	for _, p := range matched {
		switch p.Effect {
		case model.EffectDeny:
			return false
		case model.EffectAllow:
			allowed = true
		}
	}
	return allowed
}

// Evaluate decides an action set. Statements for every action in the set are
// pooled and decided together, so an allow on any action grants the set but a
// deny on any action denies it. Statements whose action is not in actions are
// ignored.
func Evaluate(policies []model.Policy, actions ...string) bool {
	matched := make([]model.Policy, 0, len(policies))
	for _, p := range policies {
		if slices.Contains(actions, p.Action) {
			matched = append(matched, p)
		}
	}
	return Decide(matched)
}
