package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBulkPricingOffer_AppliesHalfOpen(t *testing.T) {
	t.Parallel()

	o := BulkPricingOffer{MinQuantity: 5, MaxQuantity: 10}
	require.False(t, o.Applies(4))
	require.True(t, o.Applies(5))
	require.True(t, o.Applies(9))
	require.False(t, o.Applies(10))
}

func TestCart_Set(t *testing.T) {
	t.Parallel()

	var c Cart
	c.Set("A", 2)
	c.Set("B", 1)
	c.Set("A", 5)
	require.Equal(t, []CartLine{{SkuID: "A", Quantity: 5}, {SkuID: "B", Quantity: 1}}, c.Lines)

	c.Set("A", 0)
	require.Equal(t, []CartLine{{SkuID: "B", Quantity: 1}}, c.Lines)

	c.Set("C", 0)
	require.Len(t, c.Lines, 1)
}

func TestSession_SweepExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewSession()
	s.Continuity["fresh"] = UIC{Intent: IntentCheckout, IssuedAt: now.Add(-4 * time.Minute)}
	s.Continuity["stale"] = UIC{Intent: IntentCheckout, IssuedAt: now.Add(-6 * time.Minute)}
	s.Continuity["edge"] = UIC{Intent: IntentLogin, IssuedAt: now.Add(-5 * time.Minute)}

	require.Equal(t, 2, s.SweepExpired(now, 5*time.Minute))
	require.Contains(t, s.Continuity, "fresh")
	require.Len(t, s.Continuity, 1)
}

func TestSession_DropIntent(t *testing.T) {
	t.Parallel()

	s := NewSession()
	s.Continuity["a"] = UIC{Intent: IntentCheckout}
	s.Continuity["b"] = UIC{Intent: IntentBuyNow}
	s.DropIntent(IntentCheckout)
	require.NotContains(t, s.Continuity, "a")
	require.Contains(t, s.Continuity, "b")
}

func TestPolicy_Validate(t *testing.T) {
	t.Parallel()

	ok := Policy{
		Principal: RolePrincipal("r1"),
		Resource:  OrganisationRef("o1"),
		Action:    ActionManageLicenses,
		Effect:    EffectAllow,
	}
	require.NoError(t, ok.Validate())

	bad := ok
	bad.Principal = Principal{Kind: "group", ID: "g"}
	require.Error(t, bad.Validate())

	bad = ok
	bad.Principal.ID = ""
	require.Error(t, bad.Validate())

	bad = ok
	bad.Resource.Kind = "planet"
	require.Error(t, bad.Validate())

	bad = ok
	bad.Effect = "maybe"
	require.Error(t, bad.Validate())

	bad = ok
	bad.Action = " "
	require.Error(t, bad.Validate())
}
