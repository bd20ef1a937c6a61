package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/ids"
	"github.com/and161185/carder/internal/metrics"
	"github.com/and161185/carder/internal/model"
	"github.com/and161185/carder/internal/payment"
	"github.com/and161185/carder/internal/policy"
	"github.com/and161185/carder/internal/pricing"
	"github.com/and161185/carder/internal/repository"
	"github.com/and161185/carder/internal/session"
)

// world is an in-memory store behind every fake repository.
type world struct {
	mu sync.Mutex

	users       map[string]*model.User
	orgs        map[string]*model.Organisation
	roleMembers map[string][]string // role id -> user ids
	policies    []model.Policy
	events      map[string]*model.Event
	attendees   map[string]*model.AttendeeProfile
	skus        map[string]model.SKU
	offers      []model.BulkPricingOffer
	orders      map[string]*model.PurchaseOrder
	checkouts   map[string]*model.CheckoutSession
	lines       map[string][]model.LineItem
	licenses    map[string]*model.License
	assignments []model.LicenseAssignment

	fulfillErr error
}

func newWorld() *world {
	return &world{
		users:       map[string]*model.User{},
		orgs:        map[string]*model.Organisation{},
		roleMembers: map[string][]string{},
		events:      map[string]*model.Event{},
		attendees:   map[string]*model.AttendeeProfile{},
		skus:        map[string]model.SKU{},
		orders:      map[string]*model.PurchaseOrder{},
		checkouts:   map[string]*model.CheckoutSession{},
		lines:       map[string][]model.LineItem{},
		licenses:    map[string]*model.License{},
	}
}

func (w *world) allow(p model.Principal, res model.ResourceRef, action string) {
	w.addPolicy(p, res, action, model.EffectAllow)
}

func (w *world) deny(p model.Principal, res model.ResourceRef, action string) {
	w.addPolicy(p, res, action, model.EffectDeny)
}

func (w *world) addPolicy(p model.Principal, res model.ResourceRef, action string, eff model.Effect) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.policies = append(w.policies, model.Policy{ID: ids.New(), Principal: p, Resource: res, Action: action, Effect: eff})
}

func (w *world) addSku(id, code, price, currency string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.skus[id] = model.SKU{ID: id, Code: code, Name: "sku " + id, UnitPrice: decimal.RequireFromString(price), Currency: currency}
}

func (w *world) addOffer(skuID string, lo, hi int64, rate string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.offers = append(w.offers, model.BulkPricingOffer{ID: ids.New(), SkuID: skuID, MinQuantity: lo, MaxQuantity: hi, DiscountRate: decimal.RequireFromString(rate)})
}

func (w *world) addAttendee(orgID, eventID string) *model.AttendeeProfile {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.events[eventID]; !ok {
		w.events[eventID] = &model.Event{ID: eventID, OrganisationID: orgID, Name: "event " + eventID, Status: "planned"}
	}
	a := &model.AttendeeProfile{ID: ids.New(), EventID: eventID, OrganisationID: orgID, FullName: "Grace", Email: ids.New() + "@example.com"}
	w.attendees[a.ID] = a
	return a
}

func (w *world) addLicense(orgID string, status model.LicenseStatus) *model.License {
	w.mu.Lock()
	defer w.mu.Unlock()
	l := &model.License{ID: ids.New(), Type: "VIP", OrganisationID: orgID, SkuID: "S1", Status: status}
	w.licenses[l.ID] = l
	return l
}

func (w *world) license(id string) model.License {
	w.mu.Lock()
	defer w.mu.Unlock()
	return *w.licenses[id]
}

func (w *world) rolesOf(userID string) []string {
	var out []string
	for role, members := range w.roleMembers {
		if slices.Contains(members, userID) {
			out = append(out, role)
		}
	}
	return out
}

// --- users ---

type fakeUsers struct{ *world }

var _ repository.UserRepository = fakeUsers{}

func (f fakeUsers) Create(_ context.Context, u *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, x := range f.users {
		if x.Email == u.Email {
			return errs.ErrAlreadyExists
		}
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f fakeUsers) GetByID(_ context.Context, id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f fakeUsers) SetStatus(_ context.Context, id string, from, to model.AccountStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok || u.AccountStatus != from {
		return errs.ErrNotFound
	}
	u.AccountStatus = to
	return nil
}

// --- policies ---

type fakePolicies struct{ *world }

var _ repository.PolicyRepository = fakePolicies{}

func (f fakePolicies) MatchPolicies(_ context.Context, userID string, res model.ResourceRef, actions []string) ([]model.Policy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	roles := f.rolesOf(userID)
	var out []model.Policy
	for _, p := range f.policies {
		if p.Resource != res || !slices.Contains(actions, p.Action) {
			continue
		}
		if (p.Principal.Kind == model.PrincipalUser && p.Principal.ID == userID) ||
			(p.Principal.Kind == model.PrincipalRole && slices.Contains(roles, p.Principal.ID)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f fakePolicies) Create(_ context.Context, p *model.Policy) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p.Principal.Kind == model.PrincipalUser {
		if _, ok := f.users[p.Principal.ID]; !ok {
			return errs.ErrNotFound
		}
	} else if _, ok := f.roleMembers[p.Principal.ID]; !ok {
		return errs.ErrNotFound
	}
	if p.ID == "" {
		p.ID = ids.New()
	}
	f.policies = append(f.policies, *p)
	return nil
}

func (f fakePolicies) Get(_ context.Context, id string) (*model.Policy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.policies {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f fakePolicies) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.policies)
	f.policies = slices.DeleteFunc(f.policies, func(p model.Policy) bool { return p.ID == id })
	if len(f.policies) == n {
		return errs.ErrNotFound
	}
	return nil
}

func (f fakePolicies) ListForResource(_ context.Context, res model.ResourceRef) ([]model.Policy, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.Policy
	for _, p := range f.policies {
		if p.Resource == res {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- organisations ---

type fakeOrgs struct{ *world }

var _ repository.OrganisationRepository = fakeOrgs{}

func (f fakeOrgs) CreateWithOwner(_ context.Context, org *model.Organisation, ownerUserID string) (*model.Role, error) {
	f.mu.Lock()
	for _, o := range f.orgs {
		if o.Key == org.Key {
			f.mu.Unlock()
			return nil, errs.ErrAlreadyExists
		}
	}
	if org.ID == "" {
		org.ID = ids.New()
	}
	cp := *org
	f.orgs[org.ID] = &cp
	role := &model.Role{ID: ids.New(), OrganisationID: org.ID, Name: "owner"}
	f.roleMembers[role.ID] = []string{ownerUserID}
	f.mu.Unlock()

	res := model.OrganisationRef(org.ID)
	f.allow(model.RolePrincipal(role.ID), res, model.ActionManageOrganisation)
	f.allow(model.RolePrincipal(role.ID), res, model.ActionManageLicenses)
	f.allow(model.UserPrincipal(ownerUserID), res, model.ActionBelongToOrganisation)
	return role, nil
}

func (f fakeOrgs) Get(_ context.Context, id string) (*model.Organisation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orgs[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f fakeOrgs) ListForMember(ctx context.Context, userID string) ([]model.Organisation, error) {
	f.mu.Lock()
	keys := make([]string, 0, len(f.orgs))
	for id := range f.orgs {
		keys = append(keys, id)
	}
	f.mu.Unlock()
	slices.Sort(keys)

	out := []model.Organisation{}
	for _, id := range keys {
		matched, _ := fakePolicies{f.world}.MatchPolicies(ctx, userID, model.OrganisationRef(id), []string{model.ActionBelongToOrganisation})
		if policy.Decide(matched) {
			o, _ := f.Get(ctx, id)
			out = append(out, *o)
		}
	}
	return out, nil
}

// --- events ---

type fakeEvents struct{ *world }

var _ repository.EventRepository = fakeEvents{}

func (f fakeEvents) CreateWithManager(_ context.Context, ev *model.Event, managerUserID string) (*model.Role, error) {
	f.mu.Lock()
	if ev.ID == "" {
		ev.ID = ids.New()
	}
	if ev.Status == "" {
		ev.Status = "planned"
	}
	cp := *ev
	f.events[ev.ID] = &cp
	role := &model.Role{ID: ids.New(), OrganisationID: ev.OrganisationID, Name: ev.ID + "_event-manager"}
	f.roleMembers[role.ID] = []string{managerUserID}
	f.mu.Unlock()

	f.allow(model.RolePrincipal(role.ID), model.EventRef(ev.ID), model.ActionManageEvent)
	return role, nil
}

func (f fakeEvents) GetEvent(_ context.Context, id string) (*model.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ev, ok := f.events[id]
	if !ok {
		return nil, fmt.Errorf("event %s: %w", id, errs.ErrNotFound)
	}
	cp := *ev
	return &cp, nil
}

func (f fakeEvents) CreateAttendee(_ context.Context, a *model.AttendeeProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[a.EventID]; !ok {
		return errs.ErrNotFound
	}
	for _, x := range f.attendees {
		if x.EventID == a.EventID && x.Email == a.Email {
			return errs.ErrAlreadyExists
		}
	}
	if a.ID == "" {
		a.ID = ids.New()
	}
	cp := *a
	f.attendees[a.ID] = &cp
	return nil
}

func (f fakeEvents) GetAttendee(_ context.Context, id string) (*model.AttendeeProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.attendees[id]
	if !ok {
		return nil, fmt.Errorf("attendee %s: %w", id, errs.ErrNotFound)
	}
	cp := *a
	cp.OrganisationID = f.events[a.EventID].OrganisationID
	return &cp, nil
}

// --- catalog ---

type fakeCatalog struct{ *world }

var _ repository.CatalogRepository = fakeCatalog{}

func (f fakeCatalog) SkusByIDs(_ context.Context, want []string) ([]model.SKU, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.SKU
	for _, id := range want {
		if s, ok := f.skus[id]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f fakeCatalog) OffersBySkuIDs(_ context.Context, want []string) ([]model.BulkPricingOffer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.BulkPricingOffer
	for _, o := range f.offers {
		if slices.Contains(want, o.SkuID) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f fakeCatalog) ListWithOffers(ctx context.Context) ([]model.SKUWithOffers, error) {
	f.mu.Lock()
	keys := make([]string, 0, len(f.skus))
	for id := range f.skus {
		keys = append(keys, id)
	}
	f.mu.Unlock()
	slices.Sort(keys)
	out := make([]model.SKUWithOffers, 0, len(keys))
	for _, id := range keys {
		s, err := f.GetWithOffers(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, nil
}

func (f fakeCatalog) GetWithOffers(ctx context.Context, id string) (*model.SKUWithOffers, error) {
	f.mu.Lock()
	s, ok := f.skus[id]
	f.mu.Unlock()
	if !ok {
		return nil, errs.ErrNotFound
	}
	offers, _ := f.OffersBySkuIDs(ctx, []string{id})
	if offers == nil {
		offers = []model.BulkPricingOffer{}
	}
	return &model.SKUWithOffers{SKU: s, Offers: offers}, nil
}

// --- orders ---

type fakeOrders struct{ *world }

var _ repository.OrderRepository = fakeOrders{}

func (f fakeOrders) CreatePending(_ context.Context, orgID string, lines []model.LineItem) (*model.PurchaseOrder, *model.CheckoutSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	po := &model.PurchaseOrder{ID: ids.New(), OrganisationID: orgID, Status: model.OrderPending, CreatedAt: time.Now()}
	cs := &model.CheckoutSession{ID: ids.New(), OrganisationID: orgID, PurchaseOrderID: po.ID, Status: model.OrderPending}
	stored := make([]model.LineItem, len(lines))
	for i, l := range lines {
		l.ID = ids.New()
		l.PurchaseOrderID = po.ID
		stored[i] = l
	}
	f.orders[po.ID] = po
	f.checkouts[cs.ID] = cs
	f.lines[po.ID] = stored
	poCp, csCp := *po, *cs
	return &poCp, &csCp, nil
}

func (f fakeOrders) SetProviderSession(_ context.Context, csID, providerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cs, ok := f.checkouts[csID]
	if !ok {
		return errs.ErrNotFound
	}
	cs.ProviderSessionID = providerID
	return nil
}

func (f fakeOrders) Confirm(ctx context.Context, csID string, check repository.PaymentCheck) (*model.PurchaseOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cs, ok := f.checkouts[csID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	po := f.orders[cs.PurchaseOrderID]
	if cs.Status == model.OrderPaid && po.Status == model.OrderPaid {
		cp := *po
		return &cp, nil
	}
	if cs.Status != model.OrderPending || po.Status != model.OrderPending {
		return nil, errs.New(errs.KindConflict, "OrderNotPending", "order is not pending")
	}
	if err := check(ctx, *cs, *po); err != nil {
		return nil, err
	}
	cs.Status, po.Status = model.OrderPaid, model.OrderPaid
	cp := *po
	return &cp, nil
}

func (f fakeOrders) Cancel(_ context.Context, csID string) (*model.PurchaseOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cs, ok := f.checkouts[csID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	po := f.orders[cs.PurchaseOrderID]
	switch po.Status {
	case model.OrderCanceled:
	case model.OrderPaid:
		return nil, errs.New(errs.KindConflict, "OrderAlreadyPaid", "order is already paid")
	default:
		cs.Status, po.Status = model.OrderCanceled, model.OrderCanceled
	}
	cp := *po
	return &cp, nil
}

func (f fakeOrders) Fulfill(_ context.Context, poID string, build repository.LicenseBuilder) ([]model.License, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fulfillErr != nil {
		return nil, f.fulfillErr
	}
	po, ok := f.orders[poID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	if po.Status != model.OrderPaid {
		return nil, errs.New(errs.KindPipeline, "OrderNotPaid", "order is not paid")
	}
	if po.FulfilledAt != nil {
		return nil, nil
	}
	now := time.Now()
	po.FulfilledAt = &now
	out := build(*po, f.lines[poID])
	for i := range out {
		out[i].ID = ids.New()
		cp := out[i]
		f.licenses[cp.ID] = &cp
	}
	return out, nil
}

func (f fakeOrders) Get(_ context.Context, id string) (*model.PurchaseOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	po, ok := f.orders[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cp := *po
	return &cp, nil
}

func (f fakeOrders) GetCheckoutSession(_ context.Context, id string) (*model.CheckoutSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cs, ok := f.checkouts[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cp := *cs
	return &cp, nil
}

func (f fakeOrders) LineItems(_ context.Context, poID string) ([]model.LineItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.lines[poID]), nil
}

func (f fakeOrders) ListByOrganisation(_ context.Context, orgID string) ([]model.PurchaseOrder, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.PurchaseOrder
	for _, po := range f.orders {
		if po.OrganisationID == orgID {
			out = append(out, *po)
		}
	}
	slices.SortFunc(out, func(a, b model.PurchaseOrder) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

// --- licenses ---

type fakeLicenses struct{ *world }

var _ repository.LicenseRepository = fakeLicenses{}

func (f fakeLicenses) Get(_ context.Context, id string) (*model.License, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.licenses[id]
	if !ok {
		return nil, fmt.Errorf("license %s: %w", id, errs.ErrNotFound)
	}
	cp := *l
	return &cp, nil
}

func (f fakeLicenses) filter(keep func(*model.License) bool) []model.License {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.License
	for _, l := range f.licenses {
		if keep(l) {
			out = append(out, *l)
		}
	}
	slices.SortFunc(out, func(a, b model.License) int { return strings.Compare(a.ID, b.ID) })
	return out
}

func (f fakeLicenses) ListByOrganisation(_ context.Context, orgID string) ([]model.License, error) {
	return f.filter(func(l *model.License) bool { return l.OrganisationID == orgID }), nil
}

func (f fakeLicenses) ListByPurchaseOrder(_ context.Context, poID string) ([]model.License, error) {
	return f.filter(func(l *model.License) bool { return l.PurchaseOrderID == poID }), nil
}

func (f fakeLicenses) ListAssignedTo(_ context.Context, kind, targetID string) ([]model.AssignedLicense, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.AssignedLicense
	for _, a := range f.assignments {
		if a.TargetKind == kind && a.TargetID == targetID {
			out = append(out, model.AssignedLicense{License: *f.licenses[a.LicenseID], Assignment: a})
		}
	}
	return out, nil
}

func (f fakeLicenses) Assign(_ context.Context, orgID string, a *model.LicenseAssignment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.licenses[a.LicenseID]
	if !ok || l.OrganisationID != orgID {
		return errs.ErrNotFound
	}
	if l.Status != model.LicenseAvailable {
		return errs.New(errs.KindLicensing, "LicenseNotAvailable", "license is not available")
	}
	if a.ID == "" {
		a.ID = ids.New()
	}
	f.assignments = append(f.assignments, *a)
	l.Status = model.LicenseAssigned
	return nil
}

func (f fakeLicenses) Unassign(_ context.Context, licenseID, kind, targetID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	l, ok := f.licenses[licenseID]
	if !ok {
		return errs.ErrNotFound
	}
	switch l.Status {
	case model.LicenseAssigned:
	case model.LicenseConsumed:
		return errs.New(errs.KindLicensing, "LicenseAlreadyConsumed", "a consumed license cannot be unassigned")
	default:
		return errs.New(errs.KindLicensing, "LicenseNotAssigned", "license is not assigned")
	}
	n := len(f.assignments)
	f.assignments = slices.DeleteFunc(f.assignments, func(a model.LicenseAssignment) bool {
		return a.LicenseID == licenseID && a.TargetKind == kind && a.TargetID == targetID
	})
	if len(f.assignments) == n {
		return errs.ErrNotFound
	}
	l.Status = model.LicenseAvailable
	return nil
}

// --- notifier ---

type fakeNotifier struct {
	mu    sync.Mutex
	codes map[string]string // email/purpose -> code
}

var _ Notifier = (*fakeNotifier)(nil)

func (n *fakeNotifier) SendCode(_ context.Context, email, purpose, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.codes == nil {
		n.codes = map[string]string{}
	}
	n.codes[email+"/"+purpose] = code
	return nil
}

func (n *fakeNotifier) code(email, purpose string) string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.codes[email+"/"+purpose]
}

// --- wiring ---

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type harness struct {
	w        *world
	clock    *clock
	metrics  *metrics.Metrics
	sessions *session.Manager
	authz    *policy.Authorizer
	pay      *payment.Sandbox
	notify   *fakeNotifier

	cart      *CartService
	checkout  *CheckoutService
	licensing *LicensingService
	orgs      *OrganisationService
	events    *EventService
	policies  *PolicyService
	catalog   *CatalogService
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	w := newWorld()
	c := &clock{t: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	log := zaptest.NewLogger(t)
	m := metrics.New()
	sessions := session.NewManager(session.NewMemoryStore(), session.Options{Now: c.Now, Logger: log, Metrics: m})
	authz := policy.NewAuthorizer(fakePolicies{w}, log, m)
	engine := pricing.NewEngine(fakeCatalog{w})
	pay := payment.NewSandbox("http://pay.test")

	return &harness{
		w:         w,
		clock:     c,
		metrics:   m,
		sessions:  sessions,
		authz:     authz,
		pay:       pay,
		notify:    &fakeNotifier{},
		cart:      NewCartService(engine, fakeCatalog{w}, sessions),
		checkout:  NewCheckoutService(fakeOrders{w}, fakeLicenses{w}, engine, pay, sessions, authz, CheckoutConfig{CallbackBaseURL: "http://api.test/"}, log, m),
		licensing: NewLicensingService(fakeLicenses{w}, fakeEvents{w}, authz, m),
		orgs:      NewOrganisationService(fakeOrgs{w}, authz),
		events:    NewEventService(fakeEvents{w}, authz),
		policies:  NewPolicyService(fakePolicies{w}, fakeEvents{w}, fakeLicenses{w}, authz),
		catalog:   NewCatalogService(fakeCatalog{w}, authz),
	}
}

// activeSession returns a session logged in as a fresh active user.
func (h *harness) activeSession() *model.Session {
	u := &model.User{ID: ids.New(), FullName: "Ada", Email: ids.New() + "@example.com", AccountStatus: model.AccountActive}
	_ = fakeUsers{h.w}.Create(context.Background(), u)
	s := model.NewSession()
	s.User = sessionUser(u)
	return s
}

// licenseManager returns a session allowed manage_licenses on orgID.
func (h *harness) licenseManager(orgID string) *model.Session {
	s := h.activeSession()
	h.w.allow(model.UserPrincipal(s.User.UserID), model.OrganisationRef(orgID), model.ActionManageLicenses)
	return s
}
