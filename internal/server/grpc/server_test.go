package grpcserver

import (
	"context"
	"net"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/and161185/carder/gen/go/carder/v1"
	"github.com/and161185/carder/internal/limiter"
	"github.com/and161185/carder/internal/metrics"
	"github.com/and161185/carder/internal/payment"
	"github.com/and161185/carder/internal/policy"
	"github.com/and161185/carder/internal/pricing"
	"github.com/and161185/carder/internal/repository/postgres"
	"github.com/and161185/carder/internal/service"
	"github.com/and161185/carder/internal/session"
)

type testEnv struct {
	client pb.BackofficeClient
	mock   pgxmock.PgxPoolIface
	store  *session.MemoryStore
	tokens *Tokens
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	mock.MatchExpectationsInOrder(false)
	t.Cleanup(mock.Close)

	db := &postgres.DB{Pool: mock}
	log := zaptest.NewLogger(t)
	m := metrics.New()
	store := session.NewMemoryStore()
	sessions := session.NewManager(store, session.Options{Logger: log, Metrics: m})
	authz := policy.NewAuthorizer(postgres.NewPolicyRepo(db), log, m)
	catalog := postgres.NewCatalogRepo(db)
	engine := pricing.NewEngine(catalog)
	events := postgres.NewEventRepo(db)
	licenses := postgres.NewLicenseRepo(db)

	svc := Services{
		Auth:          service.NewAuthService(postgres.NewUserRepo(db), sessions, limiter.NewMemory(time.Minute, 5, time.Minute), service.LogNotifier{Log: log}, log),
		Organisations: service.NewOrganisationService(postgres.NewOrganisationRepo(db), authz),
		Events:        service.NewEventService(events, authz),
		Policies:      service.NewPolicyService(postgres.NewPolicyRepo(db), events, licenses, authz),
		Catalog:       service.NewCatalogService(catalog, authz),
		Cart:          service.NewCartService(engine, catalog, sessions),
		Checkout: service.NewCheckoutService(postgres.NewOrderRepo(db), licenses, engine, payment.NewSandbox("http://pay.test"),
			sessions, authz, service.CheckoutConfig{CallbackBaseURL: "http://api.test"}, log, m),
		Licensing: service.NewLicensingService(licenses, events, authz, m),
	}
	tokens := NewTokens([]byte("test-signing-key"), time.Hour)

	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(
		RecoverUnary(log),
		LoggingUnary(log),
		MetricsUnary(m),
		RateLimitUnary(1000, 1000),
		SessionUnary(sessions, tokens, log, PublicMethods...),
	))
	pb.RegisterBackofficeServer(gs, New(svc, sessions, tokens))

	lis := bufconn.Listen(1 << 20)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return &testEnv{client: pb.NewBackofficeClient(conn), mock: mock, store: store, tokens: tokens}
}

// open starts a session and returns a context carrying its token.
func (e *testEnv) open(t *testing.T) context.Context {
	t.Helper()
	res, err := e.client.OpenSession(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	if res.GetToken() == "" || !res.GetExpiresAt().AsTime().After(time.Now()) {
		t.Fatalf("empty token: %v", res)
	}
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+res.GetToken())
}

func wantStatus(t *testing.T, err error, code codes.Code, reason string) {
	t.Helper()
	if status.Code(err) != code {
		t.Fatalf("code: got %v (%v), want %v", status.Code(err), err, code)
	}
	if reason == "" {
		return
	}
	info := ErrorInfo(err)
	if info == nil || info.GetReason() != reason {
		t.Fatalf("reason: got %+v, want %s", info, reason)
	}
}

func TestServer_SessionRequired(t *testing.T) {
	e := newTestEnv(t)

	_, err := e.client.GetCart(context.Background(), &emptypb.Empty{})
	wantStatus(t, err, codes.Unauthenticated, "")

	bad := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer nope")
	_, err = e.client.GetCart(bad, &emptypb.Empty{})
	wantStatus(t, err, codes.Unauthenticated, "")

	ctx := e.open(t)
	_, err = e.client.WhoAmI(ctx, &emptypb.Empty{})
	wantStatus(t, err, codes.Unauthenticated, "NotAuthenticated")

	_, err = e.client.InitiateCheckout(ctx, &pb.InitiateCheckoutRequest{OrganisationId: "O1", Uic: "x", Total: "1", Currency: "GBP"})
	wantStatus(t, err, codes.Unauthenticated, "NotAuthenticated")

	_, err = e.client.InitiateCheckout(ctx, &pb.InitiateCheckoutRequest{OrganisationId: "O1", Total: "one"})
	wantStatus(t, err, codes.InvalidArgument, "InvalidInput")
}

func TestServer_SessionGoneAfterLogout(t *testing.T) {
	e := newTestEnv(t)
	ctx := e.open(t)
	if e.store.Len() != 1 {
		t.Fatalf("sessions: %d", e.store.Len())
	}

	if _, err := e.client.Logout(ctx, &emptypb.Empty{}); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if e.store.Len() != 0 {
		t.Fatalf("session not deleted")
	}
	_, err := e.client.GetCart(ctx, &emptypb.Empty{})
	wantStatus(t, err, codes.Unauthenticated, "SessionNotFound")
}

func TestServer_CartFlow(t *testing.T) {
	e := newTestEnv(t)
	ctx := e.open(t)

	skuRows := func() *pgxmock.Rows {
		return pgxmock.NewRows([]string{"id", "code", "name", "description", "unit_price", "unit_price_currency"}).
			AddRow("A", "VIP", "VIP pass", "", "10.00", "GBP")
	}
	e.mock.ExpectQuery(`FROM skus WHERE id = ANY`).WithArgs([]string{"A"}).WillReturnRows(skuRows())
	e.mock.ExpectQuery(`FROM skus WHERE id = ANY`).WithArgs([]string{"A"}).WillReturnRows(skuRows())
	e.mock.ExpectQuery(`FROM bulk_pricing_offers WHERE sku_id = ANY`).WithArgs([]string{"A"}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "sku_id", "min_quantity", "max_quantity", "discount_rate"}).
			AddRow("OF1", "A", int64(5), int64(10), "0.10"))

	set, err := e.client.SetCartItem(ctx, &pb.SetCartItemRequest{SkuId: "A", Quantity: 5})
	if err != nil {
		t.Fatalf("SetCartItem: %v", err)
	}
	if len(set.GetCartLineItems()) != 1 || set.GetCartLineItems()[0].GetQuantity() != 5 {
		t.Fatalf("cart: %v", set)
	}

	cart, err := e.client.GetCart(ctx, &emptypb.Empty{})
	if err != nil {
		t.Fatalf("GetCart: %v", err)
	}
	if cart.GetTotal() != "45" || cart.GetCurrency() != "GBP" || len(cart.GetLineItems()) != 2 || cart.GetUic() == "" {
		t.Fatalf("priced cart: %v", cart)
	}
	if d := cart.GetLineItems()[1]; d.GetType() != "discount" || d.GetTotalPrice() != "-5" || d.GetAppliedDiscountRate() != "0.1" {
		t.Fatalf("discount line: %v", d)
	}
	if err := e.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("db: %v", err)
	}

	if _, err := e.client.ClearCart(ctx, &emptypb.Empty{}); err != nil {
		t.Fatalf("ClearCart: %v", err)
	}
	cart, err = e.client.GetCart(ctx, &emptypb.Empty{})
	if err != nil || len(cart.GetLineItems()) != 0 || cart.GetTotal() != "0" {
		t.Fatalf("empty cart: %v %v", cart, err)
	}
}

func TestServer_SetCartItem_UnknownSku(t *testing.T) {
	e := newTestEnv(t)
	ctx := e.open(t)

	e.mock.ExpectQuery(`FROM skus WHERE id = ANY`).WithArgs([]string{"nope"}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name", "description", "unit_price", "unit_price_currency"}))
	_, err := e.client.SetCartItem(ctx, &pb.SetCartItemRequest{SkuId: "nope", Quantity: 1})
	wantStatus(t, err, codes.NotFound, "SkuNotFound")
}

func TestServer_ListSkusIsPublic(t *testing.T) {
	e := newTestEnv(t)

	e.mock.ExpectQuery(`FROM skus s LEFT JOIN bulk_pricing_offers o`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "code", "name", "description", "unit_price", "unit_price_currency",
			"offer_id", "min_quantity", "max_quantity", "discount_rate"}).
			AddRow("A", "VIP", "VIP pass", "", "10.00", "GBP", (*string)(nil), (*int64)(nil), (*int64)(nil), (*string)(nil)))

	res, err := e.client.ListSkus(context.Background(), &emptypb.Empty{})
	if err != nil {
		t.Fatalf("ListSkus: %v", err)
	}
	if len(res.GetSkus()) != 1 || res.GetSkus()[0].GetUnitPrice() != "10" || len(res.GetSkus()[0].GetOffers()) != 0 {
		t.Fatalf("skus: %v", res.GetSkus())
	}
}
