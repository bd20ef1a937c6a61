package grpcserver

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"github.com/and161185/carder/internal/metrics"
	"github.com/and161185/carder/internal/model"
	"github.com/and161185/carder/internal/session"
)

func info(method string) *grpc.UnaryServerInfo {
	return &grpc.UnaryServerInfo{FullMethod: method}
}

func fromPeer(addr string) context.Context {
	a, _ := net.ResolveTCPAddr("tcp", addr)
	return peer.NewContext(context.Background(), &peer.Peer{Addr: a})
}

func TestLoggingUnary_PassesThrough(t *testing.T) {
	t.Parallel()

	ic := LoggingUnary(zaptest.NewLogger(t))
	want := errors.New("boom")
	resp, err := ic(context.Background(), "req", info("/m"), func(ctx context.Context, req any) (any, error) {
		return "resp", want
	})
	if resp != "resp" || !errors.Is(err, want) {
		t.Fatalf("got %v, %v", resp, err)
	}
}

func TestRecoverUnary(t *testing.T) {
	t.Parallel()

	ic := RecoverUnary(zaptest.NewLogger(t))
	_, err := ic(context.Background(), nil, info("/m"), func(ctx context.Context, req any) (any, error) {
		panic("kaboom")
	})
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", err)
	}
}

func TestMetricsUnary_Observes(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	ic := MetricsUnary(m)
	_, _ = ic(context.Background(), nil, info("/m"), func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.NotFound, "x")
	})
	if n := testutil.CollectAndCount(m.RPCDuration); n != 1 {
		t.Fatalf("want 1 series, got %d", n)
	}
}

func TestRateLimitUnary_PerHost(t *testing.T) {
	t.Parallel()

	ic := RateLimitUnary(0.001, 1)
	ok := func(ctx context.Context, req any) (any, error) { return "ok", nil }

	if _, err := ic(fromPeer("10.0.0.1:1000"), nil, info("/m"), ok); err != nil {
		t.Fatalf("first call: %v", err)
	}
	// a different port is the same host
	_, err := ic(fromPeer("10.0.0.1:2000"), nil, info("/m"), ok)
	if status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("want ResourceExhausted, got %v", err)
	}
	if _, err := ic(fromPeer("10.0.0.2:1000"), nil, info("/m"), ok); err != nil {
		t.Fatalf("other host: %v", err)
	}
}

func TestPeerLimiter_EvictsIdle(t *testing.T) {
	t.Parallel()

	now := time.Now()
	pl := newPeerLimiter(1, 1)
	pl.now = func() time.Time { return now }
	pl.allow("a")
	now = now.Add(11 * time.Minute)
	pl.allow("b")
	if _, ok := pl.buckets["a"]; ok {
		t.Fatalf("idle bucket kept")
	}
	if len(pl.buckets) != 1 {
		t.Fatalf("buckets: %d", len(pl.buckets))
	}
}

func newSessionInterceptor(t *testing.T) (grpc.UnaryServerInterceptor, *session.Manager, *Tokens) {
	t.Helper()
	log := zaptest.NewLogger(t)
	sessions := session.NewManager(session.NewMemoryStore(), session.Options{Logger: log, Metrics: metrics.New()})
	tokens := NewTokens([]byte("k"), time.Hour)
	return SessionUnary(sessions, tokens, log, "/public"), sessions, tokens
}

func TestSessionUnary_PublicSkips(t *testing.T) {
	t.Parallel()

	ic, _, _ := newSessionInterceptor(t)
	called := false
	_, err := ic(context.Background(), nil, info("/public"), func(ctx context.Context, req any) (any, error) {
		called = true
		if _, _, ok := SessionFromCtx(ctx); ok {
			t.Fatalf("public call got a session")
		}
		return nil, nil
	})
	if err != nil || !called {
		t.Fatalf("err=%v called=%v", err, called)
	}
}

func TestSessionUnary_RequiresToken(t *testing.T) {
	t.Parallel()

	ic, _, _ := newSessionInterceptor(t)
	_, err := ic(context.Background(), nil, info("/private"), func(ctx context.Context, req any) (any, error) {
		t.Fatalf("handler must not run")
		return nil, nil
	})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("want Unauthenticated, got %v", err)
	}
}

func TestSessionUnary_SavesAfterFailure(t *testing.T) {
	t.Parallel()

	ic, sessions, tokens := newSessionInterceptor(t)
	ctx := context.Background()
	id, _, err := sessions.Create(ctx)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	tok, _, err := tokens.Issue(id)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", "Bearer "+tok))

	_, err = ic(ctx, nil, info("/private"), func(ctx context.Context, req any) (any, error) {
		gotID, s, ok := SessionFromCtx(ctx)
		if !ok || gotID != id {
			t.Fatalf("session not bound: %q %v", gotID, ok)
		}
		s.Cart.Set("A", 2)
		return nil, status.Error(codes.InvalidArgument, "nope")
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("handler error lost: %v", err)
	}

	s, err := sessions.Load(context.Background(), id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Cart.Lines) != 1 || s.Cart.Lines[0].Quantity != 2 {
		t.Fatalf("mutation not saved: %+v", s.Cart)
	}
}

func TestSessionFromCtx_Empty(t *testing.T) {
	t.Parallel()

	if _, _, ok := SessionFromCtx(context.Background()); ok {
		t.Fatalf("empty context has no session")
	}
	ctx := WithSession(context.Background(), "id", &model.Session{})
	if id, _, ok := SessionFromCtx(ctx); !ok || id != "id" {
		t.Fatalf("got %q %v", id, ok)
	}
}
