// Package grpcserver exposes the carder.v1.Backoffice gRPC API handlers.
package grpcserver

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/carder/gen/go/carder/v1"
	"github.com/and161185/carder/internal/convert"
	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/model"
	"github.com/and161185/carder/internal/service"
	"github.com/and161185/carder/internal/session"
)

// Services groups the handlers' dependencies.
type Services struct {
	Auth          service.AuthService
	Organisations *service.OrganisationService
	Events        *service.EventService
	Policies      *service.PolicyService
	Catalog       *service.CatalogService
	Cart          *service.CartService
	Checkout      *service.CheckoutService
	Licensing     *service.LicensingService
}

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedBackofficeServer
	svc      Services
	sessions *session.Manager
	tokens   *Tokens
}

var _ pb.BackofficeServer = (*Server)(nil)

// New constructs a gRPC server with injected services.
func New(svc Services, sessions *session.Manager, tokens *Tokens) *Server {
	return &Server{svc: svc, sessions: sessions, tokens: tokens}
}

// PublicMethods need no session token.
var PublicMethods = []string{
	pb.Backoffice_OpenSession_FullMethodName,
	pb.Backoffice_ListSkus_FullMethodName,
}

func current(ctx context.Context) (*model.Session, error) {
	_, s, ok := SessionFromCtx(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "no session")
	}
	return s, nil
}

// --- sessions & identity ---

// OpenSession creates a blank session and returns a token for it.
func (s *Server) OpenSession(ctx context.Context, _ *emptypb.Empty) (*pb.OpenSessionResponse, error) {
	id, _, err := s.sessions.Create(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	tok, exp, err := s.tokens.Issue(id)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.OpenSessionResponse{Token: tok, ExpiresAt: timestamppb.New(exp)}, nil
}

// Register creates a new user account and logs it in.
func (s *Server) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.UserResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.svc.Auth.Register(ctx, sess, req.GetFullName(), req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.UserResponse{User: convert.ToProtoUser(u)}, nil
}

func (s *Server) AuthenticationOptions(ctx context.Context, req *pb.AuthenticationOptionsRequest) (*pb.AuthenticationOptionsResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	opts, err := s.svc.Auth.AuthenticationOptions(ctx, sess, req.GetHandle())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AuthenticationOptionsResponse{Uic: opts.UIC, Methods: opts.Methods}, nil
}

// Login authenticates the session; failures are throttled per handle and host.
func (s *Server) Login(ctx context.Context, req *pb.LoginRequest) (*pb.UserResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.svc.Auth.Login(ctx, sess, service.LoginRequest{
		Handle:   req.GetHandle(),
		UIC:      req.GetUic(),
		Method:   req.GetMethod(),
		Password: req.GetPassword(),
		Code:     req.GetCode(),
		Peer:     remoteAddr(ctx),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.UserResponse{User: convert.ToProtoUser(u)}, nil
}

func (s *Server) Logout(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	s.svc.Auth.Logout(sess)
	return &emptypb.Empty{}, nil
}

func (s *Server) WhoAmI(ctx context.Context, _ *emptypb.Empty) (*pb.UserResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	u, err := service.CurrentUser(sess, false)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.UserResponse{User: convert.ToProtoUser(u)}, nil
}

func (s *Server) SendActivationCode(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.Auth.SendActivationCode(ctx, sess); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) Activate(ctx context.Context, req *pb.ActivateRequest) (*pb.UserResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.svc.Auth.Activate(ctx, sess, req.GetCode())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.UserResponse{User: convert.ToProtoUser(u)}, nil
}

// --- organisations, events, delegation ---

func (s *Server) CreateOrganisation(ctx context.Context, req *pb.CreateOrganisationRequest) (*pb.OrganisationResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	org, err := s.svc.Organisations.Create(ctx, sess, req.GetKey(), req.GetName())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.OrganisationResponse{Organisation: convert.ToProtoOrganisation(*org)}, nil
}

func (s *Server) ListOrganisations(ctx context.Context, _ *emptypb.Empty) (*pb.ListOrganisationsResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	orgs, err := s.svc.Organisations.ListMine(ctx, sess)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListOrganisationsResponse{Organisations: convert.ToProtoOrganisations(orgs)}, nil
}

func (s *Server) GetOrganisation(ctx context.Context, req *pb.OrganisationRequest) (*pb.OrganisationResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	org, err := s.svc.Organisations.Get(ctx, sess, req.GetOrganisationId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.OrganisationResponse{Organisation: convert.ToProtoOrganisation(*org)}, nil
}

func (s *Server) CreateEvent(ctx context.Context, req *pb.CreateEventRequest) (*pb.EventResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	ev, err := s.svc.Events.CreateEvent(ctx, sess, req.GetOrganisationId(), req.GetName())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.EventResponse{Event: convert.ToProtoEvent(*ev)}, nil
}

func (s *Server) EnrolAttendee(ctx context.Context, req *pb.EnrolAttendeeRequest) (*pb.AttendeeResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.svc.Events.EnrolAttendee(ctx, sess, req.GetOrganisationId(), req.GetEventId(), req.GetFullName(), req.GetEmail())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AttendeeResponse{Attendee: convert.ToProtoAttendee(*a)}, nil
}

func (s *Server) GrantPolicy(ctx context.Context, req *pb.GrantPolicyRequest) (*pb.PolicyResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.svc.Policies.Grant(ctx, sess, convert.FromProtoPolicy(req.GetPolicy()))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.PolicyResponse{Policy: convert.ToProtoPolicy(*p)}, nil
}

func (s *Server) RevokePolicy(ctx context.Context, req *pb.RevokePolicyRequest) (*emptypb.Empty, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.Policies.Revoke(ctx, sess, req.GetPolicyId()); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) ListPolicies(ctx context.Context, req *pb.ListPoliciesRequest) (*pb.ListPoliciesResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	ps, err := s.svc.Policies.List(ctx, sess, model.ResourceRef{Kind: req.GetResourceKind(), ID: req.GetResourceId()})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListPoliciesResponse{Policies: convert.ToProtoPolicies(ps)}, nil
}

// --- catalog & cart ---

func (s *Server) ListSkus(ctx context.Context, _ *emptypb.Empty) (*pb.ListSkusResponse, error) {
	skus, err := s.svc.Catalog.ListSkus(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListSkusResponse{Skus: convert.ToProtoSkus(skus)}, nil
}

func (s *Server) GetSku(ctx context.Context, req *pb.GetSkuRequest) (*pb.SkuResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	sku, err := s.svc.Catalog.GetSku(ctx, sess, req.GetOrganisationId(), req.GetSkuId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SkuResponse{Sku: convert.ToProtoSku(*sku)}, nil
}

func (s *Server) GetCart(ctx context.Context, _ *emptypb.Empty) (*pb.CartResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	view, err := s.svc.Cart.GetCart(ctx, sess)
	if err != nil {
		return nil, toStatus(err)
	}
	return convert.ToProtoCart(view), nil
}

func (s *Server) SetCartItem(ctx context.Context, req *pb.SetCartItemRequest) (*pb.SetCartItemResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.svc.Cart.SetItem(ctx, sess, req.GetSkuId(), req.GetQuantity(), req.GetRemoveAllOthers())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SetCartItemResponse{CartLineItems: convert.ToProtoCartLines(res.Lines), BuyNowUic: res.BuyNowUIC}, nil
}

func (s *Server) ClearCart(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	s.svc.Cart.Clear(sess)
	return &emptypb.Empty{}, nil
}

// --- checkout ---

// InitiateCheckout turns the cart into a pending order and returns the
// payment page.
func (s *Server) InitiateCheckout(ctx context.Context, req *pb.InitiateCheckoutRequest) (*pb.InitiateCheckoutResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	total, err := convert.ParseMoney("total", req.GetTotal())
	if err != nil {
		return nil, toStatus(errs.Validationf("%v", err))
	}
	res, err := s.svc.Checkout.Initiate(ctx, sess, service.InitiateRequest{
		OrganisationID: req.GetOrganisationId(),
		UIC:            req.GetUic(),
		Total:          total,
		Currency:       req.GetCurrency(),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.InitiateCheckoutResponse{
		PurchaseOrderId:   res.PurchaseOrderID,
		CheckoutSessionId: res.CheckoutSessionID,
		PaymentUrl:        res.PaymentURL,
	}, nil
}

func (s *Server) GetPurchaseOrder(ctx context.Context, req *pb.PurchaseOrderRequest) (*pb.PurchaseOrderResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.svc.Checkout.GetPurchaseOrder(ctx, sess, req.GetPurchaseOrderId())
	if err != nil {
		return nil, toStatus(err)
	}
	return convert.ToProtoOrderDetails(d), nil
}

func (s *Server) ListPurchaseOrders(ctx context.Context, req *pb.OrganisationRequest) (*pb.ListPurchaseOrdersResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	pos, err := s.svc.Checkout.ListPurchaseOrders(ctx, sess, req.GetOrganisationId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListPurchaseOrdersResponse{Orders: convert.ToProtoPurchaseOrders(pos)}, nil
}

// --- licensing ---

func (s *Server) AssignLicense(ctx context.Context, req *pb.AssignLicenseRequest) (*pb.AssignmentResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	a, err := s.svc.Licensing.Assign(ctx, sess, req.GetOrganisationId(), req.GetAttendeeProfileId(), req.GetLicenseId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.AssignmentResponse{Assignment: convert.ToProtoAssignment(*a)}, nil
}

func (s *Server) UnassignLicense(ctx context.Context, req *pb.UnassignLicenseRequest) (*emptypb.Empty, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.svc.Licensing.Unassign(ctx, sess, req.GetAttendeeProfileId(), req.GetLicenseId()); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) ListLicenses(ctx context.Context, req *pb.OrganisationRequest) (*pb.ListLicensesResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	ls, err := s.svc.Licensing.ListLicenses(ctx, sess, req.GetOrganisationId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListLicensesResponse{Licenses: convert.ToProtoLicenses(ls)}, nil
}

func (s *Server) ListAttendeeLicenses(ctx context.Context, req *pb.AttendeeRequest) (*pb.ListAssignedLicensesResponse, error) {
	sess, err := current(ctx)
	if err != nil {
		return nil, err
	}
	ls, err := s.svc.Licensing.ListAttendeeLicenses(ctx, sess, req.GetAttendeeProfileId())
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ListAssignedLicensesResponse{Licenses: convert.ToProtoAssignedLicenses(ls)}, nil
}
