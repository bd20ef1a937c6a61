package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/and161185/carder/gen/go/carder/v1"
)

type command struct {
	needsSession bool
	run          func(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error)
}

// required reports the first empty flag value.
func required(fs *flag.FlagSet, names ...string) error {
	for _, n := range names {
		if f := fs.Lookup(n); f == nil || f.Value.String() == "" {
			return errors.New("need -" + n)
		}
	}
	return nil
}

func parse(name string, args []string, register func(fs *flag.FlagSet), need ...string) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return required(fs, need...)
}

func readAll(p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(p)
}

var commands = map[string]command{
	// main opens the session before running this
	"open": {run: func(context.Context, pb.BackofficeClient, []string) (any, error) {
		return map[string]string{"session": tokenPath()}, nil
	}},
	"register": {needsSession: true, run: cmdRegister},
	"login":    {needsSession: true, run: cmdLogin},
	"logout": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, _ []string) (any, error) {
		_, err := cli.Logout(ctx, &emptypb.Empty{})
		return nil, err
	}},
	"whoami": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, _ []string) (any, error) {
		return cli.WhoAmI(ctx, &emptypb.Empty{})
	}},
	"activate": {needsSession: true, run: cmdActivate},

	"orgs": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, _ []string) (any, error) {
		return cli.ListOrganisations(ctx, &emptypb.Empty{})
	}},
	"org-create": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
		var req pb.CreateOrganisationRequest
		if err := parse("org-create", args, func(fs *flag.FlagSet) {
			fs.StringVar(&req.Key, "key", "", "organisation key")
			fs.StringVar(&req.Name, "name", "", "organisation name")
		}, "key", "name"); err != nil {
			return nil, err
		}
		return cli.CreateOrganisation(ctx, &req)
	}},
	"event-create": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
		var req pb.CreateEventRequest
		if err := parse("event-create", args, func(fs *flag.FlagSet) {
			fs.StringVar(&req.OrganisationId, "org", "", "organisation id")
			fs.StringVar(&req.Name, "name", "", "event name")
		}, "org", "name"); err != nil {
			return nil, err
		}
		return cli.CreateEvent(ctx, &req)
	}},
	"enrol": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
		var req pb.EnrolAttendeeRequest
		if err := parse("enrol", args, func(fs *flag.FlagSet) {
			fs.StringVar(&req.OrganisationId, "org", "", "organisation id")
			fs.StringVar(&req.EventId, "event", "", "event id")
			fs.StringVar(&req.FullName, "name", "", "attendee full name")
			fs.StringVar(&req.Email, "email", "", "attendee email")
		}, "org", "event", "name", "email"); err != nil {
			return nil, err
		}
		return cli.EnrolAttendee(ctx, &req)
	}},
	"grant": {needsSession: true, run: cmdGrant},
	"revoke": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
		var req pb.RevokePolicyRequest
		if err := parse("revoke", args, func(fs *flag.FlagSet) {
			fs.StringVar(&req.PolicyId, "id", "", "policy id")
		}, "id"); err != nil {
			return nil, err
		}
		_, err := cli.RevokePolicy(ctx, &req)
		return nil, err
	}},
	"policies": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
		var req pb.ListPoliciesRequest
		if err := parse("policies", args, func(fs *flag.FlagSet) {
			fs.StringVar(&req.ResourceKind, "kind", "", "resource kind")
			fs.StringVar(&req.ResourceId, "id", "", "resource id")
		}, "kind", "id"); err != nil {
			return nil, err
		}
		return cli.ListPolicies(ctx, &req)
	}},

	"skus": {run: func(ctx context.Context, cli pb.BackofficeClient, _ []string) (any, error) {
		return cli.ListSkus(ctx, &emptypb.Empty{})
	}},
	"cart": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, _ []string) (any, error) {
		return cli.GetCart(ctx, &emptypb.Empty{})
	}},
	"cart-set": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
		var req pb.SetCartItemRequest
		if err := parse("cart-set", args, func(fs *flag.FlagSet) {
			fs.StringVar(&req.SkuId, "sku", "", "sku id")
			fs.Int64Var(&req.Quantity, "qty", 1, "quantity, 0 removes the line")
		}, "sku"); err != nil {
			return nil, err
		}
		return cli.SetCartItem(ctx, &req)
	}},
	"cart-clear": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, _ []string) (any, error) {
		_, err := cli.ClearCart(ctx, &emptypb.Empty{})
		return nil, err
	}},
	"checkout": {needsSession: true, run: cmdCheckout},
	"buy":      {needsSession: true, run: cmdBuy},
	"orders": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
		var req pb.OrganisationRequest
		if err := parse("orders", args, func(fs *flag.FlagSet) {
			fs.StringVar(&req.OrganisationId, "org", "", "organisation id")
		}, "org"); err != nil {
			return nil, err
		}
		return cli.ListPurchaseOrders(ctx, &req)
	}},
	"order": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
		var req pb.PurchaseOrderRequest
		if err := parse("order", args, func(fs *flag.FlagSet) {
			fs.StringVar(&req.PurchaseOrderId, "id", "", "purchase order id")
		}, "id"); err != nil {
			return nil, err
		}
		return cli.GetPurchaseOrder(ctx, &req)
	}},

	"licenses": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
		var req pb.OrganisationRequest
		if err := parse("licenses", args, func(fs *flag.FlagSet) {
			fs.StringVar(&req.OrganisationId, "org", "", "organisation id")
		}, "org"); err != nil {
			return nil, err
		}
		return cli.ListLicenses(ctx, &req)
	}},
	"assign": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
		var req pb.AssignLicenseRequest
		if err := parse("assign", args, func(fs *flag.FlagSet) {
			fs.StringVar(&req.OrganisationId, "org", "", "organisation id")
			fs.StringVar(&req.AttendeeProfileId, "attendee", "", "attendee profile id")
			fs.StringVar(&req.LicenseId, "license", "", "license id")
		}, "org", "attendee", "license"); err != nil {
			return nil, err
		}
		return cli.AssignLicense(ctx, &req)
	}},
	"unassign": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
		var req pb.UnassignLicenseRequest
		if err := parse("unassign", args, func(fs *flag.FlagSet) {
			fs.StringVar(&req.AttendeeProfileId, "attendee", "", "attendee profile id")
			fs.StringVar(&req.LicenseId, "license", "", "license id")
		}, "attendee", "license"); err != nil {
			return nil, err
		}
		_, err := cli.UnassignLicense(ctx, &req)
		return nil, err
	}},
	"attendee-licenses": {needsSession: true, run: func(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
		var req pb.AttendeeRequest
		if err := parse("attendee-licenses", args, func(fs *flag.FlagSet) {
			fs.StringVar(&req.AttendeeProfileId, "attendee", "", "attendee profile id")
		}, "attendee"); err != nil {
			return nil, err
		}
		return cli.ListAttendeeLicenses(ctx, &req)
	}},
}

func cmdRegister(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
	var req pb.RegisterRequest
	if err := parse("register", args, func(fs *flag.FlagSet) {
		fs.StringVar(&req.FullName, "name", "", "full name")
		fs.StringVar(&req.Email, "email", "", "email")
		fs.StringVar(&req.Password, "p", "", "password")
	}, "name", "email", "p"); err != nil {
		return nil, err
	}
	return cli.Register(ctx, &req)
}

// cmdLogin asks for the authentication options first; their continuity
// token authorises the login attempt.
func cmdLogin(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
	var handle, password, code string
	if err := parse("login", args, func(fs *flag.FlagSet) {
		fs.StringVar(&handle, "email", "", "email")
		fs.StringVar(&password, "p", "", "password")
		fs.StringVar(&code, "code", "", "emailed one-time code")
	}, "email"); err != nil {
		return nil, err
	}
	if (password == "") == (code == "") {
		return nil, errors.New("need exactly one of -p and -code")
	}

	opts, err := cli.AuthenticationOptions(ctx, &pb.AuthenticationOptionsRequest{Handle: handle})
	if err != nil {
		return nil, err
	}
	req := &pb.LoginRequest{Handle: handle, Uic: opts.GetUic(), Method: "password", Password: password}
	if code != "" {
		req.Method, req.Password, req.Code = "email-otp", "", code
	}
	return cli.Login(ctx, req)
}

func cmdActivate(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
	var code string
	if err := parse("activate", args, func(fs *flag.FlagSet) {
		fs.StringVar(&code, "code", "", "activation code; empty sends one")
	}); err != nil {
		return nil, err
	}
	if code == "" {
		_, err := cli.SendActivationCode(ctx, &emptypb.Empty{})
		return map[string]string{"sent": "ok"}, err
	}
	return cli.Activate(ctx, &pb.ActivateRequest{Code: code})
}

func cmdGrant(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
	var file string
	if err := parse("grant", args, func(fs *flag.FlagSet) {
		fs.StringVar(&file, "file", "", "policy JSON ('-'=stdin)")
	}, "file"); err != nil {
		return nil, err
	}
	b, err := readAll(file)
	if err != nil {
		return nil, err
	}
	p := &pb.Policy{}
	if err := protojson.Unmarshal(b, p); err != nil {
		return nil, err
	}
	return cli.GrantPolicy(ctx, &pb.GrantPolicyRequest{Policy: p})
}

// cmdCheckout prices the cart and initiates checkout for exactly that
// total, so a cart changed meanwhile is rejected by the server.
func cmdCheckout(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
	var org string
	if err := parse("checkout", args, func(fs *flag.FlagSet) {
		fs.StringVar(&org, "org", "", "organisation id")
	}, "org"); err != nil {
		return nil, err
	}
	cart, err := cli.GetCart(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, err
	}
	return cli.InitiateCheckout(ctx, &pb.InitiateCheckoutRequest{
		OrganisationId: org,
		Uic:            cart.GetUic(),
		Total:          cart.GetTotal(),
		Currency:       cart.GetCurrency(),
	})
}

func cmdBuy(ctx context.Context, cli pb.BackofficeClient, args []string) (any, error) {
	var (
		org string
		set pb.SetCartItemRequest
	)
	if err := parse("buy", args, func(fs *flag.FlagSet) {
		fs.StringVar(&org, "org", "", "organisation id")
		fs.StringVar(&set.SkuId, "sku", "", "sku id")
		fs.Int64Var(&set.Quantity, "qty", 1, "quantity")
	}, "org", "sku"); err != nil {
		return nil, err
	}
	set.RemoveAllOthers = true
	sr, err := cli.SetCartItem(ctx, &set)
	if err != nil {
		return nil, err
	}
	cart, err := cli.GetCart(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, err
	}
	return cli.InitiateCheckout(ctx, &pb.InitiateCheckoutRequest{
		OrganisationId: org,
		Uic:            sr.GetBuyNowUic(),
		Total:          cart.GetTotal(),
		Currency:       cart.GetCurrency(),
	})
}
