// Package convert maps domain models to carder.v1 protobuf messages and back.
package convert

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/carder/gen/go/carder/v1"
	"github.com/and161185/carder/internal/model"
	"github.com/and161185/carder/internal/service"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func tsPtr(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return ts(*t)
}

// Timestamp converts a wire timestamp. Nil gives the zero time.
func Timestamp(t *timestamppb.Timestamp) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.AsTime()
}

func money(d decimal.Decimal) string { return d.String() }

// ParseMoney reads a decimal string from the wire. Empty means zero.
func ParseMoney(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: invalid decimal %q", field, s)
	}
	return d, nil
}

func mapSlice[In, Out any](in []In, f func(In) Out) []Out {
	out := make([]Out, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

// --- identity & tenancy ---

// ToProtoUser converts the session user. Nil stays nil.
func ToProtoUser(u *model.SessionUser) *pb.User {
	if u == nil {
		return nil
	}
	return &pb.User{Id: u.UserID, FullName: u.FullName, Email: u.Email, AccountStatus: string(u.AccountStatus)}
}

func ToProtoOrganisation(o model.Organisation) *pb.Organisation {
	return &pb.Organisation{Id: o.ID, Key: o.Key, Name: o.Name}
}

func ToProtoOrganisations(in []model.Organisation) []*pb.Organisation {
	return mapSlice(in, ToProtoOrganisation)
}

func ToProtoEvent(e model.Event) *pb.Event {
	return &pb.Event{Id: e.ID, OrganisationId: e.OrganisationID, Name: e.Name, Status: e.Status}
}

func ToProtoAttendee(a model.AttendeeProfile) *pb.Attendee {
	return &pb.Attendee{Id: a.ID, EventId: a.EventID, OrganisationId: a.OrganisationID, FullName: a.FullName, Email: a.Email}
}

// --- policies ---

func ToProtoPolicy(p model.Policy) *pb.Policy {
	return &pb.Policy{
		Id:            p.ID,
		PrincipalKind: string(p.Principal.Kind),
		PrincipalId:   p.Principal.ID,
		ResourceKind:  p.Resource.Kind,
		ResourceId:    p.Resource.ID,
		Action:        p.Action,
		Effect:        string(p.Effect),
	}
}

func ToProtoPolicies(in []model.Policy) []*pb.Policy { return mapSlice(in, ToProtoPolicy) }

// FromProtoPolicy converts a wire statement; validation happens in the
// service. A nil statement gives the zero policy.
func FromProtoPolicy(p *pb.Policy) model.Policy {
	return model.Policy{
		ID:        p.GetId(),
		Principal: model.Principal{Kind: model.PrincipalKind(p.GetPrincipalKind()), ID: p.GetPrincipalId()},
		Resource:  model.ResourceRef{Kind: p.GetResourceKind(), ID: p.GetResourceId()},
		Action:    p.GetAction(),
		Effect:    model.Effect(p.GetEffect()),
	}
}

// --- catalog & cart ---

func ToProtoSku(s model.SKUWithOffers) *pb.Sku {
	return &pb.Sku{
		Id:          s.ID,
		Code:        s.Code,
		Name:        s.Name,
		Description: s.Description,
		UnitPrice:   money(s.UnitPrice),
		Currency:    s.Currency,
		Offers: mapSlice(s.Offers, func(o model.BulkPricingOffer) *pb.Offer {
			return &pb.Offer{Id: o.ID, MinQuantity: o.MinQuantity, MaxQuantity: o.MaxQuantity, DiscountRate: money(o.DiscountRate)}
		}),
	}
}

func ToProtoSkus(in []model.SKUWithOffers) []*pb.Sku { return mapSlice(in, ToProtoSku) }

func ToProtoCartLines(in []model.CartLine) []*pb.CartLine {
	return mapSlice(in, func(l model.CartLine) *pb.CartLine {
		return &pb.CartLine{SkuId: l.SkuID, Quantity: l.Quantity}
	})
}

func ToProtoLineItem(l model.LineItem) *pb.LineItem {
	out := &pb.LineItem{
		Id:             l.ID,
		SkuId:          l.SkuID,
		SkuName:        l.SkuName,
		SkuCode:        l.SkuCode,
		Type:           string(l.Type),
		Quantity:       l.Quantity,
		UnitPrice:      money(l.UnitPrice),
		TotalPrice:     money(l.TotalPrice),
		Currency:       l.Currency,
		AppliedOfferId: l.AppliedOfferID,
	}
	if l.Type == model.LineDiscount && !l.AppliedDiscountRate.IsZero() {
		out.AppliedDiscountRate = money(l.AppliedDiscountRate)
	}
	return out
}

func ToProtoLineItems(in []model.LineItem) []*pb.LineItem { return mapSlice(in, ToProtoLineItem) }

func ToProtoCart(v *service.CartView) *pb.CartResponse {
	return &pb.CartResponse{LineItems: ToProtoLineItems(v.Lines), Total: money(v.Total), Currency: v.Currency, Uic: v.UIC}
}

// --- orders & licenses ---

func ToProtoPurchaseOrder(po model.PurchaseOrder) *pb.PurchaseOrder {
	return &pb.PurchaseOrder{
		Id:             po.ID,
		OrganisationId: po.OrganisationID,
		Status:         string(po.Status),
		CreatedAt:      ts(po.CreatedAt),
		FulfilledAt:    tsPtr(po.FulfilledAt),
	}
}

func ToProtoPurchaseOrders(in []model.PurchaseOrder) []*pb.PurchaseOrder {
	return mapSlice(in, ToProtoPurchaseOrder)
}

func ToProtoOrderDetails(d *model.OrderDetails) *pb.PurchaseOrderResponse {
	return &pb.PurchaseOrderResponse{
		Order:     ToProtoPurchaseOrder(d.Order),
		LineItems: ToProtoLineItems(d.LineItems),
		Licenses:  ToProtoLicenses(d.Licenses),
	}
}

func ToProtoLicense(l model.License) *pb.License {
	return &pb.License{
		Id:              l.ID,
		Type:            l.Type,
		OrganisationId:  l.OrganisationID,
		PurchaseOrderId: l.PurchaseOrderID,
		SkuId:           l.SkuID,
		Status:          string(l.Status),
	}
}

func ToProtoLicenses(in []model.License) []*pb.License { return mapSlice(in, ToProtoLicense) }

func ToProtoAssignment(a model.LicenseAssignment) *pb.Assignment {
	return &pb.Assignment{Id: a.ID, LicenseId: a.LicenseID, TargetKind: a.TargetKind, TargetId: a.TargetID}
}

func ToProtoAssignedLicenses(in []model.AssignedLicense) []*pb.AssignedLicense {
	return mapSlice(in, func(al model.AssignedLicense) *pb.AssignedLicense {
		return &pb.AssignedLicense{License: ToProtoLicense(al.License), Assignment: ToProtoAssignment(al.Assignment)}
	})
}
