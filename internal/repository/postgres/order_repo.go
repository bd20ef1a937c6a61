package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/ids"
	"github.com/and161185/carder/internal/model"
	"github.com/and161185/carder/internal/repository"
)

// OrderRepo implements OrderRepository using PostgreSQL.
type OrderRepo struct{ db *DB }

// NewOrderRepo constructs an order repository.
func NewOrderRepo(db *DB) *OrderRepo { return &OrderRepo{db: db} }

// CreatePending inserts a pending purchase order, its line items and a pending
// checkout session in one transaction.
func (r *OrderRepo) CreatePending(
	ctx context.Context, organisationID string, lines []model.LineItem,
) (*model.PurchaseOrder, *model.CheckoutSession, error) {
	po := &model.PurchaseOrder{
		ID:             ids.New(),
		OrganisationID: organisationID,
		Status:         model.OrderPending,
		CreatedAt:      time.Now().UTC(),
	}
	cs := &model.CheckoutSession{
		ID:              ids.New(),
		OrganisationID:  organisationID,
		PurchaseOrderID: po.ID,
		Status:          model.OrderPending,
	}

	const insPO = `INSERT INTO purchase_orders (id, organisation_id, status, created_at) VALUES ($1, $2, $3, $4)`
	const insLine = `
INSERT INTO line_items (id, purchase_order_id, sku_id, sku_name, sku_code, type, quantity, unit_price, total_price, currency, applied_offer_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	const insCS = `INSERT INTO checkout_sessions (id, organisation_id, purchase_order_id, status) VALUES ($1, $2, $3, $4)`

	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insPO, po.ID, po.OrganisationID, string(po.Status), po.CreatedAt); err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("organisation %s: %w", organisationID, errs.ErrNotFound)
			}
			return err
		}
		for i := range lines {
			li := &lines[i]
			li.ID = ids.New()
			li.PurchaseOrderID = po.ID
			if _, err := tx.Exec(ctx, insLine,
				li.ID, po.ID, li.SkuID, li.SkuName, nullIfEmpty(li.SkuCode), string(li.Type), li.Quantity,
				li.UnitPrice.String(), li.TotalPrice.String(), li.Currency, nullIfEmpty(li.AppliedOfferID),
			); err != nil {
				return fmt.Errorf("line item[%d]: %w", i, err)
			}
		}
		_, err := tx.Exec(ctx, insCS, cs.ID, cs.OrganisationID, cs.PurchaseOrderID, string(cs.Status))
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return po, cs, nil
}

// SetProviderSession records the payment provider's session id.
func (r *OrderRepo) SetProviderSession(ctx context.Context, checkoutSessionID, providerSessionID string) error {
	tag, err := r.db.Pool.Exec(ctx, `UPDATE checkout_sessions SET provider_session_id=$2 WHERE id=$1`,
		checkoutSessionID, providerSessionID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("checkout session %s: %w", checkoutSessionID, errs.ErrNotFound)
	}
	return nil
}

const (
	selectCheckoutSession = `
SELECT id, organisation_id, purchase_order_id, status, provider_session_id
FROM checkout_sessions WHERE id=$1`
	selectPurchaseOrder = `
SELECT id, organisation_id, status, fulfilled_at, created_at
FROM purchase_orders`
)

func scanCheckoutSession(row pgx.Row) (*model.CheckoutSession, error) {
	var (
		cs       model.CheckoutSession
		status   string
		provider *string
	)
	if err := row.Scan(&cs.ID, &cs.OrganisationID, &cs.PurchaseOrderID, &status, &provider); err != nil {
		return nil, err
	}
	cs.Status = model.OrderStatus(status)
	cs.ProviderSessionID = deref(provider)
	return &cs, nil
}

func scanPurchaseOrder(row pgx.Row) (*model.PurchaseOrder, error) {
	var (
		po     model.PurchaseOrder
		status string
	)
	if err := row.Scan(&po.ID, &po.OrganisationID, &status, &po.FulfilledAt, &po.CreatedAt); err != nil {
		return nil, err
	}
	po.Status = model.OrderStatus(status)
	return &po, nil
}

// lockPair locks the checkout session and then its purchase order FOR UPDATE.
func lockPair(ctx context.Context, tx pgx.Tx, checkoutSessionID string) (*model.CheckoutSession, *model.PurchaseOrder, error) {
	cs, err := scanCheckoutSession(tx.QueryRow(ctx, selectCheckoutSession+" FOR UPDATE", checkoutSessionID))
	if err != nil {
		return nil, nil, notFound(err, "checkout session "+checkoutSessionID)
	}
	po, err := scanPurchaseOrder(tx.QueryRow(ctx, selectPurchaseOrder+" WHERE id=$1 FOR UPDATE", cs.PurchaseOrderID))
	if err != nil {
		return nil, nil, notFound(err, "purchase order "+cs.PurchaseOrderID)
	}
	return cs, po, nil
}

func setPairStatus(ctx context.Context, tx pgx.Tx, cs *model.CheckoutSession, po *model.PurchaseOrder, to model.OrderStatus) error {
	if _, err := tx.Exec(ctx, `UPDATE checkout_sessions SET status=$2 WHERE id=$1`, cs.ID, string(to)); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE purchase_orders SET status=$2 WHERE id=$1`, po.ID, string(to)); err != nil {
		return err
	}
	cs.Status, po.Status = to, to
	return nil
}

// Confirm marks a pending pair paid after check accepts it. Both rows stay
// locked while check runs so duplicate callbacks serialize.
func (r *OrderRepo) Confirm(ctx context.Context, checkoutSessionID string, check repository.PaymentCheck) (*model.PurchaseOrder, error) {
	var out *model.PurchaseOrder
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		cs, po, err := lockPair(ctx, tx, checkoutSessionID)
		if err != nil {
			return err
		}
		out = po
		switch {
		case cs.Status == model.OrderPaid && po.Status == model.OrderPaid:
			return nil
		case cs.Status != model.OrderPending || po.Status != model.OrderPending:
			return errs.New(errs.KindConflict, "OrderNotPending", "checkout session is not pending").
				With("checkoutSessionId", cs.ID).
				With("status", string(cs.Status))
		}
		if check != nil {
			if err := check(ctx, *cs, *po); err != nil {
				return err
			}
		}
		return setPairStatus(ctx, tx, cs, po, model.OrderPaid)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Cancel marks a pending pair canceled. Canceling twice is a no-op; a paid
// pair cannot be canceled.
func (r *OrderRepo) Cancel(ctx context.Context, checkoutSessionID string) (*model.PurchaseOrder, error) {
	var out *model.PurchaseOrder
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		cs, po, err := lockPair(ctx, tx, checkoutSessionID)
		if err != nil {
			return err
		}
		out = po
		switch {
		case cs.Status == model.OrderCanceled && po.Status == model.OrderCanceled:
			return nil
		case cs.Status == model.OrderPaid || po.Status == model.OrderPaid:
			return errs.New(errs.KindConflict, "OrderAlreadyPaid", "a paid order cannot be canceled").
				With("checkoutSessionId", cs.ID)
		}
		return setPairStatus(ctx, tx, cs, po, model.OrderCanceled)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Fulfill provisions the licenses built from a paid order's line items. The
// order row is locked FOR UPDATE since fulfilled_at is written on it, so a
// concurrent call waits and then sees the order fulfilled. Line items are
// read FOR SHARE. A repeated call returns no licenses.
func (r *OrderRepo) Fulfill(ctx context.Context, purchaseOrderID string, build repository.LicenseBuilder) ([]model.License, error) {
	var out []model.License
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		po, err := scanPurchaseOrder(tx.QueryRow(ctx, selectPurchaseOrder+" WHERE id=$1 FOR UPDATE", purchaseOrderID))
		if err != nil {
			return notFound(err, "purchase order "+purchaseOrderID)
		}
		if po.Status != model.OrderPaid {
			return errs.New(errs.KindPipeline, "OrderNotPaid", "only paid orders can be fulfilled").
				With("purchaseOrderId", po.ID).
				With("status", string(po.Status))
		}
		if po.FulfilledAt != nil {
			return nil
		}

		rows, err := tx.Query(ctx, selectLineItems+" WHERE purchase_order_id=$1 ORDER BY id FOR SHARE", po.ID)
		if err != nil {
			return err
		}
		lines, err := scanLineItems(rows)
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `UPDATE purchase_orders SET fulfilled_at=now() WHERE id=$1 AND fulfilled_at IS NULL`, po.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		lics := build(*po, lines)
		if len(lics) == 0 {
			return nil
		}
		src := make([][]any, 0, len(lics))
		for i := range lics {
			if lics[i].ID == "" {
				lics[i].ID = ids.New()
			}
			l := lics[i]
			src = append(src, []any{l.ID, l.Type, l.OrganisationID, nullIfEmpty(l.PurchaseOrderID), l.SkuID, string(l.Status)})
		}
		if _, err = tx.CopyFrom(ctx, pgx.Identifier{"licenses"},
			[]string{"id", "type", "organisation_id", "purchase_order_id", "sku_id", "status"},
			pgx.CopyFromRows(src),
		); err != nil {
			return err
		}
		out = lics
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get selects a purchase order by ID.
func (r *OrderRepo) Get(ctx context.Context, id string) (*model.PurchaseOrder, error) {
	po, err := scanPurchaseOrder(r.db.Pool.QueryRow(ctx, selectPurchaseOrder+" WHERE id=$1", id))
	if err != nil {
		return nil, notFound(err, "purchase order "+id)
	}
	return po, nil
}

// GetCheckoutSession selects a checkout session by ID.
func (r *OrderRepo) GetCheckoutSession(ctx context.Context, id string) (*model.CheckoutSession, error) {
	cs, err := scanCheckoutSession(r.db.Pool.QueryRow(ctx, selectCheckoutSession, id))
	if err != nil {
		return nil, notFound(err, "checkout session "+id)
	}
	return cs, nil
}

const selectLineItems = `
SELECT id, purchase_order_id, sku_id, sku_name, sku_code, type, quantity, unit_price, total_price, currency, applied_offer_id
FROM line_items`

// LineItems returns the order's line items.
func (r *OrderRepo) LineItems(ctx context.Context, purchaseOrderID string) ([]model.LineItem, error) {
	rows, err := r.db.Pool.Query(ctx, selectLineItems+" WHERE purchase_order_id=$1 ORDER BY id", purchaseOrderID)
	if err != nil {
		return nil, err
	}
	return scanLineItems(rows)
}

func scanLineItems(rows pgx.Rows) ([]model.LineItem, error) {
	defer rows.Close()

	var out []model.LineItem
	for rows.Next() {
		var (
			li                model.LineItem
			code, offer       *string
			typ, unit, totalS string
			err               error
		)
		if err = rows.Scan(&li.ID, &li.PurchaseOrderID, &li.SkuID, &li.SkuName, &code, &typ,
			&li.Quantity, &unit, &totalS, &li.Currency, &offer); err != nil {
			return nil, err
		}
		li.SkuCode = deref(code)
		li.AppliedOfferID = deref(offer)
		li.Type = model.LineType(typ)
		if li.UnitPrice, err = parseMoney(unit, "line item "+li.ID+" unit_price"); err != nil {
			return nil, err
		}
		if li.TotalPrice, err = parseMoney(totalS, "line item "+li.ID+" total_price"); err != nil {
			return nil, err
		}
		out = append(out, li)
	}
	return out, rows.Err()
}

// ListByOrganisation returns the organisation's orders, newest first.
func (r *OrderRepo) ListByOrganisation(ctx context.Context, organisationID string) ([]model.PurchaseOrder, error) {
	rows, err := r.db.Pool.Query(ctx, selectPurchaseOrder+" WHERE organisation_id=$1 ORDER BY created_at DESC, id DESC", organisationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PurchaseOrder
	for rows.Next() {
		po, err := scanPurchaseOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *po)
	}
	return out, rows.Err()
}
