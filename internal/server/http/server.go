// Package httpserver serves the payment provider callbacks, the sandbox
// payment page, Prometheus metrics and health checks.
package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/and161185/carder/internal/errs"
	"github.com/and161185/carder/internal/model"
	"github.com/and161185/carder/internal/payment"
	"github.com/and161185/carder/internal/service"
	"github.com/and161185/carder/internal/session"
)

// TokenParser returns the session id carried by a bearer token.
type TokenParser interface {
	Parse(token string) (string, error)
}

// Options wire the handler. Sandbox is mounted only when set; Ping may be nil.
type Options struct {
	Checkout *service.CheckoutService
	Sessions *session.Manager
	Tokens   TokenParser
	Metrics  http.Handler
	Sandbox  *payment.Sandbox
	Ping     func(ctx context.Context) error
	Logger   *zap.Logger
}

type handler struct {
	opt Options
	log *zap.Logger
}

// New returns the HTTP router.
func New(opt Options) http.Handler {
	h := &handler{opt: opt, log: opt.Logger}
	if h.log == nil {
		h.log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.accessLog)

	r.Get("/healthz", h.health)
	if opt.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opt.Metrics)
	}
	r.Route("/checkout", func(cr chi.Router) {
		cr.Get("/success", h.success)
		cr.Get("/cancel", h.cancel)
	})
	if opt.Sandbox != nil {
		r.Get("/sandbox/pay/{id}", h.sandboxPay)
	}
	return r
}

func (h *handler) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.log.Info("http",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("dur", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	if h.opt.Ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.opt.Ping(ctx); err != nil {
			h.log.Warn("health check failed", zap.Error(err))
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	_, _ = w.Write([]byte("ok"))
}

// optionalSession loads the caller's session when the request carries a
// valid bearer token. Provider redirects usually carry none.
func (h *handler) optionalSession(r *http.Request) (string, *model.Session) {
	v := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(v) < 7 || !strings.EqualFold(v[:7], "bearer ") || h.opt.Tokens == nil {
		return "", nil
	}
	id, err := h.opt.Tokens.Parse(strings.TrimSpace(v[7:]))
	if err != nil {
		return "", nil
	}
	s, err := h.opt.Sessions.Load(r.Context(), id)
	if err != nil {
		return "", nil
	}
	return id, s
}

type confirmResponse struct {
	PurchaseOrderID string `json:"purchaseOrderId"`
	Status          string `json:"status"`
	Licenses        int    `json:"licensesProvisioned"`
}

func (h *handler) success(w http.ResponseWriter, r *http.Request) {
	csID := r.URL.Query().Get("checkoutSessionId")
	if csID == "" {
		h.writeError(w, errs.Validationf("checkoutSessionId is required"))
		return
	}
	id, s := h.optionalSession(r)
	res, err := h.opt.Checkout.Confirm(r.Context(), s, csID)
	if s != nil {
		if serr := h.opt.Sessions.Save(r.Context(), id, s); serr != nil {
			h.log.Warn("session save failed", zap.Error(serr))
		}
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, confirmResponse{
		PurchaseOrderID: res.Order.ID,
		Status:          string(res.Order.Status),
		Licenses:        len(res.Licenses),
	})
}

func (h *handler) cancel(w http.ResponseWriter, r *http.Request) {
	csID := r.URL.Query().Get("checkoutSessionId")
	if csID == "" {
		h.writeError(w, errs.Validationf("checkoutSessionId is required"))
		return
	}
	po, err := h.opt.Checkout.Cancel(r.Context(), csID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, confirmResponse{PurchaseOrderID: po.ID, Status: string(po.Status)})
}

// sandboxPay marks a sandbox payment as paid and sends the payer to the
// success callback, like a hosted payment page would.
func (h *handler) sandboxPay(w http.ResponseWriter, r *http.Request) {
	ps, err := h.opt.Sandbox.MarkPaid(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	http.Redirect(w, r, ps.SuccessURL, http.StatusSeeOther)
}

var kindStatus = map[errs.Kind]int{
	errs.KindAuthentication: http.StatusUnauthorized,
	errs.KindAuthorisation:  http.StatusForbidden,
	errs.KindValidation:     http.StatusBadRequest,
	errs.KindCart:           http.StatusBadRequest,
	errs.KindConflict:       http.StatusConflict,
	errs.KindLicensing:      http.StatusConflict,
	errs.KindNotFound:       http.StatusNotFound,
	errs.KindRateLimited:    http.StatusTooManyRequests,
	errs.KindPipeline:       http.StatusInternalServerError,
}

type errorBody struct {
	Kind    string            `json:"kind"`
	Code    string            `json:"code,omitempty"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func (h *handler) writeError(w http.ResponseWriter, err error) {
	kind := errs.KindOf(err)
	code, ok := kindStatus[kind]
	if !ok {
		h.log.Error("unhandled error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorBody{Kind: string(errs.KindInternal), Message: "internal error"})
		return
	}
	body := errorBody{Kind: string(kind), Message: err.Error()}
	var de *errs.Error
	if errors.As(err, &de) {
		body.Code, body.Message, body.Details = de.Code, de.Message, de.Details
	}
	writeJSON(w, code, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
