package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	domcart "example.com/farm-retreat/app/internal/domain/cart"
	"example.com/farm-retreat/app/internal/domain/notice"
	domorder "example.com/farm-retreat/app/internal/domain/order"
)

var ErrSubmissionInProgress = errors.New("order submission already in progress")

type Cart interface {
	Items() domcart.Items
	Clear(ctx context.Context)
}

type Overlays interface {
	CloseCheckout()
	OpenConfirmation()
}

type OrderAPI interface {
	PlaceOrder(ctx context.Context, payload domorder.Payload) (int64, error)
}

type Notifier interface {
	Notify(n notice.Notice)
}

// ValidationError lists required contact fields that were left blank.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// RequestError wraps a failed order submission. Nothing was changed locally.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("submit order: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

type Workflow struct {
	cart       Cart
	overlays   Overlays
	api        OrderAPI
	notifier   Notifier
	log        *zap.Logger
	submitting atomic.Bool
}

func NewWorkflow(cart Cart, overlays Overlays, api OrderAPI, notifier Notifier, log *zap.Logger) *Workflow {
	if log == nil {
		log = zap.NewNop()
	}
	return &Workflow{
		cart:     cart,
		overlays: overlays,
		api:      api,
		notifier: notifier,
		log:      log,
	}
}

// Submitting reports whether an order request is awaiting its response.
func (w *Workflow) Submitting() bool {
	return w.submitting.Load()
}

// Submit places an order for the current cart contents. On success the
// cart is cleared, checkout is closed and confirmation is opened, in that
// order. On any failure the cart and overlays are left as they were.
func (w *Workflow) Submit(ctx context.Context, contact domorder.Contact) (int64, error) {
	if !w.submitting.CompareAndSwap(false, true) {
		return 0, ErrSubmissionInProgress
	}
	defer w.submitting.Store(false)

	contact = trimContact(contact)
	if err := validateContact(contact); err != nil {
		w.notify(notice.Notice{
			Title:       "Missing Information",
			Description: "Please fill out all required fields.",
			Variant:     notice.VariantDestructive,
		})
		return 0, err
	}

	payload := domorder.NewPayload(contact, w.cart.Items())

	id, err := w.api.PlaceOrder(ctx, payload)
	if err != nil {
		w.log.Error("order submission failed", zap.Error(err), zap.Int("items", len(payload.Items)), zap.Int64("total", payload.Total))
		w.notify(notice.Notice{
			Title:       "Order Submission Failed",
			Description: "There was an error submitting your order. Please try again.",
			Variant:     notice.VariantDestructive,
		})
		return 0, &RequestError{Err: err}
	}

	w.cart.Clear(ctx)
	w.overlays.CloseCheckout()
	w.overlays.OpenConfirmation()

	w.log.Info("order placed", zap.Int64("order_id", id), zap.Int64("total", payload.Total))
	return id, nil
}

func (w *Workflow) notify(n notice.Notice) {
	if w.notifier != nil {
		w.notifier.Notify(n)
	}
}

func trimContact(c domorder.Contact) domorder.Contact {
	return domorder.Contact{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Phone:   strings.TrimSpace(c.Phone),
		Address: strings.TrimSpace(c.Address),
		Notes:   strings.TrimSpace(c.Notes),
	}
}

func validateContact(c domorder.Contact) error {
	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Phone == "" {
		missing = append(missing, "phone")
	}
	if c.Address == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
