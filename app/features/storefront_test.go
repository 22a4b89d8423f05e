package features

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	domcart "example.com/farm-retreat/app/internal/domain/cart"
	"example.com/farm-retreat/app/internal/domain/notice"
	domorder "example.com/farm-retreat/app/internal/domain/order"
	cartuc "example.com/farm-retreat/app/internal/usecase/cart"
	"example.com/farm-retreat/app/internal/usecase/checkout"
	"example.com/farm-retreat/app/internal/usecase/overlay"
)

type memoryPersister struct {
	items domcart.Items
}

func (p *memoryPersister) Load(ctx context.Context) (domcart.Items, error) {
	return p.items.Clone(), nil
}

func (p *memoryPersister) Save(ctx context.Context, items domcart.Items) error {
	p.items = items.Clone()
	return nil
}

type stubOrderAPI struct {
	id       int64
	err      error
	payloads []domorder.Payload
}

func (s *stubOrderAPI) PlaceOrder(ctx context.Context, p domorder.Payload) (int64, error) {
	s.payloads = append(s.payloads, p)
	if s.err != nil {
		return 0, s.err
	}
	return s.id, nil
}

type discard struct{}

func (discard) Notify(notice.Notice) {}

type storefrontContext struct {
	cart     *cartuc.Store
	overlays *overlay.Controller
	api      *stubOrderAPI
	changes  []string
	last     overlay.State
	orderID  int64
	err      error
}

func (s *storefrontContext) reset() {
	s.api = &stubOrderAPI{}
	s.changes = nil
	s.last = overlay.State{}
	s.orderID = 0
	s.err = nil
	s.overlays = overlay.NewController(s.observe)
}

func (s *storefrontContext) observe(st overlay.State) {
	if st.CheckoutOpen != s.last.CheckoutOpen {
		s.changes = append(s.changes, "checkout "+openClosed(st.CheckoutOpen))
	}
	if st.ConfirmationOpen != s.last.ConfirmationOpen {
		s.changes = append(s.changes, "confirmation "+openClosed(st.ConfirmationOpen))
	}
	s.last = st
}

func openClosed(open bool) string {
	if open {
		return "opened"
	}
	return "closed"
}

func (s *storefrontContext) anEmptyCart(ctx context.Context) error {
	s.cart = cartuc.Open(ctx, &memoryPersister{}, discard{}, nil)
	return nil
}

func (s *storefrontContext) iAddProduct(ctx context.Context, id int64, name, option string, price, qty int64) error {
	s.cart.AddItem(ctx, domcart.LineItem{ProductID: id, Name: name, Option: option, UnitPrice: price, Quantity: qty})
	return nil
}

func (s *storefrontContext) iDecrease(ctx context.Context, id int64, option string) error {
	s.cart.DecreaseQuantity(ctx, id, option)
	return nil
}

func (s *storefrontContext) iIncrease(ctx context.Context, id int64, option string) error {
	s.cart.IncreaseQuantity(ctx, id, option)
	return nil
}

func (s *storefrontContext) iRemove(ctx context.Context, id int64, option string) error {
	s.cart.RemoveItem(ctx, id, option)
	return nil
}

func (s *storefrontContext) iClearTheCart(ctx context.Context) error {
	s.cart.Clear(ctx)
	return nil
}

func (s *storefrontContext) theCartHasLines(n int) error {
	if got := len(s.cart.Items()); got != n {
		return fmt.Errorf("expected %d line items, got %d", n, got)
	}
	return nil
}

func (s *storefrontContext) lineHasQuantity(id int64, option string, qty int64) error {
	items := s.cart.Items()
	idx := items.Find(domcart.Key{ProductID: id, Option: option})
	if idx < 0 {
		return fmt.Errorf("no line for product %d option %q", id, option)
	}
	if items[idx].Quantity != qty {
		return fmt.Errorf("expected quantity %d, got %d", qty, items[idx].Quantity)
	}
	return nil
}

func (s *storefrontContext) theCartTotalIs(total int64) error {
	if got := s.cart.Total(); got != total {
		return fmt.Errorf("expected total %d, got %d", total, got)
	}
	if got := s.cart.Items().Total(); got != total {
		return fmt.Errorf("item sum %d disagrees with total %d", got, total)
	}
	return nil
}

func (s *storefrontContext) theOrderAPIAnswersWith(id int64) error {
	s.api.id = id
	return nil
}

func (s *storefrontContext) theOrderAPIIsDown() error {
	s.api.err = errors.New("connection refused")
	return nil
}

func (s *storefrontContext) theShopperProceedsToCheckout() error {
	s.overlays.OpenCart()
	s.overlays.ProceedToCheckout()
	s.changes = nil
	return nil
}

func (s *storefrontContext) iSubmitCheckout(ctx context.Context, name, phone, address string) error {
	wf := checkout.NewWorkflow(s.cart, s.overlays, s.api, discard{}, nil)
	s.orderID, s.err = wf.Submit(ctx, domorder.Contact{Name: name, Phone: phone, Address: address})
	return nil
}

func (s *storefrontContext) theOrderIDIs(id int64) error {
	if s.err != nil {
		return fmt.Errorf("expected success, got %v", s.err)
	}
	if s.orderID != id {
		return fmt.Errorf("expected order id %d, got %d", id, s.orderID)
	}
	return nil
}

func (s *storefrontContext) theOrderAPIReceivedWithTotal(n int, total int64) error {
	if err := s.theOrderAPIReceived(n); err != nil {
		return err
	}
	if got := s.api.payloads[n-1].Total; got != total {
		return fmt.Errorf("expected payload total %d, got %d", total, got)
	}
	return nil
}

func (s *storefrontContext) theOrderAPIReceived(n int) error {
	if got := len(s.api.payloads); got != n {
		return fmt.Errorf("expected %d requests, got %d", n, got)
	}
	return nil
}

func (s *storefrontContext) panelIs(panel, state string) error {
	var p overlay.Panel
	switch panel {
	case "checkout":
		p = overlay.PanelCheckout
	case "confirmation":
		p = overlay.PanelConfirmation
	default:
		return fmt.Errorf("unknown panel %q", panel)
	}
	if want := state == "open"; s.overlays.IsOpen(p) != want {
		return fmt.Errorf("expected %s panel %s", panel, state)
	}
	return nil
}

func (s *storefrontContext) theOverlayChangesWere(want string) error {
	if got := strings.Join(s.changes, ", "); got != want {
		return fmt.Errorf("expected overlay changes %q, got %q", want, got)
	}
	return nil
}

func (s *storefrontContext) submissionFailsForMissing(field string) error {
	var verr *checkout.ValidationError
	if !errors.As(s.err, &verr) {
		return fmt.Errorf("expected validation error, got %v", s.err)
	}
	for _, f := range verr.Fields {
		if f == field {
			return nil
		}
	}
	return fmt.Errorf("%q not among missing fields %v", field, verr.Fields)
}

func (s *storefrontContext) submissionFailsWithARequestError() error {
	var rerr *checkout.RequestError
	if !errors.As(s.err, &rerr) {
		return fmt.Errorf("expected request error, got %v", s.err)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	sc := &storefrontContext{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		sc.reset()
		return ctx, nil
	})

	// Given
	ctx.Step(`^an empty cart$`, sc.anEmptyCart)
	ctx.Step(`^the order API answers with order (\d+)$`, sc.theOrderAPIAnswersWith)
	ctx.Step(`^the order API is down$`, sc.theOrderAPIIsDown)
	ctx.Step(`^the shopper proceeds to checkout$`, sc.theShopperProceedsToCheckout)

	// When
	ctx.Step(`^I add product (\d+) "([^"]*)" option "([^"]*)" at (\d+) cents quantity (\d+)$`, sc.iAddProduct)
	ctx.Step(`^I decrease the quantity of product (\d+) "([^"]*)"$`, sc.iDecrease)
	ctx.Step(`^I increase the quantity of product (\d+) "([^"]*)"$`, sc.iIncrease)
	ctx.Step(`^I remove product (\d+) "([^"]*)"$`, sc.iRemove)
	ctx.Step(`^I clear the cart$`, sc.iClearTheCart)
	ctx.Step(`^I submit checkout as "([^"]*)" with phone "([^"]*)" and address "([^"]*)"$`, sc.iSubmitCheckout)

	// Then
	ctx.Step(`^the cart has (\d+) line items?$`, sc.theCartHasLines)
	ctx.Step(`^line (\d+) "([^"]*)" has quantity (\d+)$`, sc.lineHasQuantity)
	ctx.Step(`^the cart total is (\d+) cents$`, sc.theCartTotalIs)
	ctx.Step(`^the order id is (\d+)$`, sc.theOrderIDIs)
	ctx.Step(`^the order API received (\d+) requests? with total (\d+) cents$`, sc.theOrderAPIReceivedWithTotal)
	ctx.Step(`^the order API received (\d+) requests?$`, sc.theOrderAPIReceived)
	ctx.Step(`^the (checkout|confirmation) panel is (open|closed)$`, sc.panelIs)
	ctx.Step(`^the overlay changes were "([^"]*)"$`, sc.theOverlayChangesWere)
	ctx.Step(`^submission fails for missing "([^"]*)"$`, sc.submissionFailsForMissing)
	ctx.Step(`^submission fails with a request error$`, sc.submissionFailsWithARequestError)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"storefront.feature"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
