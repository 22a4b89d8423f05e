package overlay

import "sync"

type Panel int

const (
	PanelCart Panel = iota
	PanelCheckout
	PanelConfirmation
)

func (p Panel) String() string {
	switch p {
	case PanelCart:
		return "cart"
	case PanelCheckout:
		return "checkout"
	case PanelConfirmation:
		return "confirmation"
	default:
		return "unknown"
	}
}

// Target says where a pointer interaction on an open overlay landed.
type Target int

const (
	TargetBackdrop Target = iota
	TargetPanel
)

type State struct {
	CartOpen         bool
	CheckoutOpen     bool
	ConfirmationOpen bool
}

// Controller holds the three overlay flags. They are independent: the
// controller does not close one panel when another opens.
type Controller struct {
	mu       sync.Mutex
	state    State
	observer func(State)
}

// NewController accepts an optional observer called after each flag change.
func NewController(observer func(State)) *Controller {
	return &Controller{observer: observer}
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) IsOpen(p Panel) bool {
	st := c.State()
	switch p {
	case PanelCart:
		return st.CartOpen
	case PanelCheckout:
		return st.CheckoutOpen
	case PanelConfirmation:
		return st.ConfirmationOpen
	default:
		return false
	}
}

func (c *Controller) Open(p Panel)  { c.set(p, true) }
func (c *Controller) Close(p Panel) { c.set(p, false) }

func (c *Controller) OpenCart()          { c.Open(PanelCart) }
func (c *Controller) CloseCart()         { c.Close(PanelCart) }
func (c *Controller) OpenCheckout()      { c.Open(PanelCheckout) }
func (c *Controller) CloseCheckout()     { c.Close(PanelCheckout) }
func (c *Controller) OpenConfirmation()  { c.Open(PanelConfirmation) }
func (c *Controller) CloseConfirmation() { c.Close(PanelConfirmation) }

// ProceedToCheckout closes the cart drawer before opening checkout so the
// two never show together.
func (c *Controller) ProceedToCheckout() {
	c.CloseCart()
	c.OpenCheckout()
}

// OverlayClick closes p when the click hit the backdrop rather than the
// panel content.
func (c *Controller) OverlayClick(p Panel, target Target) {
	if target != TargetBackdrop {
		return
	}
	c.Close(p)
}

func (c *Controller) set(p Panel, open bool) {
	c.mu.Lock()
	prev := c.state
	switch p {
	case PanelCart:
		c.state.CartOpen = open
	case PanelCheckout:
		c.state.CheckoutOpen = open
	case PanelConfirmation:
		c.state.ConfirmationOpen = open
	}
	next := c.state
	c.mu.Unlock()

	if next != prev && c.observer != nil {
		c.observer(next)
	}
}
