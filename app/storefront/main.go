// Command storefront drives the shopper's cart and checkout from a terminal
// against a running farm-retreat server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	domcart "example.com/farm-retreat/app/internal/domain/cart"
	domorder "example.com/farm-retreat/app/internal/domain/order"
	"example.com/farm-retreat/app/internal/infra/apiclient"
	"example.com/farm-retreat/app/internal/infra/localstore"
	"example.com/farm-retreat/app/internal/infra/notify"
	cartuc "example.com/farm-retreat/app/internal/usecase/cart"
	"example.com/farm-retreat/app/internal/usecase/checkout"
	"example.com/farm-retreat/app/internal/usecase/overlay"
	"example.com/farm-retreat/pkg/config"
	"example.com/farm-retreat/pkg/logger"
	"example.com/farm-retreat/pkg/money"
)

const usage = `usage: storefront <command> [args]

commands:
  products [-category c] [-q search]   list the catalog
  add <id> <option> [qty]              add a product to the cart
  remove|inc|dec <id> <option>         change a cart line
  cart                                 show the cart
  clear                                empty the cart
  checkout -name n -phone p -address a [-notes x] [-email e]
  contact -name n -email e -message m
`

type app struct {
	out      io.Writer
	api      *apiclient.Client
	cart     *cartuc.Store
	overlays *overlay.Controller
	checkout *checkout.Workflow
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.LoadClient()
	log, err := logger.New(logger.Options{Service: "storefront", Env: "dev", Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()
	a, closeFn := newApp(ctx, cfg, log, os.Stdout)
	defer closeFn()

	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp(ctx context.Context, cfg config.ClientConfig, log *zap.Logger, out io.Writer) (*app, func()) {
	var persister domcart.Persister
	closeFn := func() {}
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		persister = localstore.NewRedisStore(client, cfg.CartKey)
		closeFn = func() { _ = client.Close() }
	} else {
		persister = localstore.NewFileStore(cfg.CartFile, cfg.CartKey)
	}

	notifier := notify.Multi{notify.NewWriter(out), notify.NewLogger(log)}
	api := apiclient.New(apiclient.Options{BaseURL: cfg.APIBaseURL})
	overlays := overlay.NewController(func(s overlay.State) {
		log.Debug("overlay state",
			zap.Bool("cart", s.CartOpen),
			zap.Bool("checkout", s.CheckoutOpen),
			zap.Bool("confirmation", s.ConfirmationOpen),
		)
	})
	store := cartuc.Open(ctx, persister, notifier, log.Named("cart"))

	return &app{
		out:      out,
		api:      api,
		cart:     store,
		overlays: overlays,
		checkout: checkout.NewWorkflow(store, overlays, api, notifier, log.Named("checkout")),
	}, closeFn
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "products":
		return a.products(ctx, args)
	case "add":
		return a.add(ctx, args)
	case "remove", "inc", "dec":
		return a.changeLine(ctx, cmd, args)
	case "cart":
		a.printCart()
		return nil
	case "clear":
		a.cart.Clear(ctx)
		a.printCart()
		return nil
	case "checkout":
		return a.submitOrder(ctx, args)
	case "contact":
		return a.contact(ctx, args)
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}
}

func (a *app) products(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	category := fs.String("category", "", "filter by category slug")
	search := fs.String("q", "", "search by name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	products, err := a.api.ListProducts(ctx, apiclient.ProductQuery{Category: *category, Search: *search, OnlyActive: true})
	if err != nil {
		return err
	}
	for _, p := range products {
		fmt.Fprintf(a.out, "%3d  %-24s %10s  [%s]\n", p.ID, p.Name, money.Format(p.Price), strings.Join(p.Options, ", "))
	}
	return nil
}

func (a *app) add(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: add <id> <option> [qty]")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}
	qty := int64(1)
	if len(args) > 2 {
		if qty, err = strconv.ParseInt(args[2], 10, 64); err != nil {
			return fmt.Errorf("invalid quantity %q", args[2])
		}
	}

	p, err := a.api.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	item, err := domcart.FromProduct(p, args[1], qty)
	if err != nil {
		return fmt.Errorf("%s: %w", p.Name, err)
	}
	a.cart.AddItem(ctx, item)
	a.printCart()
	return nil
}

func (a *app) changeLine(ctx context.Context, cmd string, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: %s <id> <option>", cmd)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", args[0])
	}

	switch cmd {
	case "remove":
		a.cart.RemoveItem(ctx, id, args[1])
	case "inc":
		a.cart.IncreaseQuantity(ctx, id, args[1])
	case "dec":
		a.cart.DecreaseQuantity(ctx, id, args[1])
	}
	a.printCart()
	return nil
}

func (a *app) printCart() {
	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return
	}
	for _, it := range items {
		fmt.Fprintf(a.out, "%3d  %-24s %-12s x%-3d %10s\n", it.ProductID, it.Name, it.Option, it.Quantity, money.Format(it.Subtotal()))
	}
	fmt.Fprintf(a.out, "%d item(s), total %s\n", a.cart.Count(), money.Format(a.cart.Total()))
}

func (a *app) submitOrder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("checkout", flag.ContinueOnError)
	var c domorder.Contact
	fs.StringVar(&c.Name, "name", "", "full name")
	fs.StringVar(&c.Phone, "phone", "", "phone number")
	fs.StringVar(&c.Address, "address", "", "delivery address")
	fs.StringVar(&c.Notes, "notes", "", "order notes")
	fs.StringVar(&c.Email, "email", "", "email (optional)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if len(a.cart.Items()) == 0 {
		return errors.New("cart is empty")
	}

	a.overlays.OpenCart()
	a.overlays.ProceedToCheckout()

	id, err := a.checkout.Submit(ctx, c)
	if err != nil {
		return err
	}
	if a.overlays.IsOpen(overlay.PanelConfirmation) {
		fmt.Fprintf(a.out, "Thank you! Order #%d has been placed.\n", id)
	}
	return nil
}

func (a *app) contact(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("contact", flag.ContinueOnError)
	var in apiclient.ContactInput
	fs.StringVar(&in.Name, "name", "", "your name")
	fs.StringVar(&in.Email, "email", "", "your email")
	fs.StringVar(&in.Message, "message", "", "message (10+ characters)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := a.api.SubmitContact(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Message sent (#%d). We'll get back to you soon.\n", id)
	return nil
}
