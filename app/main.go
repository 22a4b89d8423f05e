package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"

	domcontact "example.com/farm-retreat/app/internal/domain/contact"
	domorder "example.com/farm-retreat/app/internal/domain/order"
	domproduct "example.com/farm-retreat/app/internal/domain/product"
	domuser "example.com/farm-retreat/app/internal/domain/user"
	"example.com/farm-retreat/app/internal/infra/persistence/memory"
	"example.com/farm-retreat/app/internal/infra/persistence/sqlstore"
	"example.com/farm-retreat/app/internal/infra/security"
	httpapi "example.com/farm-retreat/app/internal/interface/http"
	authuc "example.com/farm-retreat/app/internal/usecase/auth"
	categoryuc "example.com/farm-retreat/app/internal/usecase/category"
	contactuc "example.com/farm-retreat/app/internal/usecase/contact"
	orderuc "example.com/farm-retreat/app/internal/usecase/order"
	productuc "example.com/farm-retreat/app/internal/usecase/product"
	useruc "example.com/farm-retreat/app/internal/usecase/user"
	"example.com/farm-retreat/pkg/config"
	"example.com/farm-retreat/pkg/logger"
	"example.com/farm-retreat/pkg/shutdown"
)

type repositories struct {
	products domproduct.Repository
	orders   domorder.Repository
	contacts domcontact.Repository
	users    domuser.Repository
	store    httpapi.Pinger
	close    func() error
}

func main() {
	cfg := config.Load()

	log, err := logger.New(logger.Options{Service: "farm-retreat", Env: cfg.AppEnv, Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, log *zap.Logger) error {
	ctx, stop := shutdown.WithSignals(context.Background())
	defer stop()

	repos, err := openRepositories(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = repos.close() }()

	productSvc := productuc.NewService(repos.products)
	if cfg.SeedCatalog {
		n, err := productSvc.SeedIfEmpty(ctx, domproduct.SampleCatalog())
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		if n > 0 {
			log.Info("catalog seeded", zap.Int("products", n))
		}
	}

	deps := httpapi.Dependencies{
		CategoryService: categoryuc.NewService(productSvc),
		ProductService:  productSvc,
		OrderService:    orderuc.NewService(repos.orders, log.Named("orders")),
		ContactService:  contactuc.NewService(repos.contacts, log.Named("contact")),
		Store:           repos.store,
		Logger:          log.Named("http"),
	}

	if cfg.AuthEnabled() {
		hasher := security.NewBcryptService(0)
		tokenSvc := security.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
		deps.AuthService = authuc.NewService(repos.users, hasher, tokenSvc)
		deps.TokenService = tokenSvc

		if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
			created, err := useruc.NewService(repos.users, hasher).EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword)
			if err != nil {
				return fmt.Errorf("bootstrap admin: %w", err)
			}
			if created {
				log.Info("admin user created", zap.String("username", cfg.AdminUsername))
			}
		}
	} else {
		log.Warn("JWT_SECRET not set; admin routes are open")
	}

	api := httpapi.NewAPI(deps)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(api.Router(), "farm-retreat"),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", srv.Addr), zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openRepositories(ctx context.Context, cfg config.Config) (*repositories, error) {
	if cfg.StoreDriver == "memory" {
		store := memory.New()
		return &repositories{
			products: store.Products(),
			orders:   store.Orders(),
			contacts: store.Contacts(),
			users:    store.Users(),
			store:    store,
			close:    func() error { return nil },
		}, nil
	}

	db, err := sqlstore.Open(cfg.StoreDriver, cfg.StoreDSN)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.StoreDriver, err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &repositories{
		products: sqlstore.NewProductRepository(db),
		orders:   sqlstore.NewOrderRepository(db),
		contacts: sqlstore.NewContactRepository(db),
		users:    sqlstore.NewUserRepository(db),
		store:    db,
		close:    db.Close,
	}, nil
}
