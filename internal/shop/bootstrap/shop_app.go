package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/Lexv0lk/shop/internal/pkg/database"
	"github.com/Lexv0lk/shop/internal/pkg/jwt"
	"github.com/Lexv0lk/shop/internal/pkg/logging"
	"github.com/Lexv0lk/shop/internal/shop/application"
	httpwrap "github.com/Lexv0lk/shop/internal/shop/infrastructure/http"
	"github.com/Lexv0lk/shop/internal/shop/infrastructure/postgres"
	"github.com/Lexv0lk/shop/migrations"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	shutdownTimeout = 5 * time.Second
)

type ShopApp struct {
	cfg    ShopConfig
	logger logging.Logger

	mu     sync.Mutex
	closed bool
	server *http.Server
	dbpool *pgxpool.Pool
}

func NewShopApp(cfg ShopConfig, logger logging.Logger) *ShopApp {
	return &ShopApp{
		cfg:    cfg,
		logger: logger,
	}
}

// Run serves the API on lis until ctx is done or the server fails.
func (a *ShopApp) Run(ctx context.Context, lis net.Listener) error {
	logger := a.logger
	if a.isClosed() {
		return nil
	}

	dbURL := a.cfg.DbSettings.GetURL()

	if a.cfg.MigrateOnStart {
		logger.Info("applying migrations")
		err := database.MigrateDatabase(dbURL, migrations.FS, migrations.Dir, database.MigrationsDriver, database.MigrationsDialect)
		if err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	txManager := database.NewDelegateTxManager(dbpool, logger)

	categoriesRepository := postgres.NewCategoriesRepository()
	productsRepository := postgres.NewProductsRepository()
	usersRepository := postgres.NewUsersRepository()
	paymentsRepository := postgres.NewPaymentsRepository()
	transactionsRepository := postgres.NewTransactionsRepository()
	transactionItemsRepository := postgres.NewTransactionItemsRepository()

	catalogCase := application.NewCatalogCase(dbpool, txManager, categoriesRepository, productsRepository, logger)
	userCase := application.NewUserCase(dbpool, usersRepository, logger)
	ledgerCase := application.NewLedgerCase(dbpool, txManager, usersRepository, paymentsRepository, logger)
	purchaseCase := application.NewPurchaseCase(
		dbpool,
		txManager,
		usersRepository,
		productsRepository,
		transactionsRepository,
		transactionItemsRepository,
		logger,
	)

	router := gin.Default()
	httpwrap.RegisterRoutes(router, httpwrap.Handlers{
		Users:        httpwrap.NewUserHandler(userCase, logger),
		Payments:     httpwrap.NewPaymentHandler(ledgerCase, logger),
		Catalog:      httpwrap.NewCatalogHandler(catalogCase, logger),
		Transactions: httpwrap.NewTransactionHandler(purchaseCase, logger),
	},
		httpwrap.NewLanguageMiddleware(),
		httpwrap.NewActorMiddleware(jwt.NewJWTTokenParser(), []byte(a.cfg.JwtSecret)),
	)

	server := &http.Server{
		Handler: router,
	}

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		dbpool.Close()
		logger.Info("shutdown requested before serving")
		return nil
	}
	a.server = server
	a.dbpool = dbpool
	a.mu.Unlock()

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "address", lis.Addr().String())

		if err := server.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("error while serving http: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *ShopApp) isClosed() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.closed
}

// Shutdown stops the server and closes the pool. A Run that has not started
// serving yet releases its own resources and returns.
func (a *ShopApp) Shutdown() {
	a.mu.Lock()
	a.closed = true
	server, dbpool := a.server, a.dbpool
	a.server, a.dbpool = nil, nil
	a.mu.Unlock()

	if server != nil {
		a.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("server shutdown failed", "error", err.Error())
		}

		a.logger.Info("http server stopped")
	}

	if dbpool != nil {
		dbpool.Close()
	}
}
