// @title                       User Management API
// @version                     1.0
// @description                 Customers and employees of the store, with CPF and email validation.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/techchallenge/user-management/internal/api"
	"github.com/techchallenge/user-management/internal/api/middleware"
	"github.com/techchallenge/user-management/internal/core/ports"
	"github.com/techchallenge/user-management/internal/core/service"
	"github.com/techchallenge/user-management/internal/infrastructure/config"
	mongodb "github.com/techchallenge/user-management/internal/infrastructure/db/mongo"
	"github.com/techchallenge/user-management/internal/infrastructure/db/postgres"
	"github.com/techchallenge/user-management/internal/infrastructure/db/redis"
	"github.com/techchallenge/user-management/internal/infrastructure/http/handlers"
	"github.com/techchallenge/user-management/internal/infrastructure/security"
	"github.com/techchallenge/user-management/pkg/logger"
)

const (
	serviceName    = "user-management"
	connectTimeout = 10 * time.Second
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", serviceName, err)
		os.Exit(1)
	}
}

// store bundles the repositories of the selected driver.
type store struct {
	customers ports.CustomerRepository
	employees ports.EmployeeRepository
	ping      handlers.CheckFunc
	close     func(context.Context)
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	hasher, err := security.NewHMACHasher(cfg.Security.Key)
	if err != nil {
		return err
	}

	st, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer st.close(context.Background())

	checks := map[string]handlers.CheckFunc{cfg.StoreDriver: st.ping}

	var idempotency ports.IdempotencyStore
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Timeout:  connectTimeout,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()

		idempotency = redis.NewIdempotencyStore(rdb, serviceName)
		checks["redis"] = redisPing(rdb)
	} else {
		log.Info().Msg("REDIS_ADDR not set, idempotency keys disabled")
	}

	router := api.NewRouter(api.Dependencies{
		Customers: service.NewCustomerManager(st.customers, log.With().Str("component", "customer_manager").Logger()),
		Employees: service.NewEmployeeManager(st.employees, hasher, log.With().Str("component", "employee_manager").Logger()),
		Auth: service.NewAuthService(st.employees, hasher, service.TokenConfig{
			Secret:   cfg.JWT.Secret,
			Issuer:   cfg.JWT.Issuer,
			Audience: cfg.JWT.Audience,
			TTL:      cfg.JWT.TTL,
		}, log.With().Str("component", "auth").Logger()),
		Idempotency: idempotency,
		Checks:      checks,
		JWT: middleware.AuthConfig{
			Secret:   cfg.JWT.Secret,
			Issuer:   cfg.JWT.Issuer,
			Audience: cfg.JWT.Audience,
		},
		Logger: log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("http server listening")
		if err := router.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return router.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store, error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			Timeout:  connectTimeout,
		})
		if err != nil {
			return nil, err
		}

		employees := mongodb.NewEmployeeRepository(db)
		if err := mongodb.SeedAdmin(ctx, employees, log); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}

		return &store{
			customers: mongodb.NewCustomerRepository(db),
			employees: employees,
			ping:      func(ctx context.Context) error { return client.Ping(ctx, nil) },
			close: func(ctx context.Context) {
				if err := client.Disconnect(ctx); err != nil {
					log.Warn().Err(err).Msg("mongo disconnect")
				}
			},
		}, nil

	default:
		pool, err := postgres.Connect(ctx, postgres.Config{
			URL:      cfg.Postgres.URL,
			MaxConns: cfg.Postgres.MaxConns,
			Timeout:  connectTimeout,
		})
		if err != nil {
			return nil, err
		}

		if cfg.Postgres.RunMigrations {
			if err := postgres.Migrate(ctx, pool, log); err != nil {
				pool.Close()
				return nil, err
			}
		}

		return &store{
			customers: postgres.NewCustomerRepository(pool),
			employees: postgres.NewEmployeeRepository(pool),
			ping:      pool.Ping,
			close:     func(context.Context) { pool.Close() },
		}, nil
	}
}

func redisPing(rdb *goredis.Client) handlers.CheckFunc {
	return func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	}
}
