package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/techchallenge/user-management/docs"
	"github.com/techchallenge/user-management/internal/api/handler"
	"github.com/techchallenge/user-management/internal/api/middleware"
	"github.com/techchallenge/user-management/internal/core/domain"
	"github.com/techchallenge/user-management/internal/core/ports"
	"github.com/techchallenge/user-management/internal/infrastructure/http/handlers"
)

const metricsSubsystem = "user_management_http"

// Dependencies is everything the router needs to serve requests.
type Dependencies struct {
	Customers ports.CustomerService
	Employees ports.EmployeeService
	Auth      ports.AuthService

	// Idempotency may be nil; Idempotency-Key headers are then ignored.
	Idempotency ports.IdempotencyStore

	// Checks are the readiness probes, keyed by dependency name.
	Checks map[string]handlers.CheckFunc

	JWT    middleware.AuthConfig
	Logger zerolog.Logger

	// Registry receives the HTTP request metrics and backs /metrics.
	// Nil means the prometheus default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	promMW := echoprometheus.MiddlewareConfig{Subsystem: metricsSubsystem}
	promHandler := echoprometheus.HandlerConfig{}
	if deps.Registry != nil {
		promMW.Registerer = deps.Registry
		promHandler.Gatherer = deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(promMW))

	// --- Operational endpoints (no auth required) ---
	e.GET("/healthz", handlers.NewHealthHandler().Liveness)
	e.GET("/healthz/ready", handlers.NewReadinessHandler(deps.Checks).Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(promHandler))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/auth/login", authHandler.Login)

	api := e.Group("/api", middleware.Auth(deps.JWT))
	idempotent := middleware.Idempotency(deps.Idempotency, deps.Logger)

	// --- Customers ---
	customerHandler := handler.NewCustomerHandler(deps.Customers)
	customers := api.Group("/customer")
	customers.POST("", customerHandler.Create, idempotent)
	customers.PUT("", customerHandler.Update)
	customers.GET("/:id", customerHandler.GetByID)
	customers.GET("/cpf/:cpf", customerHandler.GetByCPF)

	// --- Employees ---
	employeeHandler := handler.NewEmployeeHandler(deps.Employees, deps.Logger)
	employees := api.Group("/employee", middleware.RBAC(domain.RoleAdmin, domain.RoleManager))
	employees.POST("", employeeHandler.Create, idempotent)
	employees.GET("", employeeHandler.List)
	employees.GET("/:id", employeeHandler.GetByID)
	employees.PUT("/:id", employeeHandler.Update)
	employees.DELETE("/:id", employeeHandler.Delete, middleware.RBAC(domain.RoleAdmin))

	return e
}

// requestLogger writes one access log line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= 500 {
				evt = log.Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
