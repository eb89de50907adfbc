package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"golang.org/x/time/rate"

	_ "github.com/myflix/movie-api/docs"
	"github.com/myflix/movie-api/internal/api/handler"
	"github.com/myflix/movie-api/internal/api/middleware"
	"github.com/myflix/movie-api/internal/core/ports"
	"github.com/myflix/movie-api/internal/infrastructure/http/handlers"
)

const (
	defaultLoginRate  = 5
	defaultLoginBurst = 10
)

// Deps holds everything the router wires into handlers.
type Deps struct {
	Movies ports.MovieService
	Users  ports.UserService
	Auth   ports.AuthService

	JWTSecret string
	Logger    zerolog.Logger

	// Readiness lists the dependencies probed by /health/ready.
	Readiness map[string]handlers.Check

	// Registerer and Gatherer default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	// LoginRate is requests per second per client IP on POST /login.
	LoginRate  float64
	LoginBurst int
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	if d.Registerer == nil {
		d.Registerer = prometheus.DefaultRegisterer
	}
	if d.Gatherer == nil {
		d.Gatherer = prometheus.DefaultGatherer
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(requestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:                 "myflix",
		Registerer:                d.Registerer,
		DoNotUseRequestPathFor404: true,
	}))

	// --- Handlers ---
	movieHandler := handler.NewMovieHandler(d.Movies)
	userHandler := handler.NewUserHandler(d.Users)
	authHandler := handler.NewAuthHandler(d.Auth)
	authMiddleware := middleware.Auth(d.JWTSecret, d.Auth)

	// --- Public routes ---
	e.GET("/", handler.Index)
	e.POST("/login", authHandler.Login, loginLimiter(d.LoginRate, d.LoginBurst))
	e.POST("/users", userHandler.Create)

	// --- Protected routes ---
	movies := e.Group("/movies", authMiddleware)
	movies.GET("", movieHandler.List)
	movies.GET("/:Title", movieHandler.Get)
	movies.GET("/genres/:Genre", movieHandler.Genre)
	movies.GET("/directors/:Director", movieHandler.Director)

	users := e.Group("/users", authMiddleware)
	users.GET("", userHandler.List)
	users.GET("/:Username", userHandler.Get)
	users.PUT("/:Username", userHandler.Update)
	users.DELETE("/:Username", userHandler.Delete)
	users.POST("/:Username/Movies/:MovieID", userHandler.AddFavourite)
	users.DELETE("/:Username/Movies/:MovieID", userHandler.RemoveFavourite)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Readiness)

	e.GET("/health", healthHandler.Liveness)            // liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func loginLimiter(perSecond float64, burst int) echo.MiddlewareFunc {
	if perSecond <= 0 {
		perSecond = defaultLoginRate
	}
	if burst <= 0 {
		burst = defaultLoginBurst
	}
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
	return echomiddleware.RateLimiter(store)
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogRoutePath: true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= http.StatusInternalServerError {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Str("route", v.RoutePath).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
