package web

import (
	"errors"
	"strconv"
	"sync"

	"net/http"
	"net/http/pprof"
	rpprof "runtime/pprof"

	"scamurl/features/web/middlewares"
	"scamurl/internal/collector"
	"scamurl/internal/config"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"
	"github.com/unrolled/secure"
	"github.com/ziflex/lecho/v3"
)

// Application errors
var (
	ErrApplicationNotInitialized = errors.New("application not initialized")
	ErrServiceInitFailed         = errors.New("services initialization failed")
	ErrRoutesMapFailed           = errors.New("routes configuration failed")
)

// Global variables (singleton pattern)
var (
	onceApplication sync.Once
	application     *Application
)

// Application holds our Echo instance, Config, Logger, and Services.
type Application struct {
	Echo     *echo.Echo
	config   *config.ServerConfig
	logger   *lecho.Logger
	services *Services
}

// GetApplication retrieves the singleton instance of Application.
func GetApplication() (*Application, error) {
	if application == nil {
		return nil, ErrApplicationNotInitialized
	}
	return application, nil
}

// NewApplication initializes the Echo server, configures services, and sets up routes.
func NewApplication(cfg *config.ServerConfig) (*Application, error) {
	var initErr error
	onceApplication.Do(func() {
		e := echo.New()
		e.Server.Addr = ":" + strconv.Itoa(cfg.Port)
		log.Info().Str("address", e.Server.Addr).Msg("Server address")

		app := &Application{
			Echo:   e,
			config: cfg,
		}

		app.configureLogger()

		svcs, err := NewServices()
		if err != nil {
			log.Err(err).Msg("Service initialization error")
			initErr = ErrServiceInitFailed
			return
		}
		app.services = svcs

		app.configureMiddleware()

		if mapErr := app.ConfigureRoutes(); mapErr != nil {
			log.Err(mapErr).Msg("Routes configuration error")
			initErr = ErrRoutesMapFailed
			return
		}

		app.ConfigurePprof()
		app.configureMetricCollector()

		application = app
	})

	return application, initErr
}

func (app *Application) configureMetricCollector() {
	mc := collector.NewMetricsCollector()
	mc.ExposeWebMetrics(app.Echo)
}

func (app *Application) configureMiddleware() {
	e := app.Echo

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string {
			return xid.New().String()
		},
	}))

	// Echo Prometheus metrics middleware
	e.Use(echoprometheus.NewMiddleware("scamurl"))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:        true,
		BrowserXssFilter: true,
	})
	e.Use(echo.WrapMiddleware(secureMiddleware.Handler))

	e.Use(lecho.Middleware(lecho.Config{Logger: app.logger}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     app.config.AllowOrigins,
		AllowCredentials: true,
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderXRequestedWith,
			echo.HeaderAuthorization,
		},
	}))

	e.Use(middlewares.RequestLogger())
	e.Pre(middleware.RemoveTrailingSlash())

	middlewares.ConfigureValidator(e)
}

func (app *Application) configureLogger() {
	lechoLogger := lecho.From(log.Logger, lecho.WithTimestamp())
	app.Echo.Logger = lechoLogger
	app.logger = lechoLogger
}

func (app *Application) ConfigurePprof() {
	pprofGroup := app.Echo.Group("/debug/pprof")

	pprofGroup.GET("", echo.WrapHandler(http.HandlerFunc(pprof.Index)))
	pprofGroup.GET("/", echo.WrapHandler(http.HandlerFunc(pprof.Index)))

	pprofGroup.GET("/cmdline", echo.WrapHandler(http.HandlerFunc(pprof.Cmdline)))
	pprofGroup.GET("/profile", echo.WrapHandler(http.HandlerFunc(pprof.Profile)))
	pprofGroup.GET("/symbol", echo.WrapHandler(http.HandlerFunc(pprof.Symbol)))
	pprofGroup.GET("/trace", echo.WrapHandler(http.HandlerFunc(pprof.Trace)))

	for _, profile := range rpprof.Profiles() {
		name := profile.Name()
		pprofGroup.GET("/"+name, echo.WrapHandler(pprof.Handler(name)))
	}
}
