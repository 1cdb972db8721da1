package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"go-weather/configs"
	_ "go-weather/docs"
	"go-weather/internal/application/controller"
	"go-weather/internal/application/middleware"
	"go-weather/internal/application/schedule"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/lock"
	"go-weather/internal/domain/gateway/memory"
	"go-weather/internal/domain/gateway/store"
	"go-weather/internal/domain/usecase/favorites"
	"go-weather/internal/domain/usecase/health"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/internal/infra/database/sqlite"
	httpclient "go-weather/pkg/http"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
	"go-weather/pkg/redis"
	"go-weather/pkg/resource"
)

func main() {
	defer log.Sync()
	log.Infow(msg.GetMessage("app.start"), "application", configs.Env.ApplicationName)

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupRequestID(e)
	e.Use(echomw.Recover())
	middleware.SetupRequestLogger(e)
	routes := e.Group(resource.GetString("app.server.context-path"))

	apiKey := loadAPIKey(apiKeyPath(os.Args, resource.GetString("app.weather.api-key-file")))

	// Init Gateways
	favoritesGateway, closeFavorites := newFavoritesGateway()
	defer closeFavorites()

	locker, closeLocker := newLocker()
	defer closeLocker()

	weatherGateway := api.NewWeatherGateway(
		resource.GetString("app.weather.base-url"),
		apiKey,
		resource.GetDuration("app.weather.timeout"),
		api.BreakerSettings{
			MaxRequests: resource.GetUint32("app.weather.breaker.max-requests"),
			Interval:    resource.GetDuration("app.weather.breaker.interval"),
			Timeout:     resource.GetDuration("app.weather.breaker.timeout"),
			Failures:    resource.GetUint32("app.weather.breaker.failures"),
		},
		httpclient.ClientOptions{
			ConnectionTimeout: 5 * time.Second,
			ReadTimeout:       resource.GetDuration("app.weather.timeout"),
		},
	)
	historyGateway := memory.NewHistoryRing(memory.HistoryCapacity)

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(weatherGateway, historyGateway)
	favoritesUseCase := favorites.NewFavoritesUseCase(favoritesGateway, locker)
	healthUseCase := health.NewHealthUseCase(favoritesGateway, locker, weatherGateway)

	// Init Controller
	weatherController := controller.NewWeatherController(routes, weatherUseCase)
	favoritesController := controller.NewFavoritesController(routes, favoritesUseCase)
	healthController := controller.NewHealthController(routes, healthUseCase)
	documentationController := controller.NewDocumentationController(routes, resource.GetString("app.server.documentation-path"))

	// Init Routes
	weatherController.InitWeatherRoutes()
	favoritesController.InitFavoritesRoutes()
	healthController.InitHealthRoutes()
	documentationController.InitDocumentationRoutes()
	routes.GET("/swagger/*", echoSwagger.WrapHandler)
	serveStatic(routes, resource.GetString("app.server.static-dir"))

	// Init Schedule
	favoritesScheduler := schedule.NewFavoritesScheduler(favoritesUseCase, resource.GetString("app.favorites.compaction.cron"), time.Minute)
	if err := favoritesScheduler.InitFavoritesScheduleTasks(); err != nil {
		log.Fatalf("Failed to schedule favorites compaction: %v", err)
	}
	defer favoritesScheduler.Stop()

	// Start Routes
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := resource.GetString("app.server.port")
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Failed to shut down server: %v", err)
	}
	log.Info(msg.GetMessage("app.stopped"))
}

// newFavoritesGateway opens the configured durable favorites backend
func newFavoritesGateway() (store.FavoritesGateway, func()) {
	backend := resource.GetString("app.favorites.backend")
	log.Info(msg.GetMessage("favorites.backend", backend))

	if backend != "sqlite" {
		return store.NewCSVFavoritesGateway(resource.GetString("app.favorites.path")), func() {}
	}

	db, err := sqlite.Open(resource.GetString("app.favorites.sqlite-path"))
	if err != nil {
		log.Fatalf("Failed to open favorites database: %v", err)
	}
	return store.NewSQLiteFavoritesGateway(db), func() { closeDB(db) }
}

// newLocker returns a Redis backed locker when enabled and reachable, a no-op one otherwise
func newLocker() (lock.Locker, func()) {
	if !resource.GetBool("app.redis.enabled") {
		return lock.NoopLocker{}, func() {}
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetString("app.redis.host")).
		WithPort(resource.GetInt("app.redis.port")).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	client, err := redis.NewClient(config)
	if err != nil {
		log.Errorw(msg.GetMessage("redis.failed", config.Addr()), "error", err)
		return lock.NoopLocker{}, func() {}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err = client.Ping(ctx); err != nil {
		log.Errorw(msg.GetMessage("redis.failed", config.Addr()), "error", err)
		_ = client.Close()
		return lock.NoopLocker{}, func() {}
	}
	log.Info(msg.GetMessage("redis.connected", config.Addr()))

	opts := redis.NewLockOptions().
		WithTTL(resource.GetDuration("app.redis.lock.ttl")).
		WithLockNamespace(resource.GetString("app.redis.lock.namespace"))

	return lock.NewRedisLocker(client, resource.GetString("app.redis.lock.key"), opts), func() { _ = client.Close() }
}

// serveStatic serves the public directory at the root when it exists
func serveStatic(routes *echo.Group, dir string) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		log.Warn(msg.GetMessage("config.static-missing", dir))
		return
	}
	routes.Static("/", dir)
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		log.Errorf("Failed to close favorites database: %v", err)
	}
}
