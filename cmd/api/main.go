package main

import (
	"context"
	stderrors "errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"pasaratsiri/internal/adapter/api"
	"pasaratsiri/internal/adapter/api/handler"
	apimiddleware "pasaratsiri/internal/adapter/api/middleware"
	"pasaratsiri/internal/adapter/api/router"
	"pasaratsiri/internal/adapter/api/view"
	"pasaratsiri/internal/adapter/repository"
	domainrepo "pasaratsiri/internal/domain/repository"
	"pasaratsiri/internal/infrastructure/firebase"
	"pasaratsiri/internal/infrastructure/memstore"
	"pasaratsiri/internal/infrastructure/ratelimit"
	"pasaratsiri/internal/infrastructure/storage"
	"pasaratsiri/internal/infrastructure/websocket"
	"pasaratsiri/internal/usecase"
	"pasaratsiri/pkg/config"
	"pasaratsiri/pkg/logger"
	"pasaratsiri/web"
)

const devAdminUID = "dev-admin"

type store interface {
	domainrepo.DocumentStore
	Ping(ctx context.Context) error
}

// backend is the document store and identity provider the server runs on.
type backend struct {
	store    store
	identity usecase.IdentityProvider
	linker   usecase.DocumentLinker
	closers  []func() error
}

func (b *backend) Close() {
	for _, c := range b.closers {
		if err := c(); err != nil {
			logger.Err(err, "closing backend")
		}
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Logger().Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Configure(cfg.Environment, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var b *backend
	if cfg.UsesMemoryStore() {
		b, err = memoryBackend(ctx, cfg)
	} else {
		b, err = firestoreBackend(ctx, cfg)
	}
	if err != nil {
		logger.Logger().Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("failed to initialize backend")
	}
	defer b.Close()

	userRepo := repository.NewUserRepository(b.store)
	marketPriceRepo := repository.NewMarketPriceRepository(b.store)

	sessionGuard := usecase.NewSessionGuard(userRepo, b.identity, cfg.SessionTTL)
	landingUseCase := usecase.NewLandingUseCase(userRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(b.store, cfg.Location)
	resourceUseCase := usecase.NewResourceUseCase(b.store)
	marketPriceUseCase := usecase.NewMarketPriceUseCase(marketPriceRepo)
	statsWorker := usecase.NewUserStatsWorker(userRepo)

	presenter := view.NewPresenter(cfg.Location, b.linker)
	renderer, err := api.NewRenderer(web.Assets)
	if err != nil {
		logger.Logger().Fatal().Err(err).Msg("failed to parse templates")
	}
	static, err := fs.Sub(web.Assets, "static")
	if err != nil {
		logger.Logger().Fatal().Err(err).Msg("failed to open static assets")
	}

	sessionCookie := apimiddleware.SessionCookie{
		Name:   cfg.SessionCookieName,
		TTL:    cfg.SessionTTL,
		Secure: !cfg.IsDevelopment(),
	}
	loginLimiter := ratelimit.NewRateLimiter(cfg.LoginRateLimit, time.Minute)

	g, gctx := errgroup.WithContext(ctx)

	wsManager := websocket.NewManager()
	wsManager.Start(gctx)

	handler.Setup(sessionGuard, sessionCookie, landingUseCase, dashboardUseCase, resourceUseCase, marketPriceUseCase, presenter)
	handler.SetupHealthHandler(b.store, b.identity)
	handler.SetupWebSocketHandler(wsManager, b.store, presenter, renderer)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Validator = api.NewValidator()

	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			event := logger.Logger().Info()
			if v.Error != nil {
				event = logger.Logger().Warn().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	}))
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.Secure())
	e.Use(echomw.CSRFWithConfig(echomw.CSRFConfig{
		TokenLookup:    "header:X-CSRF-Token,form:_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSecure:   !cfg.IsDevelopment(),
		CookieSameSite: http.SameSiteLaxMode,
	}))

	router.Setup(
		e,
		static,
		apimiddleware.NewAuthMiddleware(sessionGuard, sessionCookie),
		apimiddleware.NewAdminMiddleware(),
		loginLimiter,
	)

	g.Go(func() error {
		statsWorker.Start(gctx)
		return nil
	})
	g.Go(func() error {
		loginLimiter.Cleanup(gctx, time.Minute)
		return nil
	})
	g.Go(func() error {
		logger.Info("starting server on port %s (%s store)", cfg.ServerPort, cfg.StoreDriver)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down server")
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Err(err, "server stopped")
		os.Exit(1)
	}
}

// memoryBackend runs everything in process with a seeded development admin.
func memoryBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	s := memstore.New()
	if err := memstore.Seed(ctx, s, devAdminUID, cfg.DevAdminEmail, time.Now()); err != nil {
		return nil, err
	}
	logger.Warn("using in-memory store; sign in as %s", cfg.DevAdminEmail)

	return &backend{
		store: s,
		identity: firebase.NewDevIdentityProvider(firebase.DevAccount{
			UID:      devAdminUID,
			Email:    cfg.DevAdminEmail,
			Password: cfg.DevAdminPassword,
		}),
		linker: storage.PassthroughLinker{},
	}, nil
}

func firestoreBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	var opts []option.ClientOption
	switch {
	case cfg.FirebaseServiceAccountJSON != "":
		logger.Info("using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.FirebaseServiceAccountJSON)))
	case cfg.FirebaseServiceAccountPath != "":
		if _, err := os.Stat(cfg.FirebaseServiceAccountPath); err != nil {
			return nil, err
		}
		logger.Info("using Firebase service account from file: %s", cfg.FirebaseServiceAccountPath)
		opts = append(opts, option.WithCredentialsFile(cfg.FirebaseServiceAccountPath))
	default:
		logger.Info("using application default credentials")
	}

	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject, StorageBucket: cfg.StorageBucket}, opts...)
	if err != nil {
		return nil, err
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, err
	}

	client, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		return nil, err
	}

	b := &backend{
		store:    repository.NewFirestoreStore(client, cfg.WriteTimeout),
		identity: firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey),
		linker:   storage.PassthroughLinker{},
		closers:  []func() error{client.Close},
	}

	if cfg.StorageBucket != "" {
		storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
		if err != nil {
			b.Close()
			return nil, err
		}
		b.linker = storageClient
		b.closers = append(b.closers, storageClient.Close)
	}

	return b, nil
}
