package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cloud.google.com/go/pubsub"
	cloudstorage "cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/monastery360/api/internal/di"
	"github.com/monastery360/api/internal/handlers"
	"github.com/monastery360/api/internal/platform/auth"
	"github.com/monastery360/api/internal/platform/config"
	pfirestore "github.com/monastery360/api/internal/platform/firestore"
	"github.com/monastery360/api/internal/platform/httpx"
	"github.com/monastery360/api/internal/platform/idempotency"
	"github.com/monastery360/api/internal/platform/jobs"
	"github.com/monastery360/api/internal/platform/kvstore"
	"github.com/monastery360/api/internal/platform/observability"
	"github.com/monastery360/api/internal/platform/secrets"
	platformstorage "github.com/monastery360/api/internal/platform/storage"
	"github.com/monastery360/api/internal/repositories"
	firestoreRepo "github.com/monastery360/api/internal/repositories/firestore"
	"github.com/monastery360/api/internal/repositories/memory"
	"github.com/monastery360/api/internal/services"
)

func main() {
	ctx := context.Background()

	baseLogger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = baseLogger.Sync()
	}()

	logger := baseLogger.Named("api")
	ctx = observability.WithLogger(ctx, logger)

	envValues, err := config.EnvironmentValues()
	if err != nil {
		logger.Fatal("failed to read environment values", zap.Error(err))
	}

	fetcher, err := newSecretFetcher(ctx, logger, envValues)
	if err != nil {
		logger.Fatal("failed to initialise secret fetcher", zap.Error(err))
	}
	defer func() {
		if err := fetcher.Close(); err != nil {
			logger.Warn("secret fetcher close error", zap.Error(err))
		}
	}()

	cfg, err := config.Load(ctx, config.WithSecretResolver(config.SecretResolverFunc(fetcher.Resolve)))
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	httpx.SetStackExposure(!cfg.IsProduction())

	registry, firestoreProvider, err := buildRegistry(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialise repositories", zap.Error(err))
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := registry.Close(closeCtx); err != nil {
			logger.Warn("repository close error", zap.Error(err))
		}
	}()

	blobStore, storageClient, err := buildBlobStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialise blob store", zap.Error(err))
	}
	if storageClient != nil {
		defer func() {
			if err := storageClient.Close(); err != nil {
				logger.Warn("storage close error", zap.Error(err))
			}
		}()
	}

	publisher, pubsubClient, err := buildMediaPublisher(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialise media publisher", zap.Error(err))
	}
	if pubsubClient != nil {
		defer func() {
			if err := pubsubClient.Close(); err != nil {
				logger.Warn("pubsub close error", zap.Error(err))
			}
		}()
	}

	audioSettings, err := buildAudioSettings(cfg)
	if err != nil {
		logger.Fatal("failed to initialise audio settings store", zap.Error(err))
	}

	container, err := di.NewContainer(ctx, cfg, registry, di.Infrastructure{
		BlobStore:     blobStore,
		Publisher:     publisher,
		SpeechEngine:  services.NewLoggingSpeechEngine(observability.NewPrintfAdapter(logger.Named("audioguide"))),
		AudioSettings: audioSettings,
	})
	if err != nil {
		logger.Fatal("failed to build container", zap.Error(err))
	}

	idempotencyMiddleware := buildIdempotencyMiddleware(ctx, logger, firestoreProvider)

	authenticate := auth.Authenticate(container.Issuer)
	adminChain := []func(http.Handler) http.Handler{
		authenticate,
		auth.RequireRole(auth.RoleAdmin),
	}
	if idempotencyMiddleware != nil {
		adminChain = append(adminChain, idempotencyMiddleware)
	}

	projectID := strings.TrimSpace(cfg.Firestore.ProjectID)
	middlewares := []func(http.Handler) http.Handler{
		observability.InjectLoggerMiddleware(logger.Named("http")),
		observability.TraceMiddleware(projectID),
		observability.RecoveryMiddleware(logger.Named("http")),
		observability.RequestLoggerMiddleware(projectID),
	}

	documentationHandlers := handlers.NewDocumentationHandlers(container.Services.Documentation)
	router := handlers.NewRouter(
		handlers.WithMiddlewares(middlewares...),
		handlers.WithHealthHandlers(handlers.NewHealthHandlers(registry.Ping)),
		handlers.WithMonasteryRoutes(handlers.NewMonasteryHandlers(container.Services.Monasteries,
			handlers.WithMonasteryDocumentationRoute(documentationHandlers.MonasteryBundle),
			handlers.WithMonasteryAdminMiddlewares(adminChain...),
		).Routes),
		handlers.WithDocumentationRoutes(documentationHandlers.Routes),
		handlers.WithAuthRoutes(handlers.NewAuthHandlers(container.Services.Users,
			handlers.WithMeMiddlewares(authenticate, auth.RequireAuth),
		).Routes),
		handlers.WithMediaRoutes(handlers.NewMediaHandlers(container.Services.Media,
			handlers.WithMediaUploadMiddlewares(adminChain...),
		).Routes),
		handlers.WithChatRoutes(handlers.NewChatHandlers(container.Services.Chat).Routes),
		handlers.WithMapRoutes(handlers.NewMapHandlers(container.Services.Map).Routes),
		handlers.WithAudioGuideRoutes(handlers.NewAudioGuideHandlers(
			container.Services.AudioGuide, container.Services.Monasteries).Routes),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	serverLogger := logger.Named("http").With(zap.String("addr", server.Addr))
	go func() {
		serverLogger.Info("monastery360 api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverLogger.Fatal("http server error", zap.Error(err))
		}
	}()

	<-shutdown
	logger.Info("shutdown signal received; draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// buildRegistry selects Firestore when a project is configured and otherwise
// falls back to the in-memory registry seeded from the embedded dataset.
func buildRegistry(ctx context.Context, cfg config.Config) (repositories.Registry, *pfirestore.Provider, error) {
	if strings.TrimSpace(cfg.Firestore.ProjectID) == "" {
		switch cfg.Dataset.Seed {
		case "curated":
			return memory.NewCuratedRegistry(), nil, nil
		default:
			return memory.NewSeededRegistry(), nil, nil
		}
	}

	provider := pfirestore.NewProvider(cfg.Firestore)
	if _, err := provider.Client(ctx); err != nil {
		return nil, nil, fmt.Errorf("firestore client: %w", err)
	}
	registry, err := firestoreRepo.NewRegistry(provider)
	if err != nil {
		return nil, nil, fmt.Errorf("firestore registry: %w", err)
	}
	return registry, provider, nil
}

func buildBlobStore(ctx context.Context, cfg config.Config) (platformstorage.BlobStore, *cloudstorage.Client, error) {
	switch cfg.Storage.Backend {
	case "gcs":
		client, err := cloudstorage.NewClient(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("storage client: %w", err)
		}
		store, err := platformstorage.NewGCSStore(client, cfg.Storage.MediaBucket, cfg.Storage.PublicBaseURL)
		if err != nil {
			_ = client.Close()
			return nil, nil, err
		}
		return store, client, nil
	default:
		store, err := platformstorage.NewLocalStore(cfg.Storage.LocalDir, cfg.Storage.PublicBaseURL)
		return store, nil, err
	}
}

// buildMediaPublisher is optional wiring; without a Pub/Sub project the media
// service simply skips event publication.
func buildMediaPublisher(ctx context.Context, cfg config.Config) (services.MediaEventPublisher, *pubsub.Client, error) {
	if strings.TrimSpace(cfg.PubSub.ProjectID) == "" || strings.TrimSpace(cfg.PubSub.MediaTopic) == "" {
		return nil, nil, nil
	}
	client, err := pubsub.NewClient(ctx, cfg.PubSub.ProjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("pubsub client: %w", err)
	}
	publisher, err := jobs.NewPubSubMediaPublisher(client.Topic(cfg.PubSub.MediaTopic))
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return publisher, client, nil
}

// buildAudioSettings opens the file-backed store that keeps audio guide
// settings across restarts. An empty path keeps them in memory only.
func buildAudioSettings(cfg config.Config) (kvstore.Store, error) {
	path := strings.TrimSpace(cfg.Audio.SettingsFile)
	if path == "" {
		return kvstore.NewMemory(), nil
	}
	store, err := kvstore.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("audio settings store: %w", err)
	}
	return store, nil
}

// buildIdempotencyMiddleware guards the mutating admin endpoints. Firestore
// backs the record store when available; local runs use the in-memory store.
func buildIdempotencyMiddleware(ctx context.Context, logger *zap.Logger, provider *pfirestore.Provider) func(http.Handler) http.Handler {
	var store idempotency.Store
	if provider != nil {
		client, err := provider.Client(ctx)
		if err == nil {
			store = idempotency.NewFirestoreStore(client)
		}
	}
	if store == nil {
		store = idempotency.NewMemoryStore()
	}
	return idempotency.Middleware(store,
		idempotency.WithLogger(observability.NewPrintfAdapter(logger.Named("idempotency"))),
	)
}

func newSecretFetcher(ctx context.Context, logger *zap.Logger, env map[string]string) (*secrets.Fetcher, error) {
	lookup := func(key string) string {
		if env == nil {
			return ""
		}
		return strings.TrimSpace(env[key])
	}

	envLabel := strings.ToLower(lookup("API_ENVIRONMENT"))
	if envLabel == "" {
		envLabel = "local"
	}
	defaultProject := lookup("API_SECRET_DEFAULT_PROJECT_ID")
	if defaultProject == "" {
		defaultProject = lookup("API_FIRESTORE_PROJECT_ID")
	}
	fallbackPath := lookup("API_SECRET_FALLBACK_FILE")
	if fallbackPath == "" {
		fallbackPath = ".secrets.local"
	}
	credentialsFile := lookup("API_SECRET_CREDENTIALS_FILE")

	opts := []secrets.Option{
		secrets.WithEnvironment(envLabel),
		secrets.WithLogger(logger.Named("secrets")),
		secrets.WithFallbackFile(fallbackPath),
	}
	if defaultProject != "" {
		opts = append(opts, secrets.WithDefaultProject(defaultProject))
	}
	if credentialsFile != "" {
		opts = append(opts, secrets.WithClientOptions(option.WithCredentialsFile(credentialsFile)))
	}

	return secrets.NewFetcher(ctx, opts...)
}
