package di

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/monastery360/api/internal/platform/auth"
	"github.com/monastery360/api/internal/platform/config"
	"github.com/monastery360/api/internal/platform/kvstore"
	"github.com/monastery360/api/internal/platform/storage"
	"github.com/monastery360/api/internal/repositories"
	"github.com/monastery360/api/internal/services"
)

// Services bundles the service-layer contracts that handlers rely upon. Concrete implementations
// are assembled via dependency injection in NewContainer.
type Services struct {
	Monasteries   services.MonasteryService
	Documentation services.DocumentationService
	Users         services.UserService
	Media         services.MediaService
	Chat          services.ChatService
	Map           services.MapService
	AudioGuide    *services.AudioGuidePlayer
}

// Container wires repositories, services, and platform infrastructure for runtime use.
type Container struct {
	Config       config.Config
	Repositories repositories.Registry
	Issuer       *auth.Issuer
	Services     Services
}

// Infrastructure carries the externally constructed platform dependencies.
// The publisher is optional; media events are dropped without one. The
// speech engine and audio settings store are optional; without them the
// audio guide falls back to a silent engine and in-memory settings.
type Infrastructure struct {
	BlobStore     storage.BlobStore
	Publisher     services.MediaEventPublisher
	SpeechEngine  services.TextToSpeechEngine
	AudioSettings kvstore.Store
}

// NewContainer constructs the runtime dependencies. Production wiring provides
// Firestore and GCS implementations, while tests supply in-memory registries
// and local stores.
func NewContainer(ctx context.Context, cfg config.Config, reg repositories.Registry, infra Infrastructure) (*Container, error) {
	if reg == nil {
		return nil, errors.New("repositories registry is required")
	}
	if infra.BlobStore == nil {
		return nil, errors.New("blob store is required")
	}

	issuer, err := auth.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("build token issuer: %w", err)
	}

	svc, err := buildServices(reg, cfg, issuer, infra)
	if err != nil {
		return nil, err
	}

	return &Container{
		Config:       cfg,
		Repositories: reg,
		Issuer:       issuer,
		Services:     svc,
	}, nil
}

// Close releases resources such as repository clients.
func (c *Container) Close(ctx context.Context) error {
	if c == nil || c.Repositories == nil {
		return nil
	}
	return c.Repositories.Close(ctx)
}

func buildServices(reg repositories.Registry, cfg config.Config, issuer *auth.Issuer, infra Infrastructure) (Services, error) {
	var svc Services

	monasterySvc, err := services.NewMonasteryService(services.MonasteryServiceDeps{
		Monasteries: reg.Monasteries(),
		Artifacts:   reg.Artifacts(),
		Rituals:     reg.Rituals(),
		Records:     reg.HistoricalRecords(),
		Clock:       time.Now,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build monastery service: %w", err)
	}
	svc.Monasteries = monasterySvc

	documentationSvc, err := services.NewDocumentationService(services.DocumentationServiceDeps{
		Monasteries: reg.Monasteries(),
		Artifacts:   reg.Artifacts(),
		Rituals:     reg.Rituals(),
		Records:     reg.HistoricalRecords(),
	})
	if err != nil {
		return Services{}, fmt.Errorf("build documentation service: %w", err)
	}
	svc.Documentation = documentationSvc

	userSvc, err := services.NewUserService(services.UserServiceDeps{
		Users:  reg.Users(),
		Issuer: issuer,
		Hasher: auth.NewPasswordHasher(cfg.Auth.BcryptCost),
		Clock:  time.Now,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build user service: %w", err)
	}
	svc.Users = userSvc

	mediaSvc, err := services.NewMediaService(services.MediaServiceDeps{
		Store:     infra.BlobStore,
		Publisher: infra.Publisher,
		MaxBytes:  cfg.Media.MaxUploadBytes,
		MaxFiles:  cfg.Media.MaxFiles,
		Clock:     time.Now,
	})
	if err != nil {
		return Services{}, fmt.Errorf("build media service: %w", err)
	}
	svc.Media = mediaSvc

	chatSvc, err := services.NewChatService(services.ChatServiceDeps{
		Monasteries: reg.Monasteries(),
	})
	if err != nil {
		return Services{}, fmt.Errorf("build chat service: %w", err)
	}
	svc.Chat = chatSvc

	mapSvc, err := services.NewMapService(services.MapServiceDeps{
		Monasteries: reg.Monasteries(),
	})
	if err != nil {
		return Services{}, fmt.Errorf("build map service: %w", err)
	}
	svc.Map = mapSvc

	engine := infra.SpeechEngine
	if engine == nil {
		engine = services.NewLoggingSpeechEngine(nil)
	}
	player, err := services.NewAudioGuidePlayer(engine, infra.AudioSettings)
	if err != nil {
		return Services{}, fmt.Errorf("build audio guide player: %w", err)
	}
	svc.AudioGuide = player

	return svc, nil
}
