// Package config assembles runtime configuration from defaults, a .env
// file, the process environment, and secret references, in that
// precedence order.
package config

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile         = ".env"
	defaultPort            = "8080"
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 120 * time.Second
	defaultEnvironment     = "development"
	defaultStorageBackend  = "local"
	defaultLocalMediaDir   = "uploads"
	defaultMaxUploadBytes  = 10 << 20
	defaultMaxUploadFiles  = 10
	defaultAccessTokenTTL  = 7 * 24 * time.Hour
	defaultRefreshTokenTTL = 30 * 24 * time.Hour
	defaultBcryptCost      = 12
	defaultDatasetSeed     = "full"
	defaultAudioSettings   = "audioguide-settings.json"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Environment string
	Server      ServerConfig
	Firestore   FirestoreConfig
	Storage     StorageConfig
	Media       MediaConfig
	Auth        AuthConfig
	PubSub      PubSubConfig
	Dataset     DatasetConfig
	Audio       AudioConfig
}

// IsProduction reports whether the service runs with production hardening
// (generic error messages, no stack traces in responses).
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// FirestoreConfig stores database parameters. An empty ProjectID selects
// the in-memory registry seeded from the embedded dataset.
type FirestoreConfig struct {
	ProjectID    string
	EmulatorHost string
}

// StorageConfig selects and parameterises the media blob store.
type StorageConfig struct {
	// Backend is "local" or "gcs".
	Backend       string
	MediaBucket   string
	LocalDir      string
	PublicBaseURL string
}

// MediaConfig bounds uploads.
type MediaConfig struct {
	MaxUploadBytes int64
	MaxFiles       int
}

// AuthConfig holds token signing and password hashing parameters.
// JWTSecret may be a secret:// reference resolved at load time.
type AuthConfig struct {
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	BcryptCost      int
}

// PubSubConfig parameterises the optional media event publisher.
type PubSubConfig struct {
	ProjectID  string
	MediaTopic string
}

// DatasetConfig controls seeding of the in-memory registry.
type DatasetConfig struct {
	// Seed is "full" (100 records) or "curated" (15 records).
	Seed string
}

// AudioConfig parameterises the audio guide player.
type AudioConfig struct {
	// SettingsFile persists player settings across restarts. Empty keeps
	// settings in memory only.
	SettingsFile string
}

// SecretResolver resolves secret:// references to their values.
type SecretResolver interface {
	ResolveSecret(ctx context.Context, ref string) (string, error)
}

// SecretResolverFunc adapts a function to SecretResolver.
type SecretResolverFunc func(context.Context, string) (string, error)

// ResolveSecret calls the wrapped function.
func (f SecretResolverFunc) ResolveSecret(ctx context.Context, ref string) (string, error) {
	return f(ctx, ref)
}

// ValidationError lists the configuration fields that failed validation.
type ValidationError struct {
	fields []string
}

func (e *ValidationError) Error() string {
	return "config validation failed: missing or invalid fields [" + strings.Join(e.fields, ", ") + "]"
}

// Fields returns the offending field names.
func (e *ValidationError) Fields() []string {
	return append([]string(nil), e.fields...)
}

// SecretError wraps a failure while resolving a secret reference.
type SecretError struct {
	Ref string
	Err error
}

func (e *SecretError) Error() string {
	return fmt.Sprintf("secret resolution failed for ref %q: %v", e.Ref, e.Err)
}

func (e *SecretError) Unwrap() error { return e.Err }

var errNoResolver = errors.New("secret resolver not configured")

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
	secret       SecretResolver
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

// WithEnvFile overrides the .env file path.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) { o.envFile = path }
}

// WithEnvMap injects explicit values that override everything else.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) { o.envMap = values }
}

// WithoutSystemEnv ignores the process environment, for tests.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) { o.useSystemEnv = false }
}

// WithSecretResolver sets the resolver for secret:// references.
func WithSecretResolver(resolver SecretResolver) Option {
	return func(o *loaderOptions) { o.secret = resolver }
}

func applyOptions(opts []Option) loaderOptions {
	options := loaderOptions{envFile: defaultEnvFile, useSystemEnv: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}
	return options
}

// env is the merged key/value view the typed getters read from.
type env map[string]string

func (e env) str(key, fallback string) string {
	if value := e[key]; value != "" {
		return value
	}
	return fallback
}

func (e env) lower(key, fallback string) string {
	return strings.ToLower(e.str(key, fallback))
}

func (e env) duration(key string, fallback time.Duration) time.Duration {
	if value := e[key]; value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func (e env) integer(key string, fallback int) int {
	if value := e[key]; value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func (e env) integer64(key string, fallback int64) int64 {
	if value := e[key]; value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

// EnvironmentValues returns the merged key/value map Load works from,
// applying the same precedence (dotenv < process env < explicit map).
// Callers use it to initialise dependencies such as the secret fetcher
// before invoking Load.
func EnvironmentValues(opts ...Option) (map[string]string, error) {
	options := applyOptions(opts)
	return mergedEnv(options)
}

func mergedEnv(options loaderOptions) (env, error) {
	values := env{}

	fromFile, err := parseDotEnv(options.envFile)
	if err != nil {
		return nil, err
	}
	for key, value := range fromFile {
		values[key] = value
	}

	if options.useSystemEnv {
		for _, entry := range os.Environ() {
			if key, value, ok := strings.Cut(entry, "="); ok && strings.TrimSpace(key) != "" {
				values[strings.TrimSpace(key)] = value
			}
		}
	}

	for key, value := range options.envMap {
		values[key] = value
	}
	return values, nil
}

// Load builds and validates the configuration.
func Load(ctx context.Context, opts ...Option) (Config, error) {
	options := applyOptions(opts)
	values, err := mergedEnv(options)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Environment: values.lower("API_ENVIRONMENT", defaultEnvironment),
		Server: ServerConfig{
			Port:         values.str("API_SERVER_PORT", defaultPort),
			ReadTimeout:  values.duration("API_SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: values.duration("API_SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  values.duration("API_SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Firestore: FirestoreConfig{
			ProjectID:    values.str("API_FIRESTORE_PROJECT_ID", ""),
			EmulatorHost: values.str("API_FIRESTORE_EMULATOR_HOST", ""),
		},
		Storage: StorageConfig{
			Backend:       values.lower("API_STORAGE_BACKEND", defaultStorageBackend),
			MediaBucket:   values.str("API_STORAGE_MEDIA_BUCKET", ""),
			LocalDir:      values.str("API_STORAGE_LOCAL_DIR", defaultLocalMediaDir),
			PublicBaseURL: values.str("API_STORAGE_PUBLIC_BASE_URL", ""),
		},
		Media: MediaConfig{
			MaxUploadBytes: values.integer64("API_MEDIA_MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
			MaxFiles:       values.integer("API_MEDIA_MAX_FILES", defaultMaxUploadFiles),
		},
		Auth: AuthConfig{
			JWTSecret:       values.str("API_AUTH_JWT_SECRET", ""),
			AccessTokenTTL:  values.duration("API_AUTH_ACCESS_TOKEN_TTL", defaultAccessTokenTTL),
			RefreshTokenTTL: values.duration("API_AUTH_REFRESH_TOKEN_TTL", defaultRefreshTokenTTL),
			BcryptCost:      values.integer("API_AUTH_BCRYPT_COST", defaultBcryptCost),
		},
		PubSub: PubSubConfig{
			ProjectID:  values.str("API_PUBSUB_PROJECT_ID", ""),
			MediaTopic: values.str("API_PUBSUB_MEDIA_TOPIC", ""),
		},
		Dataset: DatasetConfig{
			Seed: values.lower("API_DATASET_SEED", defaultDatasetSeed),
		},
		Audio: AudioConfig{
			SettingsFile: values.str("API_AUDIO_SETTINGS_FILE", defaultAudioSettings),
		},
	}

	cfg.Auth.JWTSecret, err = resolveSecret(ctx, cfg.Auth.JWTSecret, options.secret)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func resolveSecret(ctx context.Context, value string, resolver SecretResolver) (string, error) {
	ref := strings.TrimSpace(value)
	if strings.HasPrefix(ref, "sm://") {
		ref = "secret://" + strings.TrimPrefix(ref, "sm://")
	}
	if !strings.HasPrefix(ref, "secret://") {
		return value, nil
	}
	if resolver == nil {
		return "", &SecretError{Ref: ref, Err: errNoResolver}
	}
	secret, err := resolver.ResolveSecret(ctx, ref)
	if err != nil {
		return "", &SecretError{Ref: ref, Err: err}
	}
	return secret, nil
}

func (c Config) validate() error {
	var bad []string
	require := func(ok bool, field string) {
		if !ok {
			bad = append(bad, field)
		}
	}

	require(c.Server.Port != "", "Server.Port")
	require(strings.TrimSpace(c.Auth.JWTSecret) != "", "Auth.JWTSecret")
	require(c.Auth.AccessTokenTTL > 0, "Auth.AccessTokenTTL")
	require(c.Media.MaxUploadBytes > 0, "Media.MaxUploadBytes")
	require(c.Media.MaxFiles > 0, "Media.MaxFiles")

	switch c.Storage.Backend {
	case "local":
		require(strings.TrimSpace(c.Storage.LocalDir) != "", "Storage.LocalDir")
	case "gcs":
		require(strings.TrimSpace(c.Storage.MediaBucket) != "", "Storage.MediaBucket")
	default:
		bad = append(bad, "Storage.Backend")
	}
	require(c.Dataset.Seed == "full" || c.Dataset.Seed == "curated", "Dataset.Seed")

	if len(bad) > 0 {
		return &ValidationError{fields: bad}
	}
	return nil
}

// parseDotEnv reads KEY=VALUE lines, honouring comments, `export `
// prefixes, and single or double quoting. A missing file is not an error.
func parseDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", path, err)
	}
	defer file.Close()

	values := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(value), `"'`)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", path, err)
	}
	return values, nil
}
