// Package secrets resolves secret:// references against Google Secret
// Manager, with an in-process cache and a local fallback file so the API
// can boot without GCP credentials during development.
package secrets

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultEnvironment  = "local"
	defaultFallbackPath = ".secrets.local"
	meterName           = "github.com/monastery360/api/internal/platform/secrets"
)

var newSecretManagerClient = func(ctx context.Context, opts ...option.ClientOption) (*secretmanager.Client, error) {
	return secretmanager.NewClient(ctx, opts...)
}

// accessor is the slice of the Secret Manager client the fetcher needs.
type accessor interface {
	AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error)
	Close() error
}

// reference is a parsed secret://name?version=&project= URI.
type reference struct {
	name    string
	version string
	project string
}

func (r reference) canonical() string {
	return "secret://" + r.name
}

func (r reference) cacheKey() string {
	return r.name + "#" + r.version
}

// Fetcher resolves secret references. Values are cached for the process
// lifetime; the JWT signing key does not rotate mid-run.
type Fetcher struct {
	client     accessor
	ownsClient bool
	logger     *zap.Logger

	env            string
	defaultProject string
	projects       map[string]string

	fallbackPath string
	fallbackOnce sync.Once
	fallback     map[string]string
	fallbackErr  error

	mu    sync.RWMutex
	cache map[string]string

	fetchLatency metric.Float64Histogram
	cacheHits    metric.Int64Counter
}

type config struct {
	logger       *zap.Logger
	env          string
	project      string
	projects     map[string]string
	fallbackPath string
	client       accessor
	clientOpts   []option.ClientOption
}

// Option customises Fetcher construction.
type Option func(*config)

// WithLogger sets the diagnostic logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithEnvironment selects the deployment environment used to pick a
// project from the project map.
func WithEnvironment(env string) Option {
	return func(c *config) { c.env = strings.ToLower(strings.TrimSpace(env)) }
}

// WithDefaultProject sets the project used when no mapping matches.
func WithDefaultProject(projectID string) Option {
	return func(c *config) { c.project = strings.TrimSpace(projectID) }
}

// WithProjectMap maps environment names to Secret Manager projects.
func WithProjectMap(m map[string]string) Option {
	return func(c *config) {
		c.projects = make(map[string]string, len(m))
		for env, project := range m {
			c.projects[env] = project
		}
	}
}

// WithFallbackFile points at a KEY=VALUE file consulted when Secret
// Manager is unreachable or unconfigured.
func WithFallbackFile(path string) Option {
	return func(c *config) { c.fallbackPath = strings.TrimSpace(path) }
}

// WithClient injects a preconstructed client, primarily for tests.
func WithClient(client accessor) Option {
	return func(c *config) { c.client = client }
}

// WithClientOptions forwards options to the Secret Manager client.
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(c *config) { c.clientOpts = append(c.clientOpts, opts...) }
}

// NewFetcher builds a Fetcher. A missing Secret Manager client is not an
// error; the fetcher then serves from the fallback file only.
func NewFetcher(ctx context.Context, opts ...Option) (*Fetcher, error) {
	cfg := config{
		logger:       zap.NewNop(),
		env:          defaultEnvironment,
		fallbackPath: defaultFallbackPath,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}

	meter := otel.GetMeterProvider().Meter(meterName)
	latency, err := meter.Float64Histogram("secrets.fetch.latency",
		metric.WithUnit("ms"),
		metric.WithDescription("Secret resolution latency"))
	if err != nil {
		cfg.logger.Warn("secrets: latency metric unavailable", zap.Error(err))
	}
	hits, err := meter.Int64Counter("secrets.cache.hits",
		metric.WithDescription("Secret resolutions served from cache"))
	if err != nil {
		cfg.logger.Warn("secrets: cache metric unavailable", zap.Error(err))
	}

	f := &Fetcher{
		client:         cfg.client,
		logger:         cfg.logger,
		env:            cfg.env,
		defaultProject: cfg.project,
		projects:       cfg.projects,
		fallbackPath:   cfg.fallbackPath,
		cache:          make(map[string]string),
		fetchLatency:   latency,
		cacheHits:      hits,
	}

	if f.client == nil {
		client, err := newSecretManagerClient(ctx, cfg.clientOpts...)
		if err != nil {
			cfg.logger.Warn("secrets: secret manager unavailable, using fallback file only", zap.Error(err))
		} else {
			f.client = client
			f.ownsClient = true
		}
	}
	return f, nil
}

// Close releases the underlying client when the fetcher created it.
func (f *Fetcher) Close() error {
	if f.ownsClient && f.client != nil {
		return f.client.Close()
	}
	return nil
}

// Resolve returns the value behind a secret:// reference.
func (f *Fetcher) Resolve(ctx context.Context, ref string) (string, error) {
	start := time.Now()
	parsed, err := parseReference(ref)
	if err != nil {
		return "", err
	}

	f.mu.RLock()
	cached, ok := f.cache[parsed.cacheKey()]
	f.mu.RUnlock()
	if ok {
		f.record(ctx, start, "cache")
		if f.cacheHits != nil {
			f.cacheHits.Add(ctx, 1)
		}
		return cached, nil
	}

	project := f.projectFor(parsed)
	if project != "" && f.client != nil {
		value, err := f.access(ctx, project, parsed)
		if err == nil {
			f.store(parsed, value)
			f.record(ctx, start, "remote")
			return value, nil
		}
		if !reachableError(err) {
			f.record(ctx, start, "error")
			return "", fmt.Errorf("secrets: fetch %s: %w", parsed.canonical(), err)
		}
		f.logger.Debug("secrets: remote unreachable, trying fallback file",
			zap.String("ref", parsed.canonical()), zap.Error(err))
	}

	value, ok := f.lookupFallback(parsed)
	if !ok {
		f.record(ctx, start, "error")
		return "", fmt.Errorf("secrets: no value for %s", parsed.canonical())
	}
	f.store(parsed, value)
	f.record(ctx, start, "fallback")
	return value, nil
}

func (f *Fetcher) access(ctx context.Context, project string, ref reference) (string, error) {
	name := fmt.Sprintf("projects/%s/secrets/%s/versions/%s", project, ref.name, ref.version)
	resp, err := f.client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", err
	}
	if resp.GetPayload() == nil {
		return "", fmt.Errorf("empty payload for %s", name)
	}
	return string(resp.GetPayload().GetData()), nil
}

func (f *Fetcher) projectFor(ref reference) string {
	if ref.project != "" {
		return ref.project
	}
	if project, ok := f.projects[f.env]; ok && strings.TrimSpace(project) != "" {
		return strings.TrimSpace(project)
	}
	return f.defaultProject
}

func (f *Fetcher) store(ref reference, value string) {
	f.mu.Lock()
	f.cache[ref.cacheKey()] = value
	f.mu.Unlock()
}

func (f *Fetcher) lookupFallback(ref reference) (string, bool) {
	f.fallbackOnce.Do(f.loadFallback)
	if f.fallbackErr != nil {
		f.logger.Debug("secrets: fallback file unreadable", zap.Error(f.fallbackErr))
		return "", false
	}
	if value, ok := f.fallback[ref.cacheKey()]; ok {
		return value, true
	}
	value, ok := f.fallback[ref.name]
	return value, ok
}

// loadFallback reads a KEY=VALUE file. Keys may be bare secret names or
// full secret:// references; lines starting with # are comments.
func (f *Fetcher) loadFallback() {
	f.fallback = map[string]string{}
	if f.fallbackPath == "" {
		return
	}

	file, err := os.Open(f.fallbackPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.fallbackErr = fmt.Errorf("secrets: open %s: %w", f.fallbackPath, err)
		}
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !found || key == "" {
			continue
		}
		value = strings.TrimSpace(value)
		if ref, err := parseReference(key); err == nil {
			f.fallback[ref.name] = value
			f.fallback[ref.cacheKey()] = value
		} else {
			f.fallback[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		f.fallbackErr = fmt.Errorf("secrets: read %s: %w", f.fallbackPath, err)
	}
}

func (f *Fetcher) record(ctx context.Context, start time.Time, source string) {
	if f.fetchLatency == nil {
		return
	}
	elapsed := float64(time.Since(start)) / float64(time.Millisecond)
	f.fetchLatency.Record(ctx, elapsed, metric.WithAttributes(attribute.String("source", source)))
}

func parseReference(raw string) (reference, error) {
	if strings.TrimSpace(raw) == "" {
		return reference{}, errors.New("secrets: empty reference")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return reference{}, fmt.Errorf("secrets: invalid reference %q: %w", raw, err)
	}
	if u.Scheme != "secret" {
		return reference{}, fmt.Errorf("secrets: unsupported scheme %q", u.Scheme)
	}
	name := strings.Trim(u.Host+u.Path, "/")
	if name == "" {
		return reference{}, fmt.Errorf("secrets: missing secret name in %q", raw)
	}

	version := strings.TrimSpace(u.Query().Get("version"))
	if version == "" {
		version = "latest"
	}
	return reference{
		name:    name,
		version: version,
		project: strings.TrimSpace(u.Query().Get("project")),
	}, nil
}

// reachableError reports whether the failure is an availability or
// credential problem, where the local fallback file may stand in. A
// NotFound is authoritative and must surface.
func reachableError(err error) bool {
	switch status.Code(err) {
	case codes.PermissionDenied, codes.Unauthenticated, codes.Unavailable, codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}
