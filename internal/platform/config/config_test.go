package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func baseEnv() map[string]string {
	return map[string]string{
		"API_AUTH_JWT_SECRET": "test-secret",
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(context.Background(),
		WithoutSystemEnv(),
		WithEnvFile(""),
		WithEnvMap(baseEnv()),
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.Server.Port)
	}
	if cfg.Environment != "development" || cfg.IsProduction() {
		t.Fatalf("expected development environment, got %q", cfg.Environment)
	}
	if cfg.Media.MaxUploadBytes != 10<<20 {
		t.Fatalf("expected 10MiB upload limit, got %d", cfg.Media.MaxUploadBytes)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Fatalf("expected bcrypt cost 12, got %d", cfg.Auth.BcryptCost)
	}
	if cfg.Auth.AccessTokenTTL != 7*24*time.Hour {
		t.Fatalf("unexpected access token ttl %s", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Storage.Backend != "local" || cfg.Storage.LocalDir != "uploads" {
		t.Fatalf("unexpected storage defaults %+v", cfg.Storage)
	}
	if cfg.Dataset.Seed != "full" {
		t.Fatalf("unexpected dataset seed %q", cfg.Dataset.Seed)
	}
	if cfg.Audio.SettingsFile != "audioguide-settings.json" {
		t.Fatalf("unexpected audio settings file %q", cfg.Audio.SettingsFile)
	}
}

func TestLoadValidation(t *testing.T) {
	_, err := Load(context.Background(), WithoutSystemEnv(), WithEnvFile(""))

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	found := false
	for _, field := range validation.Fields() {
		if field == "Auth.JWTSecret" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected Auth.JWTSecret in %v", validation.Fields())
	}
}

func TestLoadGCSBackendRequiresBucket(t *testing.T) {
	env := baseEnv()
	env["API_STORAGE_BACKEND"] = "gcs"

	_, err := Load(context.Background(), WithoutSystemEnv(), WithEnvFile(""), WithEnvMap(env))

	var validation *ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoadResolvesSecretReferences(t *testing.T) {
	env := baseEnv()
	env["API_AUTH_JWT_SECRET"] = "sm://projects/p/secrets/jwt/versions/latest"

	resolver := SecretResolverFunc(func(_ context.Context, ref string) (string, error) {
		if ref != "secret://projects/p/secrets/jwt/versions/latest" {
			t.Fatalf("unexpected ref %q", ref)
		}
		return "resolved-secret", nil
	})

	cfg, err := Load(context.Background(),
		WithoutSystemEnv(),
		WithEnvFile(""),
		WithEnvMap(env),
		WithSecretResolver(resolver),
	)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Auth.JWTSecret != "resolved-secret" {
		t.Fatalf("secret not resolved: %q", cfg.Auth.JWTSecret)
	}
}

func TestLoadSecretResolverFailure(t *testing.T) {
	env := baseEnv()
	env["API_AUTH_JWT_SECRET"] = "secret://projects/p/secrets/jwt/versions/1"

	resolver := SecretResolverFunc(func(context.Context, string) (string, error) {
		return "", errors.New("boom")
	})

	_, err := Load(context.Background(), WithoutSystemEnv(), WithEnvFile(""), WithEnvMap(env), WithSecretResolver(resolver))

	var secretErr *SecretError
	if !errors.As(err, &secretErr) {
		t.Fatalf("expected secret error, got %v", err)
	}
}

func TestLoadReadsDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "# local overrides\nexport API_SERVER_PORT=9000\nAPI_AUTH_JWT_SECRET=\"file-secret\"\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	cfg, err := Load(context.Background(), WithoutSystemEnv(), WithEnvFile(path))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Fatalf("expected port from env file, got %q", cfg.Server.Port)
	}
	if cfg.Auth.JWTSecret != "file-secret" {
		t.Fatalf("expected quoted value trimmed, got %q", cfg.Auth.JWTSecret)
	}
}

func TestEnvMapPrecedesDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("API_SERVER_PORT=9000\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	env := baseEnv()
	env["API_SERVER_PORT"] = "9100"

	cfg, err := Load(context.Background(), WithoutSystemEnv(), WithEnvFile(path), WithEnvMap(env))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9100" {
		t.Fatalf("expected env map to win, got %q", cfg.Server.Port)
	}
}
