//go:build integration

package firestore_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/exec"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/firestore"

	pconfig "github.com/monastery360/api/internal/platform/config"
	pfirestore "github.com/monastery360/api/internal/platform/firestore"
)

const emulatorImage = "gcr.io/google.com/cloudsdktool/cloud-sdk:emulators"

type guideStats struct {
	Monastery string `firestore:"monastery"`
	Playbacks int    `firestore:"playbacks"`
}

func TestProviderAgainstEmulator(t *testing.T) {
	endpoint := startEmulator(t)

	provider := pfirestore.NewProvider(pconfig.FirestoreConfig{
		ProjectID:    "heritage-test",
		EmulatorHost: endpoint,
	})
	t.Cleanup(func() { _ = provider.Close(context.Background()) })

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if _, err := provider.Client(ctx); err != nil {
		t.Fatalf("Client: %v", err)
	}

	repo := pfirestore.NewBaseRepository[guideStats](provider, "guide_stats", nil, nil)
	if _, err := repo.Set(ctx, "rumtek", guideStats{Monastery: "Rumtek", Playbacks: 1}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	t.Run("GetRoundTrip", func(t *testing.T) {
		doc, err := repo.Get(ctx, "rumtek")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if doc.ID != "rumtek" || doc.Data.Monastery != "Rumtek" || doc.Data.Playbacks != 1 {
			t.Fatalf("unexpected document: %+v", doc)
		}
		if doc.UpdateTime.IsZero() {
			t.Fatal("expected update time from the snapshot")
		}
	})

	t.Run("QueryAll", func(t *testing.T) {
		docs, err := repo.Query(ctx, nil)
		if err != nil {
			t.Fatalf("Query: %v", err)
		}
		if len(docs) != 1 {
			t.Fatalf("expected a single document, got %d", len(docs))
		}
	})

	t.Run("MissingDocumentClassifiedNotFound", func(t *testing.T) {
		_, err := repo.Get(ctx, "ghost")
		if err == nil {
			t.Fatal("expected an error for a missing document")
		}
		var typed *pfirestore.Error
		if !errors.As(err, &typed) {
			t.Fatalf("expected *firestore.Error, got %T", err)
		}
		if !typed.IsNotFound() {
			t.Fatalf("expected not-found classification for %v", err)
		}
	})

	t.Run("TransactionalIncrement", func(t *testing.T) {
		err := provider.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
			ref, err := repo.DocumentRef(ctx, "rumtek")
			if err != nil {
				return err
			}
			snap, err := tx.Get(ref)
			if err != nil {
				return err
			}
			var stats guideStats
			if err := snap.DataTo(&stats); err != nil {
				return err
			}
			stats.Playbacks++
			return tx.Set(ref, stats)
		})
		if err != nil {
			t.Fatalf("RunTransaction: %v", err)
		}

		doc, err := repo.Get(ctx, "rumtek")
		if err != nil {
			t.Fatalf("Get after transaction: %v", err)
		}
		if doc.Data.Playbacks != 2 {
			t.Fatalf("expected 2 playbacks, got %d", doc.Data.Playbacks)
		}
	})

	t.Run("CanceledContextSurfaces", func(t *testing.T) {
		dead, cancelNow := context.WithCancel(context.Background())
		cancelNow()
		err := provider.RunTransaction(dead, func(context.Context, *firestore.Transaction) error {
			return nil
		})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

// startEmulator launches the Firestore emulator in docker and blocks
// until its port accepts connections. The test is skipped when docker is
// not usable on the host.
func startEmulator(t *testing.T) string {
	t.Helper()

	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed: " + err.Error())
	}
	probe, probeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer probeCancel()
	if err := exec.CommandContext(probe, "docker", "info").Run(); err != nil {
		t.Skip("docker daemon unavailable: " + err.Error())
	}

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("allocate port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	endpoint := fmt.Sprintf("127.0.0.1:%d", port)

	out, err := exec.Command("docker",
		"run", "-d", "--rm",
		"-p", fmt.Sprintf("%d:8080", port),
		emulatorImage,
		"gcloud", "beta", "emulators", "firestore", "start",
		"--host-port=0.0.0.0:8080", "--quiet",
	).CombinedOutput()
	if err != nil {
		t.Fatalf("start emulator: %v: %s", err, out)
	}
	container := strings.TrimSpace(string(out))
	if container == "" {
		t.Fatal("docker returned no container id")
	}
	t.Cleanup(func() {
		stop, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer stopCancel()
		_ = exec.CommandContext(stop, "docker", "stop", container).Run()
	})

	deadline := time.Now().Add(30 * time.Second)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", endpoint, 500*time.Millisecond)
		if err == nil {
			conn.Close()
			return endpoint
		}
		time.Sleep(250 * time.Millisecond)
	}
	t.Fatalf("emulator at %s never became ready", endpoint)
	return ""
}
