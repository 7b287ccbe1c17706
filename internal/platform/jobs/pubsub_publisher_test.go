package jobs

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/monastery360/api/internal/services"
)

func TestPubSubMediaPublisherPublishesMessage(t *testing.T) {
	ctx := context.Background()
	srv := pstest.NewServer()
	defer srv.Close()

	client, err := pubsub.NewClient(ctx, "test-project",
		option.WithEndpoint(srv.Addr),
		option.WithoutAuthentication(),
		option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())),
	)
	if err != nil {
		t.Fatalf("pubsub.NewClient: %v", err)
	}
	defer func() {
		_ = client.Close()
	}()

	topic, err := client.CreateTopic(ctx, "media-events")
	if err != nil {
		t.Fatalf("CreateTopic: %v", err)
	}

	publisher, err := NewPubSubMediaPublisher(topic)
	if err != nil {
		t.Fatalf("NewPubSubMediaPublisher: %v", err)
	}

	occurredAt := time.Date(2025, 5, 6, 9, 0, 0, 0, time.UTC)
	msg := services.MediaEventMessage{
		Event:       services.MediaEventUploaded,
		Filename:    "01hq3ks9example.png",
		URL:         "/api/v1/media/files/01hq3ks9example.png",
		ContentType: "image/png",
		SizeBytes:   2048,
		UploadedBy:  "user-1",
		OccurredAt:  occurredAt,
	}

	if _, err := publisher.PublishMediaEvent(ctx, msg); err != nil {
		t.Fatalf("PublishMediaEvent: %v", err)
	}

	messages := srv.Messages()
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}

	var payload services.MediaEventMessage
	if err := json.Unmarshal(messages[0].Data, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Event != services.MediaEventUploaded || payload.Filename != msg.Filename {
		t.Fatalf("unexpected payload %#v", payload)
	}
	if attr := messages[0].Attributes["event"]; attr != services.MediaEventUploaded {
		t.Fatalf("expected event attribute, got %q", attr)
	}
	if payload.SizeBytes != 2048 {
		t.Fatalf("unexpected size %d", payload.SizeBytes)
	}
}
