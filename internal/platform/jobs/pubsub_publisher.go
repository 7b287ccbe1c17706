package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/pubsub"

	"github.com/monastery360/api/internal/services"
)

// PubSubMediaPublisher publishes media lifecycle events to a Pub/Sub topic so
// downstream consumers (thumbnailers, archival jobs) can react to uploads.
type PubSubMediaPublisher struct {
	topic   *pubsub.Topic
	marshal func(any) ([]byte, error)
}

// NewPubSubMediaPublisher constructs a Pub/Sub backed media event publisher.
func NewPubSubMediaPublisher(topic *pubsub.Topic) (*PubSubMediaPublisher, error) {
	if topic == nil {
		return nil, errors.New("pubsub media publisher: topic is required")
	}
	return &PubSubMediaPublisher{
		topic:   topic,
		marshal: json.Marshal,
	}, nil
}

// PublishMediaEvent enqueues a media event message on the configured topic.
func (p *PubSubMediaPublisher) PublishMediaEvent(ctx context.Context, message services.MediaEventMessage) (string, error) {
	if p == nil || p.topic == nil {
		return "", errors.New("pubsub media publisher: not initialised")
	}

	data, err := p.marshal(message)
	if err != nil {
		return "", fmt.Errorf("marshal media event: %w", err)
	}

	attrs := make(map[string]string)
	setAttr(attrs, "event", message.Event)
	setAttr(attrs, "filename", message.Filename)
	setAttr(attrs, "contentType", message.ContentType)
	setAttr(attrs, "uploadedBy", message.UploadedBy)

	result := p.topic.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attrs,
	})

	id, err := result.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("publish media event: %w", err)
	}
	return id, nil
}

func setAttr(attrs map[string]string, key string, value string) {
	if v := strings.TrimSpace(value); v != "" {
		attrs[key] = v
	}
}
