package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/monastery360/api/internal/platform/storage"
)

type capturedEvent struct {
	message MediaEventMessage
}

type stubPublisher struct {
	events []capturedEvent
	err    error
}

func (p *stubPublisher) PublishMediaEvent(_ context.Context, message MediaEventMessage) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	p.events = append(p.events, capturedEvent{message: message})
	return "msg-1", nil
}

func newMediaService(t *testing.T, publisher MediaEventPublisher) MediaService {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir(), "/api/v1/media/files")
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	svc, err := NewMediaService(MediaServiceDeps{
		Store:     store,
		Publisher: publisher,
		MaxBytes:  64,
		MaxFiles:  3,
	})
	if err != nil {
		t.Fatalf("NewMediaService: %v", err)
	}
	return svc
}

func upload(name, body string) MediaUpload {
	return MediaUpload{
		OriginalName: name,
		ContentType:  "",
		Size:         int64(len(body)),
		Reader:       strings.NewReader(body),
		UploadedBy:   "user-1",
	}
}

func TestUploadStoresAndPublishes(t *testing.T) {
	publisher := &stubPublisher{}
	svc := newMediaService(t, publisher)
	ctx := context.Background()

	object, err := svc.Upload(ctx, upload("Prayer Hall.JPG", "jpeg-bytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if !strings.HasSuffix(object.Filename, ".jpg") {
		t.Fatalf("expected generated name to keep the extension, got %q", object.Filename)
	}
	if object.Filename == "prayer hall.jpg" {
		t.Fatal("original name must not be reused as the stored name")
	}
	if object.URL != "/api/v1/media/files/"+object.Filename {
		t.Fatalf("unexpected URL %q", object.URL)
	}
	if object.Size != int64(len("jpeg-bytes")) {
		t.Fatalf("unexpected size %d", object.Size)
	}

	if len(publisher.events) != 1 || publisher.events[0].message.Event != MediaEventUploaded {
		t.Fatalf("expected one uploaded event, got %+v", publisher.events)
	}

	stream, err := svc.Open(ctx, object.Filename)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer stream.Reader.Close()
	body, _ := io.ReadAll(stream.Reader)
	if string(body) != "jpeg-bytes" {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	svc := newMediaService(t, nil)

	if _, err := svc.Upload(context.Background(), upload("malware.exe", "x")); !errors.Is(err, ErrFileTypeNotAllowed) {
		t.Fatalf("expected ErrFileTypeNotAllowed, got %v", err)
	}
}

func TestUploadRejectsOversizedBody(t *testing.T) {
	svc := newMediaService(t, nil)
	ctx := context.Background()

	big := strings.Repeat("a", 65)

	// Declared size over the limit is rejected up front.
	if _, err := svc.Upload(ctx, upload("big.png", big)); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	// A lying declared size is still caught after streaming.
	u := upload("sneaky.png", big)
	u.Size = 10
	if _, err := svc.Upload(ctx, u); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge for lying size, got %v", err)
	}
}

func TestUploadManyRollsBackOnFailure(t *testing.T) {
	publisher := &stubPublisher{}
	svc := newMediaService(t, publisher)
	ctx := context.Background()

	_, err := svc.UploadMany(ctx, []MediaUpload{
		upload("a.png", "aaa"),
		upload("b.exe", "bbb"),
	})
	if !errors.Is(err, ErrFileTypeNotAllowed) {
		t.Fatalf("expected ErrFileTypeNotAllowed, got %v", err)
	}

	// The successfully stored first file must have been removed again.
	for _, event := range publisher.events {
		if event.message.Event == MediaEventUploaded {
			if _, openErr := svc.Open(ctx, event.message.Filename); !errors.Is(openErr, ErrMediaNotFound) {
				t.Fatalf("expected rolled-back file to be gone, got %v", openErr)
			}
		}
	}
}

func TestUploadManyEnforcesBatchLimit(t *testing.T) {
	svc := newMediaService(t, nil)

	batch := []MediaUpload{
		upload("a.png", "a"), upload("b.png", "b"),
		upload("c.png", "c"), upload("d.png", "d"),
	}
	if _, err := svc.UploadMany(context.Background(), batch); !errors.Is(err, ErrTooManyFiles) {
		t.Fatalf("expected ErrTooManyFiles, got %v", err)
	}
}

func TestDeletePublishesAndMissingFileIsNotFound(t *testing.T) {
	publisher := &stubPublisher{}
	svc := newMediaService(t, publisher)
	ctx := context.Background()

	object, err := svc.Upload(ctx, upload("gone.png", "xyz"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if err := svc.Delete(ctx, object.Filename); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if last := publisher.events[len(publisher.events)-1]; last.message.Event != MediaEventDeleted {
		t.Fatalf("expected deleted event, got %+v", last)
	}

	if err := svc.Delete(ctx, object.Filename); !errors.Is(err, ErrMediaNotFound) {
		t.Fatalf("expected ErrMediaNotFound, got %v", err)
	}
	if _, err := svc.Open(ctx, "no-such-file.png"); !errors.Is(err, ErrMediaNotFound) {
		t.Fatalf("expected ErrMediaNotFound, got %v", err)
	}
}

func TestPublisherFailureDoesNotFailUpload(t *testing.T) {
	svc := newMediaService(t, &stubPublisher{err: errors.New("broker down")})

	if _, err := svc.Upload(context.Background(), upload("ok.png", "xyz")); err != nil {
		t.Fatalf("Upload should succeed despite publisher failure: %v", err)
	}
}
