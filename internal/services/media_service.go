package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/platform/requestctx"
	"github.com/monastery360/api/internal/platform/storage"
)

// DefaultMaxUploadBytes caps a single uploaded file at 10 MiB.
const DefaultMaxUploadBytes = 10 << 20

// DefaultMaxUploadFiles caps a multi-file upload batch.
const DefaultMaxUploadFiles = 10

// allowedExtensions is the upload allow-list: images, video, audio, and the
// document formats curators attach to records.
var allowedExtensions = map[string]struct{}{
	".jpeg": {}, ".jpg": {}, ".png": {}, ".gif": {}, ".webp": {},
	".mp4": {}, ".webm": {}, ".ogg": {},
	".pdf": {}, ".doc": {}, ".docx": {},
}

var (
	// ErrMediaNotFound indicates the requested file does not exist.
	ErrMediaNotFound = errors.New("media: file not found")
	// ErrFileTypeNotAllowed indicates the upload extension is outside the allow-list.
	ErrFileTypeNotAllowed = errors.New("media: file type not allowed")
	// ErrFileTooLarge indicates the upload exceeds the size limit.
	ErrFileTooLarge = errors.New("media: file too large")
	// ErrTooManyFiles indicates a batch upload exceeds the file count limit.
	ErrTooManyFiles = errors.New("media: too many files in one upload")
	// ErrEmptyUpload indicates the upload carried no content.
	ErrEmptyUpload = errors.New("media: empty upload")
)

// MediaUpload is one incoming file.
type MediaUpload struct {
	OriginalName string
	ContentType  string
	Size         int64
	Reader       io.Reader
	UploadedBy   string
}

// MediaStream is an opened stored file ready to serve.
type MediaStream struct {
	Filename    string
	ContentType string
	Reader      io.ReadCloser
}

// MediaServiceDeps bundles the dependencies for the media service.
type MediaServiceDeps struct {
	Store     storage.BlobStore
	Publisher MediaEventPublisher
	MaxBytes  int64
	MaxFiles  int
	Clock     func() time.Time
}

type mediaService struct {
	store     storage.BlobStore
	publisher MediaEventPublisher
	maxBytes  int64
	maxFiles  int
	clock     func() time.Time
}

// NewMediaService wires dependencies into a MediaService. The publisher is
// optional; without one, lifecycle events are simply not emitted.
func NewMediaService(deps MediaServiceDeps) (MediaService, error) {
	if deps.Store == nil {
		return nil, errors.New("media service: blob store is required")
	}
	if deps.MaxBytes <= 0 {
		deps.MaxBytes = DefaultMaxUploadBytes
	}
	if deps.MaxFiles <= 0 {
		deps.MaxFiles = DefaultMaxUploadFiles
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	return &mediaService{
		store:     deps.Store,
		publisher: deps.Publisher,
		maxBytes:  deps.MaxBytes,
		maxFiles:  deps.MaxFiles,
		clock:     clock,
	}, nil
}

func (s *mediaService) Upload(ctx context.Context, upload MediaUpload) (domain.MediaObject, error) {
	ext, err := s.validate(upload)
	if err != nil {
		return domain.MediaObject{}, err
	}

	filename := strings.ToLower(ulid.Make().String()) + ext
	contentType := upload.ContentType
	if contentType == "" {
		contentType = storage.ContentTypeForName(filename)
	}

	// LimitReader with one spare byte catches bodies whose declared size lied.
	limited := io.LimitReader(upload.Reader, s.maxBytes+1)
	size, err := s.store.Write(ctx, filename, contentType, limited)
	if err != nil {
		return domain.MediaObject{}, fmt.Errorf("store upload: %w", err)
	}
	if size > s.maxBytes {
		if delErr := s.store.Delete(ctx, filename); delErr != nil {
			requestctx.Logger(ctx).Warn("orphaned oversized upload", zap.String("filename", filename), zap.Error(delErr))
		}
		return domain.MediaObject{}, ErrFileTooLarge
	}
	if size == 0 {
		if delErr := s.store.Delete(ctx, filename); delErr != nil {
			requestctx.Logger(ctx).Warn("orphaned empty upload", zap.String("filename", filename), zap.Error(delErr))
		}
		return domain.MediaObject{}, ErrEmptyUpload
	}

	object := domain.MediaObject{
		Filename:     filename,
		OriginalName: upload.OriginalName,
		ContentType:  contentType,
		Size:         size,
		URL:          s.store.URL(filename),
		UploadedBy:   upload.UploadedBy,
		UploadedAt:   s.clock().UTC(),
	}
	s.publish(ctx, MediaEventUploaded, object)
	return object, nil
}

func (s *mediaService) UploadMany(ctx context.Context, uploads []MediaUpload) ([]domain.MediaObject, error) {
	if len(uploads) == 0 {
		return nil, ErrEmptyUpload
	}
	if len(uploads) > s.maxFiles {
		return nil, ErrTooManyFiles
	}

	objects := make([]domain.MediaObject, 0, len(uploads))
	for _, upload := range uploads {
		object, err := s.Upload(ctx, upload)
		if err != nil {
			// Roll back already-stored files so a failed batch leaves nothing behind.
			for _, stored := range objects {
				if delErr := s.store.Delete(ctx, stored.Filename); delErr != nil {
					requestctx.Logger(ctx).Warn("batch rollback failed", zap.String("filename", stored.Filename), zap.Error(delErr))
				}
			}
			return nil, err
		}
		objects = append(objects, object)
	}
	return objects, nil
}

func (s *mediaService) Open(ctx context.Context, filename string) (MediaStream, error) {
	filename = strings.TrimSpace(filename)
	reader, contentType, err := s.store.Open(ctx, filename)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) || errors.Is(err, storage.ErrInvalidName) {
			return MediaStream{}, ErrMediaNotFound
		}
		return MediaStream{}, fmt.Errorf("open media: %w", err)
	}
	return MediaStream{Filename: filename, ContentType: contentType, Reader: reader}, nil
}

func (s *mediaService) Delete(ctx context.Context, filename string) error {
	filename = strings.TrimSpace(filename)
	if err := s.store.Delete(ctx, filename); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) || errors.Is(err, storage.ErrInvalidName) {
			return ErrMediaNotFound
		}
		return fmt.Errorf("delete media: %w", err)
	}
	s.publish(ctx, MediaEventDeleted, domain.MediaObject{Filename: filename, URL: s.store.URL(filename)})
	return nil
}

// validate checks the declared upload metadata and returns the extension.
func (s *mediaService) validate(upload MediaUpload) (string, error) {
	if upload.Reader == nil {
		return "", ErrEmptyUpload
	}
	ext := strings.ToLower(path.Ext(strings.TrimSpace(upload.OriginalName)))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", ErrFileTypeNotAllowed
	}
	if upload.Size > s.maxBytes {
		return "", ErrFileTooLarge
	}
	return ext, nil
}

// publish emits the lifecycle event; failures are logged, never surfaced,
// since the upload itself has already succeeded.
func (s *mediaService) publish(ctx context.Context, event string, object domain.MediaObject) {
	if s.publisher == nil {
		return
	}
	message := MediaEventMessage{
		Event:       event,
		Filename:    object.Filename,
		URL:         object.URL,
		ContentType: object.ContentType,
		SizeBytes:   object.Size,
		UploadedBy:  object.UploadedBy,
		OccurredAt:  s.clock().UTC(),
	}
	if _, err := s.publisher.PublishMediaEvent(ctx, message); err != nil {
		requestctx.Logger(ctx).Warn("publish media event failed",
			zap.String("event", event),
			zap.String("filename", object.Filename),
			zap.Error(err),
		)
	}
}
