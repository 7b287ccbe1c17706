package handlers

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/monastery360/api/internal/platform/auth"
	"github.com/monastery360/api/internal/platform/httpx"
	"github.com/monastery360/api/internal/services"
)

// multipartMemoryLimit bounds how much of an upload is buffered in memory;
// the rest spills to temp files.
const multipartMemoryLimit = 8 << 20

// MediaHandlers exposes file upload, download, and deletion.
type MediaHandlers struct {
	service  services.MediaService
	uploadMW []func(http.Handler) http.Handler
}

// MediaOption customises construction of MediaHandlers.
type MediaOption func(*MediaHandlers)

// WithMediaUploadMiddlewares sets the middleware chain guarding the mutating
// media endpoints.
func WithMediaUploadMiddlewares(mw ...func(http.Handler) http.Handler) MediaOption {
	return func(h *MediaHandlers) {
		h.uploadMW = append(h.uploadMW, mw...)
	}
}

// NewMediaHandlers constructs handlers for media endpoints.
func NewMediaHandlers(service services.MediaService, opts ...MediaOption) *MediaHandlers {
	handler := &MediaHandlers{service: service}
	for _, opt := range opts {
		if opt != nil {
			opt(handler)
		}
	}
	return handler
}

// Routes registers media endpoints against the provided router.
func (h *MediaHandlers) Routes(r chi.Router) {
	if r == nil {
		return
	}
	r.Get("/files/{filename}", h.download)

	r.Group(func(admin chi.Router) {
		for _, mw := range h.uploadMW {
			if mw != nil {
				admin.Use(mw)
			}
		}
		admin.Post("/upload", h.upload)
		admin.Post("/upload-multiple", h.uploadMultiple)
		admin.Delete("/files/{filename}", h.remove)
	})
}

func (h *MediaHandlers) upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		writeBadRequest(r.Context(), w, "invalid multipart request")
		return
	}
	defer cleanupMultipart(r)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeBadRequest(r.Context(), w, "file field is required")
		return
	}
	defer file.Close()

	object, err := h.service.Upload(r.Context(), uploadFromPart(r, file, header))
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, newMediaObjectView(object))
}

func (h *MediaHandlers) uploadMultiple(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		writeBadRequest(r.Context(), w, "invalid multipart request")
		return
	}
	defer cleanupMultipart(r)

	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		writeBadRequest(r.Context(), w, "files field is required")
		return
	}

	headers := r.MultipartForm.File["files"]
	uploads := make([]services.MediaUpload, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}()
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			writeBadRequest(r.Context(), w, "unreadable file part")
			return
		}
		opened = append(opened, file)
		uploads = append(uploads, uploadFromPart(r, file, header))
	}

	objects, err := h.service.UploadMany(r.Context(), uploads)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusCreated, newMediaObjectViews(objects))
}

func (h *MediaHandlers) download(w http.ResponseWriter, r *http.Request) {
	filename := strings.TrimSpace(chi.URLParam(r, "filename"))
	if filename == "" {
		writeBadRequest(r.Context(), w, "filename is required")
		return
	}
	stream, err := h.service.Open(r.Context(), filename)
	if err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	defer stream.Reader.Close()

	if stream.ContentType != "" {
		w.Header().Set("Content-Type", stream.ContentType)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, stream.Reader)
}

func (h *MediaHandlers) remove(w http.ResponseWriter, r *http.Request) {
	filename := strings.TrimSpace(chi.URLParam(r, "filename"))
	if filename == "" {
		writeBadRequest(r.Context(), w, "filename is required")
		return
	}
	if err := h.service.Delete(r.Context(), filename); err != nil {
		writeServiceError(r.Context(), w, err)
		return
	}
	httpx.WriteData(w, http.StatusOK, map[string]any{"deleted": filename})
}

func uploadFromPart(r *http.Request, file multipart.File, header *multipart.FileHeader) services.MediaUpload {
	upload := services.MediaUpload{
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Size:         header.Size,
		Reader:       file,
	}
	if identity, ok := auth.IdentityFromContext(r.Context()); ok {
		upload.UploadedBy = identity.UID
	}
	return upload
}

func cleanupMultipart(r *http.Request) {
	if r.MultipartForm != nil {
		_ = r.MultipartForm.RemoveAll()
	}
}
