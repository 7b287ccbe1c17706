package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/monastery360/api/internal/platform/httpx"
	"github.com/monastery360/api/internal/services"
)

// writeServiceError maps service layer failures onto the canonical error
// envelope. Unknown errors become a generic 500 so internals never leak.
func writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case services.IsValidation(err):
		httpx.WriteError(ctx, w, httpx.NewError("validation_failed", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrMonasteryNotFound),
		errors.Is(err, services.ErrArtifactNotFound),
		errors.Is(err, services.ErrRitualNotFound),
		errors.Is(err, services.ErrHistoricalRecordNotFound),
		errors.Is(err, services.ErrMediaNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrNoAudioGuide):
		httpx.WriteError(ctx, w, httpx.NewError("not_found", err.Error(), http.StatusNotFound))
	case errors.Is(err, services.ErrMonasterySlugTaken),
		errors.Is(err, services.ErrEmailTaken):
		httpx.WriteError(ctx, w, httpx.NewError("conflict", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrNotPlaying),
		errors.Is(err, services.ErrNotPaused):
		httpx.WriteError(ctx, w, httpx.NewError("conflict", err.Error(), http.StatusConflict))
	case errors.Is(err, services.ErrSearchQueryTooShort),
		errors.Is(err, services.ErrEmptyChatMessage),
		errors.Is(err, services.ErrFileTypeNotAllowed),
		errors.Is(err, services.ErrFileTooLarge),
		errors.Is(err, services.ErrTooManyFiles),
		errors.Is(err, services.ErrEmptyUpload):
		httpx.WriteError(ctx, w, httpx.NewError("bad_request", err.Error(), http.StatusBadRequest))
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidRefreshToken):
		httpx.WriteError(ctx, w, httpx.NewError("unauthorized", err.Error(), http.StatusUnauthorized))
	case errors.Is(err, services.ErrUserInactive):
		httpx.WriteError(ctx, w, httpx.NewError("forbidden", err.Error(), http.StatusForbidden))
	default:
		httpx.WriteError(ctx, w, httpx.NewError("internal_error", "something went wrong", http.StatusInternalServerError).WithStack(err.Error()))
	}
}

func writeBadRequest(ctx context.Context, w http.ResponseWriter, message string) {
	httpx.WriteError(ctx, w, httpx.NewError("bad_request", message, http.StatusBadRequest))
}
