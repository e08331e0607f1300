package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/eventboard/eventboard-api/internal/api/shared"
	"github.com/eventboard/eventboard-api/internal/platform/imghost"
	"github.com/eventboard/eventboard-api/internal/platform/logger"
)

// maxImageUploadBytes bounds the multipart form held in memory.
const maxImageUploadBytes = 32 << 20

// ImageHandler proxies image uploads and deletions to the external
// image host.
type ImageHandler struct {
	images imghost.Service
	logger *slog.Logger
}

// NewImageHandler creates a new ImageHandler with the given dependencies.
func NewImageHandler(images imghost.Service, log *slog.Logger) *ImageHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ImageHandler{
		images: images,
		logger: log.With("component", "image_handler"),
	}
}

// Upload handles POST /api/uploadImage. Requires the authentication gate.
// Expects a single multipart file field named "image".
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if _, ok := requireIdentity(w, r); !ok {
		return
	}

	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "image file is required")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "image file is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		log.Error("failed to read uploaded file", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	result, err := h.images.Upload(r.Context(), data)
	if err != nil {
		// Provider failures and a missing API key both surface as 500.
		if !errors.Is(err, imghost.ErrMissingAPIKey) {
			log.Error("image upload failed", "error", err)
		}
		shared.RespondWithError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ImageUploadResponse{
		URL:       result.URL,
		DeleteURL: result.DeleteURL,
	})
}

// Delete handles POST /api/deleteImage. Requires the authentication gate.
// Issues a retrieval request to the provider-supplied delete URL.
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if _, ok := requireIdentity(w, r); !ok {
		return
	}

	var req ImageDeleteRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	deleteURL := strings.TrimSpace(req.DeleteURL)
	if deleteURL == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "delete_url is required")
		return
	}

	if err := h.images.Delete(r.Context(), deleteURL); err != nil {
		log.Error("image delete failed", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{OK: true})
}
