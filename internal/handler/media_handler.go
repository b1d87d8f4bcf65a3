package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"blogapi/internal/metrics"
	"blogapi/internal/service"
)

// multipartOverhead leaves room for the form boundaries around the file.
const multipartOverhead = 1 << 20

func (h *Handlers) UploadMedia(w http.ResponseWriter, r *http.Request) {
	maxUpload := h.Cfg.MaxUploadSize
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload+multipartOverhead)

	// setting the size limit from the config
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, fmt.Sprintf("File is too large (max %d MB)", maxUpload/(1024*1024)), http.StatusRequestEntityTooLarge)
		} else {
			WriteError(w, "Failed to process the upload", http.StatusBadRequest)
		}
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	media, err := h.MediaService.Upload(r.Context(), header.Filename, file, header.Size)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			WriteError(w, validationErr.Message, http.StatusBadRequest)
			return
		}
		slog.ErrorContext(r.Context(), "media upload failed", "file", header.Filename, "error", err)
		WriteError(w, "Failed to upload image", http.StatusInternalServerError)
		return
	}

	metrics.MediaBytesTotal.Add(float64(media.Size))
	writeSuccess(w, media, http.StatusCreated)
}

func (h *Handlers) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	object := mux.Vars(r)["object"]

	if err := h.MediaService.Delete(r.Context(), object); err != nil {
		slog.ErrorContext(r.Context(), "media delete failed", "object", object, "error", err)
		WriteError(w, "Failed to delete image", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, MessageResponse{Message: msgMediaDeleted}, http.StatusOK)
}
