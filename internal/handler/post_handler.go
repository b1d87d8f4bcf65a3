package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"blogapi/internal/metrics"
	"blogapi/internal/models"
	"blogapi/internal/service"
)

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context())
	recordPostOperation("list", err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		WriteError(w, msgPostNotFound, http.StatusNotFound)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), id)
	recordPostOperation("get", err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	in, err := h.decodePostInput(w, r)
	if err != nil {
		writeDecodeError(w, err)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), in)
	recordPostOperation("create", err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, post, http.StatusCreated)
}

// UpdatePost replaces all five editable fields of the post.
func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		WriteError(w, msgPostNotFound, http.StatusNotFound)
		return
	}

	in, err := h.decodePostInput(w, r)
	if err != nil {
		writeDecodeError(w, err)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), id, in)
	recordPostOperation("update", err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(r)
	if !ok {
		WriteError(w, msgPostNotFound, http.StatusNotFound)
		return
	}

	_, err := h.PostService.DeletePost(r.Context(), id)
	recordPostOperation("delete", err)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: msgPostDeleted}, http.StatusOK)
}

// postID reads the {id} path variable. Anything that is not a positive
// integer cannot name a post.
func postID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handlers) decodePostInput(w http.ResponseWriter, r *http.Request) (models.PostInput, error) {
	var in models.PostInput

	if h.Cfg != nil && h.Cfg.MaxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxBodySize)
	}

	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		return in, err
	}
	return in, nil
}

func recordPostOperation(op string, err error) {
	var validationErr *service.ValidationError
	var notFoundErr *service.NotFoundError

	switch {
	case err == nil:
		metrics.RecordPostOperation(op, "ok")
	case errors.As(err, &validationErr):
		metrics.RecordPostOperation(op, "invalid")
	case errors.As(err, &notFoundErr):
		metrics.RecordPostOperation(op, "not_found")
	default:
		metrics.RecordPostOperation(op, "error")
	}
}
