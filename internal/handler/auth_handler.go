package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"blogapi/internal/models"
	"blogapi/internal/service"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeDecodeError(w, err)
		return
	}

	if err := models.Validator().Struct(req); err != nil {
		WriteError(w, msgLoginRequired, http.StatusBadRequest)
		return
	}

	token, expiresAt, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			slog.WarnContext(r.Context(), "failed login", "username", req.Username, "remote", r.RemoteAddr)
			WriteError(w, msgBadCredentials, http.StatusUnauthorized)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, LoginResponse{Token: token, ExpiresAt: expiresAt}, http.StatusOK)
}
