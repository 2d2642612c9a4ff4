package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/user-directory/internal/domain"
	"github.com/msomdec/user-directory/internal/service"
)

// ProfileHandler exposes the directory's JSON API: the full user list
// and the single profile-update endpoint.
type ProfileHandler struct {
	directory *service.DirectoryService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(directory *service.DirectoryService) *ProfileHandler {
	return &ProfileHandler{directory: directory}
}

// HandleList returns the full ordered user list.
// GET /api/users
func (h *ProfileHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.directory.List(r.Context())
	if err != nil {
		slog.Error("list users", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toUserDTOs(users))
}

// HandleUpdateProfile applies a profile update with replace semantics.
// All four editable fields plus the id are required; the password and
// every other field are never touched through this path. The success
// payload carries the updated id as a string.
// PUT /api/users/profile
// Request:  {"id":1,"name":"...","email":"...","address":"...","country":"..."}
// Response: {"message":"...","user":{"id":"1"}}
func (h *ProfileHandler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID      int64  `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Address string `json:"address"`
		Country string `json:"country"`
	}
	if err := readJSON(r, &req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ID == 0 || req.Name == "" || req.Email == "" || req.Address == "" || req.Country == "" {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	updated, err := h.directory.UpdateProfile(r.Context(), domain.ProfileUpdate{
		ID:      req.ID,
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
		Country: req.Country,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeMessage(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		slog.Error("update user profile", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "User profile is updated successfully",
		"user": map[string]string{
			"id": strconv.FormatInt(updated.ID, 10),
		},
	})
}
