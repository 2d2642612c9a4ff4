package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/user-directory/internal/domain"
	"github.com/msomdec/user-directory/internal/service"
	"github.com/msomdec/user-directory/internal/view"
)

// RoleHandler serves the role-management flow the detail dialog links to.
type RoleHandler struct {
	directory *service.DirectoryService
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(directory *service.DirectoryService) *RoleHandler {
	return &RoleHandler{directory: directory}
}

// HandleRolePage renders the role form for one user, addressed by their
// stable external identifier.
// GET /users/roles/{userId}
func (h *RoleHandler) HandleRolePage(w http.ResponseWriter, r *http.Request) {
	user, err := h.directory.GetByUserID(r.Context(), r.PathValue("userId"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		slog.Error("load user for role page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.RolePage(*user, "").Render(r.Context(), w)
}

// HandleRoleUpdate applies a role change and returns to the user list.
// POST /users/roles/{userId}
func (h *RoleHandler) HandleRoleUpdate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	userID := r.PathValue("userId")
	_, err := h.directory.ChangeRole(r.Context(), userID, r.FormValue("role"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			user, getErr := h.directory.GetByUserID(r.Context(), userID)
			if getErr != nil {
				http.Error(w, "Not Found", http.StatusNotFound)
				return
			}
			view.RolePage(*user, "Role is required.").Render(r.Context(), w)
			return
		}
		slog.Error("change user role", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/users", http.StatusSeeOther)
}
