package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/msomdec/user-directory/internal/domain"
	"github.com/msomdec/user-directory/internal/screen"
	"github.com/msomdec/user-directory/internal/service"
	"github.com/msomdec/user-directory/internal/view"
	datastar "github.com/starfederation/datastar-go/datastar"
)

// UserHandler serves the user-list page, its reactive fragments, and
// the detail/edit modal choreography.
type UserHandler struct {
	directory *service.DirectoryService
	screens   *screen.Store
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(directory *service.DirectoryService, screens *screen.Store) *UserHandler {
	return &UserHandler{directory: directory, screens: screens}
}

// listSignals are the client-side signals driving the list view.
type listSignals struct {
	Search string `json:"search"`
	SortBy string `json:"sortBy"`
}

// editSignals are the client-side signals bound to the edit dialog.
type editSignals struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Country string `json:"country"`
}

// HandleUsersPage renders the user-list page. The full list is fetched
// once per mount; a fetch failure degrades to the empty list state.
// GET /users
func (h *UserHandler) HandleUsersPage(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	users, err := h.directory.List(r.Context())
	if err != nil {
		slog.Error("fetch user list", "error", err)
		users = nil
	}

	var (
		derived []domain.User
		search  string
		sortKey screen.SortKey
	)
	h.screens.Get(user.ID).Update(func(list *screen.ListController, modal *screen.Orchestrator) {
		list.SetUsers(users)
		derived = list.Derived()
		search = list.Search()
		sortKey = list.SortKey()
	})

	view.UsersPage(user.Name, derived, search, sortKey).Render(r.Context(), w)
}

// HandleListFragment re-derives the visible list from the search and
// sort signals and patches the list fragment.
// GET /users/list
func (h *UserHandler) HandleListFragment(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var sig listSignals
	if err := datastar.ReadSignals(r, &sig); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var derived []domain.User
	h.screens.Get(user.ID).Update(func(list *screen.ListController, modal *screen.Orchestrator) {
		list.SetSearch(sig.Search)
		if err := list.SetSortKey(screen.SortKey(sig.SortBy)); err != nil {
			slog.Warn("ignore unknown sort key", "key", sig.SortBy)
		}
		derived = list.Derived()
	})

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.UserListFragment(derived))
}

// HandleProfileOpen opens the detail dialog over the signed-in admin's
// own record. The record is read fresh rather than taken from the
// cached list, so the dialog works even when the admin has filtered
// themselves out of view. The edit/cancel/save choreography is the
// same as for any other selection.
// POST /profile/open
func (h *UserHandler) HandleProfileOpen(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	current, err := h.directory.GetByID(r.Context(), user.ID)
	if err != nil {
		slog.Error("load own profile", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var selErr error
	h.screens.Get(user.ID).Update(func(list *screen.ListController, modal *screen.Orchestrator) {
		selErr = modal.Select(*current)
	})
	if selErr != nil {
		http.Error(w, "Conflict", http.StatusConflict)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.UserDetailModal(*current))
}

// HandleSelect opens the detail dialog for one user from the cached
// list. Selecting while another dialog is open releases it first.
// POST /users/{id}/select
func (h *UserHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var (
		selected domain.User
		found    bool
		selErr   error
	)
	h.screens.Get(user.ID).Update(func(list *screen.ListController, modal *screen.Orchestrator) {
		selected, found = list.Get(id)
		if found {
			selErr = modal.Select(selected)
		}
	})

	if !found {
		http.Error(w, "Not Found", http.StatusNotFound)
		return
	}
	if selErr != nil {
		http.Error(w, "Conflict", http.StatusConflict)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.UserDetailModal(selected))
}

// HandleModalClose dismisses the detail dialog.
// POST /users/modal/close
func (h *UserHandler) HandleModalClose(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var closeErr error
	h.screens.Get(user.ID).Update(func(list *screen.ListController, modal *screen.Orchestrator) {
		closeErr = modal.Close()
	})
	if closeErr != nil {
		http.Error(w, "Conflict", http.StatusConflict)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.ModalClosedFragment())
}

// HandleModalEdit swaps the detail dialog for the edit dialog, seeding
// the draft from the selected user.
// POST /users/modal/edit
func (h *UserHandler) HandleModalEdit(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var (
		draft   screen.Draft
		editErr error
	)
	h.screens.Get(user.ID).Update(func(list *screen.ListController, modal *screen.Orchestrator) {
		if editErr = modal.RequestEdit(); editErr == nil {
			draft, _ = modal.Draft()
		}
	})
	if editErr != nil {
		http.Error(w, "Conflict", http.StatusConflict)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.EditUserModal(draft, ""))
}

// HandleModalCancel discards the draft and restores the detail dialog
// with the original, pre-edit user.
// POST /users/modal/cancel
func (h *UserHandler) HandleModalCancel(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var (
		original  domain.User
		cancelErr error
	)
	h.screens.Get(user.ID).Update(func(list *screen.ListController, modal *screen.Orchestrator) {
		if cancelErr = modal.Cancel(); cancelErr == nil {
			original, _ = modal.Selected()
		}
	})
	if cancelErr != nil {
		http.Error(w, "Conflict", http.StatusConflict)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.UserDetailModal(original))
}

// HandleModalSave folds the edit signals into the draft and submits it.
// Success closes the edit dialog, reopens the detail dialog with the
// confirmed record, and updates the cached list copy in place. Failure
// keeps the edit dialog open with the draft intact; there is no
// automatic retry.
// POST /users/modal/save
func (h *UserHandler) HandleModalSave(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var sig editSignals
	if err := datastar.ReadSignals(r, &sig); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var (
		patches []templ.Component
		opErr   error
	)
	h.screens.Get(user.ID).Update(func(list *screen.ListController, modal *screen.Orchestrator) {
		if opErr = applyEditSignals(modal, sig); opErr != nil {
			return
		}

		draft, err := modal.BeginSave()
		if err != nil {
			opErr = err
			return
		}

		updated, err := h.directory.UpdateProfile(r.Context(), draft.Profile())
		if err != nil {
			modal.SaveFailed()
			msg := "Could not save changes. Please try again."
			if errors.Is(err, domain.ErrInvalidInput) {
				msg = "Name, email, address, and country are all required."
			} else {
				slog.Error("save user profile", "error", err)
			}
			patches = append(patches, view.EditUserModal(draft, msg))
			return
		}

		modal.SaveSucceeded(*updated)
		list.ApplyUpdate(*updated)
		patches = append(patches,
			view.UserDetailModal(*updated),
			view.UserListFragment(list.Derived()),
		)
	})
	if opErr != nil {
		http.Error(w, "Conflict", http.StatusConflict)
		return
	}

	sse := datastar.NewSSE(w, r)
	for _, p := range patches {
		sse.PatchElementTempl(p)
	}
}

// applyEditSignals folds each bound input into the draft one field at a
// time. A field that is absent on the draft and still empty in the
// signals stays absent instead of being coerced to "".
func applyEditSignals(modal *screen.Orchestrator, sig editSignals) error {
	return modal.EditDraft(func(d screen.Draft) screen.Draft {
		d = d.WithName(sig.Name)
		d = d.WithEmail(sig.Email)
		if sig.Address != "" || d.Address() != "" {
			d = d.WithAddress(sig.Address)
		}
		if sig.Country != "" || d.Country() != "" {
			d = d.WithCountry(sig.Country)
		}
		return d
	})
}
