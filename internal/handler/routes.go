package handler

import (
	"net/http"

	"github.com/msomdec/user-directory/internal/screen"
	"github.com/msomdec/user-directory/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	directory *service.DirectoryService,
	screens *screen.Store,
	limiter *service.LoginLimiter,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, limiter, cookieSecure)
	userHandler := NewUserHandler(directory, screens)
	profileHandler := NewProfileHandler(directory)
	roleHandler := NewRoleHandler(directory)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.Handle("GET /{$}", OptionalAuth(auth, http.HandlerFunc(HandleHome)))
	mux.Handle("GET /login", OptionalAuth(auth, http.HandlerFunc(authHandler.HandleLoginPage)))
	mux.HandleFunc("POST /login", authHandler.HandleLogin)
	mux.HandleFunc("POST /logout", authHandler.HandleLogout)

	// User list page and its SSE fragments.
	mux.Handle("GET /users", OptionalAuth(auth, http.HandlerFunc(userHandler.HandleUsersPage)))
	mux.Handle("GET /users/list", RequireAuth(auth, http.HandlerFunc(userHandler.HandleListFragment)))
	mux.Handle("POST /users/{id}/select", RequireAuth(auth, http.HandlerFunc(userHandler.HandleSelect)))
	mux.Handle("POST /users/modal/close", RequireAuth(auth, http.HandlerFunc(userHandler.HandleModalClose)))
	mux.Handle("POST /users/modal/edit", RequireAuth(auth, http.HandlerFunc(userHandler.HandleModalEdit)))
	mux.Handle("POST /users/modal/cancel", RequireAuth(auth, http.HandlerFunc(userHandler.HandleModalCancel)))
	mux.Handle("POST /users/modal/save", RequireAuth(auth, http.HandlerFunc(userHandler.HandleModalSave)))

	// Own-profile dialog opened from the header menu; shares the modal
	// edit/cancel/save endpoints above.
	mux.Handle("POST /profile/open", RequireAuth(auth, http.HandlerFunc(userHandler.HandleProfileOpen)))

	// Role-management flow linked from the detail dialog.
	mux.Handle("GET /users/roles/{userId}", RequireAuth(auth, http.HandlerFunc(roleHandler.HandleRolePage)))
	mux.Handle("POST /users/roles/{userId}", RequireAuth(auth, http.HandlerFunc(roleHandler.HandleRoleUpdate)))

	// JSON API.
	mux.Handle("GET /api/users", RequireAuth(auth, http.HandlerFunc(profileHandler.HandleList)))
	mux.Handle("PUT /api/users/profile", RequireAuth(auth, http.HandlerFunc(profileHandler.HandleUpdateProfile)))
}
