package app

import (
	"net/http"

	"github.com/gorilla/mux"
	handlers "yatube/internal/handler"
	"yatube/internal/middleware"
	"yatube/internal/models"
	"yatube/internal/service"
)

func NewRouter(h *handlers.Handlers, authService service.AuthService) http.Handler {
	auth := middleware.AuthMiddleware(authService)
	admin := func(next http.HandlerFunc) http.Handler {
		return middleware.Chain(next, middleware.RoleMiddleware(models.RoleAdmin), auth)
	}
	private := func(next http.HandlerFunc) http.Handler {
		return auth(next)
	}

	r := mux.NewRouter()

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/signup", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/refresh-token", h.RefreshToken).Methods(http.MethodPost)
	r.Handle("/api/me", private(h.GetCurrentUser)).Methods(http.MethodGet)

	r.HandleFunc("/api/posts", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/api/posts/{id}", h.GetPost).Methods(http.MethodGet)
	r.Handle("/api/posts/{id}/edit", private(h.EditPostForm)).Methods(http.MethodGet)
	r.Handle("/api/posts/{id}/edit", private(h.UpdatePost)).Methods(http.MethodPost)
	r.Handle("/api/create", private(h.CreatePost)).Methods(http.MethodPost)

	r.HandleFunc("/api/group/{slug}", h.GroupPosts).Methods(http.MethodGet)
	r.HandleFunc("/api/profile/{username}", h.Profile).Methods(http.MethodGet)

	r.HandleFunc("/api/groups", h.ListGroups).Methods(http.MethodGet)
	r.Handle("/api/groups", admin(h.CreateGroup)).Methods(http.MethodPost)
	r.Handle("/api/groups/{slug}", admin(h.DeleteGroup)).Methods(http.MethodDelete)

	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
	})
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, "Страница не найдена", http.StatusNotFound)
	})

	var origins []string
	if h.Cfg != nil {
		origins = h.Cfg.CORSAllowedOrigins
	}

	return middleware.Chain(r, middleware.CORSMiddleware(origins), middleware.LoggingMiddleware)
}
