package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"yatube/internal/config"
	"yatube/internal/repository"
	"yatube/internal/service"
)

// HealthChecker is satisfied by *database.DB.
type HealthChecker interface {
	HealthCheck() error
}

type Handlers struct {
	AuthService    service.AuthService
	PostService    service.PostService
	ListingService service.ListingService
	GroupService   service.GroupService
	UserRepo       repository.UserRepository
	DB             HealthChecker
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, db HealthChecker, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		PostService:    services.Post,
		ListingService: services.Listing,
		GroupService:   services.Group,
		UserRepo:       repo.User,
		DB:             db,
		Cfg:            cfg,
		Validate:       service.NewValidator(),
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "База данных недоступна", http.StatusServiceUnavailable)
		return
	}

	writeSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
