package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"yatube/internal/models"
	"yatube/internal/repository"
)

type UserResponse struct {
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      string `json:"role,omitempty"`
}

type ProfileResponse struct {
	Author    UserResponse `json:"author"`
	PostCount int          `json:"postCount"`
	Page      *models.Page `json:"page"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{
		UserID:    user.UserID,
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}
}

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	current, ok := UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	user, err := h.UserRepo.GetUserByID(r.Context(), current.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Пользователь не найден", http.StatusNotFound)
			return
		}
		writeServiceError(w, err, nil)
		return
	}

	writeSuccess(w, newUserResponse(user), http.StatusOK)
}

// Profile lists the author's posts. The public view leaves out contact data.
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	user, page, err := h.ListingService.Profile(r.Context(), username, r.URL.Query().Get("page"))
	if err != nil {
		writeServiceError(w, err, nil)
		return
	}

	author := newUserResponse(user)
	author.Email = ""
	author.Role = ""

	writeSuccess(w, ProfileResponse{
		Author:    author,
		PostCount: page.TotalCount,
		Page:      page,
	}, http.StatusOK)
}
