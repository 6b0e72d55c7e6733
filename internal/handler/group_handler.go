package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"yatube/internal/models"
	"yatube/internal/service"
)

type GroupPageResponse struct {
	Group *models.Group `json:"group"`
	Page  *models.Page  `json:"page"`
}

func (h *Handlers) GroupPosts(w http.ResponseWriter, r *http.Request) {
	group, page, err := h.ListingService.GroupPosts(r.Context(), mux.Vars(r)["slug"], r.URL.Query().Get("page"))
	if err != nil {
		writeServiceError(w, err, nil)
		return
	}

	writeSuccess(w, GroupPageResponse{Group: group, Page: page}, http.StatusOK)
}

func (h *Handlers) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.GroupService.ListGroups(r.Context())
	if err != nil {
		writeServiceError(w, err, nil)
		return
	}

	writeSuccess(w, groups, http.StatusOK)
}

func (h *Handlers) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req service.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	group, err := h.GroupService.CreateGroup(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, req)
		return
	}

	writeSuccess(w, group, http.StatusCreated)
}

func (h *Handlers) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.GroupService.DeleteGroup(r.Context(), mux.Vars(r)["slug"]); err != nil {
		writeServiceError(w, err, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
