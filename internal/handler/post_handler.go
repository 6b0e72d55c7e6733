package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/mux"
	"yatube/internal/models"
	"yatube/internal/service"
)

// PostForm is the submitted create/edit form. Absent fields stay nil.
type PostForm struct {
	Text  *string `json:"text"`
	Group *string `json:"group"`
}

type PostDetailResponse struct {
	Post            *models.Post `json:"post"`
	AuthorPostCount int          `json:"authorPostCount"`
	Published       string       `json:"published"`
}

type EditFormResponse struct {
	PostID string         `json:"postId"`
	IsEdit bool           `json:"isEdit"`
	Form   PostForm       `json:"form"`
	Groups []models.Group `json:"groups"`
}

// decodePostForm accepts both a JSON body and an urlencoded html form.
func decodePostForm(r *http.Request) (PostForm, error) {
	var form PostForm

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return form, err
		}
		if values, ok := r.PostForm["text"]; ok && len(values) > 0 {
			form.Text = &values[0]
		}
		if values, ok := r.PostForm["group"]; ok && len(values) > 0 {
			form.Group = &values[0]
		}
		return form, nil
	}

	err := json.NewDecoder(r.Body).Decode(&form)
	return form, err
}

func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	page, err := h.ListingService.Index(r.Context(), r.URL.Query().Get("page"))
	if err != nil {
		writeServiceError(w, err, nil)
		return
	}

	writeSuccess(w, page, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.GetPost(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err, nil)
		return
	}

	count, err := h.ListingService.AuthorPostCount(r.Context(), post.AuthorID)
	if err != nil {
		writeServiceError(w, err, nil)
		return
	}

	writeSuccess(w, PostDetailResponse{
		Post:            post,
		AuthorPostCount: count,
		Published:       humanize.Time(post.PublishedAt),
	}, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	form, err := decodePostForm(r)
	if err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	req := service.CreatePostRequest{
		AuthorID: user.UserID,
		Group:    form.Group,
	}
	if form.Text != nil {
		req.Text = *form.Text
	}

	post, err := h.PostService.CreatePost(r.Context(), req)
	if err != nil {
		writeServiceError(w, err, form)
		return
	}

	// the new post shows up first in the author's profile
	w.Header().Set("Location", "/api/profile/"+user.Username)
	writeSuccess(w, post, http.StatusCreated)
}

// EditPostForm returns the current values for the edit form. Anyone but the
// author is sent back to the post page.
func (h *Handlers) EditPostForm(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err, nil)
		return
	}

	if post.AuthorID != user.UserID {
		redirectToPost(w, r, postID)
		return
	}

	groups, err := h.GroupService.ListGroups(r.Context())
	if err != nil {
		writeServiceError(w, err, nil)
		return
	}

	group := ""
	if post.GroupSlug != nil {
		group = *post.GroupSlug
	}

	writeSuccess(w, EditFormResponse{
		PostID: post.PostID,
		IsEdit: true,
		Form:   PostForm{Text: &post.Text, Group: &group},
		Groups: groups,
	}, http.StatusOK)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID := mux.Vars(r)["id"]

	form, err := decodePostForm(r)
	if err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), service.UpdatePostRequest{
		RequesterID: user.UserID,
		PostID:      postID,
		Text:        form.Text,
		Group:       form.Group,
	})
	if err != nil {
		if service.IsAuthorization(err) {
			redirectToPost(w, r, postID)
			return
		}
		writeServiceError(w, err, form)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func redirectToPost(w http.ResponseWriter, r *http.Request, postID string) {
	http.Redirect(w, r, "/api/posts/"+postID, http.StatusFound)
}
