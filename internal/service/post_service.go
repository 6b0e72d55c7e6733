package service

import (
	"context"
	"errors"
	"log"
	"time"

	"yatube/internal/models"
	"yatube/internal/repository"
)

// EventPublisher announces stored posts. Failures never undo a mutation.
type EventPublisher interface {
	PublishPostCreated(ctx context.Context, post *models.Post) error
	PublishPostUpdated(ctx context.Context, post *models.Post) error
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
}

// CreatePostRequest is the submitted post form. A nil or empty Group means
// no group.
type CreatePostRequest struct {
	AuthorID string  `json:"-"`
	Text     string  `json:"text"`
	Group    *string `json:"group"`
}

// UpdatePostRequest carries only the supplied fields. Group pointing at an
// empty string clears the post's group.
type UpdatePostRequest struct {
	RequesterID string  `json:"-"`
	PostID      string  `json:"-"`
	Text        *string `json:"text"`
	Group       *string `json:"group"`
}

type postService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	publisher EventPublisher
	now       func() time.Time
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository, publisher EventPublisher) PostService {
	return newPostService(postRepo, groupRepo, publisher, time.Now)
}

func newPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository, publisher EventPublisher, now func() time.Time) *postService {
	return &postService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		publisher: publisher,
		now:       now,
	}
}

func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	text, err := cleanText(req.Text)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     text,
		AuthorID: req.AuthorID,
		// postgres keeps microseconds
		PublishedAt: s.now().UTC().Truncate(time.Microsecond),
	}

	if req.Group != nil && *req.Group != "" {
		group, err := s.resolveGroup(ctx, *req.Group)
		if err != nil {
			return nil, err
		}
		post.GroupSlug = &group.Slug
		post.GroupTitle = &group.Title
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, mutationError("create post", post, err)
	}

	if err := s.publisher.PublishPostCreated(ctx, post); err != nil {
		log.Printf("Failed to publish post created event for %s: %v", post.PostID, err)
	}

	return post, nil
}

func (s *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*models.Post, error) {
	current, err := s.GetPost(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	// authorship is checked before the form is looked at
	if current.AuthorID != req.RequesterID {
		return nil, ErrForbidden
	}

	updated := *current

	if req.Text != nil {
		text, err := cleanText(*req.Text)
		if err != nil {
			return nil, err
		}
		updated.Text = text
	}

	if req.Group != nil {
		if *req.Group == "" {
			updated.GroupSlug = nil
			updated.GroupTitle = nil
		} else {
			group, err := s.resolveGroup(ctx, *req.Group)
			if err != nil {
				return nil, err
			}
			updated.GroupSlug = &group.Slug
			updated.GroupTitle = &group.Title
		}
	}

	if err := s.postRepo.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFoundError("post", req.PostID)
		}
		return nil, mutationError("update post", &updated, err)
	}

	if err := s.publisher.PublishPostUpdated(ctx, &updated); err != nil {
		log.Printf("Failed to publish post updated event for %s: %v", updated.PostID, err)
	}

	return &updated, nil
}

func (s *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFoundError("post", postID)
		}
		return nil, &StoreError{Op: "get post", Err: err}
	}

	return post, nil
}

// resolveGroup checks that the slug names an existing group
func (s *postService) resolveGroup(ctx context.Context, slug string) (*models.Group, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewValidationError("group", "unknown group")
		}
		return nil, &StoreError{Op: "get group", Err: err}
	}

	return group, nil
}

// mutationError maps a failed write. A group deleted between the lookup and
// the write surfaces as a foreign key violation.
func mutationError(op string, post *models.Post, err error) error {
	if post.GroupSlug != nil && errors.Is(err, repository.ErrForeignKey) {
		return NewValidationError("group", "unknown group")
	}
	return &StoreError{Op: op, Err: err}
}
