package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"yatube/internal/models"
	"yatube/internal/repository"
)

type GroupService interface {
	ListGroups(ctx context.Context) ([]models.Group, error)
	GetGroup(ctx context.Context, slug string) (*models.Group, error)
	CreateGroup(ctx context.Context, req CreateGroupRequest) (*models.Group, error)
	DeleteGroup(ctx context.Context, slug string) error
}

type CreateGroupRequest struct {
	Slug        string `json:"slug" validate:"required,max=50,slug"`
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
}

type groupService struct {
	groupRepo repository.GroupRepository
	validate  *validator.Validate
}

func NewGroupService(groupRepo repository.GroupRepository, validate *validator.Validate) GroupService {
	return &groupService{
		groupRepo: groupRepo,
		validate:  validate,
	}
}

func (s *groupService) ListGroups(ctx context.Context) ([]models.Group, error) {
	groups, err := s.groupRepo.List(ctx)
	if err != nil {
		return nil, &StoreError{Op: "list groups", Err: err}
	}
	return groups, nil
}

func (s *groupService) GetGroup(ctx context.Context, slug string) (*models.Group, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewNotFoundError("group", slug)
		}
		return nil, &StoreError{Op: "get group", Err: err}
	}
	return group, nil
}

func (s *groupService) CreateGroup(ctx context.Context, req CreateGroupRequest) (*models.Group, error) {
	if err := ValidateStruct(s.validate, req); err != nil {
		return nil, err
	}

	group := &models.Group{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := s.groupRepo.Create(ctx, group); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, NewValidationError("slug", "slug already taken")
		}
		return nil, &StoreError{Op: "create group", Err: err}
	}

	return group, nil
}

// DeleteGroup removes the group. Its posts stay with the group cleared.
func (s *groupService) DeleteGroup(ctx context.Context, slug string) error {
	if err := s.groupRepo.Delete(ctx, slug); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return NewNotFoundError("group", slug)
		}
		return &StoreError{Op: "delete group", Err: err}
	}
	return nil
}
