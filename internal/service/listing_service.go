package service

import (
	"context"
	"errors"

	"yatube/internal/models"
	"yatube/internal/paginator"
	"yatube/internal/repository"
)

// ListingService builds the public pages. Every listing goes through the
// same paginator, so page size and clamping match everywhere.
type ListingService interface {
	Index(ctx context.Context, page string) (*models.Page, error)
	GroupPosts(ctx context.Context, slug, page string) (*models.Group, *models.Page, error)
	Profile(ctx context.Context, username, page string) (*models.User, *models.Page, error)
	AuthorPostCount(ctx context.Context, authorID string) (int, error)
}

type listingService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
	paginator *paginator.Paginator
}

func NewListingService(rep *repository.Repository, p *paginator.Paginator) ListingService {
	return &listingService{
		postRepo:  rep.Post,
		groupRepo: rep.Group,
		userRepo:  rep.User,
		paginator: p,
	}
}

func (s *listingService) Index(ctx context.Context, page string) (*models.Page, error) {
	return s.page(ctx, models.PostFilter{}, page)
}

func (s *listingService) GroupPosts(ctx context.Context, slug, page string) (*models.Group, *models.Page, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, NewNotFoundError("group", slug)
		}
		return nil, nil, &StoreError{Op: "get group", Err: err}
	}

	result, err := s.page(ctx, models.PostFilter{GroupSlug: group.Slug}, page)
	if err != nil {
		return nil, nil, err
	}

	return group, result, nil
}

func (s *listingService) Profile(ctx context.Context, username, page string) (*models.User, *models.Page, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil, NewNotFoundError("user", username)
		}
		return nil, nil, &StoreError{Op: "get user", Err: err}
	}

	result, err := s.page(ctx, models.PostFilter{AuthorID: user.UserID}, page)
	if err != nil {
		return nil, nil, err
	}

	return user, result, nil
}

func (s *listingService) AuthorPostCount(ctx context.Context, authorID string) (int, error) {
	count, err := s.postRepo.FindAll(models.PostFilter{AuthorID: authorID}).Count(ctx)
	if err != nil {
		return 0, &StoreError{Op: "count posts", Err: err}
	}
	return count, nil
}

func (s *listingService) page(ctx context.Context, filter models.PostFilter, page string) (*models.Page, error) {
	result, err := s.paginator.GetPage(ctx, s.postRepo.FindAll(filter), page)
	if err != nil {
		if errors.Is(err, paginator.ErrUnordered) {
			return nil, err
		}
		return nil, &StoreError{Op: "list posts", Err: err}
	}
	return result, nil
}
