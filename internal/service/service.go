package service

import (
	"yatube/internal/config"
	"yatube/internal/paginator"
	"yatube/internal/repository"
)

type Service struct {
	Post    PostService
	Listing ListingService
	Group   GroupService
	Auth    AuthService
}

func NewService(rep *repository.Repository, cfg *config.Config, p *paginator.Paginator, publisher EventPublisher) *Service {
	validate := NewValidator()

	return &Service{
		Post:    NewPostService(rep.Post, rep.Group, publisher),
		Listing: NewListingService(rep, p),
		Group:   NewGroupService(rep.Group, validate),
		Auth:    NewAuthService(rep.User, cfg, validate),
	}
}
