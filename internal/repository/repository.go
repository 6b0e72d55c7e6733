package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"yatube/internal/models"
	"yatube/internal/paginator"
)

var (
	// ErrNotFound is returned when a lookup by key matches no row
	ErrNotFound = errors.New("запись не найдена")

	// ErrDuplicate is returned on unique constraint violations
	ErrDuplicate = errors.New("запись уже существует")

	// ErrForeignKey is returned when a referenced row does not exist
	ErrForeignKey = errors.New("связанная запись не найдена")

	// ErrWrongPassword is returned by VerifyPassword on a hash mismatch
	ErrWrongPassword = errors.New("неверный пароль")
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	Update(ctx context.Context, post *models.Post) error
	FindAll(filter models.PostFilter) paginator.RecordSet
}

type GroupRepository interface {
	Create(ctx context.Context, group *models.Group) error
	GetBySlug(ctx context.Context, slug string) (*models.Group, error)
	List(ctx context.Context) ([]models.Group, error)
	Delete(ctx context.Context, slug string) error
}

type Repository struct {
	User  UserRepository
	Post  PostRepository
	Group GroupRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:  NewUserRepository(db),
		Post:  NewPostRepository(db),
		Group: NewGroupRepository(db),
	}
}

// classify maps postgres error codes onto the package sentinels
func classify(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch pqErr.Code {
	case "23505":
		return ErrDuplicate
	case "23503":
		return ErrForeignKey
	case "22P02":
		// malformed uuid in a key lookup
		return ErrNotFound
	}
	return nil
}
