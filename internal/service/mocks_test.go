package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/stretchr/testify/mock"
	"yatube/internal/models"
	"yatube/internal/paginator"
	"yatube/internal/repository"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepository) FindAll(filter models.PostFilter) paginator.RecordSet {
	args := m.Called(filter)
	return args.Get(0).(paginator.RecordSet)
}

type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, group *models.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockGroupRepository) List(ctx context.Context) ([]models.Group, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Group), args.Error(1)
}

func (m *MockGroupRepository) Delete(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshToken, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishPostCreated(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPublisher) PublishPostUpdated(ctx context.Context, post *models.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

var errNoPost = fmt.Errorf("memory: %w", repository.ErrNotFound)

// memoryPosts is a post store backed by a map, for properties that need
// real reads after writes.
type memoryPosts struct {
	posts  map[string]models.Post
	nextID int
	writes int
}

func newMemoryPosts() *memoryPosts {
	return &memoryPosts{posts: map[string]models.Post{}}
}

func (m *memoryPosts) Create(_ context.Context, post *models.Post) error {
	m.nextID++
	post.PostID = fmt.Sprintf("post-%d", m.nextID)
	m.posts[post.PostID] = *post
	m.writes++
	return nil
}

func (m *memoryPosts) GetByID(_ context.Context, postID string) (*models.Post, error) {
	post, ok := m.posts[postID]
	if !ok {
		return nil, errNoPost
	}
	return &post, nil
}

func (m *memoryPosts) Update(_ context.Context, post *models.Post) error {
	if _, ok := m.posts[post.PostID]; !ok {
		return errNoPost
	}
	m.posts[post.PostID] = *post
	m.writes++
	return nil
}

func (m *memoryPosts) FindAll(filter models.PostFilter) paginator.RecordSet {
	var set paginator.SliceSet
	for _, post := range m.posts {
		if filter.AuthorID != "" && post.AuthorID != filter.AuthorID {
			continue
		}
		set = append(set, post)
	}
	sort.Slice(set, func(i, j int) bool {
		return set[i].PublishedAt.After(set[j].PublishedAt)
	})
	return set
}
