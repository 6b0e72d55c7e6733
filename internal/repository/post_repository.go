package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"yatube/internal/models"
	"yatube/internal/paginator"
)

const postColumns = `
	p.post_id, p.text, p.pub_date, p.author_id, p.group_slug,
	u.username AS author_username, g.title AS group_title
`

const postJoins = `
	FROM posts p
	JOIN users u ON u.user_id = p.author_id
	LEFT JOIN groups g ON g.slug = p.group_slug
`

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

// Create inserts the post and assigns its id. PublishedAt is set by the caller.
func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, text, pub_date, author_id, group_slug)
        VALUES
        (:post_id, :text, :pub_date, :author_id, :group_slug)
    `

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	_, err := r.DB.NamedExecContext(ctx, query, post)
	if err != nil {
		if sentinel := classify(err); sentinel != nil {
			return fmt.Errorf("ошибка при создании поста: %w: %w", sentinel, err)
		}
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT` + postColumns + postJoins + `WHERE p.post_id = $1`

	var post models.Post
	err := r.DB.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(classify(err), ErrNotFound) {
			return nil, fmt.Errorf("пост с ID %s: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

// Update rewrites the mutable fields only. The author_id condition keeps a
// stale read from touching a post that changed hands.
func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			text = :text,
			group_slug = :group_slug
		WHERE post_id = :post_id AND author_id = :author_id
	`

	result, err := r.DB.NamedExecContext(ctx, query, post)
	if err != nil {
		if sentinel := classify(err); sentinel != nil {
			return fmt.Errorf("ошибка при обновлении поста: %w: %w", sentinel, err)
		}
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s: %w", post.PostID, ErrNotFound)
	}

	return nil
}

func (r *PostRepositoryImpl) FindAll(filter models.PostFilter) paginator.RecordSet {
	return &PostSet{db: r.DB, filter: filter}
}

// PostSet is the lazily evaluated listing for a filter, newest first.
type PostSet struct {
	db     *sqlx.DB
	filter models.PostFilter
}

func (s *PostSet) where() (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if s.filter.GroupSlug != "" {
		args = append(args, s.filter.GroupSlug)
		conditions = append(conditions, fmt.Sprintf("p.group_slug = $%d", len(args)))
	}
	if s.filter.AuthorID != "" {
		args = append(args, s.filter.AuthorID)
		conditions = append(conditions, fmt.Sprintf("p.author_id = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (s *PostSet) Count(ctx context.Context) (int, error) {
	where, args := s.where()
	query := `SELECT COUNT(*) FROM posts p` + where

	var count int
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов: %w", err)
	}

	return count, nil
}

func (s *PostSet) Slice(ctx context.Context, offset, limit int) ([]models.Post, error) {
	where, args := s.where()
	args = append(args, limit, offset)
	query := `SELECT` + postColumns + postJoins + where +
		fmt.Sprintf(` ORDER BY p.pub_date DESC, p.post_id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	var posts []models.Post
	if err := s.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}
