package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"yatube/internal/models"
)

type groupRepository struct {
	db *sqlx.DB
}

func NewGroupRepository(db *sqlx.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(ctx context.Context, group *models.Group) error {
	query := `
		INSERT INTO groups (slug, title, description)
		VALUES (:slug, :title, :description)
	`

	_, err := r.db.NamedExecContext(ctx, query, group)
	if err != nil {
		if sentinel := classify(err); sentinel != nil {
			return fmt.Errorf("ошибка при создании группы: %w: %w", sentinel, err)
		}
		return fmt.Errorf("ошибка при создании группы: %w", err)
	}

	return nil
}

func (r *groupRepository) GetBySlug(ctx context.Context, slug string) (*models.Group, error) {
	var group models.Group

	query := `SELECT slug, title, description FROM groups WHERE slug = $1`

	err := r.db.GetContext(ctx, &group, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("группа %s: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении группы: %w", err)
	}

	return &group, nil
}

func (r *groupRepository) List(ctx context.Context) ([]models.Group, error) {
	query := `SELECT slug, title, description FROM groups ORDER BY title, slug`

	groups := []models.Group{}
	if err := r.db.SelectContext(ctx, &groups, query); err != nil {
		return nil, fmt.Errorf("ошибка при получении групп: %w", err)
	}

	return groups, nil
}

// Delete removes the group; posts.group_slug is cleared by ON DELETE SET NULL.
func (r *groupRepository) Delete(ctx context.Context, slug string) error {
	query := `DELETE FROM groups WHERE slug = $1`

	result, err := r.db.ExecContext(ctx, query, slug)
	if err != nil {
		return fmt.Errorf("ошибка при удалении группы: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("группа %s: %w", slug, ErrNotFound)
	}

	return nil
}
