// Package paginator splits an ordered post record set into fixed-size pages.
//
// Out-of-range and malformed page numbers never fail: anything that is not a
// positive integer means the first page, and a number past the end means the
// last page.
package paginator

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"yatube/internal/models"
)

// ErrUnordered is returned when a record set hands back posts that are not
// sorted by publication date, newest first.
var ErrUnordered = errors.New("record set is not ordered by pub date descending")

// RecordSet is a filtered post listing ordered by PublishedAt descending.
// The paginator trusts the order and only checks it on the slice it reads.
type RecordSet interface {
	Count(ctx context.Context) (int, error)
	Slice(ctx context.Context, offset, limit int) ([]models.Post, error)
}

type Paginator struct {
	pageSize int
}

func New(pageSize int) (*Paginator, error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("размер страницы должен быть положительным: %d", pageSize)
	}
	return &Paginator{pageSize: pageSize}, nil
}

func (p *Paginator) PageSize() int {
	return p.pageSize
}

// ParsePage returns the requested page number, or 1 for anything that is
// not a positive integer.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// TotalPages is ceil(count / pageSize).
func (p *Paginator) TotalPages(count int) int {
	return (count + p.pageSize - 1) / p.pageSize
}

func (p *Paginator) GetPage(ctx context.Context, set RecordSet, requested string) (*models.Page, error) {
	total, err := set.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("ошибка при подсчёте постов: %w", err)
	}

	totalPages := p.TotalPages(total)

	number := ParsePage(requested)
	if number > totalPages {
		number = totalPages
	}
	if number < 1 {
		number = 1
	}

	page := &models.Page{
		Posts:       []models.Post{},
		PageNumber:  number,
		PageSize:    p.pageSize,
		TotalPages:  totalPages,
		TotalCount:  total,
		HasNext:     number < totalPages,
		HasPrevious: number > 1,
	}

	if total == 0 {
		return page, nil
	}

	posts, err := set.Slice(ctx, (number-1)*p.pageSize, p.pageSize)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении страницы %d: %w", number, err)
	}

	for i := 1; i < len(posts); i++ {
		if posts[i].PublishedAt.After(posts[i-1].PublishedAt) {
			return nil, ErrUnordered
		}
	}

	if len(posts) > 0 {
		page.Posts = posts
	}

	return page, nil
}
