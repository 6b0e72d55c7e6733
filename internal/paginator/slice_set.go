package paginator

import (
	"context"

	"yatube/internal/models"
)

// SliceSet is an in-memory RecordSet. The posts must already be ordered.
type SliceSet []models.Post

func (s SliceSet) Count(_ context.Context) (int, error) {
	return len(s), nil
}

func (s SliceSet) Slice(_ context.Context, offset, limit int) ([]models.Post, error) {
	if offset >= len(s) {
		return nil, nil
	}

	end := offset + limit
	if end > len(s) {
		end = len(s)
	}

	out := make([]models.Post, end-offset)
	copy(out, s[offset:end])
	return out, nil
}
