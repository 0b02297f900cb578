package repository

import (
	"context"

	"gorm.io/gorm"

	"donorblog/internal/domain"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) ListPublished(ctx context.Context, tag string, limit, offset int) ([]domain.Post, error) {
	q := r.db.WithContext(ctx).
		Where("status = ?", domain.PostPublished).
		Order("created_at DESC")
	if tag != "" {
		// tags column is a lowercase comma list; match whole entries only
		q = q.Where("(',' || tags || ',') LIKE ?", "%,"+tag+",%")
	}
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}
	var posts []domain.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	var p domain.Post
	err := r.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, domain.PostPublished).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
