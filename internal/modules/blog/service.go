package blog

import (
	"context"
	"strings"

	"donorblog/internal/domain"
)

type postRepo interface {
	ListPublished(ctx context.Context, tag string, limit, offset int) ([]domain.Post, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*domain.Post, error)
}

type Service struct {
	posts postRepo
}

func NewService(posts postRepo) *Service {
	return &Service{posts: posts}
}

func (s *Service) List(ctx context.Context, tag string, limit, offset int) ([]PostSummary, error) {
	posts, err := s.posts.ListPublished(ctx, strings.ToLower(strings.TrimSpace(tag)), limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, PostSummary{
			Slug:       p.Slug,
			Title:      p.Title,
			TeaserText: p.TeaserText,
			Tags:       splitTags(p.Tags),
			CreatedAt:  p.CreatedAt,
		})
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, slug string) (*PostDetail, error) {
	p, err := s.posts.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &PostDetail{
		Slug:      p.Slug,
		Title:     p.Title,
		Content:   p.Content,
		Tags:      splitTags(p.Tags),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}, nil
}

func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
