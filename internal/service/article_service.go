package service

import (
	"context"
	"errors"

	"ternakku/internal/model"
	"ternakku/internal/repository"
)

var ErrArticleNotFound = errors.New("article not found")

// ArticleService handles extension article management
type ArticleService struct {
	articleRepo repository.ArticleRepo
}

// NewArticleService creates a new article service
func NewArticleService(articleRepo repository.ArticleRepo) *ArticleService {
	return &ArticleService{articleRepo: articleRepo}
}

func (s *ArticleService) Create(ctx context.Context, article *model.Article) (string, error) {
	return s.articleRepo.Create(ctx, article)
}

func (s *ArticleService) GetByID(ctx context.Context, id string) (*model.Article, error) {
	return s.articleRepo.GetByID(ctx, id)
}

func (s *ArticleService) List(ctx context.Context) ([]model.Article, error) {
	return s.articleRepo.List(ctx)
}

func (s *ArticleService) Update(ctx context.Context, article *model.Article) error {
	existing, err := s.articleRepo.GetByID(ctx, article.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrArticleNotFound
	}
	article.CreatedAt = existing.CreatedAt
	article.AuthorID = existing.AuthorID
	return s.articleRepo.Update(ctx, article)
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	return s.articleRepo.Delete(ctx, id)
}
