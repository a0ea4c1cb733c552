package article

import (
	"context"
	"fmt"

	articleRepo "webimmo/database/repository/article"
	"webimmo/models"
)

// ArticleService exposes the blog: public reads plus admin CRUD.
type ArticleService interface {
	GetAll(ctx context.Context) ([]models.Article, error)
	GetByID(ctx context.Context, id string) (*models.Article, error)
	GetByCategory(ctx context.Context, category models.ArticleCategory) ([]models.Article, error)
	Create(ctx context.Context, a models.Article) (*models.Article, error)
	Update(ctx context.Context, a models.Article) (*models.Article, error)
	Delete(ctx context.Context, id string) error
}

// DefaultArticleService is the production ArticleService.
type DefaultArticleService struct {
	Repo articleRepo.ArticleRepository
}

func validCategory(c models.ArticleCategory) bool {
	switch c {
	case models.CategoryBuyer, models.CategorySeller, models.CategoryInvestor, models.CategoryGeneral:
		return true
	}
	return false
}

func validate(a models.Article) error {
	if a.Title == "" {
		return fmt.Errorf("article title is required")
	}
	if a.Content == "" {
		return fmt.Errorf("article content is required")
	}
	if !validCategory(a.Category) {
		return fmt.Errorf("unknown article category %q", a.Category)
	}
	return nil
}

func (s *DefaultArticleService) GetAll(ctx context.Context) ([]models.Article, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultArticleService) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultArticleService) GetByCategory(ctx context.Context, category models.ArticleCategory) ([]models.Article, error) {
	if !validCategory(category) {
		return nil, fmt.Errorf("unknown article category %q", category)
	}
	return s.Repo.GetByCategory(ctx, category)
}

func (s *DefaultArticleService) Create(ctx context.Context, a models.Article) (*models.Article, error) {
	if err := validate(a); err != nil {
		return nil, err
	}
	id, err := s.Repo.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultArticleService) Update(ctx context.Context, a models.Article) (*models.Article, error) {
	if a.ID == "" {
		return nil, fmt.Errorf("article ID is required for update")
	}
	if err := validate(a); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, a.ID)
}

func (s *DefaultArticleService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
