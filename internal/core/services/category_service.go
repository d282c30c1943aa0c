package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/lavaresto/menu_backend/internal/apperrors"
	"github.com/lavaresto/menu_backend/internal/core/domain"
	portsrepo "github.com/lavaresto/menu_backend/internal/core/ports/repositories"
	portssvc "github.com/lavaresto/menu_backend/internal/core/ports/services"
	"github.com/lavaresto/menu_backend/internal/dto"
)

// categoryService implements portssvc.CategorySvcFacade
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new category service
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade, options ...ServiceOption) portssvc.CategorySvcFacade {
	svc := &categoryService{categoryRepo: repo}
	svc.apply(options)
	return svc
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	nameAr := strings.TrimSpace(req.NameAr)
	if name == "" || nameAr == "" {
		return nil, fmt.Errorf("%w: category name and arabic name are required", apperrors.ErrValidation)
	}

	now := s.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       name,
		NameAr:     nameAr,
		Order:      req.Order,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("name", name))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: category name cannot be empty", apperrors.ErrValidation)
		}
		category.Name = name
	}
	if req.NameAr != nil {
		nameAr := strings.TrimSpace(*req.NameAr)
		if nameAr == "" {
			return nil, fmt.Errorf("%w: category arabic name cannot be empty", apperrors.ErrValidation)
		}
		category.NameAr = nameAr
	}
	if req.Order != nil {
		category.Order = *req.Order
	}
	category.UpdatedAt = s.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	s.LogInfo(ctx, "Category deleted with its items", slog.String("category_id", categoryID))
	return nil
}
