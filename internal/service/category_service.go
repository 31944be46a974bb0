package service

import (
	"context"

	"taxpal/internal/models"
	"taxpal/internal/storage"
)

// The starter set every new account gets, matching the SPA's built-in
// palette.
var defaultExpenseCategories = []struct {
	Name  string
	Color string
}{
	{"Business Expenses", "#6366f1"},
	{"Office Rent", "#8b5cf6"},
	{"Software Subscriptions", "#ec4899"},
	{"Professional Development", "#f43f5e"},
	{"Marketing", "#f97316"},
	{"Travel", "#22c55e"},
	{"Meals & Entertainment", "#14b8a6"},
	{"Utilities", "#3b82f6"},
}

func DefaultCategories(userID string) []*models.Category {
	cats := make([]*models.Category, 0, len(defaultExpenseCategories))
	for _, c := range defaultExpenseCategories {
		cats = append(cats, &models.Category{
			UserID: userID,
			Name:   c.Name,
			Type:   models.CategoryExpense,
			Color:  c.Color,
		})
	}
	return cats
}

type CategoryService struct {
	categories storage.CategoryStorage
}

func NewCategoryService(categories storage.CategoryStorage) *CategoryService {
	return &CategoryService{categories: categories}
}

// List seeds the starter set on first access, so it can write on what
// looks like a pure read. Accounts registered through this backend are
// seeded up front; this path covers users imported by other means.
func (s *CategoryService) List(ctx context.Context, userID string) ([]*models.Category, error) {
	cats, err := s.categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cats) > 0 {
		return cats, nil
	}

	seeded := DefaultCategories(userID)
	if err := s.categories.CreateMany(ctx, seeded); err != nil {
		return nil, err
	}
	return seeded, nil
}

func (s *CategoryService) Create(ctx context.Context, userID string, req *models.CreateCategoryRequest) (*models.Category, error) {
	existing, err := s.categories.GetByUserAndName(ctx, userID, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}

	cat := &models.Category{
		UserID: userID,
		Name:   req.Name,
		Type:   req.Type,
		Color:  req.Color,
	}
	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Update(ctx context.Context, userID, id string, req *models.UpdateCategoryRequest) (*models.Category, error) {
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrNotFound
	}
	if cat.UserID != userID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.Type != nil {
		cat.Type = *req.Type
	}
	if req.Color != nil {
		cat.Color = *req.Color
	}

	if err := s.categories.Update(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *CategoryService) Delete(ctx context.Context, userID, id string) error {
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return ErrNotFound
	}
	if cat.UserID != userID {
		return ErrNotOwner
	}

	return s.categories.Delete(ctx, id)
}
