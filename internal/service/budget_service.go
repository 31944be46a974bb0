package service

import (
	"context"

	"taxpal/internal/models"
	"taxpal/internal/storage"
)

type BudgetService struct {
	budgets storage.BudgetStorage
}

func NewBudgetService(budgets storage.BudgetStorage) *BudgetService {
	return &BudgetService{budgets: budgets}
}

func (s *BudgetService) List(ctx context.Context, userID string) ([]*models.Budget, error) {
	return s.budgets.ListByUser(ctx, userID)
}

func (s *BudgetService) Create(ctx context.Context, userID string, req *models.CreateBudgetRequest) (*models.Budget, error) {
	budget := &models.Budget{
		UserID:      userID,
		Category:    req.Category,
		Amount:      req.Amount,
		Month:       req.Month,
		Description: req.Description,
	}
	if err := s.budgets.Create(ctx, budget); err != nil {
		return nil, err
	}
	return budget, nil
}

func (s *BudgetService) Delete(ctx context.Context, userID, id string) error {
	budget, err := s.budgets.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if budget == nil {
		return ErrNotFound
	}
	if budget.UserID != userID {
		return ErrNotOwner
	}

	return s.budgets.Delete(ctx, id)
}
