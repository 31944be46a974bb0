package service

import (
	"context"
	"time"

	"taxpal/internal/models"
	"taxpal/internal/storage"
)

type TransactionService struct {
	transactions storage.TransactionStorage
}

func NewTransactionService(transactions storage.TransactionStorage) *TransactionService {
	return &TransactionService{transactions: transactions}
}

func (s *TransactionService) List(ctx context.Context, userID string) ([]*models.Transaction, error) {
	return s.transactions.ListByUser(ctx, userID)
}

func (s *TransactionService) Create(ctx context.Context, userID string, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	tx := &models.Transaction{
		UserID:      userID,
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *TransactionService) Delete(ctx context.Context, userID, id string) error {
	tx, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tx == nil {
		return ErrNotFound
	}
	if tx.UserID != userID {
		return ErrNotOwner
	}

	return s.transactions.Delete(ctx, id)
}

// parseDate accepts the SPA's date-picker format and full RFC 3339
// timestamps.
func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
