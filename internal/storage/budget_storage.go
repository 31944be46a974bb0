package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taxpal/internal/models"
)

type PostgresBudgetStorage struct {
	db *pgxpool.Pool
}

func NewBudgetStorage(db *pgxpool.Pool) *PostgresBudgetStorage {
	return &PostgresBudgetStorage{db: db}
}

func (s *PostgresBudgetStorage) ListByUser(ctx context.Context, userID string) ([]*models.Budget, error) {
	// month keys are YYYY-MM, so lexicographic DESC is newest-first
	query := `
		SELECT id, user_id, category, amount, month, description, spent, status, created_at, updated_at
		FROM budgets
		WHERE user_id = $1
		ORDER BY month DESC
	`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*models.Budget
	for rows.Next() {
		var b models.Budget
		if err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.Category,
			&b.Amount,
			&b.Month,
			&b.Description,
			&b.Spent,
			&b.Status,
			&b.CreatedAt,
			&b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return budgets, nil
}

func (s *PostgresBudgetStorage) GetByID(ctx context.Context, id string) (*models.Budget, error) {
	query := `
		SELECT id, user_id, category, amount, month, description, spent, status, created_at, updated_at
		FROM budgets
		WHERE id = $1
	`

	var b models.Budget
	err := s.db.QueryRow(ctx, query, id).Scan(
		&b.ID,
		&b.UserID,
		&b.Category,
		&b.Amount,
		&b.Month,
		&b.Description,
		&b.Spent,
		&b.Status,
		&b.CreatedAt,
		&b.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	return &b, nil
}

func (s *PostgresBudgetStorage) Create(ctx context.Context, budget *models.Budget) error {
	budget.ID = uuid.New().String()
	now := time.Now()
	budget.CreatedAt = now
	budget.UpdatedAt = now
	if budget.Status == "" {
		budget.Status = models.DefaultBudgetStatus
	}

	query := `
		INSERT INTO budgets (id, user_id, category, amount, month, description, spent, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := s.db.Exec(ctx, query,
		budget.ID,
		budget.UserID,
		budget.Category,
		budget.Amount,
		budget.Month,
		budget.Description,
		budget.Spent,
		budget.Status,
		budget.CreatedAt,
		budget.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}

	return nil
}

func (s *PostgresBudgetStorage) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	return nil
}
