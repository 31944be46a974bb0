package storage

import (
	"context"

	"taxpal/internal/models"
)

// Stores return (nil, nil) when a record does not exist; errors are
// reserved for infrastructure failures. Every query that can touch
// more than one user's data is scoped by the owner's id.

type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

type CategoryStorage interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	GetByUserAndName(ctx context.Context, userID, name string) (*models.Category, error)
	Create(ctx context.Context, cat *models.Category) error
	CreateMany(ctx context.Context, cats []*models.Category) error
	Update(ctx context.Context, cat *models.Category) error
	Delete(ctx context.Context, id string) error
}

type TransactionStorage interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Transaction, error)
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	Create(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, id string) error
}

type BudgetStorage interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Budget, error)
	GetByID(ctx context.Context, id string) (*models.Budget, error)
	Create(ctx context.Context, budget *models.Budget) error
	Delete(ctx context.Context, id string) error
}
