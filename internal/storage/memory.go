package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"taxpal/internal/models"
)

// In-memory stores mirror the Postgres ones for tests and local
// experiments. They share the (nil, nil) not-found convention.

type MemoryUserStorage struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func NewMemoryUserStorage() *MemoryUserStorage {
	return &MemoryUserStorage{users: make(map[string]*models.User)}
}

func (s *MemoryUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user.ID = uuid.New().String()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	s.users[user.ID] = user
	return nil
}

func (s *MemoryUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *MemoryUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.users[id], nil
}

type MemoryCategoryStorage struct {
	mu         sync.RWMutex
	categories map[string]*models.Category
}

func NewMemoryCategoryStorage() *MemoryCategoryStorage {
	return &MemoryCategoryStorage{categories: make(map[string]*models.Category)}
}

func (s *MemoryCategoryStorage) ListByUser(ctx context.Context, userID string) ([]*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var cats []*models.Category
	for _, cat := range s.categories {
		if cat.UserID == userID {
			cats = append(cats, cat)
		}
	}
	return cats, nil
}

func (s *MemoryCategoryStorage) GetByID(ctx context.Context, id string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.categories[id], nil
}

func (s *MemoryCategoryStorage) GetByUserAndName(ctx context.Context, userID, name string) (*models.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, cat := range s.categories {
		if cat.UserID == userID && cat.Name == name {
			return cat, nil
		}
	}
	return nil, nil
}

func (s *MemoryCategoryStorage) Create(ctx context.Context, cat *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stamp(cat)
	s.categories[cat.ID] = cat
	return nil
}

func (s *MemoryCategoryStorage) CreateMany(ctx context.Context, cats []*models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cat := range cats {
		s.stamp(cat)
		s.categories[cat.ID] = cat
	}
	return nil
}

func (s *MemoryCategoryStorage) Update(ctx context.Context, cat *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat.UpdatedAt = time.Now()
	s.categories[cat.ID] = cat
	return nil
}

func (s *MemoryCategoryStorage) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.categories, id)
	return nil
}

func (s *MemoryCategoryStorage) stamp(cat *models.Category) {
	if cat.ID == "" {
		cat.ID = uuid.New().String()
	}
	now := time.Now()
	if cat.CreatedAt.IsZero() {
		cat.CreatedAt = now
	}
	cat.UpdatedAt = now
}

type MemoryTransactionStorage struct {
	mu           sync.RWMutex
	transactions map[string]*models.Transaction
}

func NewMemoryTransactionStorage() *MemoryTransactionStorage {
	return &MemoryTransactionStorage{transactions: make(map[string]*models.Transaction)}
}

func (s *MemoryTransactionStorage) ListByUser(ctx context.Context, userID string) ([]*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var txs []*models.Transaction
	for _, tx := range s.transactions {
		if tx.UserID == userID {
			txs = append(txs, tx)
		}
	}
	sort.Slice(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
	return txs, nil
}

func (s *MemoryTransactionStorage) GetByID(ctx context.Context, id string) (*models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.transactions[id], nil
}

func (s *MemoryTransactionStorage) Create(ctx context.Context, tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx.ID = uuid.New().String()
	tx.CreatedAt = time.Now()
	s.transactions[tx.ID] = tx
	return nil
}

func (s *MemoryTransactionStorage) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.transactions, id)
	return nil
}

type MemoryBudgetStorage struct {
	mu      sync.RWMutex
	budgets map[string]*models.Budget
}

func NewMemoryBudgetStorage() *MemoryBudgetStorage {
	return &MemoryBudgetStorage{budgets: make(map[string]*models.Budget)}
}

func (s *MemoryBudgetStorage) ListByUser(ctx context.Context, userID string) ([]*models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var budgets []*models.Budget
	for _, b := range s.budgets {
		if b.UserID == userID {
			budgets = append(budgets, b)
		}
	}
	sort.Slice(budgets, func(i, j int) bool {
		return budgets[i].Month > budgets[j].Month
	})
	return budgets, nil
}

func (s *MemoryBudgetStorage) GetByID(ctx context.Context, id string) (*models.Budget, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.budgets[id], nil
}

func (s *MemoryBudgetStorage) Create(ctx context.Context, budget *models.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	budget.ID = uuid.New().String()
	now := time.Now()
	budget.CreatedAt = now
	budget.UpdatedAt = now
	if budget.Status == "" {
		budget.Status = models.DefaultBudgetStatus
	}
	s.budgets[budget.ID] = budget
	return nil
}

func (s *MemoryBudgetStorage) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.budgets, id)
	return nil
}
