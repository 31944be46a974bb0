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

type PostgresCategoryStorage struct {
	db *pgxpool.Pool
}

func NewCategoryStorage(db *pgxpool.Pool) *PostgresCategoryStorage {
	return &PostgresCategoryStorage{db: db}
}

const categoryColumns = "id, user_id, name, type, color, created_at, updated_at"

func scanCategory(row pgx.Row) (*models.Category, error) {
	var cat models.Category
	err := row.Scan(
		&cat.ID,
		&cat.UserID,
		&cat.Name,
		&cat.Type,
		&cat.Color,
		&cat.CreatedAt,
		&cat.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *PostgresCategoryStorage) ListByUser(ctx context.Context, userID string) ([]*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE user_id = $1`

	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var cats []*models.Category
	for rows.Next() {
		cat, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		cats = append(cats, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return cats, nil
}

func (s *PostgresCategoryStorage) GetByID(ctx context.Context, id string) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	cat, err := scanCategory(s.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return cat, nil
}

func (s *PostgresCategoryStorage) GetByUserAndName(ctx context.Context, userID, name string) (*models.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE user_id = $1 AND name = $2`

	cat, err := scanCategory(s.db.QueryRow(ctx, query, userID, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return cat, nil
}

func (s *PostgresCategoryStorage) Create(ctx context.Context, cat *models.Category) error {
	stampCategory(cat)

	query := `
		INSERT INTO categories (id, user_id, name, type, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.Exec(ctx, query,
		cat.ID, cat.UserID, cat.Name, cat.Type, cat.Color, cat.CreatedAt, cat.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// CreateMany inserts the batch in a single round trip. Inserts are
// per-row atomic only, matching the seeding policy's best-effort
// bulk-insert semantics.
func (s *PostgresCategoryStorage) CreateMany(ctx context.Context, cats []*models.Category) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO categories (id, user_id, name, type, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, cat := range cats {
		stampCategory(cat)
		batch.Queue(query, cat.ID, cat.UserID, cat.Name, cat.Type, cat.Color, cat.CreatedAt, cat.UpdatedAt)
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	for range cats {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to create categories: %w", err)
		}
	}
	return nil
}

func (s *PostgresCategoryStorage) Update(ctx context.Context, cat *models.Category) error {
	cat.UpdatedAt = time.Now()

	query := `
		UPDATE categories
		SET name = $1, type = $2, color = $3, updated_at = $4
		WHERE id = $5
	`

	_, err := s.db.Exec(ctx, query, cat.Name, cat.Type, cat.Color, cat.UpdatedAt, cat.ID)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

func (s *PostgresCategoryStorage) Delete(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

func stampCategory(cat *models.Category) {
	if cat.ID == "" {
		cat.ID = uuid.New().String()
	}
	now := time.Now()
	if cat.CreatedAt.IsZero() {
		cat.CreatedAt = now
	}
	cat.UpdatedAt = now
}
