package db

import (
	"context"

	"excelence-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateCategory(ctx context.Context, userID uuid.UUID, name string, emoji *string) (*models.Category, error) {
	query := `
		INSERT INTO categories (name, emoji, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, emoji, user_id
	`
	var c models.Category
	err := s.pool.QueryRow(ctx, query, name, emoji, userID).
		Scan(&c.ID, &c.Name, &c.Emoji, &c.UserID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListCategories(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	query := `
		SELECT id, name, emoji, user_id
		FROM categories WHERE user_id = $1
		ORDER BY name ASC
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Emoji, &c.UserID); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, name string, emoji *string) (*models.Category, error) {
	query := `
		UPDATE categories
		SET name = $1, emoji = $2
		WHERE id = $3 AND user_id = $4
		RETURNING id, name, emoji, user_id
	`
	var c models.Category
	err := s.pool.QueryRow(ctx, query, name, emoji, categoryID, userID).
		Scan(&c.ID, &c.Name, &c.Emoji, &c.UserID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (s *Store) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2`
	cmd, err := s.pool.Exec(ctx, query, categoryID, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// CountTransactionsForCategory is the in-use check that blocks deletion.
// It runs before DeleteCategory; the FK RESTRICT constraint backs it up
// against concurrent inserts.
func (s *Store) CountTransactionsForCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM transactions WHERE category_id = $1 AND user_id = $2`
	var count int64
	if err := s.pool.QueryRow(ctx, query, categoryID, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
