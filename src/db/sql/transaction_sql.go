package db

import (
	"context"
	"fmt"
	"strings"

	"excelence-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateTransaction inserts through a join on categories so the row only
// lands when the category belongs to the same user. No matching category
// means no row and ErrNotFound.
func (s *Store) CreateTransaction(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (amount, type, date, description, user_id, category_id)
		SELECT $1, $2, $3, $4, $5, c.id
		FROM categories c
		WHERE c.id = $6 AND c.user_id = $5
		RETURNING id, amount, type, date, description, user_id, category_id
	`
	var created models.Transaction
	err := s.pool.QueryRow(ctx, query,
		t.Amount, t.Type, t.Date, t.Description, t.UserID, t.CategoryID,
	).Scan(
		&created.ID,
		&created.Amount,
		&created.Type,
		&created.Date,
		&created.Description,
		&created.UserID,
		&created.CategoryID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &created, nil
}

func (s *Store) ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	query := `
		SELECT id, amount, type, date, description, user_id, category_id
		FROM transactions WHERE user_id = $1
		ORDER BY date DESC
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.Amount, &t.Type, &t.Date, &t.Description, &t.UserID, &t.CategoryID)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// UpdateTransaction merges only the provided fields. The handler has
// already validated the payload and rejected the all-empty case.
func (s *Store) UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, req *models.UpdateTransactionRequest) (*models.Transaction, error) {
	var set []string
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if req.Amount != nil {
		set = append(set, "amount = "+arg(*req.Amount))
	}
	if req.Type != nil {
		set = append(set, "type = "+arg(*req.Type))
	}
	if req.Date != nil {
		date, err := models.ParseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		set = append(set, "date = "+arg(date))
	}
	if req.Description != nil {
		set = append(set, "description = "+arg(*req.Description))
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id: %w", err)
		}
		owned, err := s.categoryOwnedByUser(ctx, userID, categoryID)
		if err != nil {
			return nil, err
		}
		if !owned {
			return nil, models.ErrNotFound
		}
		set = append(set, "category_id = "+arg(categoryID))
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	query := fmt.Sprintf(`
		UPDATE transactions
		SET %s
		WHERE id = %s AND user_id = %s
		RETURNING id, amount, type, date, description, user_id, category_id
	`, strings.Join(set, ", "), arg(transactionID), arg(userID))

	var t models.Transaction
	err := s.pool.QueryRow(ctx, query, args...).
		Scan(&t.ID, &t.Amount, &t.Type, &t.Date, &t.Description, &t.UserID, &t.CategoryID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// DeleteTransaction reports whether a row matched; the handler maps false
// to not-found.
func (s *Store) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) (bool, error) {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	cmd, err := s.pool.Exec(ctx, query, transactionID, userID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

// ListExportRows joins each transaction with its category for CSV export.
// The LEFT JOIN keeps transactions whose category row is gone; their name
// scans as NULL and the export layer substitutes the placeholder.
func (s *Store) ListExportRows(ctx context.Context, userID uuid.UUID) ([]models.ExportRow, error) {
	query := `
		SELECT t.date, t.description, c.name, t.amount, t.type
		FROM transactions t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE t.user_id = $1
		ORDER BY t.date DESC
	`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var export []models.ExportRow
	for rows.Next() {
		var row models.ExportRow
		err := rows.Scan(&row.Date, &row.Description, &row.CategoryName, &row.Amount, &row.Type)
		if err != nil {
			return nil, err
		}
		export = append(export, row)
	}
	return export, rows.Err()
}

func (s *Store) categoryOwnedByUser(ctx context.Context, userID, categoryID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1 AND user_id = $2)`
	var exists bool
	if err := s.pool.QueryRow(ctx, query, categoryID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
