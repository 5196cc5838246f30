package db

import (
	"context"

	"excelence-server/src/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetSummary calls the stored aggregation function; the sums are computed
// database-side. An empty result falls back to an all-zero summary here,
// not inside the function.
func (s *Store) GetSummary(ctx context.Context, userID uuid.UUID) (*models.Summary, error) {
	query := `SELECT total_income, total_expenses, net_balance FROM get_user_financial_summary($1)`
	var summary models.Summary
	err := s.pool.QueryRow(ctx, query, userID).
		Scan(&summary.TotalIncome, &summary.TotalExpenses, &summary.NetBalance)
	if err != nil {
		if err == pgx.ErrNoRows {
			return &models.Summary{}, nil
		}
		return nil, err
	}
	return &summary, nil
}

// GetExpensesByCategory calls the stored grouping function. Categories
// without expense transactions never appear in the result.
func (s *Store) GetExpensesByCategory(ctx context.Context, userID uuid.UUID) ([]models.ChartDataPoint, error) {
	query := `SELECT category_name, total_amount FROM get_expenses_by_category($1)`
	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []models.ChartDataPoint
	for rows.Next() {
		var p models.ChartDataPoint
		if err := rows.Scan(&p.CategoryName, &p.TotalAmount); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}
