package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"excelence-server/src/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExportStore struct {
	rowsFn func(ctx context.Context, userID uuid.UUID) ([]models.ExportRow, error)
}

func (f *fakeExportStore) ListExportRows(ctx context.Context, userID uuid.UUID) ([]models.ExportRow, error) {
	return f.rowsFn(ctx, userID)
}

func TestExportCSVEmpty(t *testing.T) {
	store := &fakeExportStore{
		rowsFn: func(ctx context.Context, userID uuid.UUID) ([]models.ExportRow, error) {
			return nil, nil
		},
	}

	req := authedRequest(http.MethodGet, "/api/v1/export/csv", nil, uuid.New())
	rec := httptest.NewRecorder()
	ExportCSV(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=export.csv", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "Date,Description,Category,Amount,Type\n", rec.Body.String())
}

func TestExportCSVRows(t *testing.T) {
	date1, err := models.ParseDate("2024-02-01")
	require.NoError(t, err)
	date2, err := models.ParseDate("2024-01-15")
	require.NoError(t, err)

	store := &fakeExportStore{
		rowsFn: func(ctx context.Context, userID uuid.UUID) ([]models.ExportRow, error) {
			return []models.ExportRow{
				{Date: date1, Description: strPtr("Salary"), CategoryName: strPtr("Work"), Amount: 2500, Type: "income"},
				{Date: date2, Description: nil, CategoryName: nil, Amount: 42.5, Type: "expense"},
			}, nil
		},
	}

	req := authedRequest(http.MethodGet, "/api/v1/export/csv", nil, uuid.New())
	rec := httptest.NewRecorder()
	ExportCSV(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	expected := "Date,Description,Category,Amount,Type\n" +
		"2024-02-01,Salary,Work,2500,income\n" +
		"2024-01-15,,Uncategorized,42.5,expense\n"
	assert.Equal(t, expected, rec.Body.String())
}

func TestExportCSVEmptyCategoryName(t *testing.T) {
	date, err := models.ParseDate("2024-03-10")
	require.NoError(t, err)

	store := &fakeExportStore{
		rowsFn: func(ctx context.Context, userID uuid.UUID) ([]models.ExportRow, error) {
			return []models.ExportRow{
				{Date: date, CategoryName: strPtr(""), Amount: 10, Type: "expense"},
			}, nil
		},
	}

	req := authedRequest(http.MethodGet, "/api/v1/export/csv", nil, uuid.New())
	rec := httptest.NewRecorder()
	ExportCSV(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Uncategorized")
}
