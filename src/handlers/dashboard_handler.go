package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"excelence-server/src/middleware"
	"excelence-server/src/models"

	"github.com/google/uuid"
)

// DashboardStore exposes the two delegated aggregation reads. Both are
// recomputed by the database on every call; nothing is cached here.
type DashboardStore interface {
	GetSummary(ctx context.Context, userID uuid.UUID) (*models.Summary, error)
	GetExpensesByCategory(ctx context.Context, userID uuid.UUID) ([]models.ChartDataPoint, error)
}

func GetSummary(store DashboardStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middleware.UserIDKey).(uuid.UUID)
		summary, err := store.GetSummary(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to get summary for user %s: %v", userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

func GetChartData(store DashboardStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middleware.UserIDKey).(uuid.UUID)
		points, err := store.GetExpensesByCategory(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to get chart data for user %s: %v", userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if points == nil {
			points = []models.ChartDataPoint{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.ChartDataResponse{
			Status: "success",
			Data:   points,
		})
	}
}
