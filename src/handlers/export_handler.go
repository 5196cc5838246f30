package handlers

import (
	"context"
	"encoding/csv"
	"log"
	"net/http"
	"strconv"

	"excelence-server/src/middleware"
	"excelence-server/src/models"

	"github.com/google/uuid"
)

type ExportStore interface {
	ListExportRows(ctx context.Context, userID uuid.UUID) ([]models.ExportRow, error)
}

// ExportCSV streams the caller's transactions as a CSV attachment, newest
// first. A transaction whose category join came back empty is rendered as
// "Uncategorized".
func ExportCSV(store ExportStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middleware.UserIDKey).(uuid.UUID)

		rows, err := store.ListExportRows(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to list export rows for user %s: %v", userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=export.csv")

		writer := csv.NewWriter(w)
		if err := writer.Write([]string{"Date", "Description", "Category", "Amount", "Type"}); err != nil {
			log.Printf("ERROR: Failed to write CSV header for user %s: %v", userID, err)
			return
		}

		for _, row := range rows {
			category := "Uncategorized"
			if row.CategoryName != nil && *row.CategoryName != "" {
				category = *row.CategoryName
			}
			description := ""
			if row.Description != nil {
				description = *row.Description
			}

			record := []string{
				row.Date.String(),
				description,
				category,
				strconv.FormatFloat(row.Amount, 'f', -1, 64),
				row.Type,
			}
			if err := writer.Write(record); err != nil {
				log.Printf("ERROR: Failed to write CSV row for user %s: %v", userID, err)
				return
			}
		}

		writer.Flush()
		if err := writer.Error(); err != nil {
			log.Printf("ERROR: CSV writer error for user %s: %v", userID, err)
		}

		log.Printf("INFO: Exported %d transaction(s) as CSV for user %s", len(rows), userID)
	}
}
