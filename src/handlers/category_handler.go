package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"excelence-server/src/middleware"
	"excelence-server/src/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type CategoryStore interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, name string, emoji *string) (*models.Category, error)
	ListCategories(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, name string, emoji *string) (*models.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error
	CountTransactionsForCategory(ctx context.Context, userID, categoryID uuid.UUID) (int64, error)
}

func CreateCategory(store CategoryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middleware.UserIDKey).(uuid.UUID)
		var req struct {
			Name  string  `json:"name"`
			Emoji *string `json:"emoji"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			log.Printf("ERROR: Failed to decode create category request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		created, err := store.CreateCategory(r.Context(), userID, req.Name, req.Emoji)
		if err != nil {
			log.Printf("ERROR: Failed to create category for user %s: %v", userID, err)
			http.Error(w, "Failed to create category.", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created category %s for user %s, name %s", created.ID, userID, created.Name)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetAllCategories(store CategoryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middleware.UserIDKey).(uuid.UUID)
		categories, err := store.ListCategories(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to get categories for user %s: %v", userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if categories == nil {
			categories = []models.Category{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(categories)
	}
}

func UpdateCategory(store CategoryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middleware.UserIDKey).(uuid.UUID)
		categoryID, err := uuid.Parse(chi.URLParam(r, "category_id"))
		if err != nil {
			log.Printf("ERROR: Invalid category id param: %s", chi.URLParam(r, "category_id"))
			http.Error(w, "invalid category id", http.StatusBadRequest)
			return
		}

		var req struct {
			Name  string  `json:"name"`
			Emoji *string `json:"emoji"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
			log.Printf("ERROR: Failed to decode update category request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		updated, err := store.UpdateCategory(r.Context(), userID, categoryID, req.Name, req.Emoji)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				log.Printf("ERROR: Category %s not found for user %s", categoryID, userID)
				http.Error(w, "Category not found or user does not have permission.", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update category %s for user %s: %v", categoryID, userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("INFO: Updated category %s for user %s", updated.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

// DeleteCategory first counts referencing transactions and refuses to
// delete while any exist. The count and the delete are two separate calls;
// the FK RESTRICT constraint covers the interleaving between them.
func DeleteCategory(store CategoryStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middleware.UserIDKey).(uuid.UUID)
		categoryID, err := uuid.Parse(chi.URLParam(r, "category_id"))
		if err != nil {
			log.Printf("ERROR: Invalid category id param: %s", chi.URLParam(r, "category_id"))
			http.Error(w, "invalid category id", http.StatusBadRequest)
			return
		}

		count, err := store.CountTransactionsForCategory(r.Context(), userID, categoryID)
		if err != nil {
			log.Printf("ERROR: Failed to count transactions for category %s, user %s: %v", categoryID, userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if count > 0 {
			log.Printf("ERROR: Delete blocked - category %s in use by %d transaction(s) for user %s", categoryID, count, userID)
			http.Error(w, fmt.Sprintf("Cannot delete category: It is currently in use by %d transaction(s).", count), http.StatusBadRequest)
			return
		}

		if err := store.DeleteCategory(r.Context(), userID, categoryID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				log.Printf("ERROR: Category %s not found for user %s", categoryID, userID)
				http.Error(w, "Category not found or user does not have permission.", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to delete category %s for user %s: %v", categoryID, userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log.Printf("INFO: Deleted category %s for user %s", categoryID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"detail": "Category deleted successfully"})
	}
}
