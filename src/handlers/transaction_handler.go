package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"excelence-server/src/middleware"
	"excelence-server/src/models"
	"excelence-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type TransactionStore interface {
	CreateTransaction(ctx context.Context, t *models.Transaction) (*models.Transaction, error)
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, req *models.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) (bool, error)
}

func CreateTransaction(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middleware.UserIDKey).(uuid.UUID)
		var req struct {
			Amount      float64     `json:"amount"`
			Type        string      `json:"type"`
			Date        models.Date `json:"date"`
			Description *string     `json:"description"`
			CategoryID  uuid.UUID   `json:"category_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if !util.ValidateTransactionType(req.Type) {
			log.Printf("ERROR: Invalid transaction type %q for user %s", req.Type, userID)
			http.Error(w, "type must be 'income' or 'expense'", http.StatusBadRequest)
			return
		}

		transaction := &models.Transaction{
			Amount:      req.Amount,
			Type:        req.Type,
			Date:        req.Date,
			Description: req.Description,
			UserID:      userID,
			CategoryID:  req.CategoryID,
		}
		created, err := store.CreateTransaction(r.Context(), transaction)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				log.Printf("ERROR: Category %s not owned by user %s", req.CategoryID, userID)
				http.Error(w, "Category not found or user does not have permission.", http.StatusBadRequest)
				return
			}
			log.Printf("ERROR: Failed to create transaction for user %s: %v", userID, err)
			http.Error(w, "Failed to create transaction.", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Created transaction %s for user %s, type %s, amount %.2f", created.ID, userID, created.Type, created.Amount)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetAllTransactions(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middleware.UserIDKey).(uuid.UUID)
		transactions, err := store.ListTransactions(r.Context(), userID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for user %s: %v", userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		// No transactions is an empty list, not an error.
		if transactions == nil {
			transactions = []models.Transaction{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(transactions)
	}
}

// UpdateTransaction merges only the provided fields. An empty payload is
// rejected before the store is touched.
func UpdateTransaction(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middleware.UserIDKey).(uuid.UUID)
		transactionID, err := uuid.Parse(chi.URLParam(r, "transaction_id"))
		if err != nil {
			log.Printf("ERROR: Invalid transaction id param: %s", chi.URLParam(r, "transaction_id"))
			http.Error(w, "invalid transaction id", http.StatusBadRequest)
			return
		}

		var req models.UpdateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update transaction request body for user %s: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if req.Empty() {
			log.Printf("ERROR: Empty transaction update payload from user %s", userID)
			http.Error(w, "No update data provided.", http.StatusBadRequest)
			return
		}

		if req.Type != nil && !util.ValidateTransactionType(*req.Type) {
			log.Printf("ERROR: Invalid transaction type %q in update for user %s", *req.Type, userID)
			http.Error(w, "type must be 'income' or 'expense'", http.StatusBadRequest)
			return
		}

		if req.Date != nil {
			if _, err := models.ParseDate(*req.Date); err != nil {
				log.Printf("ERROR: Invalid date %q in update for user %s", *req.Date, userID)
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
		}

		updated, err := store.UpdateTransaction(r.Context(), userID, transactionID, &req)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				log.Printf("ERROR: Transaction %s not found for user %s", transactionID, userID)
				http.Error(w, "Transaction not found or user does not have permission.", http.StatusNotFound)
				return
			}
			log.Printf("ERROR: Failed to update transaction %s for user %s: %v", transactionID, userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("INFO: Updated transaction %s for user %s", updated.ID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(updated)
	}
}

func DeleteTransaction(store TransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value(middleware.UserIDKey).(uuid.UUID)
		transactionID, err := uuid.Parse(chi.URLParam(r, "transaction_id"))
		if err != nil {
			log.Printf("ERROR: Invalid transaction id param: %s", chi.URLParam(r, "transaction_id"))
			http.Error(w, "invalid transaction id", http.StatusBadRequest)
			return
		}

		deleted, err := store.DeleteTransaction(r.Context(), userID, transactionID)
		if err != nil {
			log.Printf("ERROR: Failed to delete transaction %s for user %s: %v", transactionID, userID, err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if !deleted {
			log.Printf("ERROR: Transaction %s not found for user %s", transactionID, userID)
			http.Error(w, "Transaction not found or user does not have permission.", http.StatusNotFound)
			return
		}

		log.Printf("INFO: Deleted transaction %s for user %s", transactionID, userID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"detail": "Transaction deleted successfully"})
	}
}
