package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"excelence-server/src/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransactionStore struct {
	createFn func(ctx context.Context, t *models.Transaction) (*models.Transaction, error)
	listFn   func(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
	updateFn func(ctx context.Context, userID, transactionID uuid.UUID, req *models.UpdateTransactionRequest) (*models.Transaction, error)
	deleteFn func(ctx context.Context, userID, transactionID uuid.UUID) (bool, error)

	updateCalled bool
}

func (f *fakeTransactionStore) CreateTransaction(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	return f.createFn(ctx, t)
}

func (f *fakeTransactionStore) ListTransactions(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	return f.listFn(ctx, userID)
}

func (f *fakeTransactionStore) UpdateTransaction(ctx context.Context, userID, transactionID uuid.UUID, req *models.UpdateTransactionRequest) (*models.Transaction, error) {
	f.updateCalled = true
	return f.updateFn(ctx, userID, transactionID, req)
}

func (f *fakeTransactionStore) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) (bool, error) {
	return f.deleteFn(ctx, userID, transactionID)
}

func TestCreateTransaction(t *testing.T) {
	userID := uuid.New()
	categoryID := uuid.New()
	store := &fakeTransactionStore{
		createFn: func(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
			assert.Equal(t, userID, tx.UserID, "create must be scoped to the calling user")
			created := *tx
			created.ID = uuid.New()
			return &created, nil
		},
	}

	body := `{"amount":42.50,"type":"expense","date":"2024-01-15","description":"Groceries","category_id":"` + categoryID.String() + `"}`
	req := authedRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body), userID)
	rec := httptest.NewRecorder()
	CreateTransaction(store)(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, 42.50, created.Amount)
	assert.Equal(t, "expense", created.Type)
	assert.Equal(t, "2024-01-15", created.Date.String())
	assert.Equal(t, categoryID, created.CategoryID)
}

func TestCreateTransactionInvalidType(t *testing.T) {
	store := &fakeTransactionStore{}

	body := `{"amount":10,"type":"transfer","date":"2024-01-15","category_id":"` + uuid.New().String() + `"}`
	req := authedRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body), uuid.New())
	rec := httptest.NewRecorder()
	CreateTransaction(store)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTransactionForeignCategory(t *testing.T) {
	store := &fakeTransactionStore{
		createFn: func(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
			return nil, models.ErrNotFound
		},
	}

	body := `{"amount":10,"type":"income","date":"2024-01-15","category_id":"` + uuid.New().String() + `"}`
	req := authedRequest(http.MethodPost, "/api/v1/transactions", strings.NewReader(body), uuid.New())
	rec := httptest.NewRecorder()
	CreateTransaction(store)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAllTransactionsEmpty(t *testing.T) {
	store := &fakeTransactionStore{
		listFn: func(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
			return nil, nil
		},
	}

	req := authedRequest(http.MethodGet, "/api/v1/transactions", nil, uuid.New())
	rec := httptest.NewRecorder()
	GetAllTransactions(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestUpdateTransactionEmptyPayload(t *testing.T) {
	store := &fakeTransactionStore{
		updateFn: func(ctx context.Context, userID, transactionID uuid.UUID, req *models.UpdateTransactionRequest) (*models.Transaction, error) {
			return nil, nil
		},
	}

	req := authedRequest(http.MethodPut, "/api/v1/transactions/x", strings.NewReader(`{}`), uuid.New())
	req = withURLParam(req, "transaction_id", uuid.New().String())
	rec := httptest.NewRecorder()
	UpdateTransaction(store)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No update data provided.")
	assert.False(t, store.updateCalled, "empty update must not reach the store")
}

func TestUpdateTransactionPartialFields(t *testing.T) {
	userID := uuid.New()
	transactionID := uuid.New()
	store := &fakeTransactionStore{
		updateFn: func(ctx context.Context, uid, txID uuid.UUID, req *models.UpdateTransactionRequest) (*models.Transaction, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, transactionID, txID)
			require.NotNil(t, req.Amount)
			assert.Equal(t, 99.0, *req.Amount)
			assert.Nil(t, req.Type, "absent fields stay untouched")
			assert.Nil(t, req.Date)
			assert.Nil(t, req.Description)
			assert.Nil(t, req.CategoryID)
			return &models.Transaction{ID: txID, Amount: *req.Amount, Type: "expense", UserID: uid, CategoryID: uuid.New()}, nil
		},
	}

	req := authedRequest(http.MethodPut, "/api/v1/transactions/x", strings.NewReader(`{"amount":99}`), userID)
	req = withURLParam(req, "transaction_id", transactionID.String())
	rec := httptest.NewRecorder()
	UpdateTransaction(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, 99.0, updated.Amount)
}

func TestUpdateTransactionInvalidDate(t *testing.T) {
	store := &fakeTransactionStore{}

	req := authedRequest(http.MethodPut, "/api/v1/transactions/x", strings.NewReader(`{"date":"15/01/2024"}`), uuid.New())
	req = withURLParam(req, "transaction_id", uuid.New().String())
	rec := httptest.NewRecorder()
	UpdateTransaction(store)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, store.updateCalled)
}

func TestUpdateTransactionNotFound(t *testing.T) {
	store := &fakeTransactionStore{
		updateFn: func(ctx context.Context, userID, transactionID uuid.UUID, req *models.UpdateTransactionRequest) (*models.Transaction, error) {
			return nil, models.ErrNotFound
		},
	}

	req := authedRequest(http.MethodPut, "/api/v1/transactions/x", strings.NewReader(`{"amount":1}`), uuid.New())
	req = withURLParam(req, "transaction_id", uuid.New().String())
	rec := httptest.NewRecorder()
	UpdateTransaction(store)(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteTransaction(t *testing.T) {
	store := &fakeTransactionStore{
		deleteFn: func(ctx context.Context, userID, transactionID uuid.UUID) (bool, error) {
			return true, nil
		},
	}

	req := authedRequest(http.MethodDelete, "/api/v1/transactions/x", nil, uuid.New())
	req = withURLParam(req, "transaction_id", uuid.New().String())
	rec := httptest.NewRecorder()
	DeleteTransaction(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Transaction deleted successfully")
}

func TestDeleteTransactionNotFound(t *testing.T) {
	store := &fakeTransactionStore{
		deleteFn: func(ctx context.Context, userID, transactionID uuid.UUID) (bool, error) {
			return false, nil
		},
	}

	req := authedRequest(http.MethodDelete, "/api/v1/transactions/x", nil, uuid.New())
	req = withURLParam(req, "transaction_id", uuid.New().String())
	rec := httptest.NewRecorder()
	DeleteTransaction(store)(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
