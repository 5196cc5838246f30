package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"excelence-server/src/middleware"

	"github.com/google/uuid"
)

// authedRequest builds a request carrying the context values the auth gate
// would have set.
func authedRequest(method, target string, body io.Reader, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.UserEmailKey, "user@example.com")
	return req.WithContext(ctx)
}

func strPtr(s string) *string { return &s }
