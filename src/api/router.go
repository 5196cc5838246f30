package api

import (
	"net/http"

	"excelence-server/src/config"
	db "excelence-server/src/db/sql"
	"excelence-server/src/handlers"
	"excelence-server/src/middleware"

	"github.com/go-chi/chi/v5"
)

func NewRouter(store *db.Store, cfg config.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/signup", handlers.Signup(store, cfg))
		r.Post("/auth/login", handlers.Login(store, cfg))
		r.Post("/auth/resend-verification", handlers.ResendVerification(store, cfg))
		r.Get("/auth/verify", handlers.VerifyEmail(store, cfg))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware(cfg.JWTSecret, store)).Group(func(r chi.Router) {
			// Categories
			r.Get("/categories", handlers.GetAllCategories(store))
			r.Post("/categories", handlers.CreateCategory(store))
			r.Put("/categories/{category_id}", handlers.UpdateCategory(store))
			r.Delete("/categories/{category_id}", handlers.DeleteCategory(store))

			// Transactions
			r.Get("/transactions", handlers.GetAllTransactions(store))
			r.Post("/transactions", handlers.CreateTransaction(store))
			r.Put("/transactions/{transaction_id}", handlers.UpdateTransaction(store))
			r.Delete("/transactions/{transaction_id}", handlers.DeleteTransaction(store))

			// Dashboard
			r.Get("/dashboard/summary", handlers.GetSummary(store))
			r.Get("/dashboard/chart-data", handlers.GetChartData(store))

			// Export
			r.Get("/export/csv", handlers.ExportCSV(store))
		})
	})

	return r
}
