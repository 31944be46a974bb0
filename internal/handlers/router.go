package handlers

import (
	"net/http"

	"taxpal/internal/middleware"
)

// NewRouter wires the REST surface. Registration and login stay outside
// the auth gate; everything else under /api requires a verified token.
func NewRouter(
	authMW *middleware.AuthMiddleware,
	limiter *middleware.RateLimiter,
	authHandler *AuthHandler,
	categoryHandler *CategoryHandler,
	transactionHandler *TransactionHandler,
	budgetHandler *BudgetHandler,
) http.Handler {
	mux := http.NewServeMux()

	limit := func(next http.HandlerFunc) http.HandlerFunc {
		if limiter == nil {
			return next
		}
		return limiter.Middleware(next)
	}
	secured := authMW.RequireAuth

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/auth/register", limit(authHandler.Register))
	mux.HandleFunc("/api/auth/login", limit(authHandler.Login))
	mux.HandleFunc("/api/auth/me", secured(authHandler.Me))

	mux.HandleFunc("/api/categories", secured(categoryHandler.Collection))
	mux.HandleFunc("/api/categories/", secured(categoryHandler.Item))

	mux.HandleFunc("/api/transactions", secured(transactionHandler.Collection))
	mux.HandleFunc("/api/transactions/", secured(transactionHandler.Item))

	mux.HandleFunc("/api/budgets", secured(budgetHandler.Collection))
	mux.HandleFunc("/api/budgets/", secured(budgetHandler.Item))

	return middleware.CORS(mux)
}
