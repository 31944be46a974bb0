package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"taxpal/internal/logger"
	"taxpal/internal/middleware"
	"taxpal/internal/models"
	"taxpal/internal/service"
	"taxpal/internal/validation"
)

type TransactionHandler struct {
	transactions *service.TransactionService
	log          *logger.Logger
}

func NewTransactionHandler(transactions *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		log:          logger.New("transaction-handler"),
	}
}

// Collection handles /api/transactions.
func (h *TransactionHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		methodNotAllowed(w)
	}
}

// Item handles /api/transactions/{id}.
func (h *TransactionHandler) Item(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	h.delete(w, r)
}

func (h *TransactionHandler) list(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	txs, err := h.transactions.List(r.Context(), userID)
	if err != nil {
		h.log.Error("Failed to list transactions: %v", err)
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"transactions": txs})
}

func (h *TransactionHandler) create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Type == "" || req.Amount == 0 || req.Category == "" || req.Date == "" {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.Type != models.CategoryExpense && req.Type != models.CategoryIncome {
		writeMessage(w, http.StatusBadRequest, "Invalid transaction type")
		return
	}
	if err := validation.ValidateAmount(req.Amount); err != nil {
		writeMessage(w, http.StatusBadRequest, "Amount must be a positive number")
		return
	}

	tx, err := h.transactions.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			writeMessage(w, http.StatusBadRequest, "Invalid date")
			return
		}
		h.log.Error("Failed to create transaction: %v", err)
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"transaction": tx})
}

func (h *TransactionHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := pathID(r, "/api/transactions/")

	if err := h.transactions.Delete(r.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "Transaction not found")
		case errors.Is(err, service.ErrNotOwner):
			writeMessage(w, http.StatusUnauthorized, "Not authorized")
		default:
			h.log.Error("Failed to delete transaction: %v", err)
			writeServerError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Transaction deleted",
		"id":      id,
	})
}
