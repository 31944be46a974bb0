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

type BudgetHandler struct {
	budgets *service.BudgetService
	log     *logger.Logger
}

func NewBudgetHandler(budgets *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{
		budgets: budgets,
		log:     logger.New("budget-handler"),
	}
}

// Collection handles /api/budgets.
func (h *BudgetHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		methodNotAllowed(w)
	}
}

// Item handles /api/budgets/{id}.
func (h *BudgetHandler) Item(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		methodNotAllowed(w)
		return
	}
	h.delete(w, r)
}

func (h *BudgetHandler) list(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	budgets, err := h.budgets.List(r.Context(), userID)
	if err != nil {
		h.log.Error("Failed to list budgets: %v", err)
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"budgets": budgets})
}

func (h *BudgetHandler) create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.CreateBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Category == "" || req.Amount == 0 || req.Month == "" {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if err := validation.ValidateAmount(req.Amount); err != nil {
		writeMessage(w, http.StatusBadRequest, "Amount must be a positive number")
		return
	}
	if err := validation.ValidateMonth(req.Month); err != nil {
		writeMessage(w, http.StatusBadRequest, "Month must be in YYYY-MM format")
		return
	}

	budget, err := h.budgets.Create(r.Context(), userID, &req)
	if err != nil {
		h.log.Error("Failed to create budget: %v", err)
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"budget": budget})
}

func (h *BudgetHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := pathID(r, "/api/budgets/")

	if err := h.budgets.Delete(r.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			writeMessage(w, http.StatusNotFound, "Budget not found")
		case errors.Is(err, service.ErrNotOwner):
			writeMessage(w, http.StatusUnauthorized, "Not authorized")
		default:
			h.log.Error("Failed to delete budget: %v", err)
			writeServerError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Budget deleted",
		"id":      id,
	})
}
