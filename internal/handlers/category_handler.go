package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"taxpal/internal/logger"
	"taxpal/internal/middleware"
	"taxpal/internal/models"
	"taxpal/internal/service"
)

type CategoryHandler struct {
	categories *service.CategoryService
	log        *logger.Logger
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categories: categories,
		log:        logger.New("category-handler"),
	}
}

// Collection handles /api/categories.
func (h *CategoryHandler) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		methodNotAllowed(w)
	}
}

// Item handles /api/categories/{id}.
func (h *CategoryHandler) Item(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPut:
		h.update(w, r)
	case http.MethodDelete:
		h.delete(w, r)
	default:
		methodNotAllowed(w)
	}
}

func (h *CategoryHandler) list(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	cats, err := h.categories.List(r.Context(), userID)
	if err != nil {
		h.log.Error("Failed to list categories: %v", err)
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": cats})
}

func (h *CategoryHandler) create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" || req.Type == "" || req.Color == "" {
		writeMessage(w, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.Type != models.CategoryExpense && req.Type != models.CategoryIncome {
		writeMessage(w, http.StatusBadRequest, "Invalid category type")
		return
	}

	cat, err := h.categories.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryExists) {
			writeMessage(w, http.StatusBadRequest, "Category already exists")
			return
		}
		h.log.Error("Failed to create category: %v", err)
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"category": cat})
}

func (h *CategoryHandler) update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := pathID(r, "/api/categories/")

	var req models.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cat, err := h.categories.Update(r.Context(), userID, id, &req)
	if err != nil {
		h.writeCategoryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"category": cat})
}

func (h *CategoryHandler) delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := pathID(r, "/api/categories/")

	if err := h.categories.Delete(r.Context(), userID, id); err != nil {
		h.writeCategoryError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Category deleted",
		"id":      id,
	})
}

func (h *CategoryHandler) writeCategoryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeMessage(w, http.StatusNotFound, "Category not found")
	case errors.Is(err, service.ErrNotOwner):
		// kept 401 rather than 403 for wire compatibility with older clients
		writeMessage(w, http.StatusUnauthorized, "Not authorized")
	default:
		h.log.Error("Category operation failed: %v", err)
		writeServerError(w, err)
	}
}
