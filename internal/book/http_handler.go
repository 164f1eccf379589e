package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"bookshelf/internal/httpx"
)

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// List handles GET /v1/books
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 12
	}

	params := Query{
		Search: query.Get("search"),
		Author: query.Get("author"),
		Genre:  query.Get("genre"),
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}

	books, total, err := h.service.List(r.Context(), params)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccess(w, r, books, map[string]any{
		"page":        page,
		"page_size":   pageSize,
		"total":       total,
		"total_pages": (total + pageSize - 1) / pageSize,
	})
}

// GetByID handles GET /v1/books/{id}
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "book id is required", nil)
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

type createRequest struct {
	Title         string `json:"title" validate:"required,max=200"`
	Author        string `json:"author" validate:"required,max=200"`
	Description   string `json:"description" validate:"max=9999"`
	Price         int    `json:"price" validate:"gte=0"`
	Genres        string `json:"genres" validate:"max=500"`
	PublishedDate string `json:"published_date" validate:"max=20"`
	ImageURL      string `json:"image_url" validate:"max=500"`
}

// Create handles POST /v1/books (authenticated).
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)
	if userID == "" {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required", nil)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}

	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", details)
		return
	}

	b := Book{
		Title:         req.Title,
		Author:        req.Author,
		Description:   req.Description,
		Price:         req.Price,
		Genres:        req.Genres,
		PublishedDate: req.PublishedDate,
		ImageURL:      req.ImageURL,
	}

	stored, err := h.service.Create(r.Context(), &b, userID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	httpx.JSONSuccessCreated(w, r, stored)
}
