package catalog

import (
	"net/http"
	"strconv"

	"bookshelf/internal/httpx"
)

type HTTPHandler struct {
	svc *Service
}

func NewHTTPHandler(svc *Service) *HTTPHandler {
	return &HTTPHandler{svc: svc}
}

// Search handles GET /v1/catalog/search. Without a query it falls back
// to the featured aggregate, matching the browse page this API feeds.
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	if pageSize <= 0 || pageSize > 40 {
		pageSize = 20
	}

	q := query.Get("q")
	if q == "" {
		records := h.svc.GetFeatured(r.Context(), pageSize)
		httpx.JSONSuccess(w, r, records, map[string]any{
			"featured": true,
			"total":    len(records),
		})
		return
	}

	res := h.svc.Search(r.Context(), q, pageSize, (page-1)*pageSize)
	if res.Err != "" {
		httpx.JSONError(w, r, http.StatusBadGateway, "UPSTREAM_ERROR", res.Err, nil)
		return
	}

	httpx.JSONSuccess(w, r, res.Records, map[string]any{
		"page":      page,
		"page_size": pageSize,
		"total":     res.TotalCount,
	})
}

// Featured handles GET /v1/catalog/featured. A fully failed aggregation
// degrades to an empty list rather than an error.
func (h *HTTPHandler) Featured(w http.ResponseWriter, r *http.Request) {
	max, _ := strconv.Atoi(r.URL.Query().Get("max"))
	if max <= 0 || max > 40 {
		max = 12
	}

	records := h.svc.GetFeatured(r.Context(), max)
	httpx.JSONSuccess(w, r, records, map[string]any{"total": len(records)})
}

// GetDetails handles GET /v1/catalog/volumes/{id}
func (h *HTTPHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	volumeID := r.PathValue("id")
	if volumeID == "" {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "volume id is required", nil)
		return
	}

	rec, err := h.svc.GetDetails(r.Context(), volumeID)
	if err != nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Volume not found or could not be retrieved", nil)
		return
	}

	httpx.JSONSuccess(w, r, rec, nil)
}
