package http

import (
	"encoding/json"
	"net/http"

	"github.com/gajkesari/backoffice-go/internal/domain/sales"
	"github.com/gajkesari/backoffice-go/internal/handler/http/response"
	salesService "github.com/gajkesari/backoffice-go/internal/service/sales"
	"github.com/go-chi/chi/v5"
)

type SalesHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	StoreSummary(w http.ResponseWriter, r *http.Request)
	Stores(w http.ResponseWriter, r *http.Request)
	StoreOfficer(w http.ResponseWriter, r *http.Request)
}

type salesHandlerImpl struct {
	salesService *salesService.Service
}

func NewSalesHandler(s *salesService.Service) SalesHandler {
	return &salesHandlerImpl{salesService: s}
}

func (h *salesHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := sales.ListRequest{
		StoreName:   query.Get("storeName"),
		OfficerName: query.Get("officerName"),
		City:        query.Get("city"),
		State:       query.Get("state"),
	}
	page, ok := pageParam(query, "page")
	if !ok {
		response.BadRequest(w, "page must be numeric", nil)
		return
	}
	req.Page = page

	result, err := h.salesService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Items, &response.Meta{
		Page:       result.Number,
		PageSize:   result.PageSize,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}

func (h *salesHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req sales.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.salesService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Sale recorded", result)
}

func (h *salesHandlerImpl) StoreSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := sales.SummaryRequest{
		StoreID:   query.Get("storeId"),
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
	}

	result, err := h.salesService.StoreSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salesHandlerImpl) Stores(w http.ResponseWriter, r *http.Request) {
	result, err := h.salesService.Stores(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salesHandlerImpl) StoreOfficer(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "id")
	if storeID == "" {
		response.BadRequest(w, "Store ID is required", nil)
		return
	}

	result, err := h.salesService.ResolveOfficerForStore(r.Context(), storeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
