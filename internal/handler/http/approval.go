package http

import (
	"encoding/json"
	"net/http"

	"github.com/gajkesari/backoffice-go/internal/domain/approval"
	"github.com/gajkesari/backoffice-go/internal/handler/http/response"
	approvalService "github.com/gajkesari/backoffice-go/internal/service/approval"
	"github.com/go-chi/chi/v5"
)

type ApprovalHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type approvalHandlerImpl struct {
	approvalService *approvalService.Service
}

func NewApprovalHandler(s *approvalService.Service) ApprovalHandler {
	return &approvalHandlerImpl{approvalService: s}
}

func (h *approvalHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := approval.ListRequest{
		Status: query.Get("status"),
		Search: query.Get("search"),
		SortBy: query.Get("sortBy"),
	}

	result, err := h.approvalService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *approvalHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	var req approval.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.approvalService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request "+result.Status, result)
}
