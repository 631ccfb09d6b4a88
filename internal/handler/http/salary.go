package http

import (
	"net/http"

	"github.com/gajkesari/backoffice-go/internal/domain/salary"
	"github.com/gajkesari/backoffice-go/internal/handler/http/response"
	salaryService "github.com/gajkesari/backoffice-go/internal/service/salary"
)

type SalaryHandler interface {
	SummaryRange(w http.ResponseWriter, r *http.Request)
	DailyBreakdown(w http.ResponseWriter, r *http.Request)
	Reconciliation(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService *salaryService.Service
}

func NewSalaryHandler(s *salaryService.Service) SalaryHandler {
	return &salaryHandlerImpl{salaryService: s}
}

func (h *salaryHandlerImpl) SummaryRange(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := salary.SummaryRangeRequest{
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
		Search:    query.Get("search"),
		SortBy:    query.Get("sortBy"),
		SortOrder: query.Get("sortOrder"),
	}
	var ok bool
	if req.Page, ok = pageParam(query, "page"); !ok {
		response.BadRequest(w, "page must be numeric", nil)
		return
	}
	if req.PageSize, ok = pageParam(query, "pageSize"); !ok {
		response.BadRequest(w, "pageSize must be numeric", nil)
		return
	}

	result, err := h.salaryService.SummaryRange(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Rows, &response.Meta{
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}

func (h *salaryHandlerImpl) DailyBreakdown(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := salary.DailyBreakdownRequest{
		EmployeeID: query.Get("employeeId"),
		StartDate:  query.Get("startDate"),
		EndDate:    query.Get("endDate"),
	}

	result, err := h.salaryService.DailyBreakdown(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) Reconciliation(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := salary.DailyBreakdownRequest{
		EmployeeID: query.Get("employeeId"),
		StartDate:  query.Get("startDate"),
		EndDate:    query.Get("endDate"),
	}

	result, err := h.salaryService.Reconciliation(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
