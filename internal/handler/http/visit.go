package http

import (
	"net/http"

	"github.com/gajkesari/backoffice-go/internal/domain/visit"
	"github.com/gajkesari/backoffice-go/internal/handler/http/response"
	visitService "github.com/gajkesari/backoffice-go/internal/service/visit"
)

type VisitHandler interface {
	OfficerStats(w http.ResponseWriter, r *http.Request)
	CustomerDetails(w http.ResponseWriter, r *http.Request)
}

type visitHandlerImpl struct {
	visitService *visitService.Service
}

func NewVisitHandler(s *visitService.Service) VisitHandler {
	return &visitHandlerImpl{visitService: s}
}

func (h *visitHandlerImpl) OfficerStats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := visit.StatsRequest{
		EmployeeID: query.Get("employeeId"),
		StartDate:  query.Get("startDate"),
		EndDate:    query.Get("endDate"),
		Preset:     query.Get("preset"),
	}

	result, err := h.visitService.OfficerStats(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *visitHandlerImpl) CustomerDetails(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := visit.DetailsRequest{
		EmployeeID:   query.Get("employeeId"),
		StartDate:    query.Get("startDate"),
		EndDate:      query.Get("endDate"),
		CustomerType: query.Get("customerType"),
	}

	result, err := h.visitService.CustomerDetails(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
