package http

import (
	"net/http"

	"github.com/gajkesari/backoffice-go/internal/handler/http/response"
	employeeService "github.com/gajkesari/backoffice-go/internal/service/employee"
)

type EmployeeHandler interface {
	FieldOfficers(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService *employeeService.Service
}

func NewEmployeeHandler(s *employeeService.Service) EmployeeHandler {
	return &employeeHandlerImpl{employeeService: s}
}

func (h *employeeHandlerImpl) FieldOfficers(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ActiveFieldOfficers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
