package response

import (
	"errors"
	"net/http"

	"github.com/gajkesari/backoffice-go/internal/domain/approval"
	"github.com/gajkesari/backoffice-go/internal/domain/employee"
	"github.com/gajkesari/backoffice-go/internal/domain/enquiry"
	"github.com/gajkesari/backoffice-go/internal/domain/report"
	"github.com/gajkesari/backoffice-go/internal/domain/sales"
	"github.com/gajkesari/backoffice-go/internal/domain/salary"
	"github.com/gajkesari/backoffice-go/internal/domain/travel"
	"github.com/gajkesari/backoffice-go/internal/domain/visit"
	"github.com/gajkesari/backoffice-go/internal/pkg/upstream"
	"github.com/gajkesari/backoffice-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Backend failures keep their status and body text
	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		if statusErr.StatusCode == http.StatusUnauthorized {
			Unauthorized(w, "Please log in again")
			return
		}
		UpstreamError(w, statusErr.StatusCode, statusErr.Body)
		return
	}

	switch {
	// Report pipeline errors
	case errors.Is(err, report.ErrUnknownColumn):
		BadRequest(w, "Unknown filter or sort column", nil)
	case errors.Is(err, report.ErrInvalidPage), errors.Is(err, report.ErrInvalidPageSize):
		BadRequest(w, err.Error(), nil)

	// Salary domain errors
	case errors.Is(err, salary.ErrSummaryNotFound):
		NotFound(w, "No salary summary for that employee in the range")
	case errors.Is(err, salary.ErrInvalidDateRange), errors.Is(err, salary.ErrEmployeeRequired):
		BadRequest(w, err.Error(), nil)

	// Travel domain errors
	case errors.Is(err, travel.ErrNoAnomalousDays):
		NotFound(w, "No anomalous days to back-fill in the range")
	case errors.Is(err, travel.ErrInvalidDateRange), errors.Is(err, travel.ErrEmployeeRequired):
		BadRequest(w, err.Error(), nil)

	// Approval domain errors
	case errors.Is(err, approval.ErrRequestNotFound):
		NotFound(w, "Approval request not found")
	case errors.Is(err, approval.ErrAlreadyDecided):
		Conflict(w, "Approval request already decided")
	case errors.Is(err, approval.ErrInvalidAction),
		errors.Is(err, approval.ErrInvalidAttendanceType),
		errors.Is(err, approval.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Sales domain errors
	case errors.Is(err, sales.ErrStoreNotFound):
		NotFound(w, "Store not found")
	case errors.Is(err, sales.ErrNoAssignedOfficer):
		NotFound(w, "Store has no assigned field officer")

	// Enquiry domain errors
	case errors.Is(err, enquiry.ErrInvalidMonthRange), errors.Is(err, enquiry.ErrEmptyUpload):
		BadRequest(w, err.Error(), nil)

	// Visit domain errors
	case errors.Is(err, visit.ErrUnknownPreset),
		errors.Is(err, visit.ErrUnknownCustomerType),
		errors.Is(err, visit.ErrInvalidDateRange),
		errors.Is(err, visit.ErrEmployeeRequired):
		BadRequest(w, err.Error(), nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrDirectoryEmpty):
		NotFound(w, "Employee directory is empty")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
