package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gajkesari/backoffice-go/internal/domain/travel"
	"github.com/gajkesari/backoffice-go/internal/handler/http/response"
	"github.com/gajkesari/backoffice-go/internal/pkg/jwt"
	"github.com/gajkesari/backoffice-go/internal/pkg/sse"
	travelService "github.com/gajkesari/backoffice-go/internal/service/travel"
)

type TravelHandler interface {
	Anomalies(w http.ResponseWriter, r *http.Request)
	Backfill(w http.ResponseWriter, r *http.Request)
	BackfillEvents(w http.ResponseWriter, r *http.Request)
}

type travelHandlerImpl struct {
	travelService *travelService.Service
	hub           *sse.Hub
	jwtService    jwt.Service
}

func NewTravelHandler(s *travelService.Service, hub *sse.Hub, jwtService jwt.Service) TravelHandler {
	return &travelHandlerImpl{travelService: s, hub: hub, jwtService: jwtService}
}

func (h *travelHandlerImpl) Anomalies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := travel.AnomaliesRequest{
		EmployeeID: query.Get("employeeId"),
		Start:      query.Get("start"),
		End:        query.Get("end"),
	}

	result, err := h.travelService.Anomalies(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *travelHandlerImpl) Backfill(w http.ResponseWriter, r *http.Request) {
	var req travel.BackfillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.travelService.Backfill(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Back-fill completed", result)
}

// BackfillEvents streams per-day back-fill progress for one employee.
// EventSource cannot set an Authorization header, so the bearer rides in
// the token query parameter and is validated here instead of by the
// router middleware.
func (h *travelHandlerImpl) BackfillEvents(w http.ResponseWriter, r *http.Request) {
	if _, err := h.jwtService.ValidateSSEToken(r.URL.Query().Get("token")); err != nil {
		response.Unauthorized(w, "Invalid or expired token")
		return
	}

	employeeID := r.URL.Query().Get("employeeId")
	if employeeID == "" {
		response.BadRequest(w, "employeeId is required", nil)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, cleanup := h.hub.Subscribe(employeeID)
	defer cleanup()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			payload, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Name, payload)
			flusher.Flush()
		}
	}
}
