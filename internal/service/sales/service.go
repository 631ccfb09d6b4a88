package sales

import (
	"context"
	"log/slog"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/report"
	"github.com/gajkesari/backoffice-go/internal/domain/sales"
)

// DefaultPageSize matches the sales table page length.
const DefaultPageSize = 15

type Service struct {
	repo sales.Repository
}

func NewService(repo sales.Repository) *Service {
	return &Service{repo: repo}
}

var recordTable = report.Table[sales.Record]{
	Columns: map[string]report.Column[sales.Record]{
		"storeName": {
			Kind:   report.Text,
			String: func(r sales.Record) string { return r.StoreName },
		},
		"officerName": {
			Kind:   report.Text,
			String: func(r sales.Record) string { return r.OfficerName },
		},
		"city": {
			Kind:   report.Text,
			String: func(r sales.Record) string { return r.StoreCity },
		},
		"state": {
			Kind:   report.Text,
			String: func(r sales.Record) string { return r.StoreState },
		},
		"date": {
			Kind:   report.Date,
			String: func(r sales.Record) string { return r.Date.Format("2006-01-02") },
			Date:   func(r sales.Record) time.Time { return r.Date },
		},
	},
	DefaultSort: "storeName",
}

// List returns one page of sales records, newest first, with the four text
// filters combined conjunctively.
func (s *Service) List(ctx context.Context, req sales.ListRequest) (report.Page[sales.RecordResponse], error) {
	records, err := s.repo.GetAll(ctx)
	if err != nil {
		return report.Page[sales.RecordResponse]{}, err
	}

	page := req.Page
	if page < 1 {
		page = 1
	}

	result, err := recordTable.Run(records, report.Query{
		Filters: map[string]string{
			"storeName":   req.StoreName,
			"officerName": req.OfficerName,
			"city":        req.City,
			"state":       req.State,
		},
		SortBy:    "date",
		SortOrder: report.Desc,
		Page:      page,
		PageSize:  DefaultPageSize,
	})
	if err != nil {
		return report.Page[sales.RecordResponse]{}, err
	}

	resp := report.Page[sales.RecordResponse]{
		Items:      make([]sales.RecordResponse, 0, len(result.Items)),
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
		Number:     result.Number,
		PageSize:   result.PageSize,
	}
	for _, record := range result.Items {
		resp.Items = append(resp.Items, mapToRecordResponse(record))
	}
	return resp, nil
}

// Create records a new sale.
func (s *Service) Create(ctx context.Context, req sales.CreateRequest) (sales.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return sales.RecordResponse{}, err
	}

	record, err := s.repo.Create(ctx, req)
	if err != nil {
		return sales.RecordResponse{}, err
	}
	return mapToRecordResponse(record), nil
}

// StoreSummary totals tons sold at a store over a range and enriches with
// city/state. The store-details lookup is best effort: on failure the
// summary is returned partial rather than failing the whole call.
func (s *Service) StoreSummary(ctx context.Context, req sales.SummaryRequest) (sales.StoreSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return sales.StoreSummaryResponse{}, err
	}
	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	totalTons, err := s.repo.TotalTonsByStore(ctx, req.StoreID, start, end)
	if err != nil {
		return sales.StoreSummaryResponse{}, err
	}

	resp := sales.StoreSummaryResponse{
		StoreID:   req.StoreID,
		TotalTons: totalTons,
	}

	store, err := s.repo.StoreByID(ctx, req.StoreID)
	if err != nil {
		slog.Warn("Store details lookup failed, returning partial summary",
			"store_id", req.StoreID,
			"error", err,
		)
		resp.Partial = true
		return resp, nil
	}

	resp.StoreName = store.Name
	resp.City = store.City
	resp.State = store.State
	return resp, nil
}

// Stores lists all dealer outlets.
func (s *Service) Stores(ctx context.Context) ([]sales.StoreResponse, error) {
	stores, err := s.repo.Stores(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]sales.StoreResponse, 0, len(stores))
	for _, store := range stores {
		resp = append(resp, sales.StoreResponse{
			ID:    store.ID,
			Name:  store.Name,
			City:  store.City,
			State: store.State,
		})
	}
	return resp, nil
}

// ResolveOfficerForStore returns the field officer assigned to a store.
// A store without an assignment is a soft error the caller can surface
// as a warning.
func (s *Service) ResolveOfficerForStore(ctx context.Context, storeID string) (sales.OfficerResponse, error) {
	store, err := s.repo.StoreByID(ctx, storeID)
	if err != nil {
		return sales.OfficerResponse{}, err
	}
	if store.OfficerID == "" {
		return sales.OfficerResponse{}, sales.ErrNoAssignedOfficer
	}
	return sales.OfficerResponse{StoreID: storeID, OfficerID: store.OfficerID}, nil
}

func mapToRecordResponse(record sales.Record) sales.RecordResponse {
	return sales.RecordResponse{
		ID:          record.ID,
		StoreID:     record.StoreID,
		StoreName:   record.StoreName,
		StoreCity:   record.StoreCity,
		StoreState:  record.StoreState,
		EmployeeID:  record.EmployeeID,
		OfficerName: record.OfficerName,
		Tons:        record.Tons,
		Date:        record.Date.Format("2006-01-02"),
	}
}
