package enquiry

import (
	"context"
	"io"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/enquiry"
)

type Service struct {
	repo enquiry.Repository
}

func NewService(repo enquiry.Repository) *Service {
	return &Service{repo: repo}
}

// List fetches enquiries using the endpoint that matches the query shape:
// any text filter routes to the filter endpoint, a month range alone to
// the range endpoint, and an empty query to the full listing.
func (s *Service) List(ctx context.Context, req enquiry.ListRequest) (enquiry.ListResponse, error) {
	if err := req.Validate(); err != nil {
		return enquiry.ListResponse{}, err
	}

	var rows []enquiry.Enquiry
	var err error

	textFilters := req.TextFilters()
	switch {
	case !textFilters.Empty():
		rows, err = s.repo.Filter(ctx, textFilters)
	case req.StartMonth != "" && req.EndMonth != "":
		start, _ := time.Parse(enquiry.MonthKeyLayout, req.StartMonth)
		end, _ := time.Parse(enquiry.MonthKeyLayout, req.EndMonth)
		rows, err = s.repo.Range(ctx, start, end)
	default:
		rows, err = s.repo.GetAll(ctx)
	}
	if err != nil {
		return enquiry.ListResponse{}, err
	}

	resp := enquiry.ListResponse{
		Rows:         make([]enquiry.RowResponse, 0, len(rows)),
		MonthColumns: enquiry.MonthColumns(rows),
	}
	for _, row := range rows {
		resp.Rows = append(resp.Rows, enquiry.RowResponse{
			ID:            row.ID,
			DealerName:    row.DealerName,
			Taluka:        row.Taluka,
			City:          row.City,
			State:         row.State,
			Population:    row.Population,
			Expenses:      row.Expenses,
			ContactNumber: row.ContactNumber,
			FileName:      row.FileName,
			SheetName:     row.SheetName,
			Sales:         row.Sales,
			TotalSales:    row.TotalSales(),
		})
	}
	return resp, nil
}

// Upload relays a bulk enquiry file to the backend and surfaces its
// response text verbatim.
func (s *Service) Upload(ctx context.Context, fileName string, contentType string, file io.Reader) (enquiry.UploadResponse, error) {
	if fileName == "" {
		return enquiry.UploadResponse{}, enquiry.ErrEmptyUpload
	}

	message, err := s.repo.Upload(ctx, fileName, contentType, file)
	if err != nil {
		return enquiry.UploadResponse{}, err
	}
	return enquiry.UploadResponse{Message: message}, nil
}
