package enquiry

import (
	"context"
	"io"
	"time"
)

// TextFilters narrow enquiries by free-text fields.
type TextFilters struct {
	StoreName string
	Taluka    string
	SheetName string
	FileName  string
}

// Empty reports whether no text filter is set.
func (f TextFilters) Empty() bool {
	return f.StoreName == "" && f.Taluka == "" && f.SheetName == "" && f.FileName == ""
}

// Repository reads enquiry data via the backend API. The backend exposes
// three list endpoints; the service picks one per query shape.
type Repository interface {
	GetAll(ctx context.Context) ([]Enquiry, error)
	Filter(ctx context.Context, filters TextFilters) ([]Enquiry, error)
	Range(ctx context.Context, startMonth, endMonth time.Time) ([]Enquiry, error)
	Upload(ctx context.Context, fileName string, contentType string, file io.Reader) (string, error)
}
