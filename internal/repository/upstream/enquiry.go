package upstream

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/url"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/enquiry"
	"github.com/gajkesari/backoffice-go/internal/pkg/upstream"
	"github.com/shopspring/decimal"
)

type EnquiryRepository struct {
	client *upstream.Client
}

func NewEnquiryRepository(client *upstream.Client) *EnquiryRepository {
	return &EnquiryRepository{client: client}
}

type enquiryDTO struct {
	ID            string             `json:"id"`
	DealerName    string             `json:"dealerName"`
	Taluka        string             `json:"taluka"`
	City          string             `json:"city"`
	State         string             `json:"state"`
	Population    int                `json:"population"`
	Expenses      float64            `json:"expenses"`
	ContactNumber string             `json:"contactNumber"`
	FileName      string             `json:"fileName"`
	SheetName     string             `json:"sheetName"`
	Sales         map[string]float64 `json:"sales"`
}

func (r *EnquiryRepository) GetAll(ctx context.Context) ([]enquiry.Enquiry, error) {
	var rows []enquiryDTO
	if err := r.client.GetJSON(ctx, "/enquiry/getAll", nil, &rows); err != nil {
		return nil, err
	}
	return mapToEnquiries(rows), nil
}

func (r *EnquiryRepository) Filter(ctx context.Context, filters enquiry.TextFilters) ([]enquiry.Enquiry, error) {
	query := url.Values{}
	if filters.StoreName != "" {
		query.Set("storeName", filters.StoreName)
	}
	if filters.Taluka != "" {
		query.Set("taluka", filters.Taluka)
	}
	if filters.SheetName != "" {
		query.Set("sheetName", filters.SheetName)
	}
	if filters.FileName != "" {
		query.Set("fileName", filters.FileName)
	}

	var rows []enquiryDTO
	if err := r.client.GetJSON(ctx, "/enquiry/filter", query, &rows); err != nil {
		return nil, err
	}
	return mapToEnquiries(rows), nil
}

func (r *EnquiryRepository) Range(ctx context.Context, startMonth, endMonth time.Time) ([]enquiry.Enquiry, error) {
	query := url.Values{}
	query.Set("startMonth", startMonth.Format(enquiry.MonthKeyLayout))
	query.Set("endMonth", endMonth.Format(enquiry.MonthKeyLayout))

	var rows []enquiryDTO
	if err := r.client.GetJSON(ctx, "/enquiry/range", query, &rows); err != nil {
		return nil, err
	}
	return mapToEnquiries(rows), nil
}

func (r *EnquiryRepository) Upload(ctx context.Context, fileName string, contentType string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	return r.client.PostRaw(ctx, "/enquiry/upload", writer.FormDataContentType(), &buf)
}

func mapToEnquiries(rows []enquiryDTO) []enquiry.Enquiry {
	result := make([]enquiry.Enquiry, 0, len(rows))
	for _, row := range rows {
		salesByMonth := make(map[string]decimal.Decimal, len(row.Sales))
		for month, tons := range row.Sales {
			salesByMonth[month] = decimal.NewFromFloat(tons)
		}
		result = append(result, enquiry.Enquiry{
			ID:            row.ID,
			DealerName:    row.DealerName,
			Taluka:        row.Taluka,
			City:          row.City,
			State:         row.State,
			Population:    row.Population,
			Expenses:      decimal.NewFromFloat(row.Expenses),
			ContactNumber: row.ContactNumber,
			FileName:      row.FileName,
			SheetName:     row.SheetName,
			Sales:         salesByMonth,
		})
	}
	return result
}
