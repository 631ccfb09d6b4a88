package upstream

import (
	"context"
	"net/url"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/sales"
	"github.com/gajkesari/backoffice-go/internal/pkg/upstream"
	"github.com/shopspring/decimal"
)

type SalesRepository struct {
	client *upstream.Client
}

func NewSalesRepository(client *upstream.Client) *SalesRepository {
	return &SalesRepository{client: client}
}

type salesRecordDTO struct {
	ID          string  `json:"id"`
	StoreID     string  `json:"storeId"`
	StoreName   string  `json:"storeName"`
	StoreCity   string  `json:"storeCity"`
	StoreState  string  `json:"storeState"`
	EmployeeID  string  `json:"employeeId"`
	OfficerName string  `json:"officerName"`
	Tons        float64 `json:"tons"`
	Date        string  `json:"date"`
}

func (r *SalesRepository) GetAll(ctx context.Context) ([]sales.Record, error) {
	var rows []salesRecordDTO
	if err := r.client.GetJSON(ctx, "/sales/getAll", nil, &rows); err != nil {
		return nil, err
	}

	result := make([]sales.Record, 0, len(rows))
	for _, row := range rows {
		record, err := mapToRecord(row)
		if err != nil {
			return nil, err
		}
		result = append(result, record)
	}
	return result, nil
}

func (r *SalesRepository) Create(ctx context.Context, req sales.CreateRequest) (sales.Record, error) {
	var row salesRecordDTO
	if err := r.client.PostJSON(ctx, "/sales/create", req, &row); err != nil {
		return sales.Record{}, err
	}
	return mapToRecord(row)
}

type totalTonsDTO struct {
	TotalTons float64 `json:"totalTons"`
}

func (r *SalesRepository) TotalTonsByStore(ctx context.Context, storeID string, start, end time.Time) (decimal.Decimal, error) {
	query := url.Values{}
	query.Set("storeId", storeID)
	query.Set("startDate", start.Format(dateLayout))
	query.Set("endDate", end.Format(dateLayout))

	var body totalTonsDTO
	if err := r.client.GetJSON(ctx, "/sales/totalTonsByStore", query, &body); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromFloat(body.TotalTons), nil
}

type storeDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	City      string `json:"city"`
	State     string `json:"state"`
	OfficerID string `json:"officerId"`
}

func (r *SalesRepository) Stores(ctx context.Context) ([]sales.Store, error) {
	var rows []storeDTO
	if err := r.client.GetJSON(ctx, "/store/getAll", nil, &rows); err != nil {
		return nil, err
	}

	result := make([]sales.Store, 0, len(rows))
	for _, row := range rows {
		result = append(result, sales.Store(row))
	}
	return result, nil
}

func (r *SalesRepository) StoreByID(ctx context.Context, storeID string) (sales.Store, error) {
	query := url.Values{}
	query.Set("id", storeID)

	var row storeDTO
	if err := r.client.GetJSON(ctx, "/store/getById", query, &row); err != nil {
		if upstream.IsStatus(err, 404) {
			return sales.Store{}, sales.ErrStoreNotFound
		}
		return sales.Store{}, err
	}
	return sales.Store(row), nil
}

func mapToRecord(row salesRecordDTO) (sales.Record, error) {
	date, err := time.Parse(dateLayout, row.Date)
	if err != nil {
		return sales.Record{}, err
	}
	return sales.Record{
		ID:          row.ID,
		StoreID:     row.StoreID,
		StoreName:   row.StoreName,
		StoreCity:   row.StoreCity,
		StoreState:  row.StoreState,
		EmployeeID:  row.EmployeeID,
		OfficerName: row.OfficerName,
		Tons:        decimal.NewFromFloat(row.Tons),
		Date:        date,
	}, nil
}
