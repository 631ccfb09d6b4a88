package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Repository manages sales data via the backend API.
type Repository interface {
	GetAll(ctx context.Context) ([]Record, error)
	Create(ctx context.Context, req CreateRequest) (Record, error)
	TotalTonsByStore(ctx context.Context, storeID string, start, end time.Time) (decimal.Decimal, error)
	Stores(ctx context.Context) ([]Store, error)
	StoreByID(ctx context.Context, storeID string) (Store, error)
}
