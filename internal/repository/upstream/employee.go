package upstream

import (
	"context"
	"time"

	"github.com/gajkesari/backoffice-go/internal/domain/employee"
	"github.com/gajkesari/backoffice-go/internal/pkg/upstream"
	"github.com/shopspring/decimal"
)

type EmployeeRepository struct {
	client *upstream.Client
}

func NewEmployeeRepository(client *upstream.Client) *EmployeeRepository {
	return &EmployeeRepository{client: client}
}

type employeeDTO struct {
	ID                string   `json:"id"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Role              string   `json:"role"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	DateOfJoining     string   `json:"dateOfJoining"`
	FullMonthSalary   float64  `json:"fullMonthSalary"`
	TravelAllowance   *float64 `json:"travelAllowance"`
	DearnessAllowance *float64 `json:"dearnessAllowance"`
	Status            string   `json:"status"`
}

func (r *EmployeeRepository) GetAll(ctx context.Context) ([]employee.Employee, error) {
	return r.fetch(ctx, "/employee/getAll")
}

func (r *EmployeeRepository) GetAllInactive(ctx context.Context) ([]employee.Employee, error) {
	return r.fetch(ctx, "/employee/getAllInactive")
}

func (r *EmployeeRepository) fetch(ctx context.Context, path string) ([]employee.Employee, error) {
	var rows []employeeDTO
	if err := r.client.GetJSON(ctx, path, nil, &rows); err != nil {
		return nil, err
	}

	result := make([]employee.Employee, 0, len(rows))
	for _, row := range rows {
		emp := employee.Employee{
			ID:              row.ID,
			FirstName:       row.FirstName,
			LastName:        row.LastName,
			Role:            row.Role,
			Email:           row.Email,
			Phone:           row.Phone,
			City:            row.City,
			State:           row.State,
			FullMonthSalary: decimal.NewFromFloat(row.FullMonthSalary),
			Status:          employee.Status(row.Status),
		}
		if row.DateOfJoining != "" {
			joined, err := time.Parse(dateLayout, row.DateOfJoining)
			if err != nil {
				return nil, err
			}
			emp.DateOfJoining = joined
		}
		if row.TravelAllowance != nil {
			rate := decimal.NewFromFloat(*row.TravelAllowance)
			emp.TravelAllowanceRate = &rate
		}
		if row.DearnessAllowance != nil {
			rate := decimal.NewFromFloat(*row.DearnessAllowance)
			emp.DearnessAllowanceRate = &rate
		}
		result = append(result, emp)
	}
	return result, nil
}
