package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name   string
	Amount float64
	Date   time.Time
}

func testTable() Table[row] {
	return Table[row]{
		Columns: map[string]Column[row]{
			"name": {
				Kind:   Text,
				String: func(r row) string { return r.Name },
			},
			"amount": {
				Kind:   Number,
				String: func(r row) string { return "" },
				Number: func(r row) float64 { return r.Amount },
			},
			"date": {
				Kind:   Date,
				String: func(r row) string { return "" },
				Date:   func(r row) time.Time { return r.Date },
			},
		},
		DefaultSort: "name",
	}
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func testRows() []row {
	return []row{
		{Name: "Ramesh Patil", Amount: 300, Date: day(3)},
		{Name: "Anil Kumar", Amount: 100, Date: day(5)},
		{Name: "Suresh Jadhav", Amount: 200, Date: day(1)},
		{Name: "anita Deshmukh", Amount: 400, Date: day(2)},
	}
}

func TestRun_DefaultSortByNameAscending(t *testing.T) {
	t.Parallel()

	page, err := testTable().Run(testRows(), Query{Page: 1, PageSize: 10})
	require.NoError(t, err)

	names := make([]string, 0, len(page.Items))
	for _, r := range page.Items {
		names = append(names, r.Name)
	}
	// Case-insensitive collation puts "anita" between "Anil" and "Ramesh".
	assert.Equal(t, []string{"Anil Kumar", "anita Deshmukh", "Ramesh Patil", "Suresh Jadhav"}, names)
}

func TestRun_FiltersAreConjunctiveAndCaseInsensitive(t *testing.T) {
	t.Parallel()

	page, err := testTable().Run(testRows(), Query{
		Filters:  map[string]string{"name": "AN"},
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Anil Kumar", page.Items[0].Name)
	assert.Equal(t, "anita Deshmukh", page.Items[1].Name)
}

func TestRun_BlankFilterIsIgnored(t *testing.T) {
	t.Parallel()

	page, err := testTable().Run(testRows(), Query{
		Filters:  map[string]string{"name": "   "},
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, page.TotalItems)
}

func TestRun_UnknownFilterColumn(t *testing.T) {
	t.Parallel()

	_, err := testTable().Run(testRows(), Query{
		Filters:  map[string]string{"city": "pune"},
		Page:     1,
		PageSize: 10,
	})
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestRun_NumericSortDescending(t *testing.T) {
	t.Parallel()

	page, err := testTable().Run(testRows(), Query{
		SortBy:    "amount",
		SortOrder: Desc,
		Page:      1,
		PageSize:  10,
	})
	require.NoError(t, err)

	amounts := make([]float64, 0, len(page.Items))
	for _, r := range page.Items {
		amounts = append(amounts, r.Amount)
	}
	assert.Equal(t, []float64{400, 300, 200, 100}, amounts)
}

func TestRun_DateSortAscending(t *testing.T) {
	t.Parallel()

	page, err := testTable().Run(testRows(), Query{
		SortBy:   "date",
		Page:     1,
		PageSize: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, "Suresh Jadhav", page.Items[0].Name)
	assert.Equal(t, "Anil Kumar", page.Items[len(page.Items)-1].Name)
}

func TestRun_SortIsStable(t *testing.T) {
	t.Parallel()

	rows := []row{
		{Name: "A", Amount: 1, Date: day(1)},
		{Name: "B", Amount: 1, Date: day(2)},
		{Name: "C", Amount: 1, Date: day(3)},
	}

	page, err := testTable().Run(rows, Query{SortBy: "amount", Page: 1, PageSize: 10})
	require.NoError(t, err)

	// Equal keys keep input order.
	assert.Equal(t, "A", page.Items[0].Name)
	assert.Equal(t, "B", page.Items[1].Name)
	assert.Equal(t, "C", page.Items[2].Name)
}

func TestRun_IsIdempotent(t *testing.T) {
	t.Parallel()

	q := Query{
		Filters:   map[string]string{"name": "a"},
		SortBy:    "amount",
		SortOrder: Desc,
		Page:      1,
		PageSize:  2,
	}

	first, err := testTable().Run(testRows(), q)
	require.NoError(t, err)
	second, err := testTable().Run(testRows(), q)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRun_Pagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		page          int
		pageSize      int
		wantItems     int
		wantTotal     int
		wantTotalPage int
	}{
		{"first page", 1, 3, 3, 4, 2},
		{"last partial page", 2, 3, 1, 4, 2},
		{"out of range page", 5, 3, 0, 4, 2},
		{"exact fit", 1, 4, 4, 4, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page, err := testTable().Run(testRows(), Query{Page: tt.page, PageSize: tt.pageSize})
			require.NoError(t, err)
			assert.Len(t, page.Items, tt.wantItems)
			assert.Equal(t, tt.wantTotal, page.TotalItems)
			assert.Equal(t, tt.wantTotalPage, page.TotalPages)
			assert.NotNil(t, page.Items)
		})
	}
}

func TestRun_InvalidPagination(t *testing.T) {
	t.Parallel()

	_, err := testTable().Run(testRows(), Query{Page: 0, PageSize: 10})
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = testTable().Run(testRows(), Query{Page: 1, PageSize: 0})
	assert.ErrorIs(t, err, ErrInvalidPageSize)
}
