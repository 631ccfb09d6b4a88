package report

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Kind determines how a column sorts.
type Kind int

const (
	Text Kind = iota
	Number
	Date
)

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Column describes one filterable/sortable field of a row. String must be
// set for every column; Number and Date only for their respective kinds.
type Column[T any] struct {
	Kind   Kind
	String func(T) string
	Number func(T) float64
	Date   func(T) time.Time
}

// Table is a reusable view definition over a row type. The same pipeline
// backs salary summaries, sales, enquiries and approvals.
type Table[T any] struct {
	Columns     map[string]Column[T]
	DefaultSort string
}

// Query carries the caller's filter, sort and pagination choices. Page is
// one-based.
type Query struct {
	Filters   map[string]string
	SortBy    string
	SortOrder SortOrder
	Page      int
	PageSize  int
}

// Page is one page of the filtered, sorted result set.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
	Number     int `json:"page"`
	PageSize   int `json:"pageSize"`
}

// Run applies filters, then the sort, then pagination. Filters are
// conjunctive case-insensitive substring matches. The sort is stable so
// re-running the same query yields the same order.
func (t Table[T]) Run(rows []T, q Query) (Page[T], error) {
	if q.Page < 1 {
		return Page[T]{}, ErrInvalidPage
	}
	if q.PageSize < 1 {
		return Page[T]{}, ErrInvalidPageSize
	}

	filtered, err := t.filter(rows, q.Filters)
	if err != nil {
		return Page[T]{}, err
	}

	if err := t.sortRows(filtered, q.SortBy, q.SortOrder); err != nil {
		return Page[T]{}, err
	}

	return paginate(filtered, q.Page, q.PageSize), nil
}

func (t Table[T]) filter(rows []T, filters map[string]string) ([]T, error) {
	active := make(map[string]string)
	for name, needle := range filters {
		needle = strings.TrimSpace(needle)
		if needle == "" {
			continue
		}
		if _, ok := t.Columns[name]; !ok {
			return nil, ErrUnknownColumn
		}
		active[name] = strings.ToLower(needle)
	}

	result := make([]T, 0, len(rows))
	for _, row := range rows {
		match := true
		for name, needle := range active {
			value := strings.ToLower(t.Columns[name].String(row))
			if !strings.Contains(value, needle) {
				match = false
				break
			}
		}
		if match {
			result = append(result, row)
		}
	}
	return result, nil
}

func (t Table[T]) sortRows(rows []T, sortBy string, order SortOrder) error {
	if sortBy == "" {
		sortBy = t.DefaultSort
		order = Asc
	}
	column, ok := t.Columns[sortBy]
	if !ok {
		return ErrUnknownColumn
	}
	if order == "" {
		order = Asc
	}

	var less func(a, b T) bool
	switch column.Kind {
	case Number:
		less = func(a, b T) bool { return column.Number(a) < column.Number(b) }
	case Date:
		less = func(a, b T) bool { return column.Date(a).Before(column.Date(b)) }
	default:
		coll := collate.New(language.English, collate.IgnoreCase)
		less = func(a, b T) bool {
			return coll.CompareString(column.String(a), column.String(b)) < 0
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if order == Desc {
			return less(rows[j], rows[i])
		}
		return less(rows[i], rows[j])
	})
	return nil
}

func paginate[T any](rows []T, page, pageSize int) Page[T] {
	totalItems := len(rows)
	totalPages := (totalItems + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= totalItems {
		return Page[T]{
			Items:      []T{},
			TotalItems: totalItems,
			TotalPages: totalPages,
			Number:     page,
			PageSize:   pageSize,
		}
	}

	end := start + pageSize
	if end > totalItems {
		end = totalItems
	}

	return Page[T]{
		Items:      rows[start:end],
		TotalItems: totalItems,
		TotalPages: totalPages,
		Number:     page,
		PageSize:   pageSize,
	}
}
