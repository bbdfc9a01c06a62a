package repositories

import (
	"fmt"
	"math"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListQuery carries pagination, search and filters for list endpoints.
// Filter keys are column names and must come from a whitelist.
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
	Filters   map[string]any
	DateFrom  *time.Time
	DateTo    *time.Time
}

// Normalize clamps page and limit to sane bounds.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if !strings.EqualFold(q.SortOrder, "asc") {
		q.SortOrder = "desc"
	} else {
		q.SortOrder = "asc"
	}
	return q
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// ListSpec describes how an entity table is searched and sorted.
type ListSpec struct {
	SearchColumns []string
	SortColumns   map[string]string
	DefaultSort   string
	DateColumn    string
}

func (s ListSpec) apply(db *gorm.DB, q ListQuery) *gorm.DB {
	for column, value := range q.Filters {
		if values, ok := value.([]uint); ok {
			db = db.Where(fmt.Sprintf("%s IN ?", column), values)
			continue
		}
		db = db.Where(fmt.Sprintf("%s = ?", column), value)
	}

	if term := strings.TrimSpace(q.Search); term != "" && len(s.SearchColumns) > 0 {
		like := "%" + strings.ToLower(term) + "%"
		clauses := make([]string, len(s.SearchColumns))
		args := make([]any, len(s.SearchColumns))
		for i, column := range s.SearchColumns {
			clauses[i] = fmt.Sprintf("LOWER(%s) LIKE ?", column)
			args[i] = like
		}
		db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
	}

	if s.DateColumn != "" {
		if q.DateFrom != nil {
			db = db.Where(fmt.Sprintf("%s >= ?", s.DateColumn), *q.DateFrom)
		}
		if q.DateTo != nil {
			db = db.Where(fmt.Sprintf("%s <= ?", s.DateColumn), *q.DateTo)
		}
	}
	return db
}

func (s ListSpec) order(q ListQuery) string {
	column, ok := s.SortColumns[q.SortBy]
	if !ok {
		column = s.DefaultSort
	}
	if column == "" {
		column = "id"
	}
	return column + " " + q.SortOrder
}

// TotalPages computes the page count for the pagination envelope.
func TotalPages(total int64, limit int) int {
	if limit <= 0 || total == 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
