package persistence

import (
	"strings"

	"github.com/africommerce/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// applyFilter applies ordering and pagination from the filter. The
// OrderBy column is checked against the repository's allowlist so a
// caller-supplied value can never reach the ORDER BY clause raw.
// Unrecognized columns fall back to newest-first.
func applyFilter(query *gorm.DB, filter shared.Filter, sortable map[string]bool) *gorm.DB {
	orderBy := filter.OrderBy
	if orderBy == "" || !sortable[orderBy] {
		orderBy = "created_at"
	}
	orderDir := "DESC"
	if strings.ToLower(filter.OrderDir) == "asc" {
		orderDir = "ASC"
	}
	query = query.Order(orderBy + " " + orderDir)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	return query
}

// applySearch adds a case-insensitive match over the given columns
func applySearch(query *gorm.DB, search string, columns ...string) *gorm.DB {
	if search == "" || len(columns) == 0 {
		return query
	}
	pattern := "%" + search + "%"
	clauses := make([]string, len(columns))
	args := make([]any, len(columns))
	for i, col := range columns {
		clauses[i] = col + " ILIKE ?"
		args[i] = pattern
	}
	return query.Where(strings.Join(clauses, " OR "), args...)
}
