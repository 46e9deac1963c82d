package persistence

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/shopadmin/backend/internal/domain/shared"
)

// applyConstraints translates a typed predicate into WHERE clauses. The
// constraint algebra is closed, so only these four shapes can ever reach
// the query; field names come from entity builders, never from callers.
func applyConstraints(query *gorm.DB, p shared.Predicate) *gorm.DB {
	for _, c := range p.Constraints {
		switch c := c.(type) {
		case shared.Eq:
			query = query.Where(fmt.Sprintf("%s = ?", c.Field), c.Value)
		case shared.In:
			query = query.Where(fmt.Sprintf("%s IN ?", c.Field), c.Values)
		case shared.Compare:
			query = query.Where(fmt.Sprintf("%s %s ?", c.Field, c.Op), c.Value)
		case shared.ContainsAny:
			clause, args := containsClause(c)
			query = query.Where(clause, args...)
		}
	}
	return query
}

// likeEscaper neutralizes LIKE metacharacters so the search term always
// matches as a literal substring.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsClause builds the case-insensitive substring disjunction for a
// search constraint. LOWER/LIKE keeps it portable across postgres and the
// sqlite test driver.
func containsClause(c shared.ContainsAny) (string, []any) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(c.Term)) + "%"
	clauses := make([]string, 0, len(c.Fields))
	args := make([]any, 0, len(c.Fields))
	for _, f := range c.Fields {
		clauses = append(clauses, fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, f))
		args = append(args, pattern)
	}
	return "(" + strings.Join(clauses, " OR ") + ")", args
}

// applyOrder applies the validated sort key with a primary-key tie-break so
// pages are stable when the sort column has duplicates. tieBreak must be the
// (table-qualified where needed) primary key column.
func applyOrder(query *gorm.DB, q shared.ListQuery, allowedFields map[string]bool, defaultField, tieBreak string) *gorm.DB {
	field := ValidateSortField(q.SortBy, allowedFields, defaultField)
	dir := ValidateSortOrder(q.SortOrder)
	query = query.Order(field + " " + dir)
	if field != tieBreak {
		query = query.Order(tieBreak + " ASC")
	}
	return query
}

// applyWindow applies the page window. The fetch-all sentinel skips the
// offset entirely and is bounded by ListAllCeiling.
func applyWindow(query *gorm.DB, q shared.ListQuery) *gorm.DB {
	if q.FetchAll() {
		return query.Limit(shared.ListAllCeiling)
	}
	return query.Offset(q.Offset()).Limit(q.Limit)
}
