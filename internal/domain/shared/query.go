package shared

import "strings"

// LimitAll is the sentinel page size meaning "return every matching row".
// Callers must special-case it before computing an offset.
const LimitAll = -1

// ListAllCeiling bounds the number of rows a LimitAll query may return.
// Even "fetch all" requests never produce unbounded responses. When a table
// holds more than this many rows the page is truncated at the ceiling while
// PageInfo still reports the full count, so callers can detect the cut by
// comparing len(items) against Total.
const ListAllCeiling = 5000

// DefaultLimit is the page size applied when the caller does not provide one.
const DefaultLimit = 20

// CompareOp identifies a comparison constraint operator
type CompareOp string

const (
	CompareGTE CompareOp = ">="
	CompareLTE CompareOp = "<="
	CompareGT  CompareOp = ">"
	CompareLT  CompareOp = "<"
)

// Constraint is a single typed filter condition. The set of implementations
// is closed: the persistence layer only ever translates these four shapes,
// so a caller can never smuggle arbitrary expressions into a query.
type Constraint interface {
	isConstraint()
}

// Eq constrains a field to exact equality
type Eq struct {
	Field string
	Value any
}

// In constrains a field to membership in a value set
type In struct {
	Field  string
	Values []any
}

// Compare constrains a field with a numeric or temporal comparison
type Compare struct {
	Field string
	Op    CompareOp
	Value any
}

// ContainsAny is a case-insensitive substring match over a fixed field list,
// combined as a disjunction (any field matching satisfies the constraint).
// It is ANDed with the other constraints of a predicate, never merged into them.
type ContainsAny struct {
	Fields []string
	Term   string
}

func (Eq) isConstraint()          {}
func (In) isConstraint()          {}
func (Compare) isConstraint()     {}
func (ContainsAny) isConstraint() {}

// Predicate is a conjunction of constraints. An empty predicate matches
// every row; an absent filter contributes no constraint.
type Predicate struct {
	Constraints []Constraint
}

// And returns a new predicate with the constraint appended. The receiver is
// left untouched so two predicates built from a common prefix never alias.
func (p Predicate) And(c Constraint) Predicate {
	cs := make([]Constraint, len(p.Constraints), len(p.Constraints)+1)
	copy(cs, p.Constraints)
	p.Constraints = append(cs, c)
	return p
}

// AndEq appends an equality constraint
func (p Predicate) AndEq(field string, value any) Predicate {
	return p.And(Eq{Field: field, Value: value})
}

// AndIn appends a membership constraint; empty value sets are skipped
func (p Predicate) AndIn(field string, values ...any) Predicate {
	if len(values) == 0 {
		return p
	}
	return p.And(In{Field: field, Values: values})
}

// AndCompare appends a comparison constraint
func (p Predicate) AndCompare(field string, op CompareOp, value any) Predicate {
	return p.And(Compare{Field: field, Op: op, Value: value})
}

// AndSearch appends a case-insensitive substring disjunction over fields.
// Blank terms and empty field lists contribute nothing.
func (p Predicate) AndSearch(term string, fields ...string) Predicate {
	term = strings.TrimSpace(term)
	if term == "" || len(fields) == 0 {
		return p
	}
	return p.And(ContainsAny{Fields: fields, Term: term})
}

// IsEmpty reports whether the predicate carries no constraints
func (p Predicate) IsEmpty() bool {
	return len(p.Constraints) == 0
}

// ListQuery describes one paginated fetch: the predicate, the sort key and
// direction, and the page window. SortBy is a candidate only; repositories
// validate it against their allow-list before building an ORDER BY.
type ListQuery struct {
	Predicate Predicate
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Normalize applies safe defaults and bounds to the page window.
// maxLimit is the per-entity page size cap (e.g. 100 for products, 1000 for
// users). LimitAll survives normalization; the offset computation and the
// ceiling are handled by the fetcher.
func (q ListQuery) Normalize(maxLimit int) ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	switch {
	case q.Limit == LimitAll:
		// keep the sentinel
	case q.Limit <= 0:
		q.Limit = DefaultLimit
	case q.Limit > maxLimit:
		q.Limit = maxLimit
	}
	if strings.EqualFold(q.SortOrder, "asc") {
		q.SortOrder = "asc"
	} else {
		q.SortOrder = "desc"
	}
	return q
}

// FetchAll reports whether the query asks for every matching row
func (q ListQuery) FetchAll() bool {
	return q.Limit == LimitAll
}

// Offset returns the row offset for the page window.
// It must not be called for FetchAll queries.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
