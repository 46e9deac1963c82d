package shared

// PageInfo describes the pagination block returned alongside every list
// response. TotalPages is zero when there are no matching rows.
type PageInfo struct {
	Total           int64 `json:"total"`
	Page            int   `json:"page"`
	Limit           int   `json:"limit"`
	TotalPages      int   `json:"totalPages"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// NewPageInfo computes the pagination block for (total, page, limit).
// For LimitAll the effective limit collapses every row into a single page;
// if total exceeds ListAllCeiling the fetched rows are truncated at the
// ceiling while Total still reports the real count. It performs no I/O and
// never divides by zero.
func NewPageInfo(total int64, page, limit int) PageInfo {
	if page < 1 {
		page = 1
	}
	if limit == LimitAll || limit < 1 {
		limit = int(total)
		if limit < 1 {
			limit = 1
		}
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return PageInfo{
		Total:           total,
		Page:            page,
		Limit:           limit,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}
}
