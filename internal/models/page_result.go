package models

// PageResult is one page of a filtered transaction listing
type PageResult struct {
	Items      []Transaction `json:"items"`
	TotalCount int64         `json:"total_count"`
	TotalPages int           `json:"total_pages"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
}

// IsEmpty reports the "no results" condition, which is a valid state and not an error
func (r *PageResult) IsEmpty() bool {
	return r == nil || (r.TotalCount == 0 && len(r.Items) == 0)
}

// TotalPagesFor returns ceil(totalCount / pageSize), or 0 when pageSize is not positive
func TotalPagesFor(totalCount int64, pageSize int) int {
	if pageSize <= 0 || totalCount <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((totalCount + size - 1) / size)
}
