package models

// SortField names a transaction attribute the listing can be ordered by
type SortField string

const (
	SortByPaymentTime       SortField = "payment_time"
	SortByOrderAmount       SortField = "order_amount"
	SortByTransactionAmount SortField = "transaction_amount"
	SortByStatus            SortField = "status"
	SortBySchoolID          SortField = "school_id"
	SortByGateway           SortField = "gateway"
	SortByCustomOrderID     SortField = "custom_order_id"
	SortByCollectID         SortField = "collect_id"
	SortByStudentName       SortField = "student_name"
)

// SortOrder represents sort direction
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultSortField = SortByPaymentTime
	DefaultSortOrder = SortDesc
)

// IsValidSortField checks if the field is one the listing knows how to order by
func IsValidSortField(field string) bool {
	switch SortField(field) {
	case SortByPaymentTime, SortByOrderAmount, SortByTransactionAmount, SortByStatus,
		SortBySchoolID, SortByGateway, SortByCustomOrderID, SortByCollectID, SortByStudentName:
		return true
	default:
		return false
	}
}

// IsValidSortOrder checks if the order is asc or desc
func IsValidSortOrder(order string) bool {
	return SortOrder(order) == SortAsc || SortOrder(order) == SortDesc
}

// Column returns the database column backing the sort field
func (f SortField) Column() string {
	return string(f)
}

// IsTimestamp reports whether the field compares as an instant
func (f SortField) IsTimestamp() bool {
	return f == SortByPaymentTime
}

// IsAmount reports whether the field compares numerically
func (f SortField) IsAmount() bool {
	return f == SortByOrderAmount || f == SortByTransactionAmount
}
