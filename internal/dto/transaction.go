package dto

import "school-fee-dashboard/internal/models"

// TransactionStatusParams identifies a transaction by the order id the school issued
type TransactionStatusParams struct {
	CustomOrderID string `param:"customOrderId" validate:"required,max=64,order_id"`
}

type SchoolParams struct {
	SchoolID string `param:"schoolId" validate:"required,max=64,school_id"`
}

// TransactionStatusResponse represents the response for a status lookup
type TransactionStatusResponse struct {
	Data *models.Transaction `json:"data"`
}

type SchoolsResponse struct {
	Data  []models.School `json:"data"`
	Total int             `json:"total"`
}
