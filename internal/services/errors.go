package services

import (
	"errors"
	"fmt"

	"school-fee-dashboard/internal/repositories"
)

var (
	// ErrFetchFailed wraps any failure of a TransactionLister. The view keeps its previous result.
	ErrFetchFailed = errors.New("failed to fetch transactions")
	// ErrStaleResponse is returned for a response superseded by a newer request
	ErrStaleResponse = errors.New("stale response discarded")

	ErrTransactionNotFound = repositories.ErrTransactionNotFound
	ErrSchoolNotFound      = repositories.ErrSchoolNotFound
)

// UpstreamError is a non-2xx answer from the payments API
type UpstreamError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

func (e *UpstreamError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("upstream error (%d) %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("upstream error (%d): %s", e.StatusCode, e.Message)
}

// IsServerError reports whether the failure should count against the circuit breaker
func (e *UpstreamError) IsServerError() bool {
	return e.StatusCode >= 500
}
