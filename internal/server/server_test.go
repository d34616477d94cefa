package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"school-fee-dashboard/internal/config"
	"school-fee-dashboard/internal/database"
	"school-fee-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ServerTestSuite struct {
	suite.Suite
	db     *database.DB
	config *config.Config
	server *Server
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:             "0",
			Host:             "127.0.0.1",
			Environment:      "testing",
			ReadTimeout:      time.Second,
			WriteTimeout:     time.Second,
			ShutdownTimeout:  time.Second,
			CORSAllowOrigins: []string{"*"},
		},
		Dashboard: config.DashboardConfig{
			ListingSource:   config.ListingSourceDatabase,
			DefaultPageSize: 10,
			MaxPageSize:     100,
			PageWindow:      5,
			RecentCount:     5,
			PublicBaseURL:   "https://fees.example.com",
		},
		RateLimit: config.RateLimitConfig{Enabled: true, RequestsPerSecond: 100, Burst: 100},
	}
}

func (s *ServerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.config = testConfig()

	srv, err := New(s.config, s.db.DB, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	s.server = srv

	database.CreateTestSchool(s.T(), s.db, "SCH-1", "Aster Public School")
	for i, status := range []models.TransactionStatus{
		models.TransactionStatusSuccess,
		models.TransactionStatusSuccess,
		models.TransactionStatusPending,
	} {
		database.CreateTestTransaction(s.T(), s.db, func(tx *models.Transaction) {
			tx.SchoolID = "SCH-1"
			tx.Status = status
			tx.OrderAmount = decimal.NewFromInt(1000)
			tx.TransactionAmount = decimal.NewFromInt(1000)
			tx.PaymentTime = time.Date(2024, 1, 10+i, 9, 0, 0, 0, time.UTC)
		})
	}
}

func (s *ServerTestSuite) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.server.Echo().ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.get("/health")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"database":"ok"`)
	s.Contains(rec.Body.String(), `"upstream":"skipped"`)
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func (s *ServerTestSuite) TestListTransactions() {
	rec := s.get("/api/v1/transactions?status=SUCCESS&stats=all")

	s.Require().Equal(http.StatusOK, rec.Code)

	var body struct {
		Data       []models.Transaction `json:"data"`
		Pagination struct {
			TotalCount int64 `json:"total_count"`
			TotalPages int   `json:"total_pages"`
		} `json:"pagination"`
		Stats    models.StatsSummary `json:"stats"`
		Query    string              `json:"query"`
		ShareURL string              `json:"share_url"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Len(body.Data, 2)
	s.Equal(int64(2), body.Pagination.TotalCount)
	s.Equal(1, body.Pagination.TotalPages)
	s.Equal(int64(2), body.Stats.SuccessCount)
	s.Equal("status=SUCCESS", body.Query)
	s.Equal("https://fees.example.com/transactions?status=SUCCESS", body.ShareURL)
	s.Equal("private, max-age=15", rec.Header().Get("Cache-Control"))
}

func (s *ServerTestSuite) TestSchoolTransactionsAndSchools() {
	rec := s.get("/api/v1/schools/SCH-1/transactions")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"total_count":3`)

	rec = s.get("/api/v1/schools")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"total":1`)
	s.Contains(rec.Body.String(), "Aster Public School")
}

func (s *ServerTestSuite) TestTransactionStatus() {
	rec := s.get("/api/v1/transactions/status/ORD-DOES-NOT-EXIST")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "TRANSACTION_001")
}

func (s *ServerTestSuite) TestDashboard() {
	rec := s.get("/api/v1/dashboard")

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"total_count":3`)
	s.Contains(rec.Body.String(), `"source":"database"`)
}

func (s *ServerTestSuite) TestUnknownRouteIsCountedInMetrics() {
	rec := s.get("/api/v1/nope")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_007")

	rec = s.get("/metrics")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `api_errors_total{code="SYSTEM_007"`)
	s.Contains(rec.Body.String(), "go_goroutines")
}

func (s *ServerTestSuite) TestRateLimitAppliesToAPIOnly() {
	s.config.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 1}
	srv, err := New(s.config, s.db.DB, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.Require().NoError(err)
	s.server = srv

	s.Equal(http.StatusOK, s.get("/api/v1/schools").Code)
	s.Equal(http.StatusTooManyRequests, s.get("/api/v1/schools").Code)
	s.Equal(http.StatusOK, s.get("/health").Code)
}

func (s *ServerTestSuite) TestNew_DatabaseSourceRequiresDB() {
	_, err := New(testConfig(), nil, nil)
	s.Error(err)
}

func (s *ServerTestSuite) TestNew_UnknownSource() {
	cfg := testConfig()
	cfg.Dashboard.ListingSource = "carrier-pigeon"

	_, err := New(cfg, s.db.DB, nil)
	s.ErrorContains(err, "unknown listing source")
}

func (s *ServerTestSuite) TestNew_UpstreamSourceWithoutDB() {
	cfg := testConfig()
	cfg.Dashboard.ListingSource = config.ListingSourceUpstream
	cfg.Upstream = config.UpstreamConfig{
		BaseURL:          "http://127.0.0.1:1",
		TokenTTL:         time.Minute,
		Timeout:          time.Second,
		FailureThreshold: 3,
		ResetTimeout:     time.Second,
	}

	srv, err := New(cfg, nil, nil)
	s.Require().NoError(err)
	s.NotNil(srv.Source())
}
