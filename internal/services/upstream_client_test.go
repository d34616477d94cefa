package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"school-fee-dashboard/internal/config"
	"school-fee-dashboard/internal/models"
	"school-fee-dashboard/internal/query"
	"school-fee-dashboard/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const upstreamTransactionsJSON = `[
	{"collect_id":"COL-1","custom_order_id":"ORD-1","school_id":"SCH-1","gateway":"PhonePe","order_amount":1000,"transaction_amount":1010,"status":"SUCCESS","payment_time":"2024-01-10T09:30:00+05:30","details":{"payment_mode":"upi","bank_ref":"BR1"},"student_info":{"name":"Asha Rao","id":"S-1","email":"asha@example.com"}},
	{"collect_id":"COL-2","custom_order_id":"ORD-2","school_id":"SCH-1","gateway":"Razorpay","order_amount":2000,"transaction_amount":0,"status":"FAILED","payment_time":"2024-01-11T10:00:00Z","error_message":"declined","details":{"payment_mode":"card"},"student_info":{"name":"Vikram Shah","id":"S-2"}},
	{"collect_id":"COL-3","custom_order_id":"ORD-3","school_id":"SCH-1","gateway":"PhonePe","order_amount":1500,"transaction_amount":1500,"status":"SUCCESS","payment_time":"2024-01-12T11:00:00Z","details":{"payment_mode":"netbanking"},"student_info":{"name":"Meera Iyer","id":"S-3"}}
]`

type UpstreamClientTestSuite struct {
	suite.Suite
	server  *httptest.Server
	mux     *http.ServeMux
	hits    atomic.Int32
	config  *config.UpstreamConfig
	lastReq *http.Request
	ctx     context.Context
}

func TestUpstreamClientSuite(t *testing.T) {
	suite.Run(t, new(UpstreamClientTestSuite))
}

func (s *UpstreamClientTestSuite) SetupTest() {
	s.mux = http.NewServeMux()
	s.hits.Store(0)
	s.lastReq = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.hits.Add(1)
		s.lastReq = r
		s.mux.ServeHTTP(w, r)
	}))
	s.config = &config.UpstreamConfig{
		BaseURL:          s.server.URL + "/",
		APIKey:           "school-key",
		SigningSecret:    "signing-secret",
		TokenTTL:         time.Minute,
		Timeout:          5 * time.Second,
		FailureThreshold: 2,
		ResetTimeout:     time.Minute,
	}
	s.ctx = context.Background()
}

func (s *UpstreamClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *UpstreamClientTestSuite) client() services.UpstreamClientInterface {
	return services.NewUpstreamClient(s.config, discardLogger(), services.NewNoopMetrics(), services.NewQueryLogger(discardLogger()))
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (s *UpstreamClientTestSuite) TestListTransactions_ForwardsParamsAndMapsPage() {
	s.mux.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":`+upstreamTransactionsJSON+`,"total":23,"page":2,"totalPages":3,"limit":10}`)
	})

	state := models.NewFilterState()
	state.SetStatuses(models.TransactionStatusSuccess)
	state.SetSearch("asha")
	state.Page = 2

	result, err := s.client().ListTransactions(s.ctx, query.Build(state))

	s.Require().NoError(err)
	s.Equal(int64(23), result.TotalCount)
	s.Equal(3, result.TotalPages)
	s.Equal(2, result.Page)
	s.Equal(10, result.PageSize)
	s.Require().Len(result.Items, 3)

	first := result.Items[0]
	s.Equal("ORD-1", first.CustomOrderID)
	s.Equal("Asha Rao", first.StudentName)
	s.Equal("upi", first.PaymentMode)
	s.Equal("BR1", first.BankReference)
	s.True(decimal.NewFromInt(1010).Equal(first.TransactionAmount))
	s.Equal(time.Date(2024, 1, 10, 4, 0, 0, 0, time.UTC), first.PaymentTime)

	s.Require().NotNil(s.lastReq)
	values := s.lastReq.URL.Query()
	s.Equal("SUCCESS", values.Get(query.KeyStatus))
	s.Equal("asha", values.Get(query.KeySearch))
	s.Equal("2", values.Get(query.KeyPage))
	s.Equal("10", values.Get(query.KeyPageSize))
}

func (s *UpstreamClientTestSuite) TestListTransactions_SendsSignedToken() {
	s.mux.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":[],"total":0}`)
	})

	_, err := s.client().ListTransactions(s.ctx, query.Build(models.NewFilterState()))
	s.Require().NoError(err)

	s.Equal("school-key", s.lastReq.Header.Get("X-API-Key"))
	s.Equal("application/json", s.lastReq.Header.Get("Accept"))

	raw := strings.TrimPrefix(s.lastReq.Header.Get("Authorization"), "Bearer ")
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return []byte("signing-secret"), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	s.Require().NoError(err)
	s.True(token.Valid)
	s.Equal("school-key", claims.Subject)
	s.Equal("feedash", claims.Issuer)
	s.NotEmpty(claims.ID)
}

func (s *UpstreamClientTestSuite) TestListTransactions_APIKeyWithoutSecret() {
	s.config.SigningSecret = ""
	s.mux.HandleFunc("/transactions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":[],"total":0}`)
	})

	_, err := s.client().ListTransactions(s.ctx, query.Build(models.NewFilterState()))

	s.Require().NoError(err)
	s.Equal("Bearer school-key", s.lastReq.Header.Get("Authorization"))
}

func (s *UpstreamClientTestSuite) TestListSchoolTransactions_EvaluatesLocally() {
	s.mux.HandleFunc("/transactions/school/SCH-1", func(w http.ResponseWriter, r *http.Request) {
		s.Empty(r.URL.RawQuery)
		writeJSON(w, http.StatusOK, `{"data":`+upstreamTransactionsJSON+`}`)
	})

	state := models.NewFilterState()
	state.SetStatuses(models.TransactionStatusSuccess)
	state.SetSort(models.SortByOrderAmount, models.SortAsc)
	state.SetPageSize(1)

	result, err := s.client().ListSchoolTransactions(s.ctx, "SCH-1", query.Build(state))

	s.Require().NoError(err)
	s.Equal(int64(2), result.TotalCount)
	s.Equal(2, result.TotalPages)
	s.Require().Len(result.Items, 1)
	s.Equal("ORD-1", result.Items[0].CustomOrderID)
}

func (s *UpstreamClientTestSuite) TestGetStats_DropsPagingParams() {
	s.mux.HandleFunc("/transactions/stats", func(w http.ResponseWriter, r *http.Request) {
		values := r.URL.Query()
		s.False(values.Has(query.KeyPage))
		s.False(values.Has(query.KeyPageSize))
		s.False(values.Has(query.KeySortField))
		s.Equal("PhonePe", values.Get(query.KeyGateways))
		writeJSON(w, http.StatusOK, `{"data":{"totalTransactions":3,"successfulTransactions":1,"pendingTransactions":1,"failedTransactions":1,"totalAmount":"4500.50"}}`)
	})

	state := models.NewFilterState()
	state.SetGateways("PhonePe")

	stats, err := s.client().GetStats(s.ctx, query.Build(state))

	s.Require().NoError(err)
	s.Equal(int64(3), stats.TotalCount)
	s.Equal(33.33, stats.SuccessRatePercent)
	s.True(decimal.RequireFromString("4500.50").Equal(stats.TotalAmount))
}

func (s *UpstreamClientTestSuite) TestGetByCustomOrderID() {
	s.mux.HandleFunc("/payment/status/ORD-1", func(w http.ResponseWriter, r *http.Request) {
		var items []json.RawMessage
		s.Require().NoError(json.Unmarshal([]byte(upstreamTransactionsJSON), &items))
		writeJSON(w, http.StatusOK, `{"data":`+string(items[0])+`}`)
	})
	s.mux.HandleFunc("/payment/status/ORD-404", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"error":{"code":"NOT_FOUND","message":"transaction not found","request_id":"req-1"}}`)
	})

	client := s.client()

	tx, err := client.GetByCustomOrderID(s.ctx, "ORD-1")
	s.Require().NoError(err)
	s.Equal(models.TransactionStatusSuccess, tx.Status)

	tx, err = client.GetByCustomOrderID(s.ctx, "ORD-404")
	s.Nil(tx)
	s.ErrorIs(err, services.ErrTransactionNotFound)
}

func (s *UpstreamClientTestSuite) TestErrorResponseIsDecoded() {
	s.mux.HandleFunc("/schools", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"error":{"code":"BAD_FILTER","message":"unknown school","request_id":"req-9"}}`)
	})

	_, err := s.client().ListSchools(s.ctx)

	var upstreamErr *services.UpstreamError
	s.Require().True(errors.As(err, &upstreamErr))
	s.Equal(http.StatusBadRequest, upstreamErr.StatusCode)
	s.Equal("BAD_FILTER", upstreamErr.Code)
	s.Equal("unknown school", upstreamErr.Message)
	s.Equal("req-9", upstreamErr.RequestID)
	s.False(upstreamErr.IsServerError())
}

func (s *UpstreamClientTestSuite) TestCircuitBreakerOpensOnServerErrors() {
	s.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadGateway, `bad gateway`)
	})

	client := s.client()

	for i := 0; i < 2; i++ {
		err := client.Ping(s.ctx)
		var upstreamErr *services.UpstreamError
		s.Require().True(errors.As(err, &upstreamErr))
		s.True(upstreamErr.IsServerError())
	}

	err := client.Ping(s.ctx)

	s.ErrorIs(err, services.ErrCircuitBreakerOpen)
	s.Equal(int32(2), s.hits.Load())
}

func (s *UpstreamClientTestSuite) TestClientErrorsDoNotOpenBreaker() {
	s.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"error":{"code":"UNAUTHORIZED","message":"bad key"}}`)
	})

	client := s.client()
	for i := 0; i < 4; i++ {
		s.Error(client.Ping(s.ctx))
	}

	s.Equal(int32(4), s.hits.Load())
}

func (s *UpstreamClientTestSuite) TestListSchoolsAndPing() {
	s.mux.HandleFunc("/schools", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"data":[{"id":"SCH-1","name":"Greenwood High","email":"office@greenwood.example"}]}`)
	})
	s.mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"status":"ok"}`)
	})

	client := s.client()

	schools, err := client.ListSchools(s.ctx)
	s.Require().NoError(err)
	s.Equal([]models.School{{ID: "SCH-1", Name: "Greenwood High", Email: "office@greenwood.example"}}, schools)

	s.NoError(client.Ping(s.ctx))
}
