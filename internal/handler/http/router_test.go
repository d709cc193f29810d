package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/paracal/paracal-backend-go/internal/domain/cronjob"
	"github.com/paracal/paracal-backend-go/internal/domain/dashboard"
	"github.com/paracal/paracal-backend-go/internal/domain/employee"
	"github.com/paracal/paracal-backend-go/internal/domain/event"
	"github.com/paracal/paracal-backend-go/internal/domain/holiday"
	"github.com/paracal/paracal-backend-go/internal/domain/publicholiday"
	"github.com/paracal/paracal-backend-go/internal/pkg/jwt"
	"github.com/paracal/paracal-backend-go/internal/pkg/webhook"
	authService "github.com/paracal/paracal-backend-go/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	handlerTestSecret    = "test-secret-key-for-jwt"
	handlerTestAccessExp = "1h"
	handlerTestPIN       = "482913"
)

type fakeDashboardService struct {
	lastFilter dashboard.SummaryFilter
	result     *dashboard.SummaryResponse
	err        error
}

func (f *fakeDashboardService) GetSummary(ctx context.Context, filter dashboard.SummaryFilter) (*dashboard.SummaryResponse, error) {
	f.lastFilter = filter
	return f.result, f.err
}

type fakeEmployeeService struct {
	employee.EmployeeService
}

type fakeEventService struct {
	event.EventService
	events  map[int64]event.LeaveEvent
	deleted int64
}

func (f *fakeEventService) GetByID(ctx context.Context, id int64) (event.LeaveEvent, error) {
	e, ok := f.events[id]
	if !ok {
		return event.LeaveEvent{}, event.ErrEventNotFound
	}
	return e, nil
}

func (f *fakeEventService) Create(ctx context.Context, req event.CreateEventRequest) (event.LeaveEvent, error) {
	if err := req.Validate(); err != nil {
		return event.LeaveEvent{}, err
	}
	start, end := req.Range()
	return event.LeaveEvent{ID: 1, EmployeeID: req.EmployeeID, EmployeeName: "Alice", LeaveType: event.LeaveType(req.LeaveType), StartDate: start, EndDate: end}, nil
}

func (f *fakeEventService) BulkDeleteAll(ctx context.Context) (int64, error) {
	return f.deleted, nil
}

type fakeHolidayService struct {
	holiday.HolidayService
	year int
}

func (f *fakeHolidayService) ListByYear(ctx context.Context, year int) ([]holiday.CompanyHoliday, error) {
	f.year = year
	return []holiday.CompanyHoliday{}, nil
}

type fakePublicHolidayService struct {
	year     int
	from, to time.Time
	err      error
}

func (f *fakePublicHolidayService) ListByYear(ctx context.Context, year int) ([]publicholiday.PublicHoliday, error) {
	f.year = year
	return publicholiday.Defaults(year), nil
}

func (f *fakePublicHolidayService) ListByRange(ctx context.Context, from, to time.Time) ([]publicholiday.PublicHoliday, error) {
	f.from, f.to = from, to
	if f.err != nil {
		return nil, f.err
	}
	return []publicholiday.PublicHoliday{{Date: from, Name: "Songkran", Type: publicholiday.TypePublic}}, nil
}

func (f *fakePublicHolidayService) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	return date.Month() == time.January && date.Day() == 1, nil
}

type fakeCronjobService struct {
	cronjob.CronjobService
	testErr error
}

func (f *fakeCronjobService) List(ctx context.Context) ([]cronjob.Config, error) {
	return []cronjob.Config{}, nil
}

func (f *fakeCronjobService) Test(ctx context.Context, id int64, customMessage string) (cronjob.ExecutionResult, error) {
	if f.testErr != nil {
		return cronjob.ExecutionResult{}, f.testErr
	}
	return cronjob.ExecutionResult{ConfigID: id, Sent: true}, nil
}

type testServer struct {
	router    *chi.Mux
	dashboard *fakeDashboardService
	events    *fakeEventService
	holidays  *fakeHolidayService
	public    *fakePublicHolidayService
	cronjobs  *fakeCronjobService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(handlerTestPIN), bcrypt.MinCost)
	require.NoError(t, err)

	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp)
	ts := &testServer{
		dashboard: &fakeDashboardService{result: &dashboard.SummaryResponse{
			MonthlyStats:    dashboard.MonthlyStats{MostCommonType: dashboard.NoMostCommonType},
			EmployeeRanking: []dashboard.EmployeeRanking{},
		}},
		events:   &fakeEventService{events: map[int64]event.LeaveEvent{}},
		holidays: &fakeHolidayService{},
		public:   &fakePublicHolidayService{},
		cronjobs: &fakeCronjobService{},
	}

	ts.router = NewRouter(
		RouterConfig{AppName: "paracal-test", Version: "test", Env: "test", AllowedOrigins: []string{"http://localhost:3000"}, LogLevel: slog.LevelError},
		jwtSvc,
		NewAuthHandler(authService.NewAuthService(string(hash), jwtSvc)),
		NewEmployeeHandler(&fakeEmployeeService{}),
		NewEventHandler(ts.events),
		NewHolidayHandler(ts.holidays),
		NewPublicHolidayHandler(ts.public),
		NewCronjobHandler(ts.cronjobs),
		NewDashboardHandler(ts.dashboard),
	)
	return ts
}

func (ts *testServer) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

func (ts *testServer) login(t *testing.T) string {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"pin": handlerTestPIN}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			AccessToken string `json:"accessToken"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.AccessToken)
	return resp.Data.AccessToken
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeEnvelope(t, rec)
	errObj, ok := body["error"].(map[string]interface{})
	require.True(t, ok, rec.Body.String())
	code, _ := errObj["code"].(string)
	return code
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeEnvelope(t, rec)["success"])
}

func TestDashboardSummary_BareResponse(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{"/api/v1/dashboard/summary", "/api/v1/events/dashboard/summary"} {
		t.Run(path, func(t *testing.T) {
			rec := ts.do(t, http.MethodGet, path, nil, "")
			require.Equal(t, http.StatusOK, rec.Code)

			body := decodeEnvelope(t, rec)
			assert.NotContains(t, body, "success")
			stats, ok := body["monthlyStats"].(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, "N/A", stats["mostCommonType"])
			assert.Equal(t, float64(0), stats["totalEvents"])
			assert.Equal(t, []interface{}{}, body["employeeRanking"])
		})
	}
}

func TestDashboardSummary_ParsesQuery(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/dashboard/summary?startDate=2025-06-01&endDate=2025-06-30&eventType=sick&includeFutureEvents=true", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	f := ts.dashboard.lastFilter
	require.NotNil(t, f.StartDate)
	require.NotNil(t, f.EndDate)
	assert.Equal(t, "2025-06-01", f.StartDate.Format("2006-01-02"))
	assert.Equal(t, "2025-06-30", f.EndDate.Format("2006-01-02"))
	assert.Equal(t, "sick", f.LeaveType)
	assert.True(t, f.IncludeFutureEvents)

	rec = ts.do(t, http.MethodGet, "/api/v1/dashboard/summary?includeFutureEvents=TRUE&leaveType=vacation", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, ts.dashboard.lastFilter.IncludeFutureEvents)
	assert.Equal(t, "vacation", ts.dashboard.lastFilter.LeaveType)
	assert.Nil(t, ts.dashboard.lastFilter.StartDate)
}

func TestDashboardSummary_RejectsBadDates(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		query string
	}{
		{"malformed start", "startDate=2025-13-01"},
		{"malformed end", "endDate=June"},
		{"inverted range", "startDate=2025-06-30&endDate=2025-06-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodGet, "/api/v1/dashboard/summary?"+tt.query, nil, "")
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
		})
	}
}

func TestDashboardSummary_StoreFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.dashboard.err = fmt.Errorf("list dashboard events: %w", context.DeadlineExceeded)

	rec := ts.do(t, http.MethodGet, "/api/v1/dashboard/summary", nil, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"pin": "000000"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"pin": ""}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	assert.NotEmpty(t, ts.login(t))
}

func TestAdminRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/cronjobs", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/v1/events/bulk/all", nil, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/company-holidays", map[string]string{"name": "x", "date": "2025-01-01"}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := ts.login(t)

	rec = ts.do(t, http.MethodGet, "/api/v1/cronjobs", nil, token)
	assert.Equal(t, http.StatusOK, rec.Code)

	ts.events.deleted = 3
	rec = ts.do(t, http.MethodDelete, "/api/v1/events/bulk/all", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["deleted"])
}

func TestNonAdminTokenIsForbidden(t *testing.T) {
	ts := newTestServer(t)

	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp).(*jwt.JWTService)
	_, token, err := jwtSvc.JWTAuth().Encode(map[string]interface{}{
		"type": jwt.TokenTypeAccess,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	rec := ts.do(t, http.MethodGet, "/api/v1/cronjobs", nil, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCronjobTest_DeliveryFailureIsBadGateway(t *testing.T) {
	ts := newTestServer(t)
	ts.cronjobs.testErr = fmt.Errorf("%w: %w", cronjob.ErrDeliveryFailed, webhook.ErrWebhookNotFound)
	token := ts.login(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/cronjobs/1/test", nil, token)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "BAD_GATEWAY", errorCode(t, rec))

	ts.cronjobs.testErr = nil
	rec = ts.do(t, http.MethodPost, "/api/v1/cronjobs/1/test", map[string]string{"customMessage": "hi"}, token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestEvents(t *testing.T) {
	ts := newTestServer(t)

	t.Run("not found", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/events/42", nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/events/abc", nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad date param", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/events/date/2025-02-30", nil, "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("signed month", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/events/month/2025/+6", nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("create validation", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/v1/events", map[string]interface{}{"employeeId": 1, "leaveType": "holiday"}, "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", errorCode(t, rec))
	})

	t.Run("create single day", func(t *testing.T) {
		rec := ts.do(t, http.MethodPost, "/api/v1/events", map[string]interface{}{"employeeId": 1, "leaveType": "sick", "startDate": "2025-06-02"}, "")
		require.Equal(t, http.StatusCreated, rec.Code)
		data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "2025-06-02", data["date"])
		assert.Equal(t, "2025-06-02", data["endDate"])
		assert.Equal(t, "Alice", data["employeeName"])
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader("{"))
		rec := httptest.NewRecorder()
		ts.router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCompanyHolidaysByYear(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/company-holidays/2025", nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2025, ts.holidays.year)
}

func TestPublicHolidays(t *testing.T) {
	ts := newTestServer(t)

	t.Run("by year", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/holidays/2025", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 2025, ts.public.year)

		data := decodeEnvelope(t, rec)["data"].([]interface{})
		require.Len(t, data, len(publicholiday.Defaults(2025)))
		first := data[0].(map[string]interface{})
		assert.Equal(t, "2025-01-01", first["date"])
		assert.Equal(t, "public", first["type"])
	})

	t.Run("range", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/holidays/range/2025-04-01/2025-04-30", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC), ts.public.to)
	})

	t.Run("range too large", func(t *testing.T) {
		ts.public.err = publicholiday.ErrRangeTooLarge
		defer func() { ts.public.err = nil }()

		rec := ts.do(t, http.MethodGet, "/api/v1/holidays/range/2020-01-01/2030-01-01", nil, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("check", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/holidays/check/2025-01-01", nil, "")
		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, "2025-01-01", data["date"])
		assert.Equal(t, true, data["isHoliday"])
	})

	t.Run("bad check date", func(t *testing.T) {
		rec := ts.do(t, http.MethodGet, "/api/v1/holidays/check/2025-13-01", nil, "")
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}
