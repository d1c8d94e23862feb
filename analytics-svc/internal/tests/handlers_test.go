package tests

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "speedyy-pricing/analytics-svc/internal/api/http"
	"speedyy-pricing/analytics-svc/internal/domain"
	"speedyy-pricing/analytics-svc/internal/mocks"
	"speedyy-pricing/analytics-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func setupAnalyticsRouter(mockAnalytics *mocks.AnalyticsInterface) *mux.Router {
	r := mux.NewRouter()
	httpapi.NewHandler(mockAnalytics).RegisterRoutes(r)
	return r
}

func TestGetInvoiceTotalsHandler(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		setupMock func(*mocks.AnalyticsInterface)
		wantCode  int
		wantBody  string
	}{
		{
			name: "success",
			url:  "/api/analytics/restaurants/10/invoice-totals?date=2024-01-01",
			setupMock: func(m *mocks.AnalyticsInterface) {
				m.On("DailyTotals", 10, "2024-01-01").Return(domain.InvoiceTotals{
					RestaurantID: 10,
					Date:         "2024-01-01",
					Payable:      decimal.RequireFromString("474.3"),
					InvoiceCount: 1,
				}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: `"payable":"474.3"`,
		},
		{
			name:      "invalid restaurant id",
			url:       "/api/analytics/restaurants/abc/invoice-totals",
			setupMock: func(m *mocks.AnalyticsInterface) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "invalid date",
			url:  "/api/analytics/restaurants/10/invoice-totals?date=bad",
			setupMock: func(m *mocks.AnalyticsInterface) {
				m.On("DailyTotals", 10, "bad").Return(domain.InvoiceTotals{}, service.ErrInvalidDate)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "store failure",
			url:  "/api/analytics/restaurants/10/invoice-totals",
			setupMock: func(m *mocks.AnalyticsInterface) {
				m.On("DailyTotals", 10, "").Return(domain.InvoiceTotals{}, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockAnalytics := mocks.NewAnalyticsInterface(t)
			testCase.setupMock(mockAnalytics)

			req := httptest.NewRequest(http.MethodGet, testCase.url, nil)
			w := httptest.NewRecorder()
			setupAnalyticsRouter(mockAnalytics).ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantBody != "" {
				assert.Contains(t, w.Body.String(), testCase.wantBody)
			}
		})
	}
}

func TestGetTopRestaurantsHandler(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		setupMock func(*mocks.AnalyticsInterface)
		wantCode  int
	}{
		{
			name: "default limit",
			url:  "/api/analytics/top-restaurants?date=2024-01-01",
			setupMock: func(m *mocks.AnalyticsInterface) {
				m.On("TopRestaurants", "2024-01-01", 10).Return([]domain.RestaurantRevenue{
					{RestaurantID: 11, Payable: decimal.RequireFromString("1200"), InvoiceCount: 3},
				}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "explicit limit",
			url:  "/api/analytics/top-restaurants?limit=3",
			setupMock: func(m *mocks.AnalyticsInterface) {
				m.On("TopRestaurants", "", 3).Return([]domain.RestaurantRevenue{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "invalid limit",
			url:       "/api/analytics/top-restaurants?limit=-1",
			setupMock: func(m *mocks.AnalyticsInterface) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockAnalytics := mocks.NewAnalyticsInterface(t)
			testCase.setupMock(mockAnalytics)

			req := httptest.NewRequest(http.MethodGet, testCase.url, nil)
			w := httptest.NewRecorder()
			setupAnalyticsRouter(mockAnalytics).ServeHTTP(w, req)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}
