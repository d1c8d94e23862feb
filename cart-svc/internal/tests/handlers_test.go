package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "speedyy-pricing/cart-svc/internal/api/http"
	"speedyy-pricing/cart-svc/internal/domain"
	"speedyy-pricing/cart-svc/internal/mocks"
	"speedyy-pricing/cart-svc/internal/pricing"
	"speedyy-pricing/cart-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(mockSvc *mocks.CartServiceInterface) *mux.Router {
	handler := &httpapi.Handler{Carts: mockSvc}
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_health(t *testing.T) {
	router := setupTestRouter(mocks.NewCartServiceInterface(t))

	req := httptest.NewRequest("GET", "/health", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"service":"cart-svc"`)
}

func TestHandler_createQuote(t *testing.T) {
	mockSvc := mocks.NewCartServiceInterface(t)
	router := setupTestRouter(mockSvc)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"restaurant_id":10,"menu_items":[{"menu_item_id":1,"quantity":2,"variant_groups":[{"variant_group_id":100,"variant_id":1002}]}],"delivery_charges":"40"}`,
			prepareMocks: func() {
				mockSvc.On("Quote", mock.Anything, mock.MatchedBy(func(req domain.CartRequest) bool {
					return req.RestaurantID == 10 && len(req.MenuItems) == 1 &&
						req.MenuItems[0].VariantGroups[0].VariantID == 1002 && req.DeliveryCharges.Equal(dec("40"))
				})).Return(&domain.CartQuote{ID: "q-1", RestaurantID: 10, Valid: true}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"id":"q-1"`,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "empty_cart",
			payload: `{"restaurant_id":10,"menu_items":[]}`,
			prepareMocks: func() {
				mockSvc.On("Quote", mock.Anything, mock.Anything).Return(nil, service.ErrEmptyCart).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "restaurant_not_found",
			payload: `{"restaurant_id":404,"menu_items":[{"menu_item_id":1,"quantity":1}]}`,
			prepareMocks: func() {
				mockSvc.On("Quote", mock.Anything, mock.Anything).Return(nil, service.ErrRestaurantNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "internal_error",
			payload: `{"restaurant_id":10,"menu_items":[{"menu_item_id":1,"quantity":1}]}`,
			prepareMocks: func() {
				mockSvc.On("Quote", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/carts/quote", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_getQuote(t *testing.T) {
	mockSvc := mocks.NewCartServiceInterface(t)
	router := setupTestRouter(mockSvc)

	mockSvc.On("GetQuote", mock.Anything, "q-1").Return(&domain.CartQuote{ID: "q-1", RestaurantID: 10}, nil).Once()
	mockSvc.On("GetQuote", mock.Anything, "gone").Return(nil, service.ErrQuoteNotFound).Once()

	req := httptest.NewRequest("GET", "/api/carts/q-1", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var quote domain.CartQuote
	json.NewDecoder(recorder.Body).Decode(&quote)
	assert.Equal(t, "q-1", quote.ID)

	req = httptest.NewRequest("GET", "/api/carts/gone", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_getPaymentQR(t *testing.T) {
	mockSvc := mocks.NewCartServiceInterface(t)
	router := setupTestRouter(mockSvc)

	tests := []struct {
		name         string
		id           string
		prepareMocks func()
		expectedCode int
		expectedType string
	}{
		{
			name: "success",
			id:   "q-1",
			prepareMocks: func() {
				mockSvc.On("PaymentQR", mock.Anything, "q-1").Return([]byte("\x89PNG"), nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedType: "image/png",
		},
		{
			name: "not_payable",
			id:   "q-2",
			prepareMocks: func() {
				mockSvc.On("PaymentQR", mock.Anything, "q-2").Return(nil, service.ErrQuoteNotPayable).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "not_found",
			id:   "q-3",
			prepareMocks: func() {
				mockSvc.On("PaymentQR", mock.Anything, "q-3").Return(nil, service.ErrQuoteNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("GET", "/api/carts/"+testCase.id+"/payment-qr", nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedType != "" {
				assert.Equal(t, testCase.expectedType, recorder.Header().Get("Content-Type"))
			}
		})
	}
}

func TestHandler_settleRefund(t *testing.T) {
	mockSvc := mocks.NewCartServiceInterface(t)
	router := setupTestRouter(mockSvc)

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"refund_settled_by":"vendor","refund_settled_customer_amount":"100"}`,
			prepareMocks: func() {
				mockSvc.On("SettleRefund", mock.Anything, "q-1", mock.MatchedBy(func(req domain.RefundSettlementRequest) bool {
					return req.RefundSettledBy == domain.RefundSettledByVendor && req.RefundSettledCustomerAmount.Equal(dec("100"))
				})).Return(&domain.InvoiceBreakout{
					RefundSettlementDetails: &domain.RefundSettlementDetails{RefundSettledBy: domain.RefundSettledByVendor},
				}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"refund_settled_by":"vendor"`,
		},
		{
			name:    "validation_error",
			payload: `{"refund_settled_by":"vendor","refund_settled_customer_amount":"100000"}`,
			prepareMocks: func() {
				mockSvc.On("SettleRefund", mock.Anything, "q-1", mock.Anything).
					Return(nil, pricing.NewValidationError(pricing.ErrInvalidRefundSettlement, "too much")).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `"code":1401`,
		},
		{
			name:         "invalid_json",
			payload:      `{`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/api/carts/q-1/refund-settlement", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}
