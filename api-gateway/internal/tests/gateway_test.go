package tests

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"speedyy-pricing/api-gateway/internal/gateway"
	"speedyy-pricing/api-gateway/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGateway_HealthCheck(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	gw.SetupRoutes().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	json.NewDecoder(rr.Body).Decode(&body)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "api-gateway", body["service"])
}

func TestGateway_RouteHandler_Quote(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		CartSvcURL: "http://cart-svc",
	}, mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{"id":"q-1","valid":true}`)),
		Header:     make(http.Header),
	}
	mockResp.Header.Set("Content-Type", "application/json")

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodPost && req.URL.String() == "http://cart-svc/api/carts/quote"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/carts/quote", strings.NewReader(`{"restaurant_id":10}`))
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), `"id":"q-1"`)
}

func TestGateway_RouteHandler_CheckoutQRRewrite(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		CartSvcURL: "http://cart-svc",
	}, mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("png")),
		Header:     make(http.Header),
	}

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.Path == "/api/carts/q-1/payment-qr"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/checkout/q-1/qr", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGateway_RouteHandler_Analytics(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		CartSvcURL:      "http://cart-svc",
		AnalyticsSvcURL: "http://analytics-svc",
	}, mockClient)

	mockResp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`[]`)),
		Header:     make(http.Header),
	}

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.URL.String() == "http://analytics-svc/api/analytics/top-restaurants?limit=5"
	})).Return(mockResp, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/analytics/top-restaurants?limit=5", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}

func TestGateway_RouteHandler_UnknownAPI(t *testing.T) {
	gw := gateway.NewGateway(gateway.Config{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGateway_RouteHandler_ProxyError(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{
		CartSvcURL: "http://invalid",
	}, mockClient)

	mockClient.On("Do", mock.Anything).Return(nil, errors.New("connection failed")).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/carts/q-1", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestGateway_ProxyRequest_QueryString(t *testing.T) {
	backendURL := ""
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		backendURL = r.URL.String()
		w.WriteHeader(http.StatusAccepted)
	}))
	defer ts.Close()

	gw := gateway.NewGateway(gateway.Config{CartSvcURL: ts.URL}, ts.Client())

	req := httptest.NewRequest(http.MethodGet, "/api/carts/q-1?verbose=1", nil)
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.Equal(t, "/api/carts/q-1?verbose=1", backendURL)
}

func TestGateway_ProxyRequest_StripsHopHeaders(t *testing.T) {
	mockClient := mocks.NewHTTPClient(t)
	gw := gateway.NewGateway(gateway.Config{CartSvcURL: "http://cart-svc"}, mockClient)

	upstream := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(`{}`)),
		Header:     make(http.Header),
	}
	upstream.Header.Set("Connection", "X-Upstream-Session")
	upstream.Header.Set("X-Upstream-Session", "abc")
	upstream.Header.Set("Keep-Alive", "timeout=5")
	upstream.Header.Set("Content-Type", "application/json")

	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		return req.Header.Get("Connection") == "" &&
			req.Header.Get("X-Client-Hop") == "" &&
			req.Header.Get("Authorization") == "Bearer t" &&
			req.Header.Get("X-Forwarded-For") == "10.0.0.1, 192.0.2.1"
	})).Return(upstream, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/carts/q-1", nil)
	req.Header.Set("Connection", "X-Client-Hop")
	req.Header.Set("X-Client-Hop", "1")
	req.Header.Set("Authorization", "Bearer t")
	req.Header.Set("X-Forwarded-For", "10.0.0.1")
	rr := httptest.NewRecorder()

	gw.RouteHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Empty(t, rr.Header().Get("Keep-Alive"))
	assert.Empty(t, rr.Header().Get("X-Upstream-Session"))
}
