package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"orderservice/internal/formatter"
	"orderservice/internal/metrics"
	"orderservice/internal/order"
	"orderservice/internal/service"
	"orderservice/internal/validator"
)

const orderBody = `{
	"id": "A0000001",
	"name": "Steven Hu",
	"address": {"city": "Taipei", "district": "Da'an", "street": "Xinyi Rd"},
	"price": "100",
	"currency": "USD"
}`

func newRealHandler(m *metrics.Metrics) http.HandlerFunc {
	logger := zap.NewNop().Sugar()
	return HandleCreateOrder(OrderHandlerConfig{
		Validator: validator.NewDefaultRecordValidator(),
		Service:   service.NewOrderService(formatter.NewDefaultRegistry(), logger),
		Metrics:   m,
		Logger:    logger,
	})
}

func postOrder(h http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHandleCreateOrder_Mocked(t *testing.T) {
	t.Run("valid order returns 201 with processed data", func(t *testing.T) {
		v := &mockValidator{validateFunc: func(rec order.Record) (order.Record, error) {
			return rec, nil
		}}
		svc := &mockOrderService{processFunc: func(o order.Order) (order.Order, error) {
			o.Price = "3100"
			o.Currency = "TWD"
			return o, nil
		}}

		w := postOrder(HandleCreateOrder(OrderHandlerConfig{Validator: v, Service: svc}), orderBody)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp OrderResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, OrderResponse{
			ID:       "A0000001",
			Name:     "Steven Hu",
			Address:  AddressResponse{City: "Taipei", District: "Da'an", Street: "Xinyi Rd"},
			Price:    "3100",
			Currency: "TWD",
		}, resp)
	})

	t.Run("validation error returns 400 with error", func(t *testing.T) {
		v := &mockValidator{validateFunc: func(rec order.Record) (order.Record, error) {
			return nil, &validator.ValidationError{Fields: map[string][]string{"name": {"Invalid name"}}}
		}}
		svc := &mockOrderService{processFunc: func(o order.Order) (order.Order, error) {
			t.Fatal("service must not be called for invalid orders")
			return o, nil
		}}

		w := postOrder(HandleCreateOrder(OrderHandlerConfig{Validator: v, Service: svc}), strings.Replace(orderBody, "Steven Hu", "invalid", 1))

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "name: [Invalid name]", resp.Error)
	})

	t.Run("unexpected validator error returns 500", func(t *testing.T) {
		v := &mockValidator{validateFunc: func(rec order.Record) (order.Record, error) {
			return nil, errors.New("boom")
		}}

		w := postOrder(HandleCreateOrder(OrderHandlerConfig{Validator: v, Service: &mockOrderService{}}), orderBody)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("service error returns 500", func(t *testing.T) {
		v := &mockValidator{validateFunc: func(rec order.Record) (order.Record, error) {
			return rec, nil
		}}
		svc := &mockOrderService{processFunc: func(o order.Order) (order.Order, error) {
			return order.Order{}, formatter.ErrInvalidPrice
		}}

		w := postOrder(HandleCreateOrder(OrderHandlerConfig{Validator: v, Service: svc}), orderBody)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		var resp ErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Internal error", resp.Error)
	})
}

func TestHandleCreateOrder_EndToEnd(t *testing.T) {
	t.Run("USD order is converted", func(t *testing.T) {
		m := metrics.New()
		w := postOrder(newRealHandler(m), orderBody)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

		var resp OrderResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "A0000001", resp.ID)
		assert.Equal(t, "Steven Hu", resp.Name)
		assert.Equal(t, "3100", resp.Price)
		assert.Equal(t, "TWD", resp.Currency)
		assert.Equal(t, "Taipei", resp.Address.City)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersProcessed.WithLabelValues("USD")))
	})

	t.Run("TWD order is unchanged", func(t *testing.T) {
		body := strings.Replace(orderBody, `"USD"`, `"TWD"`, 1)
		w := postOrder(newRealHandler(nil), body)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp OrderResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "100", resp.Price)
		assert.Equal(t, "TWD", resp.Currency)
	})

	t.Run("lowercase name returns 400 naming the field", func(t *testing.T) {
		m := metrics.New()
		body := strings.Replace(orderBody, "Steven Hu", "invalid", 1)
		w := postOrder(newRealHandler(m), body)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Contains(t, resp.Error, "name")
		assert.Equal(t, []string{validator.MsgNameNotCapitalized}, resp.Fields["name"])
		assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersRejected.WithLabelValues(metrics.ReasonValidation)))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.FieldViolations.WithLabelValues("name")))
	})

	t.Run("every failing field is reported", func(t *testing.T) {
		body := `{"id":"A1","name":"steven hü","address":{"city":"a","district":"b","street":"c"},"price":"2001","currency":"JPY"}`
		w := postOrder(newRealHandler(nil), body)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Len(t, resp.Fields, 3)
		assert.Contains(t, resp.Error, "currency")
		assert.Contains(t, resp.Error, "price")
	})

	t.Run("non-numeric price is a validation error", func(t *testing.T) {
		body := strings.Replace(orderBody, `"100"`, `"ten"`, 1)
		w := postOrder(newRealHandler(nil), body)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp ValidationErrorResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, []string{validator.MsgPriceNotInteger}, resp.Fields["price"])
	})
}

func TestHandleCreateOrder_ShapeErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"missing name", `{"id":"A1","address":{"city":"a","district":"b","street":"c"},"price":"1","currency":"USD"}`, "name"},
		{"wrong typed price", `{"id":"A1","name":"Steven Hu","address":{"city":"a","district":"b","street":"c"},"price":1,"currency":"USD"}`, "price"},
		{"missing address city", `{"id":"A1","name":"Steven Hu","address":{"district":"b","street":"c"},"price":"1","currency":"USD"}`, "address.city"},
		{"invalid json", `{"id":`, order.NonFieldErrors},
		{"upper-case name key", `{"id":"A1","NAME":"Steven Hu","address":{"city":"a","district":"b","street":"c"},"price":"1","currency":"USD"}`, "name"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := metrics.New()
			w := postOrder(newRealHandler(m), tc.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			var resp ShapeErrorResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Contains(t, resp.Error, tc.field)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.OrdersRejected.WithLabelValues(metrics.ReasonShape)))
		})
	}
}

func TestHandleCreateOrder_BodyTooLarge(t *testing.T) {
	logger := zap.NewNop().Sugar()
	h := HandleCreateOrder(OrderHandlerConfig{
		Validator:    validator.NewDefaultRecordValidator(),
		Service:      service.NewOrderService(formatter.NewDefaultRegistry(), logger),
		Logger:       logger,
		MaxBodyBytes: 16,
	})

	w := postOrder(h, orderBody)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestHandleHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	t.Run("ready with registered formatters", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleReadyz(formatter.NewDefaultRegistry()).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusOK, w.Code)
		var resp ReadyResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "ready", resp.Status)
		assert.Equal(t, []string{"TWD", "USD"}, resp.Currencies)
	})

	t.Run("not ready without formatters", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleReadyz(staticCodes(nil)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
