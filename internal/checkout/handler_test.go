package checkout

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestHandler(stock *memoryStock) (*Handler, *memoryOrders) {
	orders := &memoryOrders{}
	engine := NewEngine(stock, orders, testLogger())
	return NewHandler(engine, nil, testLogger()), orders
}

func postCheckout(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.HandleCheckout(rec, req)
	return rec
}

func TestHandler_HandleCheckout_Succeeds(t *testing.T) {
	heirloom := primitive.NewObjectID().Hex()
	stock := newMemoryStock(map[string]int{heirloom: 50})
	handler, orders := newTestHandler(stock)

	body := fmt.Sprintf(`{
		"items": [{"product_id": %q, "title": "The Classic Heirloom", "price": 24.0, "quantity": 5}],
		"subtotal": 120.0,
		"email": "buyer@example.com",
		"name": "A. Buyer"
	}`, heirloom)

	rec := postCheckout(t, handler, body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		OK      bool   `json:"ok"`
		OrderID string `json:"order_id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.NotEmpty(t, resp.OrderID)
	assert.Equal(t, 45, stock.quantities[heirloom])
	require.Len(t, orders.inserted, 1)
	assert.Equal(t, "buyer@example.com", orders.inserted[0].Email)
}

func TestHandler_HandleCheckout_InsufficientStock(t *testing.T) {
	heirloom := primitive.NewObjectID().Hex()
	stock := newMemoryStock(map[string]int{heirloom: 45})
	handler, _ := newTestHandler(stock)

	body := fmt.Sprintf(`{
		"items": [{"product_id": %q, "title": "The Classic Heirloom", "price": 24.0, "quantity": 1000}],
		"subtotal": 24000.0,
		"email": "buyer@example.com"
	}`, heirloom)

	rec := postCheckout(t, handler, body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Insufficient stock for The Classic Heirloom", resp["error"])
	assert.Equal(t, 45, stock.quantities[heirloom])
}

func TestHandler_HandleCheckout_Validation(t *testing.T) {
	heirloom := primitive.NewObjectID().Hex()

	cases := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "malformed json",
			body:    `{"items": `,
			wantErr: "invalid request body",
		},
		{
			name:    "missing email",
			body:    fmt.Sprintf(`{"items": [{"product_id": %q, "title": "X", "price": 1, "quantity": 1}], "subtotal": 1}`, heirloom),
			wantErr: "email is required",
		},
		{
			name:    "no items",
			body:    `{"items": [], "subtotal": 0, "email": "buyer@example.com"}`,
			wantErr: "order has no items",
		},
		{
			name:    "zero quantity",
			body:    fmt.Sprintf(`{"items": [{"product_id": %q, "title": "X", "price": 1, "quantity": 0}], "subtotal": 0, "email": "buyer@example.com"}`, heirloom),
			wantErr: "item quantity must be at least 1",
		},
		{
			name:    "malformed product id",
			body:    `{"items": [{"product_id": "nope", "title": "X", "price": 1, "quantity": 1}], "subtotal": 1, "email": "buyer@example.com"}`,
			wantErr: "Invalid ID",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stock := newMemoryStock(map[string]int{heirloom: 10})
			handler, orders := newTestHandler(stock)

			rec := postCheckout(t, handler, tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantErr, resp["error"])
			assert.Equal(t, 10, stock.quantities[heirloom])
			assert.Empty(t, orders.inserted)
		})
	}
}
