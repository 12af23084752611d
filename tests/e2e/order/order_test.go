//go:build e2e

package order_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/tests/common/builder"
	"hotel-booking-api/tests/common/dbtest"
	"hotel-booking-api/tests/common/httptest"
	"hotel-booking-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ordersURL = "/api/orders"
	roomsURL  = "/api/rooms"
)

type OrderSuite struct {
	e2e.SharedSuite
}

func TestOrderSuite(t *testing.T) {
	suite.Run(t, new(OrderSuite))
}

// =============================================================================
// TestOrderPaymentFlow - order placement through payment intent acquisition
// =============================================================================

func (s *OrderSuite) TestOrderPaymentFlow() {
	s.Run("Normal case: order then payment intent, repeated calls reuse the intent", func() {
		t := s.T()

		// Sea View room is seeded at 5000 cents/night; two nights
		reqBody := builder.NewOrderRequestBuilder().
			WithRoom(dbtest.RoomSeaViewID, "2024-03-01", "2024-03-03").
			Build()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody)

		var created response.CreateOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotEqual(t, uuid.Nil, created.OrderID)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "orders"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "order_items"))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "customers"))

		createsBefore := s.Gateway.CreateCalls()

		intentURL := ordersURL + "/" + created.OrderID.String() + "/payment-intent"
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, intentURL, nil)

		var first response.PaymentIntentResponse
		httptest.AssertSuccessResponse(t, pw, http.StatusOK, &first)
		require.NotEmpty(t, first.ClientSecret)
		require.Equal(t, createsBefore+1, s.Gateway.CreateCalls())

		// Exactly one mapping row regardless of how often the endpoint is hit
		pw2 := httptest.PerformRequest(t, s.Router, http.MethodPost, intentURL, nil)

		var second response.PaymentIntentResponse
		httptest.AssertSuccessResponse(t, pw2, http.StatusOK, &second)
		require.Equal(t, first.ClientSecret, second.ClientSecret)
		require.Equal(t, createsBefore+1, s.Gateway.CreateCalls(), "repeated call must not create a second intent")
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "order_payments"))
	})

	s.Run("Normal case: concurrent intent requests settle on one mapping", func() {
		t := s.T()

		reqBody := builder.NewOrderRequestBuilder().
			WithRoom(dbtest.RoomSeaViewID, "2024-03-01", "2024-03-03").
			Build()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody)

		var created response.CreateOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		intentURL := ordersURL + "/" + created.OrderID.String() + "/payment-intent"

		const callers = 8
		secrets := make(chan string, callers)
		var wg sync.WaitGroup
		for range callers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				pw := httptest.PerformRequest(t, s.Router, http.MethodPost, intentURL, nil)
				require.Equal(t, http.StatusOK, pw.Code)

				var res response.PaymentIntentResponse
				require.NoError(t, json.Unmarshal(pw.Body.Bytes(), &res))
				secrets <- res.ClientSecret
			}()
		}
		wg.Wait()
		close(secrets)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "order_payments"),
			"the mapping table arbitrates concurrent requests down to one row")

		first := <-secrets
		for secret := range secrets {
			require.Equal(t, first, secret, "every caller must receive the same intent")
		}
	})

	s.Run("Normal case: multi-room order prices all line items", func() {
		t := s.T()

		// 2 nights at 5000 + 1 night at 10000 = 20000
		reqBody := builder.NewOrderRequestBuilder().
			WithRoom(dbtest.RoomSeaViewID, "2024-03-01", "2024-03-03").
			AddRoom(dbtest.RoomPenthouseID, "2024-03-01", "2024-03-02").
			Build()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody)

		var created response.CreateOrderResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, 2, dbtest.CountRows(t, s.DB, "order_items"))

		intentURL := ordersURL + "/" + created.OrderID.String() + "/payment-intent"
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost, intentURL, nil)

		var res response.PaymentIntentResponse
		httptest.AssertSuccessResponse(t, pw, http.StatusOK, &res)

		var intentID string
		err := s.DB.QueryRow(context.Background(),
			"SELECT payment_intent_id FROM order_payments WHERE order_id = $1",
			created.OrderID).Scan(&intentID)
		require.NoError(t, err)

		intent, err := s.Gateway.RetrieveIntent(context.Background(), intentID)
		require.NoError(t, err)
		require.Equal(t, int64(20000), intent.AmountCents)
	})
}

// =============================================================================
// TestOrderAtomicity - a failing line item leaves no partial rows
// =============================================================================

func (s *OrderSuite) TestOrderAtomicity() {
	s.Run("Error case: unknown room rolls back customer, order and items", func() {
		t := s.T()

		reqBody := builder.NewOrderRequestBuilder().
			WithRoom(dbtest.RoomSeaViewID, "2024-03-01", "2024-03-03").
			AddRoom(uuid.New(), "2024-03-01", "2024-03-03").
			Build()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody)

		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "unknown room")
		require.Zero(t, dbtest.CountRows(t, s.DB, "customers"))
		require.Zero(t, dbtest.CountRows(t, s.DB, "orders"))
		require.Zero(t, dbtest.CountRows(t, s.DB, "order_items"))
	})

	s.Run("Error case: order without line items is rejected", func() {
		t := s.T()

		reqBody := builder.NewOrderRequestBuilder().Build()
		reqBody.RoomsOrder = nil

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, ordersURL, reqBody)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
		require.Zero(t, dbtest.CountRows(t, s.DB, "orders"))
	})
}

// =============================================================================
// TestPaymentIntentErrors
// =============================================================================

func (s *OrderSuite) TestPaymentIntentErrors() {
	s.Run("Error case: unknown order returns 404", func() {
		t := s.T()

		createsBefore := s.Gateway.CreateCalls()

		intentURL := ordersURL + "/" + uuid.NewString() + "/payment-intent"
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, intentURL, nil)

		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Order not found")
		require.Equal(t, createsBefore, s.Gateway.CreateCalls())
		require.Zero(t, dbtest.CountRows(t, s.DB, "order_payments"))
	})

	s.Run("Error case: malformed order id returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			ordersURL+"/not-a-uuid/payment-intent", nil)

		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid order ID")
	})
}

// =============================================================================
// TestListRooms - room catalog read path
// =============================================================================

func (s *OrderSuite) TestListRooms() {
	s.Run("Normal case: seeded rooms are listed with their hotel", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil)

		var res response.RoomListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.Rooms, 3)

		byID := make(map[uuid.UUID]*response.RoomResponse, len(res.Rooms))
		for _, room := range res.Rooms {
			byID[room.ID] = room
		}

		seaView, ok := byID[dbtest.RoomSeaViewID]
		require.True(t, ok, "seeded Sea View room missing from listing")
		require.Equal(t, int64(5000), seaView.PriceInCents)
		require.Equal(t, "Seaside Resort", seaView.Hotel.Name)

		budget, ok := byID[dbtest.RoomBudgetID]
		require.True(t, ok)
		require.True(t, budget.PetsAllowed)
	})
}
