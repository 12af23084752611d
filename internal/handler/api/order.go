package api

import (
	"errors"
	"net/http"

	reqdto "hotel-booking-api/internal/handler/dto/request"
	resdto "hotel-booking-api/internal/handler/dto/response"
	"hotel-booking-api/internal/handler/httperr"
	"hotel-booking-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
}

func NewOrderHandler(orderCommands commands.OrderCommands) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
	}
}

// @Summary Submit order
// @Description Submit a multi-room order with billing details
// @Tags orders
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "Order request"
// @Success 201 {object} resdto.CreateOrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	draft, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order details", nil)
		return
	}

	orderID, err := h.orderCommands.PlaceOrder(c.Request.Context(), draft)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyOrder):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Order has no line items", nil)
		case errors.Is(err, commands.ErrUnknownRoom):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Order references an unknown room", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateOrderResponse{OrderID: orderID})
}
