package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/heavybuild/heavybuild-pro/internal/domain/model"
	"github.com/heavybuild/heavybuild-pro/internal/server/http/dto"
)

const paymentVerifiedMessage = "Payment verified successfully"

// OrderHandler manages checkout and order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "malformed order payload")
		return
	}

	order, gatewayOrder, err := h.facade.CreateOrder(c.Request.Context(), toDraft(CurrentIdentity(c).UserID, req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		Order:         toOrderResponse(*order),
		RazorpayOrder: toGatewayOrder(*gatewayOrder),
	})
}

// Verify handles POST /api/orders/verify.
func (h *OrderHandler) Verify(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "payment id, order id and signature are required")
		return
	}

	id, err := uuid.Parse(req.OrderID)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "malformed order id")
		return
	}

	order, err := h.facade.VerifyPayment(c.Request.Context(), model.PaymentCallback{
		OrderID:          id,
		GatewayOrderID:   req.GatewayOrderID,
		GatewayPaymentID: req.GatewayPaymentID,
		Signature:        req.Signature,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyPaymentResponse{
		Message: paymentVerifiedMessage,
		Order:   toOrderResponse(*order),
	})
}

// Mine handles GET /api/orders/myorders.
func (h *OrderHandler) Mine(c *gin.Context) {
	orders, err := h.facade.MyOrders(c.Request.Context(), CurrentIdentity(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// All handles GET /api/orders.
func (h *OrderHandler) All(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Cancel handles PUT /api/orders/:id/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := h.facade.CancelOrder(c.Request.Context(), CurrentIdentity(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// UpdateStatus handles PUT /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "status is required")
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// orderID parses the :id path parameter, answering 404 for malformed ids.
func orderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondMessage(c, http.StatusNotFound, "Order not found")
		return uuid.Nil, false
	}
	return id, true
}
