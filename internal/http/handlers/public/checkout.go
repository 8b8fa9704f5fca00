package public

import (
	"github.com/shopnext/internal/http/response"
	"github.com/shopnext/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	AddressID     uint   `json:"address_id" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	PaymentProof  string `json:"payment_proof"`
}

// Checkout 结算：把购物车转换为订单
func (h *Handler) Checkout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	order, err := h.CheckoutService.Checkout(service.CheckoutInput{
		UserID:        uid,
		AddressID:     req.AddressID,
		PaymentMethod: req.PaymentMethod,
		PaymentProof:  req.PaymentProof,
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, buildOrderView(order))
}
