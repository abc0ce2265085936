package controllers

import (
	"coffeepos/middlewares"
	"coffeepos/pkg/resp"
	"coffeepos/services"
	"coffeepos/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	service *services.CheckoutService
}

func NewCheckoutController(s *services.CheckoutService) *CheckoutController {
	return &CheckoutController{service: s}
}

type checkoutReq struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// POST /checkout
//
// Clients may send an Idempotency-Key header; replaying the same key
// returns the original transaction instead of charging twice.
func (cc *CheckoutController) Checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	idemKey := c.GetHeader("Idempotency-Key")
	result, err := cc.service.Checkout(utils.CurrentUserID(c), req.PaymentMethod, idemKey)
	if err != nil {
		middlewares.RecordCheckout(false, 0)
		resp.Error(c, err)
		return
	}

	middlewares.RecordCheckout(true, result.Total)
	resp.Created(c, result)
}
