package controllers

import (
	"coffeepos/pkg/resp"
	"coffeepos/repository"

	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	repo *repository.PaymentRepository
}

func NewPaymentController(repo *repository.PaymentRepository) *PaymentController {
	return &PaymentController{repo: repo}
}

// GET /payment-methods
func (pc *PaymentController) List(c *gin.Context) {
	methods, err := pc.repo.ListActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, methods)
}
