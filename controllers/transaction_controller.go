package controllers

import (
	"strconv"

	"coffeepos/pkg/resp"
	"coffeepos/repository"
	"coffeepos/utils"

	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	repo *repository.TransactionRepository
}

func NewTransactionController(repo *repository.TransactionRepository) *TransactionController {
	return &TransactionController{repo: repo}
}

// GET /transactions?limit= — staff/admin history, newest first
func (tc *TransactionController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	out, err := tc.repo.List(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /transactions/:id
func (tc *TransactionController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid transaction id")
		return
	}
	t, err := tc.repo.GetWithItems(uint(id))
	if err != nil {
		resp.BadRequest(c, "transaction not found")
		return
	}
	resp.OK(c, t)
}

// GET /profile/transactions — the caller's own purchases
func (tc *TransactionController) ListForMe(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	out, err := tc.repo.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// DELETE /transactions/:id
func (tc *TransactionController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid transaction id")
		return
	}
	if err := tc.repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// DELETE /transactions — admin only, wipes the history
func (tc *TransactionController) ClearAll(c *gin.Context) {
	if err := tc.repo.ClearAll(); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
