package controllers

import (
	"strconv"

	"coffeepos/pkg/resp"
	"coffeepos/services"
	"coffeepos/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{carts: carts}
}

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	resp.OK(c, cc.carts.Get(utils.CurrentUserID(c)))
}

type addItemReq struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
}

// POST /cart/items
func (cc *CartController) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := cc.carts.Add(utils.CurrentUserID(c), req.MenuItemID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

type setQtyReq struct {
	Quantity int `json:"quantity"`
}

// PATCH /cart/items/:id
func (cc *CartController) SetQuantity(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	var req setQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart := cc.carts.SetQuantity(utils.CurrentUserID(c), uint(id), req.Quantity)
	resp.OK(c, cart)
}

// DELETE /cart/items/:id
func (cc *CartController) RemoveItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	cart := cc.carts.Remove(utils.CurrentUserID(c), uint(id))
	resp.OK(c, cart)
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	cc.carts.Clear(utils.CurrentUserID(c))
	resp.OK(c, gin.H{"cleared": true})
}
