package controllers

import (
	"strconv"

	"coffeepos/pkg/resp"
	"coffeepos/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{service: s}
}

// GET /menu — only active items, what customers can order
func (mc *MenuController) ListActive(c *gin.Context) {
	items, err := mc.service.ListActive()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /admin/menu — everything, including inactive
func (mc *MenuController) ListAll(c *gin.Context) {
	items, err := mc.service.ListAll()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /admin/menu
func (mc *MenuController) Create(c *gin.Context) {
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.service.Create(&in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /admin/menu/:id
func (mc *MenuController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	var in services.MenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := mc.service.Update(uint(id), &in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /admin/menu/:id
func (mc *MenuController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	if err := mc.service.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
