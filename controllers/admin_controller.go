package controllers

import (
	"strconv"

	"coffeepos/pkg/resp"
	"coffeepos/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	auth *services.AuthService
}

func NewAdminController(auth *services.AuthService) *AdminController {
	return &AdminController{auth: auth}
}

// GET /admin/users
func (ac *AdminController) Users(c *gin.Context) {
	users, err := ac.auth.ListUsers()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, users)
}

type setRoleReq struct {
	Role string `json:"role" binding:"required"`
}

// PATCH /admin/users/:id/role
func (ac *AdminController) SetRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid user id")
		return
	}
	var req setRoleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ac.auth.SetRole(uint(id), req.Role)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}
