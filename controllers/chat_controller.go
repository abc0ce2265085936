package controllers

import (
	"coffeepos/pkg/resp"
	"coffeepos/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	service *services.ChatService
}

func NewChatController(s *services.ChatService) *ChatController {
	return &ChatController{service: s}
}

type chatReq struct {
	Message string `json:"message" binding:"required"`
}

// POST /chat
func (cc *ChatController) Complete(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	reply, err := cc.service.Complete(req.Message)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"reply": reply})
}
