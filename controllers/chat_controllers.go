package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/udyogsaathi/udyog-saathi/models"
	"github.com/udyogsaathi/udyog-saathi/utils"
	"gorm.io/gorm"
)

// ChatLimit caps a history read. Older lines past the cap are unreachable.
const ChatLimit = 100

type ChatController struct {
	DB *gorm.DB
}

func NewChatController(db *gorm.DB) *ChatController {
	return &ChatController{DB: db}
}

// GetChatHistory returns the conversation between two emails, matching the
// pair in either direction, oldest first. Symmetric in its two arguments.
func (cc *ChatController) GetChatHistory(c *gin.Context) {
	u1 := c.Param("u1")
	u2 := c.Param("u2")

	var messages []models.Message
	err := cc.DB.
		Where("(sender_email = ? AND receiver_email = ?) OR (sender_email = ? AND receiver_email = ?)",
			u1, u2, u2, u1).
		Order("timestamp ASC").
		Order("id ASC").
		Limit(ChatLimit).
		Find(&messages).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Chat history", messages)
}

// SendMessage appends one chat line. No delivery acknowledgment beyond the
// stored record.
func (cc *ChatController) SendMessage(c *gin.Context) {
	var req struct {
		SenderEmail   string `json:"senderEmail" binding:"required"`
		ReceiverEmail string `json:"receiverEmail" binding:"required"`
		Text          string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	msg := models.Message{
		SenderEmail:   req.SenderEmail,
		ReceiverEmail: req.ReceiverEmail,
		Text:          req.Text,
	}
	if err := cc.DB.Create(&msg).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "sent", msg)
}
