package handlers

import (
	"net/http"

	"kurumaya-backend/internal/api/middleware"
	"kurumaya-backend/internal/services"
	"kurumaya-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type MessageHandler struct {
	messageService *services.MessageService
	validator      *validator.Validate
}

func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		validator:      validator.New(),
	}
}

// CreateMessage stores a note from the caller for the rental desk.
func (h *MessageHandler) CreateMessage(c *gin.Context) {
	var req services.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	msg, err := h.messageService.CreateMessage(middleware.CallerID(c), &req)
	if err != nil {
		utils.ErrorResponse(c, statusForError(err), "Failed to send message", err)
		return
	}
	utils.SuccessResponse(c, http.StatusCreated, "Message sent", msg)
}

// GetMessages lists every message for the rental desk staff.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Messages retrieved successfully", h.messageService.ListMessages())
}
