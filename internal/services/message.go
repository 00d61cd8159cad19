package services

import (
	"time"

	"kurumaya-backend/internal/models"
	"kurumaya-backend/internal/repository"
)

// MessageService handles the client-to-desk message board.
type MessageService struct {
	messageRepo *repository.MessageRepository
	userRepo    *repository.UserRepository
}

func NewMessageService(messageRepo *repository.MessageRepository, userRepo *repository.UserRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

type CreateMessageRequest struct {
	Body string `json:"body" validate:"required,min=1,max=2000"`
}

func (s *MessageService) CreateMessage(senderID string, req *CreateMessageRequest) (models.Message, error) {
	sender, err := s.userRepo.FindByID(senderID)
	if err != nil {
		return models.Message{}, err
	}

	msg := models.Message{
		SenderID:  sender.ID,
		Name:      sender.Name,
		Email:     sender.Email,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}
	return s.messageRepo.Create(msg), nil
}

func (s *MessageService) ListMessages() []models.Message {
	return s.messageRepo.FindAll()
}
