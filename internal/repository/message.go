package repository

import (
	"kurumaya-backend/internal/models"
	"kurumaya-backend/internal/store"
)

type MessageRepository struct {
	store *store.Store
}

func NewMessageRepository(s *store.Store) *MessageRepository {
	return &MessageRepository{store: s}
}

func (r *MessageRepository) Create(m models.Message) models.Message {
	return r.store.InsertMessage(m)
}

func (r *MessageRepository) FindAll() []models.Message {
	return r.store.Messages()
}
