package services

import (
	"testing"

	"kurumaya-backend/internal/models"
	"kurumaya-backend/internal/repository"
	"kurumaya-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMessageFillsSenderDetails(t *testing.T) {
	st := store.New()
	userRepo := repository.NewUserRepository(st)
	service := NewMessageService(repository.NewMessageRepository(st), userRepo)

	user, err := userRepo.Create(models.User{Name: "Ana", Email: "ana@example.com", Role: models.RoleClient})
	require.NoError(t, err)

	msg, err := service.CreateMessage(user.ID, &CreateMessageRequest{Body: "The car smells like wet dog"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, msg.SenderID)
	assert.Equal(t, "Ana", msg.Name)
	assert.Equal(t, "ana@example.com", msg.Email)
	assert.False(t, msg.CreatedAt.IsZero())

	msgs := service.ListMessages()
	require.Len(t, msgs, 1)
	assert.Equal(t, msg.ID, msgs[0].ID)
}

func TestCreateMessageUnknownSender(t *testing.T) {
	st := store.New()
	service := NewMessageService(repository.NewMessageRepository(st), repository.NewUserRepository(st))

	_, err := service.CreateMessage("missing", &CreateMessageRequest{Body: "hello"})
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}
