package repository

import (
	"kurumaya-backend/internal/models"
	"kurumaya-backend/internal/store"
)

type UserRepository struct {
	store *store.Store
}

func NewUserRepository(s *store.Store) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) FindByID(id string) (models.User, error) {
	return r.store.User(id)
}

func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	return r.store.UserByEmail(email)
}

func (r *UserRepository) Create(u models.User) (models.User, error) {
	return r.store.InsertUser(u)
}
