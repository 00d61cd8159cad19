package services

import (
	"errors"
	"time"

	"kurumaya-backend/internal/models"
	"kurumaya-backend/internal/repository"
	"kurumaya-backend/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	userRepo *repository.UserRepository
	jwtUtil  *jwt.Util
}

func NewAuthService(userRepo *repository.UserRepository, jwtUtil *jwt.Util) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User  models.AuthUser `json:"user"`
	Token string          `json:"token"`
}

// Register creates a client account and logs it straight in, mirroring the
// storefront sign-up flow.
func (s *AuthService) Register(req *RegisterRequest) (*LoginResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user, err := s.userRepo.Create(models.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hash),
		Role:      models.RoleClient,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	return s.respondWithToken(user)
}

func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.respondWithToken(user)
}

func (s *AuthService) GetProfile(userID string) (models.AuthUser, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return models.AuthUser{}, err
	}
	return authUser(user), nil
}

func (s *AuthService) respondWithToken(user models.User) (*LoginResponse, error) {
	token, err := s.jwtUtil.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{User: authUser(user), Token: token}, nil
}

func authUser(u models.User) models.AuthUser {
	return models.AuthUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
