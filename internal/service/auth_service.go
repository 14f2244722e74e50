package service

import (
	"fmt"
	"time"

	"agrostock-backend/internal/model"
	"agrostock-backend/internal/repository"
	"agrostock-backend/pkg/jwt"

	"gorm.io/gorm"
)

type AuthService interface {
	Login(email, password string) (*LoginResponse, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	store    *Store
	userRepo repository.UserRepository
	audit    AuditService
}

func NewAuthService(store *Store, userRepo repository.UserRepository, audit AuditService) AuthService {
	return &authService{
		store:    store,
		userRepo: userRepo,
		audit:    audit,
	}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(user.ID, now); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	user.LastLogin = &now

	token, err := jwt.GenerateToken(user.ID, user.Email, user.FullName, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	actor := Actor{ID: user.ID.String(), Name: user.FullName, Role: user.Role}
	err = s.store.WithLock(func(tx *gorm.DB) error {
		details := fmt.Sprintf("%s logged into the system", user.FullName)
		return s.audit.Append(tx, actor, model.ActionUserLogin, details, model.SeverityInfo)
	})
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}
