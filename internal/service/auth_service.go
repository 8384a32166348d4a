package service

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/merajfaizan/gym-management-backend/internal/model"
	"github.com/merajfaizan/gym-management-backend/internal/repository"
	"github.com/merajfaizan/gym-management-backend/internal/token"
)

var (
	ErrEmailNotRegistered = errors.New("email is not registered")
	ErrWrongPassword      = errors.New("password is incorrect")
)

type AuthService interface {
	Register(ctx context.Context, name, email, role, password string) (*model.User, string, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

func NewAuthService(userRepo repository.UserRepository, tokens *token.Service) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, name, email, role, password string) (*model.User, string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	if err != nil {
		return nil, "", err
	}

	if role == "" {
		role = model.RoleMember
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: string(hashedPassword),
	}

	newID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}
	user.ID = newID

	tok, err := s.tokens.Issue(user.ID.String(), user.Name, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}

	return user, tok, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		// only an empty lookup means the email is unknown; a store
		// failure must not masquerade as a credential problem
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrEmailNotRegistered
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrWrongPassword
	}

	tok, err := s.tokens.Issue(user.ID.String(), user.Name, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}

	return user, tok, nil
}
