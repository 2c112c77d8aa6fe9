package services

import (
	"context"
	"fmt"
	"time"

	"teamchat/auth"
	"teamchat/domain"
	"teamchat/errors"
	"teamchat/repositories"
)

type IAuthService interface {
	Register(ctx context.Context, email, username, password string) (Session, error)
	Login(ctx context.Context, identifier, password string) (Session, error)
	ValidateToken(ctx context.Context, identity auth.Identity) (Session, error)
}

type TokenGenerator interface {
	Generate(email, username string) (string, error)
}

// Session is what a client needs to resume: its token, identity and the
// normalized navigation triple.
type Session struct {
	Token     string           `json:"token,omitempty"`
	Email     string           `json:"email"`
	Username  string           `json:"username"`
	LastState domain.LastState `json:"last_state"`
}

type AuthService struct {
	userRepository repositories.IUserRepository
	tokens         TokenGenerator
}

func NewAuthService(repo repositories.IUserRepository, tokens TokenGenerator) *AuthService {
	return &AuthService{userRepository: repo, tokens: tokens}
}

func (s *AuthService) Register(_ context.Context, email, username, password string) (Session, error) {
	// 1. Validate business rules before any expensive cryptographic operation
	err := auth.ValidateRegister(auth.RegisterRequest{
		Email:    email,
		Username: username,
		Password: password,
	})
	if err != nil {
		return Session{}, err
	}

	// 2. Hash the password, the repository never sees it in clear
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return Session{}, fmt.Errorf("hashing failed: %w", err)
	}

	// 3. Persist the user, ErrUserAlreadyExists if email or username is taken
	user := domain.User{
		Email:        email,
		Username:     username,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepository.CreateUser(user); err != nil {
		return Session{}, err
	}

	// 4. Issue the initial session token
	return s.issue(user)
}

// Login accepts either an email or a username as identifier.
func (s *AuthService) Login(_ context.Context, identifier, password string) (Session, error) {
	if identifier == "" || password == "" {
		return Session{}, fmt.Errorf("%w: identifier and password are required", errors.ErrValidation)
	}

	// 1. Retrieve the user by email or username
	var (
		user domain.User
		err  error
	)
	if auth.IsEmail(identifier) {
		user, err = s.userRepository.GetUserByEmail(identifier)
	} else {
		user, err = s.userRepository.GetUserByUsername(identifier)
	}
	if errors.Is(err, errors.ErrNotFound) {
		// Same error as a wrong password to prevent user enumeration
		return Session{}, errors.ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}

	// 2. Compare the provided password with the stored hash
	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return Session{}, errors.ErrInvalidCredentials
	}

	// 3. Issue the token
	return s.issue(user)
}

// ValidateToken confirms that the identity of a verified token still maps to a
// stored user and returns its current navigation state.
func (s *AuthService) ValidateToken(_ context.Context, identity auth.Identity) (Session, error) {
	user, err := s.userRepository.GetUserByEmail(identity.Email)
	if err != nil {
		return Session{}, err
	}
	return Session{
		Email:     user.Email,
		Username:  user.Username,
		LastState: user.LastState.Normalize(),
	}, nil
}

func (s *AuthService) issue(user domain.User) (Session, error) {
	token, err := s.tokens.Generate(user.Email, user.Username)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", errors.ErrTokenGeneration, err)
	}
	return Session{
		Token:     token,
		Email:     user.Email,
		Username:  user.Username,
		LastState: user.LastState.Normalize(),
	}, nil
}
