package services

import (
	"context"

	"teamchat/domain"
	"teamchat/repositories"
)

type IUserService interface {
	List(ctx context.Context) ([]domain.Profile, error)
}

type UserService struct {
	users repositories.IUserRepository
}

func NewUserService(users repositories.IUserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(_ context.Context) ([]domain.Profile, error) {
	return s.users.ListUsers()
}
