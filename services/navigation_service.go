package services

import (
	"context"

	"teamchat/auth"
	"teamchat/domain"
	"teamchat/repositories"
)

type INavigationService interface {
	Save(ctx context.Context, identity auth.Identity, state domain.LastState) error
	Resolve(ctx context.Context, identity auth.Identity) (domain.Target, error)
}

// NavigationService tracks where each user left off.
type NavigationService struct {
	userRepository repositories.IUserRepository
}

func NewNavigationService(repo repositories.IUserRepository) *NavigationService {
	return &NavigationService{userRepository: repo}
}

// Save normalizes each field on its own and replaces the stored triple as a
// whole. A field left out or malformed clears that level of the state.
func (s *NavigationService) Save(_ context.Context, identity auth.Identity, state domain.LastState) error {
	return s.userRepository.SaveLastState(identity.Email, state.Normalize())
}

// Resolve returns the landing view for the stored triple. It does not check
// that the workspace or channel still exists or is still accessible.
func (s *NavigationService) Resolve(_ context.Context, identity auth.Identity) (domain.Target, error) {
	user, err := s.userRepository.GetUserByEmail(identity.Email)
	if err != nil {
		return domain.Target{}, err
	}
	return domain.Resolve(user.LastState), nil
}
