package client

import (
	"context"

	"teamchat/domain"
	"teamchat/errors"
)

type StateAPI interface {
	SaveState(ctx context.Context, token string, state domain.LastState) error
}

// StateSaver records every view change. It always sends the whole triple,
// normalized the same way the server does.
type StateSaver struct {
	session *Session
	api     StateAPI
}

func NewStateSaver(session *Session, api StateAPI) *StateSaver {
	return &StateSaver{session: session, api: api}
}

func (s *StateSaver) Save(ctx context.Context, state domain.LastState) error {
	token := s.session.Token()
	if token == "" {
		return errors.ErrUnauthenticated
	}
	state = state.Normalize()
	if err := s.api.SaveState(ctx, token, state); err != nil {
		return err
	}
	s.session.SetLastState(state)
	return nil
}
