package client

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"teamchat/domain"
	"teamchat/errors"
)

type Navigator interface {
	Navigate(path string)
}

type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (Validation, error)
}

// Resumer lands a starting client on its last viewed position.
// The first trigger holding a token verifies it; every other trigger, during
// or after that attempt, waits for and reuses its outcome. Navigation happens
// at most once per Resumer.
type Resumer struct {
	session   *Session
	validator TokenValidator
	navigator Navigator
	timeout   time.Duration
	log       *slog.Logger

	mu     sync.Mutex
	done   chan struct{}
	target domain.Target
}

func NewResumer(session *Session, validator TokenValidator, navigator Navigator, timeout time.Duration, log *slog.Logger) *Resumer {
	return &Resumer{
		session:   session,
		validator: validator,
		navigator: navigator,
		timeout:   timeout,
		log:       log,
	}
}

// Resume returns the target the client landed on. Without a token the client
// stays on the entry view and nothing is consumed: a later trigger holding a
// token still resumes.
func (r *Resumer) Resume(ctx context.Context) domain.Target {
	token := r.session.Token()

	r.mu.Lock()
	if done := r.done; done != nil {
		r.mu.Unlock()
		select {
		case <-done:
			return r.target
		case <-ctx.Done():
			return domain.EntryTarget()
		}
	}
	if token == "" {
		r.mu.Unlock()
		return domain.EntryTarget()
	}
	r.done = make(chan struct{})
	r.mu.Unlock()

	r.target = r.verify(ctx, token)
	r.navigator.Navigate(r.target.Path())
	close(r.done)
	return r.target
}

// verify never retries: any failure tears the session down.
func (r *Resumer) verify(ctx context.Context, token string) domain.Target {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	validation, err := r.validator.ValidateToken(ctx, token)
	if err == nil && !validation.Valid {
		err = errors.ErrInvalidToken
	}
	if err != nil {
		r.log.Warn("Session could not be resumed", "error", err)
		r.session.Logout()
		return domain.EntryTarget()
	}

	state := validation.LastState.Normalize()
	r.session.Adopt(validation.Email, validation.Username, state)
	target := domain.Resolve(state)
	r.log.Info("Session resumed", "email", validation.Email, "target", target.Kind)
	return target
}
