package services

import (
	"log/slog"
	"testing"
	"time"

	"teamchat/auth"
	"teamchat/domain"
	"teamchat/moderation"
	"teamchat/repositories"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// store bundles real repositories opened on a temporary Badger directory.
type store struct {
	users          *repositories.UserRepository
	workspaces     *repositories.WorkspaceRepository
	channels       *repositories.ChannelRepository
	messages       *repositories.MessageRepository
	directMessages *repositories.DirectMessageRepository
	index          *repositories.SearchIndex
	access         *AccessChecker
	moderator      *moderation.Moderator
}

func newStore(t *testing.T) *store {
	t.Helper()
	req := require.New(t)

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	t.Cleanup(func() { _ = writer.Close() })

	moderator, err := moderation.NewModerator([]string{"badger"}, '*')
	req.NoError(err)

	limit := 50
	s := &store{
		users:          repositories.NewUserRepository(db),
		workspaces:     repositories.NewWorkspaceRepository(db),
		channels:       repositories.NewChannelRepository(db),
		messages:       repositories.NewMessageRepository(db, slog.Default(), &limit),
		directMessages: repositories.NewDirectMessageRepository(db),
		index:          repositories.NewSearchIndex(writer, slog.Default()),
		moderator:      moderator,
	}
	s.access = NewAccessChecker(s.users, s.workspaces, s.channels)
	return s
}

// addUser stores a user directly and returns its identity.
func (s *store) addUser(t *testing.T, email, username string) auth.Identity {
	t.Helper()
	require.NoError(t, s.users.CreateUser(domain.User{
		Email:     email,
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}))
	return auth.Identity{Email: email, Username: username}
}

func ptr(s string) *string {
	return &s
}

func identityOf(email, username string) auth.Identity {
	return auth.Identity{Email: email, Username: username}
}
