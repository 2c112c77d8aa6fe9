//go:generate go run go.uber.org/mock/mockgen -source=channel.go -destination=../mocks/mock_channel_repository.go -package=mocks
package repositories

import (
	"fmt"
	"sort"
	"teamchat/domain"
	"teamchat/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IChannelRepository interface {
	CreateChannel(channel domain.Channel) (domain.Channel, error)
	GetChannel(id string) (domain.Channel, error)
	ListChannels(workspaceID string) ([]domain.Channel, error)
}

type ChannelRepository struct {
	db *badger.DB
}

func NewChannelRepository(db *badger.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

func channelKey(id string) string {
	return "channel:" + id
}

func workspaceChannelKey(workspaceID, channelID string) string {
	return fmt.Sprintf("ws_channel:%s:%s", workspaceID, channelID)
}

func (c *ChannelRepository) CreateChannel(channel domain.Channel) (domain.Channel, error) {
	channel.ID = uuid.NewString()
	err := update(c.db, func(txn *badger.Txn) error {
		if err := setJSON(txn, channelKey(channel.ID), channel); err != nil {
			return err
		}
		return txn.Set([]byte(workspaceChannelKey(channel.WorkspaceID, channel.ID)), nil)
	})
	if err != nil {
		return domain.Channel{}, err
	}
	return channel, nil
}

func (c *ChannelRepository) GetChannel(id string) (domain.Channel, error) {
	var channel domain.Channel
	err := c.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, channelKey(id), "channel", &channel)
	})
	return channel, err
}

// ListChannels returns the channels of a workspace, oldest first.
func (c *ChannelRepository) ListChannels(workspaceID string) ([]domain.Channel, error) {
	channels := []domain.Channel{}
	prefix := fmt.Sprintf("ws_channel:%s:", workspaceID)
	err := c.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, prefix, false, func(item *badger.Item) (bool, error) {
			var channel domain.Channel
			err := getJSON(txn, channelKey(keySuffix(item, prefix)), "channel", &channel)
			if errors.Is(err, errors.ErrNotFound) {
				return true, nil
			}
			if err != nil {
				return false, err
			}
			channels = append(channels, channel)
			return true, nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(channels, func(i, j int) bool {
		return channels[i].CreatedAt.Before(channels[j].CreatedAt)
	})
	return channels, nil
}
