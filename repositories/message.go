//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"teamchat/domain"

	"github.com/dgraph-io/badger/v4"
)

type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	GetMessages(channelID string, cursor *string) ([]domain.Message, *string, error)
}

type MessageRepository struct {
	db            *badger.DB
	log           *slog.Logger
	limitMessages *int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, limitMessages *int) *MessageRepository {
	return &MessageRepository{db: db, log: log, limitMessages: limitMessages}
}

// StoreMessage persists a channel message.
// The key is formatted as "msg:{channel_id}:{timestamp_padded}:{message_id}" to:
//  1. Keep a channel's messages contiguous and chronologically sorted using
//     19-digit zero padding (lexicographical order).
//  2. Keep two messages posted at the same nanosecond apart thanks to the id.
func (m *MessageRepository) StoreMessage(message domain.Message) error {
	key := fmt.Sprintf("msg:%s:%019d:%s",
		message.ChannelID,
		message.CreatedAt.UnixNano(),
		message.ID,
	)
	return update(m.db, func(txn *badger.Txn) error {
		return setJSON(txn, key, message)
	})
}

// GetMessages returns a channel's messages, newest first, starting after cursor.
// The returned cursor is the key suffix of the last message read; passing it
// back continues with older messages. Collection stops at limitMessages.
func (m *MessageRepository) GetMessages(channelID string, cursor *string) ([]domain.Message, *string, error) {
	messages := []domain.Message{}
	var lastKey string
	prefix := fmt.Sprintf("msg:%s:", channelID)

	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		var seekKey []byte
		switch cursor {
		case nil:
			// Start after the newest possible timestamp and walk back in time.
			seekKey = []byte(prefix + "9999999999999999999")
		default:
			seekKey = []byte(prefix + *cursor)
		}
		it.Seek(seekKey)

		// The cursor itself was already returned by the previous page.
		if cursor != nil && it.ValidForPrefix([]byte(prefix)) && string(it.Item().Key()) == prefix+*cursor {
			it.Next()
		}

		for ; it.ValidForPrefix([]byte(prefix)); it.Next() {
			if m.limitMessages != nil && len(messages) == *m.limitMessages {
				m.log.Debug(fmt.Sprintf("Maximum of %d message reached", *m.limitMessages))
				break
			}
			item := it.Item()
			var message domain.Message
			if err := decode(item, &message); err != nil {
				return err
			}
			lastKey = keySuffix(item, prefix)
			messages = append(messages, message)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if lastKey == "" {
		return messages, nil, nil
	}
	return messages, &lastKey, nil
}
