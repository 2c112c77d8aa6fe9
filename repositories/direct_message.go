//go:generate go run go.uber.org/mock/mockgen -source=direct_message.go -destination=../mocks/mock_direct_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"sort"
	"strings"
	"teamchat/domain"

	"github.com/dgraph-io/badger/v4"
)

type IDirectMessageRepository interface {
	StoreDirectMessage(message domain.DirectMessage) error
	GetThread(email, otherEmail string) ([]domain.DirectMessage, error)
	ListConversations(email string) ([]domain.Conversation, error)
}

type DirectMessageRepository struct {
	db *badger.DB
}

func NewDirectMessageRepository(db *badger.DB) *DirectMessageRepository {
	return &DirectMessageRepository{db: db}
}

// pairKey identifies the unordered pair of participants of a thread.
func pairKey(a, b string) string {
	pair := []string{a, b}
	sort.Strings(pair)
	return strings.Join(pair, "|")
}

func peerKey(email, other string) string {
	return fmt.Sprintf("dm_peer:%s:%s", email, other)
}

// StoreDirectMessage appends a message to the pair's thread and records each
// participant as a conversation peer of the other.
func (d *DirectMessageRepository) StoreDirectMessage(message domain.DirectMessage) error {
	key := fmt.Sprintf("dm:%s:%019d:%s",
		pairKey(message.SenderEmail, message.ReceiverEmail),
		message.CreatedAt.UnixNano(),
		message.ID,
	)
	return update(d.db, func(txn *badger.Txn) error {
		if err := setJSON(txn, key, message); err != nil {
			return err
		}
		if err := txn.Set([]byte(peerKey(message.SenderEmail, message.ReceiverEmail)), nil); err != nil {
			return err
		}
		return txn.Set([]byte(peerKey(message.ReceiverEmail, message.SenderEmail)), nil)
	})
}

// GetThread returns the messages exchanged between both users, oldest first,
// whoever sent them.
func (d *DirectMessageRepository) GetThread(email, otherEmail string) ([]domain.DirectMessage, error) {
	messages := []domain.DirectMessage{}
	prefix := fmt.Sprintf("dm:%s:", pairKey(email, otherEmail))
	err := d.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, prefix, false, func(item *badger.Item) (bool, error) {
			var message domain.DirectMessage
			if err := decode(item, &message); err != nil {
				return false, err
			}
			messages = append(messages, message)
			return true, nil
		})
	})
	return messages, err
}

func (d *DirectMessageRepository) ListConversations(email string) ([]domain.Conversation, error) {
	conversations := []domain.Conversation{}
	prefix := fmt.Sprintf("dm_peer:%s:", email)
	err := d.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, prefix, false, func(item *badger.Item) (bool, error) {
			conversations = append(conversations, domain.Conversation{OtherUserEmail: keySuffix(item, prefix)})
			return true, nil
		})
	})
	return conversations, err
}
