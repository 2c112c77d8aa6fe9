//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"fmt"
	"strings"
	"teamchat/domain"
	"teamchat/errors"

	"github.com/dgraph-io/badger/v4"
)

type IUserRepository interface {
	CreateUser(user domain.User) error
	GetUserByEmail(email string) (domain.User, error)
	GetUserByUsername(username string) (domain.User, error)
	ListUsers() ([]domain.Profile, error)
	GetUsernames(emails []string) (map[string]string, error)
	SaveLastState(email string, state domain.LastState) error
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userKey(email string) string {
	return "user:" + email
}

// Usernames are indexed case-insensitively so that @mentions and logins resolve
// regardless of how the name was typed.
func usernameKey(username string) string {
	return "username:" + strings.ToLower(username)
}

// CreateUser persists a new user together with its username index.
// Both the email and the username must be free.
func (u *UserRepository) CreateUser(user domain.User) error {
	return update(u.db, func(txn *badger.Txn) error {
		for _, key := range []string{userKey(user.Email), usernameKey(user.Username)} {
			found, err := exists(txn, key)
			if err != nil {
				return err
			}
			if found {
				return errors.ErrUserAlreadyExists
			}
		}
		if err := setJSON(txn, userKey(user.Email), user); err != nil {
			return err
		}
		return txn.Set([]byte(usernameKey(user.Username)), []byte(user.Email))
	})
}

func (u *UserRepository) GetUserByEmail(email string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, userKey(email), "user", &user)
	})
	return user, err
}

func (u *UserRepository) GetUserByUsername(username string) (domain.User, error) {
	var user domain.User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(usernameKey(username)))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: user", errors.ErrNotFound)
		}
		if err != nil {
			return err
		}
		email, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return getJSON(txn, userKey(string(email)), "user", &user)
	})
	return user, err
}

func (u *UserRepository) ListUsers() ([]domain.Profile, error) {
	profiles := []domain.Profile{}
	err := u.db.View(func(txn *badger.Txn) error {
		return scanPrefix(txn, "user:", false, func(item *badger.Item) (bool, error) {
			var user domain.User
			if err := decode(item, &user); err != nil {
				return false, err
			}
			profiles = append(profiles, user.Profile())
			return true, nil
		})
	})
	return profiles, err
}

// GetUsernames resolves emails to usernames. Unknown emails are left out.
func (u *UserRepository) GetUsernames(emails []string) (map[string]string, error) {
	usernames := make(map[string]string, len(emails))
	err := u.db.View(func(txn *badger.Txn) error {
		for _, email := range emails {
			if _, done := usernames[email]; done {
				continue
			}
			var user domain.User
			err := getJSON(txn, userKey(email), "user", &user)
			if errors.Is(err, errors.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			usernames[email] = user.Username
		}
		return nil
	})
	return usernames, err
}

// SaveLastState replaces the whole navigation triple of a user inside a single
// transaction on the user document. Concurrent saves resolve as last write wins;
// a conflicting transaction is replayed with its own full triple, never merged.
func (u *UserRepository) SaveLastState(email string, state domain.LastState) error {
	return update(u.db, func(txn *badger.Txn) error {
		var user domain.User
		if err := getJSON(txn, userKey(email), "user", &user); err != nil {
			return err
		}
		user.LastState = state
		return setJSON(txn, userKey(email), user)
	})
}
