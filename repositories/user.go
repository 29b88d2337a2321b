//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"car-chat/domain"
	"car-chat/errors"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const userKeyPrefix = "user:"

type IUserRepository interface {
	CreateUser(email, hashedPassword string, role domain.Role) (string, error)
	GetUserByEmail(email string) (User, error)
	ListUsers() ([]User, error)
}

// UserRepository keeps accounts in badger, one record per email. Records
// are protobuf Structs so new fields never break older entries.
type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) *UserRepository {
	return &UserRepository{db: db}
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         domain.Role
	CreatedAt    time.Time
}

// CreateUser stores a new account and returns its generated ID.
// Emails are matched case-insensitively.
func (u *UserRepository) CreateUser(email, hashedPassword string, role domain.Role) (string, error) {
	email = normalizeEmail(email)
	id := uuid.NewString()
	record, err := structpb.NewStruct(map[string]any{
		"id":            id,
		"email":         email,
		"password_hash": hashedPassword,
		"role":          string(role),
		"created_at":    float64(time.Now().Unix()),
	})
	if err != nil {
		return "", fmt.Errorf("build user record: %w", err)
	}
	data, err := proto.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		key := userKey(email)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		} else if !stderrors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

func (u *UserRepository) GetUserByEmail(email string) (User, error) {
	var record structpb.Struct
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(normalizeEmail(email)))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, &record)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return User{}, errors.ErrUserNotFound
	}
	if err != nil {
		return User{}, err
	}
	return toUser(&record), nil
}

// ListUsers returns every account ordered by email.
func (u *UserRepository) ListUsers() ([]User, error) {
	var users []User
	err := u.db.View(func(txn *badger.Txn) error {
		prefix := []byte(userKeyPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record structpb.Struct
			if err := it.Item().Value(func(val []byte) error {
				return proto.Unmarshal(val, &record)
			}); err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			users = append(users, toUser(&record))
		}
		return nil
	})
	return users, err
}

func toUser(record *structpb.Struct) User {
	fields := record.GetFields()
	return User{
		ID:           fields["id"].GetStringValue(),
		Email:        fields["email"].GetStringValue(),
		PasswordHash: fields["password_hash"].GetStringValue(),
		Role:         domain.Role(fields["role"].GetStringValue()),
		CreatedAt:    time.Unix(int64(fields["created_at"].GetNumberValue()), 0).UTC(),
	}
}

func userKey(email string) []byte { return []byte(userKeyPrefix + email) }

func normalizeEmail(email string) string { return strings.ToLower(strings.TrimSpace(email)) }
