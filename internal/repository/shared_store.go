package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/specterhq/specter/internal/database"
	"github.com/specterhq/specter/internal/model"
)

// SharedAccountStore binds the account repository to short-lived shared
// sessions, one per call, mirroring how the identity flows use the store:
// open, query, close. Handlers depend on this instead of juggling sessions
// themselves.
type SharedAccountStore struct {
	db       *database.DB
	accounts *AccountRepo
}

func NewSharedAccountStore(db *database.DB) *SharedAccountStore {
	return &SharedAccountStore{db: db, accounts: NewAccountRepo()}
}

func (s *SharedAccountStore) GetByEmail(ctx context.Context, email string) (model.AccountUser, bool, error) {
	var a model.AccountUser
	var found bool
	err := s.db.WithSession(ctx, "", func(sess *database.Session) error {
		var err error
		a, found, err = s.accounts.GetByEmail(ctx, sess, email)
		return err
	})
	return a, found, err
}

func (s *SharedAccountStore) Create(ctx context.Context, in AccountUserCreate) (model.AccountUser, error) {
	var a model.AccountUser
	err := s.db.WithSession(ctx, "", func(sess *database.Session) error {
		var err error
		a, err = s.accounts.CreateAccount(ctx, sess, in)
		return err
	})
	return a, err
}

func (s *SharedAccountStore) TouchLogin(ctx context.Context, id uuid.UUID) error {
	return s.db.WithSession(ctx, "", func(sess *database.Session) error {
		return s.accounts.TouchLogin(ctx, sess, id)
	})
}
