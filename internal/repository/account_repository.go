package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/specterhq/specter/internal/database"
	"github.com/specterhq/specter/internal/model"
)

var accountColumns = []string{
	"id", "name", "email", "username", "password_hash", "country_code",
	"phone", "is_active", "last_logged_in", "created_on", "updated_on",
}

func scanAccount(row pgx.Row) (model.AccountUser, error) {
	var a model.AccountUser
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.Username, &a.PasswordHash,
		&a.CountryCode, &a.Phone, &a.IsActive, &a.LastLoggedIn, &a.CreatedOn, &a.UpdatedOn)
	return a, err
}

// AccountUserCreate is the insert payload produced by the register flow.
// The password arrives already hashed; this layer never sees plaintext.
type AccountUserCreate struct {
	Name         string
	Email        string
	Username     string
	PasswordHash string
	CountryCode  string
	Phone        string
}

func (c AccountUserCreate) Fields() ([]string, []any) {
	return []string{"name", "email", "username", "password_hash", "country_code", "phone"},
		[]any{c.Name, strings.ToLower(c.Email), c.Username, c.PasswordHash, c.CountryCode, c.Phone}
}

// AccountUserUpdate is a partial update; nil fields are left untouched.
type AccountUserUpdate struct {
	Name         *string
	PasswordHash *string
}

func (u AccountUserUpdate) Changes() ([]string, []any) {
	var cols []string
	var vals []any
	if u.Name != nil {
		cols = append(cols, "name")
		vals = append(vals, *u.Name)
	}
	if u.PasswordHash != nil {
		cols = append(cols, "password_hash")
		vals = append(vals, *u.PasswordHash)
	}
	return cols, vals
}

// AccountRepo reads and writes the shared account_user table.
type AccountRepo struct {
	CRUD[model.AccountUser, AccountUserCreate, AccountUserUpdate]
}

func NewAccountRepo() *AccountRepo {
	return &AccountRepo{NewCRUD[model.AccountUser, AccountUserCreate, AccountUserUpdate]("account_user", accountColumns, scanAccount)}
}

// GetByEmail fetches an account by normalized email. A miss is reported
// through the boolean, not an error.
func (r *AccountRepo) GetByEmail(ctx context.Context, sess *database.Session, email string) (model.AccountUser, bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	row := sess.QueryRow(ctx,
		"SELECT id, name, email, username, password_hash, country_code, phone, is_active, last_logged_in, created_on, updated_on FROM account_user WHERE email = $1",
		email)
	a, err := scanAccount(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.AccountUser{}, false, nil
	}
	if err != nil {
		return model.AccountUser{}, false, err
	}
	return a, true, nil
}

// CreateAccount inserts a new account, translating the unique-email
// constraint violation into ErrEmailExists. The handler pre-checks with
// GetByEmail, but the constraint closes the race between check and insert.
func (r *AccountRepo) CreateAccount(ctx context.Context, sess *database.Session, in AccountUserCreate) (model.AccountUser, error) {
	a, err := r.Create(ctx, sess, in)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.AccountUser{}, ErrEmailExists
		}
		return model.AccountUser{}, err
	}
	return a, nil
}

// TouchLogin stamps last_logged_in after a successful credential check.
func (r *AccountRepo) TouchLogin(ctx context.Context, sess *database.Session, id uuid.UUID) error {
	_, err := sess.Exec(ctx, "UPDATE account_user SET last_logged_in = now() WHERE id = $1", id)
	return err
}
