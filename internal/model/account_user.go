package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountUser is a row in the shared `public.account_user` table. Accounts
// are not tenant-scoped: registration and login operate on the public
// schema regardless of which host the request arrived on.
type AccountUser struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CountryCode  string    `json:"country_code"`
	Phone        string    `json:"phone"`
	IsActive     bool      `json:"is_active"`
	LastLoggedIn time.Time `json:"last_logged_in"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}
