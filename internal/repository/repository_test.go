package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/specterhq/specter/internal/repository"
)

func TestTenantNotFoundErrorNamesHost(t *testing.T) {
	t.Parallel()

	err := &repository.TenantNotFoundError{Host: "ghost.example.com"}
	assert.Equal(t, "Tenant not found for host: ghost.example.com", err.Error())
}

func TestAccountUserCreateFields(t *testing.T) {
	t.Parallel()

	cols, vals := repository.AccountUserCreate{
		Name:         "Test User",
		Email:        "Mixed.Case@Example.com",
		Username:     "mixed.case",
		PasswordHash: "hash",
		CountryCode:  "+91",
		Phone:        "1234567890",
	}.Fields()

	assert.Equal(t, []string{"name", "email", "username", "password_hash", "country_code", "phone"}, cols)
	assert.Equal(t, "mixed.case@example.com", vals[1], "email is normalized on insert")
}

func TestPartialUpdatesOnlyIncludeSetFields(t *testing.T) {
	t.Parallel()

	t.Run("empty update has no changes", func(t *testing.T) {
		cols, vals := repository.DocumentUpdate{}.Changes()
		assert.Empty(t, cols)
		assert.Empty(t, vals)
	})

	t.Run("single field", func(t *testing.T) {
		title := "New Title"
		cols, vals := repository.DocumentUpdate{Title: &title}.Changes()
		assert.Equal(t, []string{"title"}, cols)
		assert.Equal(t, []any{"New Title"}, vals)
	})

	t.Run("account update", func(t *testing.T) {
		hash := "newhash"
		cols, vals := repository.AccountUserUpdate{PasswordHash: &hash}.Changes()
		assert.Equal(t, []string{"password_hash"}, cols)
		assert.Equal(t, []any{"newhash"}, vals)
	})

	t.Run("tenant deactivation", func(t *testing.T) {
		active := false
		cols, vals := repository.TenantUpdate{IsActive: &active}.Changes()
		assert.Equal(t, []string{"is_active"}, cols)
		assert.Equal(t, []any{false}, vals)
	})
}
