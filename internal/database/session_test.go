package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRejectsInvalidSchemaNames(t *testing.T) {
	t.Parallel()

	// Validation runs before any connection is acquired, so a zero DB is
	// enough to exercise it.
	db := &DB{}
	for _, schema := range []string{
		"tenant-1",
		"Tenant",
		"1tenant",
		`ten"ant`,
		"tenant; DROP TABLE tenant",
		" tenant",
	} {
		_, err := db.Session(context.Background(), schema)
		require.Error(t, err, "schema %q should be rejected", schema)
		assert.ErrorIs(t, err, ErrInvalidSchema)
	}
}

func TestSchemaPatternAcceptsIdentifiers(t *testing.T) {
	t.Parallel()

	for _, schema := range []string{"tenant_acme", "t1", "_private", "acme_corp_2024"} {
		assert.True(t, schemaPattern.MatchString(schema), "schema %q should be accepted", schema)
	}
}

func TestSessionCloseIsIdempotent(t *testing.T) {
	t.Parallel()

	s := &Session{}
	s.Close()
	s.Close()
}
