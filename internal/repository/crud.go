package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/specterhq/specter/internal/database"
)

// CreateInput supplies the column/value pairs for an insert. Columns must be
// returned in a deterministic order.
type CreateInput interface {
	Fields() (columns []string, values []any)
}

// UpdateInput supplies only the columns the caller actually set, so partial
// updates never clobber untouched fields.
type UpdateInput interface {
	Changes() (columns []string, values []any)
}

// CRUD is the generic data-access base shared by all entity repositories.
// Every operation is a single statement, so each call commits on its own and
// the RETURNING clause refreshes store-assigned fields (ids, timestamps)
// without a second round trip. Store errors propagate to the caller
// untouched; absence is reported through the boolean, not an error.
type CRUD[M any, C CreateInput, U UpdateInput] struct {
	table   string
	columns string
	scan    func(row pgx.Row) (M, error)
}

func NewCRUD[M any, C CreateInput, U UpdateInput](table string, columns []string, scan func(pgx.Row) (M, error)) CRUD[M, C, U] {
	return CRUD[M, C, U]{
		table:   table,
		columns: strings.Join(columns, ", "),
		scan:    scan,
	}
}

// Get does a point lookup by primary key. A missing row is not an error.
func (r *CRUD[M, C, U]) Get(ctx context.Context, sess *database.Session, id uuid.UUID) (M, bool, error) {
	var zero M
	row := sess.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", r.columns, r.table), id)
	m, err := r.scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	return m, true, nil
}

// Create inserts a new row from the validated input and returns the
// persisted entity with generated fields populated.
func (r *CRUD[M, C, U]) Create(ctx context.Context, sess *database.Session, in C) (M, error) {
	var zero M
	cols, vals := in.Fields()
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	row := sess.QueryRow(ctx,
		fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			r.table, strings.Join(cols, ", "), strings.Join(placeholders, ", "), r.columns),
		vals...)
	m, err := r.scan(row)
	if err != nil {
		return zero, err
	}
	return m, nil
}

// Update applies the set fields of a partial input to the row with the given
// id and returns the refreshed entity. An input with no set fields reduces
// to a Get.
func (r *CRUD[M, C, U]) Update(ctx context.Context, sess *database.Session, id uuid.UUID, in U) (M, bool, error) {
	var zero M
	cols, vals := in.Changes()
	if len(cols) == 0 {
		return r.Get(ctx, sess, id)
	}
	assignments := make([]string, len(cols))
	for i, col := range cols {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	assignments = append(assignments, "updated_on = now()")
	vals = append(vals, id)
	row := sess.QueryRow(ctx,
		fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING %s",
			r.table, strings.Join(assignments, ", "), len(cols)+1, r.columns),
		vals...)
	m, err := r.scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	return m, true, nil
}

// Remove deletes by id and returns the deleted entity, or absence when the
// row never existed.
func (r *CRUD[M, C, U]) Remove(ctx context.Context, sess *database.Session, id uuid.UUID) (M, bool, error) {
	var zero M
	row := sess.QueryRow(ctx,
		fmt.Sprintf("DELETE FROM %s WHERE id = $1 RETURNING %s", r.table, r.columns), id)
	m, err := r.scan(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, err
	}
	return m, true, nil
}
