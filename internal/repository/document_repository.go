package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/specterhq/specter/internal/database"
	"github.com/specterhq/specter/internal/model"
)

var documentColumns = []string{
	"id", "title", "description", "mime_type", "jurisdiction", "owner_id",
	"created_on", "updated_on",
}

func scanDocument(row pgx.Row) (model.Document, error) {
	var d model.Document
	err := row.Scan(&d.ID, &d.Title, &d.Description, &d.MimeType, &d.Jurisdiction,
		&d.OwnerID, &d.CreatedOn, &d.UpdatedOn)
	return d, err
}

type DocumentCreate struct {
	Title        string
	Description  string
	MimeType     string
	Jurisdiction string
	OwnerID      uuid.UUID
}

func (c DocumentCreate) Fields() ([]string, []any) {
	return []string{"title", "description", "mime_type", "jurisdiction", "owner_id"},
		[]any{c.Title, c.Description, c.MimeType, c.Jurisdiction, c.OwnerID}
}

type DocumentUpdate struct {
	Title        *string
	Description  *string
	Jurisdiction *string
}

func (u DocumentUpdate) Changes() ([]string, []any) {
	var cols []string
	var vals []any
	if u.Title != nil {
		cols = append(cols, "title")
		vals = append(vals, *u.Title)
	}
	if u.Description != nil {
		cols = append(cols, "description")
		vals = append(vals, *u.Description)
	}
	if u.Jurisdiction != nil {
		cols = append(cols, "jurisdiction")
		vals = append(vals, *u.Jurisdiction)
	}
	return cols, vals
}

// DocumentRepo operates on the per-tenant documents table. The table name
// is unqualified on purpose; the session's search_path routes it to the
// right tenant schema. Passing a shared session would resolve against
// public, where no documents table exists.
type DocumentRepo struct {
	CRUD[model.Document, DocumentCreate, DocumentUpdate]
}

func NewDocumentRepo() *DocumentRepo {
	return &DocumentRepo{NewCRUD[model.Document, DocumentCreate, DocumentUpdate]("documents", documentColumns, scanDocument)}
}

// List returns the tenant's documents newest first.
func (r *DocumentRepo) List(ctx context.Context, sess *database.Session, limit, offset int) ([]model.Document, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	rows, err := sess.Query(ctx,
		"SELECT id, title, description, mime_type, jurisdiction, owner_id, created_on, updated_on FROM documents ORDER BY created_on DESC LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]model.Document, 0, limit)
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
