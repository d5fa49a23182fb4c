package model

import (
	"time"

	"github.com/google/uuid"
)

// Document is a row in the per-tenant `documents` table. The table name is
// deliberately unqualified everywhere in the repository layer: the scoped
// session's search_path decides which tenant schema it resolves against.
type Document struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	MimeType     string    `json:"mime_type"`
	Jurisdiction string    `json:"jurisdiction"`
	OwnerID      uuid.UUID `json:"owner_id"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}
