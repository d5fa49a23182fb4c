package schema

// DocumentCreateRequest is the payload for creating a document in the
// requesting tenant's schema.
type DocumentCreateRequest struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	MimeType     string `json:"mime_type" validate:"required"`
	Jurisdiction string `json:"jurisdiction"`
}

// DocumentUpdateRequest is a partial update; absent fields stay unchanged.
type DocumentUpdateRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Jurisdiction *string `json:"jurisdiction"`
}
