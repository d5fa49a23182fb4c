package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specterhq/specter/internal/database"
	"github.com/specterhq/specter/internal/handler"
	"github.com/specterhq/specter/internal/middleware"
	"github.com/specterhq/specter/internal/model"
	"github.com/specterhq/specter/internal/repository"
	"github.com/specterhq/specter/internal/router"
	"github.com/specterhq/specter/internal/utils"
)

// memDocumentStore is an in-memory DocumentStore. The session argument is
// accepted and ignored, matching how a stub tenant middleware injects it.
type memDocumentStore struct {
	docs map[uuid.UUID]model.Document
}

func newMemDocumentStore() *memDocumentStore {
	return &memDocumentStore{docs: map[uuid.UUID]model.Document{}}
}

func (s *memDocumentStore) Get(_ context.Context, _ *database.Session, id uuid.UUID) (model.Document, bool, error) {
	d, ok := s.docs[id]
	return d, ok, nil
}

func (s *memDocumentStore) Create(_ context.Context, _ *database.Session, in repository.DocumentCreate) (model.Document, error) {
	d := model.Document{
		ID:           uuid.New(),
		Title:        in.Title,
		Description:  in.Description,
		MimeType:     in.MimeType,
		Jurisdiction: in.Jurisdiction,
		OwnerID:      in.OwnerID,
	}
	s.docs[d.ID] = d
	return d, nil
}

func (s *memDocumentStore) Update(_ context.Context, _ *database.Session, id uuid.UUID, in repository.DocumentUpdate) (model.Document, bool, error) {
	d, ok := s.docs[id]
	if !ok {
		return model.Document{}, false, nil
	}
	if in.Title != nil {
		d.Title = *in.Title
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.Jurisdiction != nil {
		d.Jurisdiction = *in.Jurisdiction
	}
	s.docs[id] = d
	return d, true, nil
}

func (s *memDocumentStore) Remove(_ context.Context, _ *database.Session, id uuid.UUID) (model.Document, bool, error) {
	d, ok := s.docs[id]
	if ok {
		delete(s.docs, id)
	}
	return d, ok, nil
}

func (s *memDocumentStore) List(_ context.Context, _ *database.Session, _, _ int) ([]model.Document, error) {
	out := make([]model.Document, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, d)
	}
	return out, nil
}

// stubTenant injects a resolved tenant and a (nil) scoped session the way
// TenantResolver would, so document routes can be exercised without a
// database.
func stubTenant(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		middleware.SetTenant(c, model.Tenant{Host: "acme.example.com", SchemaName: "tenant_acme"})
		middleware.SetSession(c, nil)
		return next(c)
	}
}

func newDocServer(t *testing.T, store handler.DocumentStore) *echo.Echo {
	t.Helper()
	e := router.New(nil)
	router.RegisterDocuments(e, "/api/v1", handler.NewDocumentHandler(store),
		stubTenant, middleware.JWTAuth("doc-test-secret"))
	return e
}

func docRequest(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestDocumentEndpoints(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	token, err := utils.NewAccessToken("doc-test-secret", owner.String(), nil, 5)
	require.NoError(t, err)

	t.Run("requires a bearer token", func(t *testing.T) {
		e := newDocServer(t, newMemDocumentStore())
		rec := docRequest(e, http.MethodGet, "/api/v1/documents", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("create sets owner from token subject", func(t *testing.T) {
		store := newMemDocumentStore()
		e := newDocServer(t, store)

		rec := docRequest(e, http.MethodPost, "/api/v1/documents", token.Token,
			`{"title":"NDA Template","mime_type":"application/pdf","jurisdiction":"IN"}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var doc model.Document
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
		assert.Equal(t, owner, doc.OwnerID)
		assert.Equal(t, "NDA Template", doc.Title)
	})

	t.Run("create validates required fields", func(t *testing.T) {
		e := newDocServer(t, newMemDocumentStore())
		rec := docRequest(e, http.MethodPost, "/api/v1/documents", token.Token, `{"title":"No Mime"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("get, patch and delete round trip", func(t *testing.T) {
		store := newMemDocumentStore()
		e := newDocServer(t, store)

		rec := docRequest(e, http.MethodPost, "/api/v1/documents", token.Token,
			`{"title":"Old Title","mime_type":"text/plain"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		var doc model.Document
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

		rec = docRequest(e, http.MethodPatch, "/api/v1/documents/"+doc.ID.String(), token.Token,
			`{"title":"New Title"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		var updated model.Document
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, "New Title", updated.Title)
		assert.Equal(t, "text/plain", updated.MimeType, "unset fields stay unchanged")

		rec = docRequest(e, http.MethodDelete, "/api/v1/documents/"+doc.ID.String(), token.Token, "")
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = docRequest(e, http.MethodGet, "/api/v1/documents/"+doc.ID.String(), token.Token, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown document id is a 404", func(t *testing.T) {
		e := newDocServer(t, newMemDocumentStore())
		rec := docRequest(e, http.MethodGet, "/api/v1/documents/"+uuid.NewString(), token.Token, "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"detail":"Document does not exist"}`, rec.Body.String())
	})
}
