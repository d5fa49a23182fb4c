package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/specterhq/specter/internal/database"
	"github.com/specterhq/specter/internal/middleware"
	"github.com/specterhq/specter/internal/model"
	"github.com/specterhq/specter/internal/repository"
	"github.com/specterhq/specter/internal/schema"
)

// DocumentStore is the slice of document storage the handlers need. Every
// call takes the request's tenant-scoped session so all table references
// resolve inside the tenant's schema.
type DocumentStore interface {
	Get(ctx context.Context, sess *database.Session, id uuid.UUID) (model.Document, bool, error)
	Create(ctx context.Context, sess *database.Session, in repository.DocumentCreate) (model.Document, error)
	Update(ctx context.Context, sess *database.Session, id uuid.UUID, in repository.DocumentUpdate) (model.Document, bool, error)
	Remove(ctx context.Context, sess *database.Session, id uuid.UUID) (model.Document, bool, error)
	List(ctx context.Context, sess *database.Session, limit, offset int) ([]model.Document, error)
}

// DocumentHandler implements the tenant-scoped document CRUD endpoints.
type DocumentHandler struct {
	Docs DocumentStore
}

func NewDocumentHandler(docs DocumentStore) *DocumentHandler {
	return &DocumentHandler{Docs: docs}
}

// session pulls the tenant-scoped session the resolver middleware opened.
func session(c echo.Context) (*database.Session, error) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "no tenant session")
	}
	return sess, nil
}

func docID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid document id")
	}
	return id, nil
}

func ownerID(c echo.Context) (uuid.UUID, error) {
	sub, _ := c.Get(middleware.ContextUserID).(string)
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
	}
	return id, nil
}

func (h *DocumentHandler) ListDocuments(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}
	limit, offset := intQuery(c, "limit", 50), intQuery(c, "offset", 0)
	docs, err := h.Docs.List(c.Request().Context(), sess, limit, offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) GetDocument(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}
	id, err := docID(c)
	if err != nil {
		return err
	}
	doc, found, err := h.Docs.Get(c.Request().Context(), sess, id)
	if err != nil {
		return err
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "Document does not exist")
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) CreateDocument(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}
	owner, err := ownerID(c)
	if err != nil {
		return err
	}
	var req schema.DocumentCreateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	doc, err := h.Docs.Create(c.Request().Context(), sess, repository.DocumentCreate{
		Title:        req.Title,
		Description:  req.Description,
		MimeType:     req.MimeType,
		Jurisdiction: req.Jurisdiction,
		OwnerID:      owner,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, doc)
}

func (h *DocumentHandler) UpdateDocument(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}
	id, err := docID(c)
	if err != nil {
		return err
	}
	var req schema.DocumentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	doc, found, err := h.Docs.Update(c.Request().Context(), sess, id, repository.DocumentUpdate{
		Title:        req.Title,
		Description:  req.Description,
		Jurisdiction: req.Jurisdiction,
	})
	if err != nil {
		return err
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "Document does not exist")
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) DeleteDocument(c echo.Context) error {
	sess, err := session(c)
	if err != nil {
		return err
	}
	id, err := docID(c)
	if err != nil {
		return err
	}
	_, found, err := h.Docs.Remove(c.Request().Context(), sess, id)
	if err != nil {
		return err
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "Document does not exist")
	}
	return c.NoContent(http.StatusNoContent)
}

func intQuery(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
