package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/specterhq/specter/internal/config"
	"github.com/specterhq/specter/internal/model"
	"github.com/specterhq/specter/internal/queue"
	"github.com/specterhq/specter/internal/repository"
	"github.com/specterhq/specter/internal/schema"
	"github.com/specterhq/specter/internal/utils"
)

// AccountStore is the slice of account storage the auth endpoints need.
type AccountStore interface {
	GetByEmail(ctx context.Context, email string) (model.AccountUser, bool, error)
	Create(ctx context.Context, in repository.AccountUserCreate) (model.AccountUser, error)
	TouchLogin(ctx context.Context, id uuid.UUID) error
}

// EventPublisher pushes domain events to the message broker. Publishing is
// best-effort: a broker outage must not fail a registration.
type EventPublisher interface {
	PublishAccountRegistered(ctx context.Context, ev queue.AccountRegisteredEvent) error
}

// AuthHandler bundles dependencies for the register and login endpoints.
type AuthHandler struct {
	Cfg      config.IdentitySettings
	Accounts AccountStore
	Events   EventPublisher
}

func NewAuthHandler(cfg config.IdentitySettings, accounts AccountStore, events EventPublisher) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Accounts: accounts, Events: events}
}

// Register creates a new account. Duplicate emails are rejected with a 400
// before hashing; the unique constraint in the store closes the remaining
// race and maps to the same response.
func (h *AuthHandler) Register(c echo.Context) error {
	var req schema.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	req.Normalize()
	if err := req.ValidatePhone(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	_, exists, err := h.Accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if exists {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid emailId. Reason - Already exists!")
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return err
	}
	account, err := h.Accounts.Create(ctx, repository.AccountUserCreate{
		Name:         req.Name,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		CountryCode:  req.CountryCode,
		Phone:        req.Phone,
	})
	if err != nil {
		if err == repository.ErrEmailExists {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid emailId. Reason - Already exists!")
		}
		return err
	}

	if h.Events != nil {
		ev := queue.AccountRegisteredEvent{
			AccountID:    account.ID.String(),
			Email:        account.Email,
			Username:     account.Username,
			RegisteredAt: account.CreatedOn.UTC().Format(time.RFC3339),
		}
		if err := h.Events.PublishAccountRegistered(ctx, ev); err != nil {
			log.Printf("auth: account.registered publish failed: %v", err)
		}
	}

	return c.JSON(http.StatusCreated, schema.Msg{Message: "Registration successful!"})
}

// Login verifies credentials and issues an access token. Unknown emails are
// a 404 and bad passwords a 401, matching the API contract consumers of the
// identity service already depend on.
func (h *AuthHandler) Login(c echo.Context) error {
	var req schema.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	account, found, err := h.Accounts.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !found {
		return echo.NewHTTPError(http.StatusNotFound, "Invalid emailId. Reason - Does not exist!")
	}
	if !utils.VerifyPassword(account.PasswordHash, req.Password) {
		return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect password provided")
	}

	token, err := utils.NewAccessToken(h.Cfg.SecretKey, account.ID.String(),
		map[string]any{"name": account.Name, "email": account.Email},
		h.Cfg.AccessTokenExpireMinutes)
	if err != nil {
		return err
	}

	if err := h.Accounts.TouchLogin(ctx, account.ID); err != nil {
		log.Printf("auth: last_logged_in update failed for %s: %v", account.ID, err)
	}

	return c.JSON(http.StatusOK, schema.TokenResponse{
		AccessToken: token.Token,
		TokenType:   schema.TokenTypeBearer,
	})
}
