package handler

import (
	"net/http"
	"strconv"

	"devfriend/internal/delivery/http/middleware"
	"devfriend/internal/delivery/http/response"
	"devfriend/internal/domain/service"
	"devfriend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type connectEmailRequest struct {
	SecretID int64 `json:"secret_id" validate:"required,gt=0"`
}

type emailMessageResponse struct {
	ID       string `json:"id"`
	ThreadID string `json:"thread_id"`
	Subject  string `json:"subject"`
	From     string `json:"from"`
	Date     string `json:"date"`
	Snippet  string `json:"snippet"`
	Unread   bool   `json:"unread"`
}

func newEmailMessageResponses(messages []*service.EmailMessage) []emailMessageResponse {
	out := make([]emailMessageResponse, 0, len(messages))
	for _, msg := range messages {
		out = append(out, emailMessageResponse{
			ID:       msg.ID,
			ThreadID: msg.ThreadID,
			Subject:  msg.Subject,
			From:     msg.From,
			Date:     msg.Date,
			Snippet:  msg.Snippet,
			Unread:   msg.Unread,
		})
	}

	return out
}

// EmailHandler holds dependencies for the mailbox facade handlers.
type EmailHandler struct {
	uc usecase.EmailUsecase
}

// NewEmailHandler is the constructor for EmailHandler, injected by Fx.
func NewEmailHandler(uc usecase.EmailUsecase) *EmailHandler {
	return &EmailHandler{uc: uc}
}

// Integrations lists the user's mailbox integrations with unread counts.
func (h *EmailHandler) Integrations(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	views, err := h.uc.Integrations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Email integrations retrieved successfully")
}

// Connect binds an existing mailbox credential to an integration.
func (h *EmailHandler) Connect(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req connectEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid connect input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	integration, err := h.uc.Connect(c.Request().Context(), userID, req.SecretID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, usecase.NewIntegrationView(integration), "Email integration connected successfully")
}

// Emails lists messages from one mailbox.
func (h *EmailHandler) Emails(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	integrationID, err := pathID(c, "integrationID")
	if err != nil {
		return errors.WithStack(err)
	}

	maxResults, _ := strconv.Atoi(c.QueryParam("max_results"))
	query := c.QueryParam("q")

	messages, err := h.uc.Emails(c.Request().Context(), userID, integrationID, maxResults, query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEmailMessageResponses(messages), "Emails retrieved successfully")
}

// Stats summarizes one mailbox.
func (h *EmailHandler) Stats(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	integrationID, err := pathID(c, "integrationID")
	if err != nil {
		return errors.WithStack(err)
	}

	stats, err := h.uc.Stats(c.Request().Context(), userID, integrationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats, "Email stats retrieved successfully")
}

// Sync probes the mailbox and records the outcome on the integration.
func (h *EmailHandler) Sync(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	integrationID, err := pathID(c, "integrationID")
	if err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Sync(c.Request().Context(), userID, integrationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Email sync completed successfully")
}
