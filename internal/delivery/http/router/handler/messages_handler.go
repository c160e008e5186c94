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

type connectSlackRequest struct {
	SecretID int64 `json:"secret_id" validate:"required,gt=0"`
}

type slackChannelResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsPrivate  bool   `json:"is_private"`
	IsMember   bool   `json:"is_member"`
	NumMembers int    `json:"num_members"`
}

type slackMessageResponse struct {
	User      string `json:"user"`
	Text      string `json:"text"`
	Timestamp string `json:"ts"`
}

func newSlackChannelResponses(channels []*service.SlackChannel) []slackChannelResponse {
	out := make([]slackChannelResponse, 0, len(channels))
	for _, channel := range channels {
		out = append(out, slackChannelResponse{
			ID:         channel.ID,
			Name:       channel.Name,
			IsPrivate:  channel.IsPrivate,
			IsMember:   channel.IsMember,
			NumMembers: channel.NumMembers,
		})
	}

	return out
}

func newSlackMessageResponses(messages []*service.SlackMessage) []slackMessageResponse {
	out := make([]slackMessageResponse, 0, len(messages))
	for _, msg := range messages {
		out = append(out, slackMessageResponse{
			User:      msg.User,
			Text:      msg.Text,
			Timestamp: msg.Timestamp,
		})
	}

	return out
}

// MessagesHandler holds dependencies for the Slack facade handlers.
type MessagesHandler struct {
	uc usecase.MessagesUsecase
}

// NewMessagesHandler is the constructor for MessagesHandler, injected by Fx.
func NewMessagesHandler(uc usecase.MessagesUsecase) *MessagesHandler {
	return &MessagesHandler{uc: uc}
}

// Integrations lists the user's workspace integrations.
func (h *MessagesHandler) Integrations(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	views, err := h.uc.Integrations(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Slack integrations retrieved successfully")
}

// Connect binds an existing Slack credential to an integration.
func (h *MessagesHandler) Connect(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req connectSlackRequest
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

	return response.Success(c, http.StatusCreated, usecase.NewIntegrationView(integration), "Slack integration connected successfully")
}

// Workspace fetches metadata for the connected workspace.
func (h *MessagesHandler) Workspace(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	integrationID, err := pathID(c, "integrationID")
	if err != nil {
		return errors.WithStack(err)
	}

	team, err := h.uc.Workspace(c.Request().Context(), userID, integrationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"id":     team.ID,
		"name":   team.Name,
		"domain": team.Domain,
	}, "Workspace retrieved successfully")
}

// Channels lists conversations in the connected workspace.
func (h *MessagesHandler) Channels(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	integrationID, err := pathID(c, "integrationID")
	if err != nil {
		return errors.WithStack(err)
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	channels, err := h.uc.Channels(c.Request().Context(), userID, integrationID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSlackChannelResponses(channels), "Channels retrieved successfully")
}

// History lists recent messages from one conversation.
func (h *MessagesHandler) History(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	integrationID, err := pathID(c, "integrationID")
	if err != nil {
		return errors.WithStack(err)
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	messages, err := h.uc.History(c.Request().Context(), userID, integrationID, c.Param("channelID"), limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSlackMessageResponses(messages), "Channel history retrieved successfully")
}

// Sync probes the workspace and records the outcome on the integration.
func (h *MessagesHandler) Sync(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, result, "Slack sync completed successfully")
}
